/*
 * Copyright 2020 grant@lastweekend.com.au
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package matchers_test

import (
	"testing"

	"github.com/lwoggardner/pseudo/pseudo"
	. "github.com/lwoggardner/pseudo/pseudo/matchers"
	. "github.com/onsi/gomega"
)

type putArgs struct {
	Key   string
	Value string
}

func TestHaveBeenInvoked(t *testing.T) {
	g := NewWithT(t)
	m := pseudo.Default[putArgs, struct{}](pseudo.Named("Store.Put"))

	g.Expect(m).NotTo(HaveBeenInvoked())
	g.Expect(m).To(HaveBeenInvokedTimes(0))

	m.Invoke(putArgs{"user:1", "alice"})
	m.Invoke(putArgs{"user:2", "bob"})

	g.Expect(m).To(HaveBeenInvoked())
	g.Expect(m).To(HaveBeenInvokedTimes(2))
	g.Expect(m).To(HaveInvocations(pseudo.Between(1, 3)))
	g.Expect(m).NotTo(HaveInvocations(pseudo.AtLeast(3)))
}

func TestHaveBeenInvokedWith(t *testing.T) {
	g := NewWithT(t)
	m := pseudo.Default[putArgs, struct{}]()
	m.Invoke(putArgs{"user:1", "alice"})

	g.Expect(m).To(HaveBeenInvokedWith(putArgs{"user:1", "alice"}))
	g.Expect(m).NotTo(HaveBeenInvokedWith(putArgs{"user:1", "bob"}))
	g.Expect(m).To(HaveBeenInvokedWith(HaveField("Value", HavePrefix("al"))))
	g.Expect(m).NotTo(HaveBeenInvokedWith(HaveField("Key", Equal("user:2"))))
}

func TestHaveBeenInvokedWith_ScalarArguments(t *testing.T) {
	g := NewWithT(t)
	m := pseudo.New[int, int](0)
	m.Invoke(3)
	m.Invoke(9)

	g.Expect(m).To(HaveBeenInvokedWith(9))
	g.Expect(m).To(HaveBeenInvokedWith(BeNumerically(">", 5)))
	g.Expect(m).NotTo(HaveBeenInvokedWith(BeNumerically(">", 10)))
}

func TestMatchers_FailureMessages(t *testing.T) {
	g := NewWithT(t)
	m := pseudo.Default[int, int](pseudo.Named("Counter.Add"))
	m.Invoke(1)

	times := HaveBeenInvokedTimes(2)
	g.Expect(times.Match(m)).To(BeFalse())
	g.Expect(times.FailureMessage(m)).To(And(
		ContainSubstring("Counter.Add with calls [1]"),
		ContainSubstring("to have been called twice"),
	))
	g.Expect(HaveBeenInvoked().NegatedFailureMessage(m)).To(ContainSubstring("not to have been called at least 1"))

	with := HaveBeenInvokedWith(5)
	g.Expect(with.Match(m)).To(BeFalse())
	g.Expect(with.FailureMessage(m)).To(ContainSubstring("to have been invoked with"))
	g.Expect(with.NegatedFailureMessage(m)).To(ContainSubstring("not to have been invoked with"))
}

func TestMatchers_RejectNonRecorders(t *testing.T) {
	g := NewWithT(t)

	for _, matcher := range []interface{ Match(interface{}) (bool, error) }{
		HaveBeenInvoked(),
		HaveBeenInvokedTimes(1),
		HaveBeenInvokedWith(1),
	} {
		_, err := matcher.Match("not a mock")
		g.Expect(err).To(MatchError(ContainSubstring("expects a Recorder")))
	}
}

func TestRecorder_IsSatisfiedByMock(t *testing.T) {
	var _ Recorder = pseudo.Default[string, bool]()
	var _ Recorder = pseudo.Default[struct{}, pseudo.Result[int]]()
}
