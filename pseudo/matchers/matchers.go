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

/*
Package matchers provides gomega matchers for asserting on the history of a pseudo.Mock.

 import (
	. "github.com/onsi/gomega"
	. "github.com/lwoggardner/pseudo/pseudo/matchers"
 )

 g := NewWithT(t)
 g.Expect(fake.GetMock).To(HaveBeenInvokedWith("user:1"))
 g.Expect(fake.PutMock).To(HaveBeenInvokedTimes(2))
 g.Expect(fake.LenMock).NotTo(HaveBeenInvoked())
*/
package matchers

import (
	"fmt"

	"github.com/lwoggardner/pseudo/pseudo"
	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// Recorder is the view of a Mock these matchers need. Any *pseudo.Mock is a Recorder.
type Recorder interface {
	InvocationCount() int
	RecordedArgs() []any
}

// HaveBeenInvoked succeeds if the Recorder has recorded at least one call
func HaveBeenInvoked() types.GomegaMatcher {
	return &invocationsMatcher{expect: pseudo.AtLeast(1)}
}

// HaveBeenInvokedTimes succeeds if the Recorder has recorded exactly n calls
func HaveBeenInvokedTimes(n int) types.GomegaMatcher {
	return &invocationsMatcher{expect: pseudo.Exactly(n)}
}

// HaveInvocations succeeds if the number of recorded calls meets expect
//
//	Expect(m).To(HaveInvocations(pseudo.Between(1, 3)))
func HaveInvocations(expect pseudo.Expectation) types.GomegaMatcher {
	return &invocationsMatcher{expect: expect}
}

type invocationsMatcher struct {
	expect pseudo.Expectation
}

func (m *invocationsMatcher) Match(actual interface{}) (bool, error) {
	rec, err := toRecorder("HaveBeenInvoked", actual)
	if err != nil {
		return false, err
	}
	return m.expect.Met(rec.InvocationCount()), nil
}

func (m *invocationsMatcher) FailureMessage(actual interface{}) string {
	return format.Message(describe(actual), fmt.Sprintf("to have been called %v", m.expect))
}

func (m *invocationsMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(describe(actual), fmt.Sprintf("not to have been called %v", m.expect))
}

// HaveBeenInvokedWith succeeds if at least one recorded call has arguments matching expected.
//
// expected may itself be a gomega matcher, eg HaveBeenInvokedWith(HaveField("Key", "user:1")),
// otherwise arguments are compared with reflect.DeepEqual as per gomega.Equal
func HaveBeenInvokedWith(expected interface{}) types.GomegaMatcher {
	return &invokedWithMatcher{expected: expected}
}

type invokedWithMatcher struct {
	expected interface{}
}

func (m *invokedWithMatcher) Match(actual interface{}) (bool, error) {
	rec, err := toRecorder("HaveBeenInvokedWith", actual)
	if err != nil {
		return false, err
	}
	return gomega.ContainElement(m.expected).Match(rec.RecordedArgs())
}

func (m *invokedWithMatcher) FailureMessage(actual interface{}) string {
	return format.Message(describe(actual), "to have been invoked with", m.expected)
}

func (m *invokedWithMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(describe(actual), "not to have been invoked with", m.expected)
}

func toRecorder(matcher string, actual interface{}) (Recorder, error) {
	rec, isRecorder := actual.(Recorder)
	if !isRecorder {
		return nil, fmt.Errorf("%s matcher expects a Recorder such as *pseudo.Mock.  Got:\n%s", matcher, format.Object(actual, 1))
	}
	return rec, nil
}

// describe avoids dumping the internals (locks and all) of a Mock into failure messages
func describe(actual interface{}) interface{} {
	rec, isRecorder := actual.(Recorder)
	if !isRecorder {
		return actual
	}
	return fmt.Sprintf("%v with calls %v", actual, rec.RecordedArgs())
}
