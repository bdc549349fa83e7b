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

package pseudo

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// ArgMatcher decides whether the arguments of one recorded call are of interest
type ArgMatcher[C any] interface {
	Matches(args C) bool
}

// Matcher is the shape of third party matchers such as gomega's GomegaMatcher.
// Any type implementing Match and FailureMessage can be passed to Calls.Matching.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

type funcMatcher[C any] struct {
	f           func(C) bool
	explanation string
}

func (m funcMatcher[C]) Matches(args C) bool {
	return m.f(args)
}

func (m funcMatcher[C]) String() string {
	return m.explanation
}

// Func returns an ArgMatcher from the predicate f.
//
// Optionally include an explanation, formatted via fmt.Sprint, that describes what is being matched
func Func[C any](f func(C) bool, explanation ...interface{}) ArgMatcher[C] {
	if f == nil {
		panic(fmt.Errorf("nil predicate for %v", typeOf[C]()))
	}
	explainString := fmt.Sprintf("%T", f)
	if len(explanation) > 0 {
		explainString = fmt.Sprint(explanation...)
	}
	return funcMatcher[C]{f: f, explanation: explainString}
}

type eqlMatcher[C any] struct {
	expected C
	opts     []cmp.Option
}

func (m eqlMatcher[C]) Matches(args C) bool {
	return cmp.Equal(args, m.expected, m.opts...)
}

func (m eqlMatcher[C]) String() string {
	return fmt.Sprintf("Eql(%v)", m.expected)
}

// Eql returns an ArgMatcher comparing recorded arguments with expected via cmp.Equal.
//
// opts are passed through to cmp, eg cmpopts.IgnoreUnexported for structs with unexported fields.
func Eql[C any](expected C, opts ...cmp.Option) ArgMatcher[C] {
	return eqlMatcher[C]{expected: expected, opts: opts}
}

type externalMatcher[C any] struct {
	Matcher
}

func (m externalMatcher[C]) Matches(args C) bool {
	// A matcher that cannot handle args (eg a type mismatch) does not match them
	success, err := m.Match(args)
	return err == nil && success
}

func (m externalMatcher[C]) String() string {
	if s, isStringer := m.Matcher.(fmt.Stringer); isStringer {
		return s.String()
	}
	return fmt.Sprintf("%T", m.Matcher)
}

/*
newArgMatcher converts matcher to an ArgMatcher.

 ArgMatcher[C]    is used as is
 func(C) bool     is converted via Func
 Matcher          is adapted (gomega matchers and the like)
 C                is converted via Eql

Anything else is a programming error and panics.
*/
func newArgMatcher[C any](matcher any) ArgMatcher[C] {
	switch typedMatcher := matcher.(type) {
	case ArgMatcher[C]:
		return typedMatcher
	case func(C) bool:
		return Func(typedMatcher)
	case Matcher:
		return externalMatcher[C]{typedMatcher}
	case C:
		return Eql(typedMatcher)
	default:
		panic(fmt.Errorf("cannot match calls with arguments of %v using %T", typeOf[C](), matcher))
	}
}
