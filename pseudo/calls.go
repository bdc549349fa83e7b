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
	"slices"
	"strings"
)

// Calls is an immutable snapshot of recorded call arguments, or a subset of them, to be verified.
type Calls[C any] struct {
	args    []C
	subsets []string
}

// Calls returns a snapshot of all calls recorded so far.
func (m *Mock[C, R]) Calls() Calls[C] {
	return Calls[C]{
		args:    m.InvocationHistory(),
		subsets: []string{fmt.Sprintf("all calls to %v", m)},
	}
}

// Expect asserts the number of calls recorded so far, via t.Errorf.
func (m *Mock[C, R]) Expect(t T, expect Expectation) {
	t.Helper()
	m.Calls().Expect(t, expect)
}

// Expecting binds expect to m, to be checked later with Verify.
//
//	defer pseudo.Verify(t, fake.PutMock.Expecting(pseudo.Once()))
func (m *Mock[C, R]) Expecting(expect Expectation) Verifiable {
	return verifiableMock[C, R]{m, expect}
}

type verifiableMock[C any, R any] struct {
	m      *Mock[C, R]
	expect Expectation
}

func (v verifiableMock[C, R]) Verify(t T) {
	t.Helper()
	v.m.Expect(t, v.expect)
}

// InvokedMatching is true if at least one recorded call satisfies matcher, see Calls.Matching.
func (m *Mock[C, R]) InvokedMatching(matcher any) bool {
	return m.Calls().Matching(matcher).NumCalls() > 0
}

/*
Matching returns the subset of calls whose arguments satisfy matcher, which is one of

 ArgMatcher[C] - eg built with Func or Eql
 func(C) bool  - a predicate
 Matcher       - eg a gomega matcher such as HaveField("Key", HavePrefix("user:"))
 C             - a value compared via cmp.Equal

Any other matcher panics.
*/
func (c Calls[C]) Matching(matcher any) Calls[C] {
	argMatcher := newArgMatcher[C](matcher)
	var subset []C
	for _, args := range c.args {
		if argMatcher.Matches(args) {
			subset = append(subset, args)
		}
	}
	return c.newSubset(subset, fmt.Sprintf("calls matching %v within", argMatcher))
}

/*
Slice returns a subset of these calls, including call at index from, excluding call at index to
(like a go slice), except that indexes beyond the recorded calls are clipped.

Use NumCalls() to reference calls from the end, eg the last 3 calls - c.Slice(c.NumCalls()-3, c.NumCalls())
*/
func (c Calls[C]) Slice(from int, to int) Calls[C] {
	if from < 0 || to < 0 || from > to {
		panic(fmt.Errorf("invalid slice [%d:%d] of %v", from, to, c))
	}

	l := len(c.args)
	switch {
	case from >= l:
		return c.newSubset(nil, fmt.Sprintf("slice[%d>=len():] of", from))
	case to > l:
		return c.newSubset(c.args[from:], fmt.Sprintf("slice[%d:] of", from))
	default:
		return c.newSubset(c.args[from:to], fmt.Sprintf("slice[%d:%d] of", from, to))
	}
}

// NumCalls returns the number of calls in this set.
// Prefer to use Expect() rather than asserting the result of NumCalls()
func (c Calls[C]) NumCalls() int {
	return len(c.args)
}

// Args returns the arguments of the calls in this set, in the order they were recorded.
func (c Calls[C]) Args() []C {
	return slices.Clone(c.args)
}

// Expect asserts the number of calls in this set, via t.Errorf.
func (c Calls[C]) Expect(t T, expect Expectation) {
	t.Helper()
	if count := c.NumCalls(); !expect.Met(count) {
		t.Errorf("%v expected %v, found %d calls", c, expect, count)
	}
}

func (c Calls[C]) newSubset(args []C, desc string) Calls[C] {
	return Calls[C]{args: args, subsets: append([]string{desc}, c.subsets...)}
}

//String describes how the set was derived, outermost subset first, eg
//
//	calls matching Eql(1) within
//	  all calls to Store.Get
func (c Calls[C]) String() string {
	sb := strings.Builder{}
	for depth, desc := range c.subsets {
		if depth > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(desc)
	}
	return sb.String()
}
