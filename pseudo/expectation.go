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

import "fmt"

// An Expectation verifies a count of recorded calls
type Expectation interface {
	// Is the expectation met by count calls?
	Met(count int) bool
}

//A Completion is an expectation that can tell when further calls can only fail to meet it
type Completion interface {
	Expectation
	Complete(count int) bool
}

type calledExactly int

func (times calledExactly) Met(count int) bool {
	return count == int(times)
}

func (times calledExactly) Complete(count int) bool {
	return count >= int(times)
}

func (times calledExactly) String() string {
	switch times {
	case 1:
		return "once"
	case 2:
		return "twice"
	}
	return fmt.Sprintf("exactly %d", int(times))
}

type calledAtLeast int

func (times calledAtLeast) Met(count int) bool {
	return count >= int(times)
}

func (times calledAtLeast) String() string {
	return fmt.Sprintf("at least %d", int(times))
}

type calledBetween struct {
	atLeast int
	atMost  int
}

func (c calledBetween) Met(count int) bool {
	return count >= c.atLeast && count <= c.atMost
}

func (c calledBetween) Complete(count int) bool {
	return count >= c.atMost
}

func (c calledBetween) String() string {
	if c.atLeast <= 0 {
		return fmt.Sprintf("at most %d", c.atMost)
	}
	return fmt.Sprintf("between %d and %d", c.atLeast, c.atMost)
}

// Exactly returns an expectation of exactly n calls
func Exactly(n int) Completion {
	return calledExactly(n)
}

// Once is shorthand for Exactly(1)
func Once() Completion {
	return Exactly(1)
}

// Twice is shorthand for Exactly(2)
func Twice() Completion {
	return Exactly(2)
}

// Never is shorthand for Exactly(0), reported as "never"
func Never() Completion {
	return never{}
}

type never struct{}

func (never) Met(count int) bool      { return count == 0 }
func (never) Complete(count int) bool { return count >= 0 }
func (never) String() string          { return "never" }

// AtLeast returns an expectation of n or more calls
func AtLeast(n int) Expectation {
	return calledAtLeast(n)
}

// AtMost returns an expectation of no more than n calls
func AtMost(n int) Completion {
	return Between(0, n)
}

// Between returns an expectation of at least min and at most max calls
func Between(min int, max int) Completion {
	if min > max {
		panic(fmt.Errorf("invalid expectation between %d and %d", min, max))
	}
	return calledBetween{min, max}
}
