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

// Strategy identifies how a Mock currently answers calls.
type Strategy int

const (
	// StubStrategy returns a copy of the stub value.
	StubStrategy Strategy = iota
	// FnStrategy returns the result of the function installed with UseFn.
	FnStrategy
	// ClosureStrategy returns the result of the closure installed with UseClosure.
	ClosureStrategy
)

func (s Strategy) String() string {
	switch s {
	case StubStrategy:
		return "stub"
	case FnStrategy:
		return "fn"
	case ClosureStrategy:
		return "closure"
	}
	return "unknown"
}

// override is the single slot holding either an installed function or an installed closure.
// A nil *override means no override is installed.
type override[C any, R any] struct {
	strategy Strategy
	f        func(C) R
}
