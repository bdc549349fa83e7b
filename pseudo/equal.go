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
	"slices"

	"github.com/google/go-cmp/cmp"
)

// InvokedWith is true if args equals (==) the arguments of at least one recorded call.
//
// Requires comparable arguments. For slices, maps or structs containing them use InvokedWithEqual.
func InvokedWith[C comparable, R any](m *Mock[C, R], args C) bool {
	m.callsMu.RLock()
	defer m.callsMu.RUnlock()
	return slices.Contains(m.calls, args)
}

// InvokedWithEqual is true if args is cmp.Equal to the arguments of at least one recorded call.
func InvokedWithEqual[C any, R any](m *Mock[C, R], args C, opts ...cmp.Option) bool {
	return m.InvokedMatching(Eql(args, opts...))
}
