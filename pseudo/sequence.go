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
	"errors"
	"slices"
	"sync"
)

/*
Sequence returns a closure, for use with UseClosure, that answers successive calls with each of
values in turn. Once exhausted the last value is returned for every further call.

 m.UseClosure(pseudo.Sequence[string](pseudo.Err[int](io.ErrUnexpectedEOF), pseudo.OK(42)))
*/
func Sequence[C any, R any](values ...R) func(C) R {
	if len(values) == 0 {
		panic(errors.New("sequence requires at least one value"))
	}
	values = slices.Clone(values)

	var mu sync.Mutex
	next := 0
	return func(C) R {
		mu.Lock()
		defer mu.Unlock()
		v := values[next]
		if next < len(values)-1 {
			next++
		}
		return v
	}
}
