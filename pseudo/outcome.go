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

// Optional is a value that may be absent. The zero value is None.
type Optional[S any] struct {
	value   S
	present bool
}

// Some returns a present Optional holding s
func Some[S any](s S) Optional[S] {
	return Optional[S]{value: s, present: true}
}

// None returns an absent Optional
func None[S any]() Optional[S] {
	return Optional[S]{}
}

// Get returns the value and whether it is present, like a map lookup.
func (o Optional[S]) Get() (S, bool) {
	return o.value, o.present
}

func (o Optional[S]) IsSome() bool {
	return o.present
}

func (o Optional[S]) IsNone() bool {
	return !o.present
}

// OrElse returns the value if present, otherwise fallback
func (o Optional[S]) OrElse(fallback S) S {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Optional[S]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Result is either a success value or a failure error. The zero value is a success holding the
// zero value of O.
type Result[O any] struct {
	value O
	err   error
}

// OK returns a successful Result holding o
func OK[O any](o O) Result[O] {
	return Result[O]{value: o}
}

// Err returns a failed Result holding err, which must not be nil.
func Err[O any](err error) Result[O] {
	if err == nil {
		panic(fmt.Errorf("nil error for failed Result[%v]", typeOf[O]()))
	}
	return Result[O]{err: err}
}

// Unpack returns the result in the conventional (value, error) form.
//
//	func (f *FakeStore) Get(key string) (string, error) {
//		return f.GetMock.Invoke(key).Unpack()
//	}
func (r Result[O]) Unpack() (O, error) {
	return r.value, r.err
}

func (r Result[O]) IsOK() bool {
	return r.err == nil
}

func (r Result[O]) IsErr() bool {
	return r.err != nil
}

// Value returns the success value, which is the zero value of O for a failed Result
func (r Result[O]) Value() O {
	return r.value
}

// Err returns the failure, or nil for a successful Result
func (r Result[O]) Err() error {
	return r.err
}

func (r Result[O]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("OK(%v)", r.value)
}

// ReturnSome sets the stub value of m to Some(s)
func ReturnSome[C any, S any](m *Mock[C, Optional[S]], s S) {
	m.ReturnValue(Some(s))
}

// ReturnNone sets the stub value of m to None
func ReturnNone[C any, S any](m *Mock[C, Optional[S]]) {
	m.ReturnValue(None[S]())
}

// ReturnOK sets the stub value of m to OK(o)
func ReturnOK[C any, O any](m *Mock[C, Result[O]], o O) {
	m.ReturnValue(OK(o))
}

// ReturnErr sets the stub value of m to Err(err)
func ReturnErr[C any, O any](m *Mock[C, Result[O]], err error) {
	m.ReturnValue(Err[O](err))
}
