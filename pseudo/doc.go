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
Package pseudo provides Mock, a small generic primitive for building hand written test doubles.

A Mock[C, R] records the arguments of every call made against one method of a fake, and decides
what that call returns. C is the argument type (a single value, a struct of several values, or
struct{} for a method without arguments) and R is the return type (struct{} for a method without
results).

Wiring a fake

 type Store interface {
	Get(key string) (string, error)
	Put(key string, value string)
	Len() int
 }

 type putArgs struct {
	key, value string
 }

 type FakeStore struct {
	GetMock *pseudo.Mock[string, pseudo.Result[string]]
	PutMock *pseudo.Mock[putArgs, struct{}]
	LenMock *pseudo.Mock[struct{}, int]
 }

 func NewFakeStore() *FakeStore {
	return &FakeStore{
		GetMock: pseudo.Default[string, pseudo.Result[string]](),
		PutMock: pseudo.Default[putArgs, struct{}](),
		LenMock: pseudo.New[struct{}, int](0),
	}
 }

 func (f *FakeStore) Get(key string) (string, error) { return f.GetMock.Invoke(key).Unpack() }
 func (f *FakeStore) Put(key, value string)          { f.PutMock.Invoke(putArgs{key, value}) }
 func (f *FakeStore) Len() int                       { return f.LenMock.Invoke(struct{}{}) }

Setup

Each Mock answers a call with exactly one strategy, highest priority first:

1) a function installed with UseFn

2) a closure installed with UseClosure (installing either replaces the other)

3) the stub value, given to New or set later with ReturnValue (or ReturnSome, ReturnNone,
ReturnOK, ReturnErr for Optional and Result shaped returns)

 fake := NewFakeStore()
 pseudo.ReturnOK(fake.GetMock, "cached")
 fake.LenMock.UseClosure(pseudo.Sequence[struct{}](1, 2, 3))

Verify

History is inspected directly, or asserted against an Expectation.

 if !pseudo.InvokedWith(fake.GetMock, "user:1") {
	t.Errorf("expected lookup of user:1, got %v", fake.GetMock.InvocationHistory())
 }
 fake.PutMock.Expect(t, pseudo.Once())
 fake.PutMock.Calls().Matching(func(a putArgs) bool { return a.key == "user:1" }).Expect(t, pseudo.Never())

A Mock is safe for concurrent use and is shared by handing out the pointer. It must not be copied
by value once used.
*/
package pseudo
