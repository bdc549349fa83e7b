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
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

/*
Mock records the arguments of every call to one method of a fake, and produces the value that
call returns.

The zero value is ready to use, answering every call with the zero value of R.

Each piece of state is guarded independently (history, stub value and override), so a Mock can be
configured, invoked and inspected from any number of goroutines. There is no atomicity across
those pieces: a call racing with UseFn may be answered by either the old or the new strategy.
*/
type Mock[C any, R any] struct {
	settings Settings

	callsMu sync.RWMutex
	calls   []C

	stubMu sync.RWMutex
	stub   R

	active atomic.Pointer[override[C, R]]
}

// New returns a Mock that answers calls with initial until configured otherwise.
func New[C any, R any](initial R, configurators ...func(*Settings)) *Mock[C, R] {
	return &Mock[C, R]{settings: configure(configurators), stub: initial}
}

// Default returns a Mock that answers calls with the zero value of R until configured otherwise.
func Default[C any, R any](configurators ...func(*Settings)) *Mock[C, R] {
	var zero R
	return New[C](zero, configurators...)
}

/*
Invoke records args and returns the value for this call.

Called from the body of a fake's method. The call is always recorded first, then answered by the
installed function, else the installed closure, else the stub value.

An override that panics is not recovered, the panic reaches the caller of Invoke with the call
already recorded.
*/
func (m *Mock[C, R]) Invoke(args C) R {
	m.record(args)
	if m.settings.tracer == nil {
		return m.resolve(args)
	}
	return m.traced(args)
}

func (m *Mock[C, R]) record(args C) {
	m.callsMu.Lock()
	defer m.callsMu.Unlock()
	m.calls = append(m.calls, args)
}

// resolve runs overrides outside of every lock so they may call back into this Mock.
func (m *Mock[C, R]) resolve(args C) R {
	if o := m.active.Load(); o != nil {
		return o.f(args)
	}
	return m.StubValue()
}

func (m *Mock[C, R]) traced(args C) R {
	t := m.settings.tracer
	t.Helper()
	//An override can panic but we still want to trace it
	defer func() {
		if e := recover(); e != nil {
			t.Logf("Called %v(%v) => panic! %v", m, args, e)
			panic(e)
		}
	}()
	result := m.resolve(args)
	t.Logf("Called %v(%v) => %v", m, args, result)
	return result
}

// ReturnValue replaces the stub value.
//
// An installed override keeps priority, see ClearOverride.
func (m *Mock[C, R]) ReturnValue(value R) {
	m.stubMu.Lock()
	defer m.stubMu.Unlock()
	m.stub = value
}

// StubValue returns the current stub value
func (m *Mock[C, R]) StubValue() R {
	m.stubMu.RLock()
	defer m.stubMu.RUnlock()
	return m.stub
}

// UseFn answers subsequent calls with f(args), replacing any closure installed with UseClosure.
//
// f is expected to depend only on its arguments. The stub value is kept.
func (m *Mock[C, R]) UseFn(f func(C) R) {
	m.install(FnStrategy, f)
}

// UseClosure answers subsequent calls with f(args), replacing any function installed with UseFn.
//
// Unlike UseFn, f may capture and mutate state of the test. The stub value is kept.
func (m *Mock[C, R]) UseClosure(f func(C) R) {
	m.install(ClosureStrategy, f)
}

func (m *Mock[C, R]) install(strategy Strategy, f func(C) R) {
	if f == nil {
		panic(fmt.Errorf("%v: cannot install nil %v override", m, strategy))
	}
	m.active.Store(&override[C, R]{strategy: strategy, f: f})
}

// ClearOverride removes any installed function or closure, so calls fall back to the stub value.
func (m *Mock[C, R]) ClearOverride() {
	m.active.Store(nil)
}

// Strategy reports which strategy will answer the next call.
func (m *Mock[C, R]) Strategy() Strategy {
	if o := m.active.Load(); o != nil {
		return o.strategy
	}
	return StubStrategy
}

// WasInvoked is true if Invoke has been called since construction or the last ResetHistory.
func (m *Mock[C, R]) WasInvoked() bool {
	return m.InvocationCount() > 0
}

// InvocationCount returns the number of calls since construction or the last ResetHistory.
func (m *Mock[C, R]) InvocationCount() int {
	m.callsMu.RLock()
	defer m.callsMu.RUnlock()
	return len(m.calls)
}

// InvocationHistory returns a copy of the recorded arguments, first call first.
func (m *Mock[C, R]) InvocationHistory() []C {
	m.callsMu.RLock()
	defer m.callsMu.RUnlock()
	return slices.Clone(m.calls)
}

// RecordedArgs is InvocationHistory with each element boxed, for matcher libraries that
// inspect collections of any.
func (m *Mock[C, R]) RecordedArgs() []any {
	m.callsMu.RLock()
	defer m.callsMu.RUnlock()
	boxed := make([]any, len(m.calls))
	for i, args := range m.calls {
		boxed[i] = args
	}
	return boxed
}

// ResetHistory forgets all recorded calls. Stub configuration is untouched.
func (m *Mock[C, R]) ResetHistory() {
	m.callsMu.Lock()
	defer m.callsMu.Unlock()
	m.calls = nil
}

func (m *Mock[C, R]) String() string {
	if m.settings.name != "" {
		return m.settings.name
	}
	return fmt.Sprintf("Mock[%v, %v]", typeOf[C](), typeOf[R]())
}

func typeOf[V any]() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}
