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

//T is compatible with builtin testing.T
type T interface {
	Errorf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
}

/*
Settings holds the construction time configuration of a Mock.

Configurators passed to New or Default receive the Settings before the Mock is returned, and the
Settings are fixed from then on.

 m := pseudo.New[string, int](0, func(s *pseudo.Settings) {
	s.SetName("Store.Len")
	s.EnableTrace(t)
 })
*/
type Settings struct {
	name   string
	tracer T
}

// SetName sets the name used to describe the Mock in trace output and failure messages.
func (s *Settings) SetName(name string) {
	s.name = name
}

// EnableTrace logs every invocation of the Mock via t.Logf
func (s *Settings) EnableTrace(t T) {
	s.tracer = t
}

// Named is a configurator shorthand for SetName
func Named(name string) func(*Settings) {
	return func(s *Settings) {
		s.SetName(name)
	}
}

// Traced is a configurator shorthand for EnableTrace
func Traced(t T) func(*Settings) {
	return func(s *Settings) {
		s.EnableTrace(t)
	}
}

func configure(configurators []func(*Settings)) Settings {
	var s Settings
	for _, c := range configurators {
		c(&s)
	}
	return s
}

// Verifiable is a deferred check, typically an expectation bound to a Mock with Expecting.
type Verifiable interface {
	Verify(t T)
}

//Verify is shorthand to Verify a set of checks against t
func Verify(t T, checks ...Verifiable) {
	t.Helper()
	for _, check := range checks {
		check.Verify(t)
	}
}
