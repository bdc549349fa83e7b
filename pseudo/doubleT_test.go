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
	"regexp"
)

type printfArgs struct {
	format string
	args   []interface{}
}

func (p printfArgs) String() string {
	return fmt.Sprintf(p.format, p.args...)
}

// tDouble is a fake T wired with this package's own Mocks
type tDouble struct {
	ErrorfMock *Mock[printfArgs, struct{}]
	LogfMock   *Mock[printfArgs, struct{}]
	HelperMock *Mock[struct{}, struct{}]
}

func newTDouble() *tDouble {
	return &tDouble{
		ErrorfMock: Default[printfArgs, struct{}](Named("T.Errorf")),
		LogfMock:   Default[printfArgs, struct{}](Named("T.Logf")),
		HelperMock: Default[struct{}, struct{}](Named("T.Helper")),
	}
}

func (t *tDouble) Errorf(format string, args ...interface{}) {
	t.ErrorfMock.Invoke(printfArgs{format, args})
}

func (t *tDouble) Logf(format string, args ...interface{}) {
	t.LogfMock.Invoke(printfArgs{format, args})
}

func (t *tDouble) Helper() {
	t.HelperMock.Invoke(struct{}{})
}

func printfMatcher(re string) ArgMatcher[printfArgs] {
	exp := regexp.MustCompile(re)
	return Func(func(p printfArgs) bool {
		return exp.MatchString(p.String())
	}, fmt.Sprintf("/%s/", re))
}
