/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package uerrors_test

import (
	"errors"
	"fmt"
	"strconv"

	"dirpx.dev/uerrors"
)

const errEmptyPort uerrors.Static = "empty port"

func parsePort(s string) (int, uerrors.Error) {
	if s == "" {
		return uerrors.Fail[int](errEmptyPort).Get()
	}
	return uerrors.Try(strconv.Atoi(s)).Orf("invalid port %q", s).Get()
}

func ExampleTry() {
	for _, in := range []string{"8080", "", "http"} {
		port, err := parsePort(in)
		if err != nil {
			fmt.Printf("%s error: %v\n", err.Kind(), err)
			continue
		}
		fmt.Println("port", port)
	}
	// Output:
	// port 8080
	// static error: empty port
	// dynamic error: invalid port "http"
}

func ExampleFrom() {
	for _, v := range []any{uerrors.Static("static"), "dynamic", errors.New("wrapped")} {
		e := uerrors.From(v)
		fmt.Println(e.Kind(), e.Description())
	}
	// Output:
	// static static
	// dynamic dynamic
	// wrapped wrapped
}

func ExampleFail() {
	lit := uerrors.Fail[int]("no input")
	typed := uerrors.Fail[int](uerrors.Static("no input"))
	fmt.Println(lit.Err().Kind(), typed.Err().Kind())
	// Output:
	// dynamic static
}

func ExampleDo() {
	res := uerrors.Do(func() int {
		n := uerrors.Must(strconv.Atoi("12"))
		if n < 100 {
			uerrors.Raise(uerrors.Errorf("%d is below the minimum", n))
		}
		return n
	})
	fmt.Println(res)
	// Output:
	// failure(12 is below the minimum)
}
