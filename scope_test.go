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

package uerrors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readFileScoped(path string) Result[string] {
	return Do(func() string {
		buffer := Must(os.ReadFile(path))
		text, err := decodeUTF8(buffer)
		return MustOr(text, err, "cannot read binary file")
	})
}

func TestDo_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok")
	if err := os.WriteFile(path, []byte("Hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, err := readFileScoped(path).Get(); err != nil || got != "Hello" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestDo_MustPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")
	_, ioErr := os.ReadFile(path)

	err := readFileScoped(path).Err()
	if err == nil || err.Description() != ioErr.Error() {
		t.Fatalf("got %v, want %v", err, ioErr)
	}
}

func TestDo_MustOrOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin")
	if err := os.WriteFile(path, []byte{0xc3, 0x28}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := readFileScoped(path).Err()
	if err == nil || err.Description() != "cannot read binary file" {
		t.Fatalf("got %v", err)
	}
}

func TestDo_RaiseNeverFallsThrough(t *testing.T) {
	reached := false
	res := Do(func() int {
		Raise("OMG!")
		reached = true
		return 1
	})
	if reached {
		t.Fatal("Raise must not return")
	}
	if res.Err().Description() != "OMG!" {
		t.Fatalf("got %v", res.Err())
	}

	res = Do(func() int {
		Raise(nil)
		return 0
	})
	if res.Err() != ErrNoError {
		t.Fatalf("Raise(nil) = %v", res.Err())
	}
}

func TestDo_Check(t *testing.T) {
	res := Do(func() struct{} {
		Check(nil)
		Check(errors.New("flush failed"))
		return struct{}{}
	})
	if res.Err().Description() != "flush failed" {
		t.Fatalf("got %v", res.Err())
	}
}

func TestDo_MustOrNilOverrideKeepsOriginal(t *testing.T) {
	res := Do(func() int {
		return MustOr(0, errors.New("orig"), nil)
	})
	if res.Err().Description() != "orig" {
		t.Fatalf("got %v", res.Err())
	}
}

func TestDo_NestedScopes(t *testing.T) {
	outer := Do(func() string {
		inner := Do(func() string {
			Raise("inner")
			return ""
		})
		if inner.IsOk() {
			t.Fatal("inner scope must fail")
		}
		return "outer done"
	})
	if v, err := outer.Get(); err != nil || v != "outer done" {
		t.Fatalf("got %q, %v", v, err)
	}
}

func TestDo_ForeignPanicPassesThrough(t *testing.T) {
	defer func() {
		if r := recover(); r != "unrelated" {
			t.Fatalf("recovered %v, want the original panic value", r)
		}
	}()
	Do(func() int { panic("unrelated") })
	t.Fatal("unreachable")
}
