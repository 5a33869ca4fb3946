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
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"unicode/utf8"
)

// utf8Error is the decoding failure reported by decodeUTF8.
type utf8Error struct {
	offset int
}

func (e *utf8Error) Error() string {
	return "invalid utf-8 sequence at byte " + strconv.Itoa(e.offset)
}

func decodeUTF8(b []byte) (string, error) {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", &utf8Error{offset: i}
		}
		i += size
	}
	return string(b), nil
}

func success() (string, Error) {
	return Ok("Hello").Get()
}

func readFile(path string) (string, Error) {
	buffer, err := Try(os.ReadFile(path)).Get()
	if err != nil {
		return "", err
	}
	return Try(decodeUTF8(buffer)).Or("cannot read binary file").Get()
}

func failStatic() (string, Error) {
	return Fail[string](Static("OMG!")).Get()
}

func failFormatted() (string, Error) {
	return Failf[string]("OMG! %s", "woop").Get()
}

func TestReadText_Success(t *testing.T) {
	got, err := success()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello" {
		t.Fatalf("got %q, want Hello", got)
	}
}

func TestReadText_IOErrorPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Hello")
	_, ioErr := os.ReadFile(path)

	_, err := readFile(path)
	if err == nil {
		t.Fatal("should fail")
	}
	if err.Kind() != KindWrapped {
		t.Fatalf("kind = %v, want wrapped", err.Kind())
	}
	if err.Description() != ioErr.Error() {
		t.Fatalf("description = %q, want %q", err.Description(), ioErr.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("the I/O failure must stay reachable")
	}
}

func TestReadText_OverrideDiscardsOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary_file")
	if err := os.WriteFile(path, []byte{0x00, 0xff, 0xfe, 0x01}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := readFile(path)
	if err == nil {
		t.Fatal("should fail")
	}
	if err.Description() != "cannot read binary file" {
		t.Fatalf("description = %q", err.Description())
	}
	if err.Cause() != nil {
		t.Fatal("override must discard the original cause chain")
	}
	var ue *utf8Error
	if errors.As(err, &ue) {
		t.Fatal("original decoding error must not be reachable")
	}
}

func TestReadText_ValidTextReadsThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text_file")
	if err := os.WriteFile(path, []byte("héllo"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := readFile(path)
	if err != nil || got != "héllo" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestFail_Static(t *testing.T) {
	_, err := failStatic()
	if err == nil {
		t.Fatal("should fail")
	}
	if err.Description() != "OMG!" || err.Kind() != KindStatic {
		t.Fatalf("got %v %q", err.Kind(), err.Description())
	}
}

func TestFailf_Formatted(t *testing.T) {
	_, err := failFormatted()
	if err == nil {
		t.Fatal("should fail")
	}
	if err.Description() != "OMG! woop" || err.Kind() != KindDynamic {
		t.Fatalf("got %v %q", err.Kind(), err.Description())
	}
}

func TestTry_SuccessKeepsPayload(t *testing.T) {
	payload := []int{1, 2, 3}
	r := Try(payload, nil)
	if !r.IsOk() || r.Err() != nil {
		t.Fatal("success expected")
	}
	if &r.Value()[0] != &payload[0] {
		t.Fatal("payload must be carried through unchanged")
	}
	if r.Or("ignored").Err() != nil {
		t.Fatal("Or must be a no-op on success")
	}
}

func TestTry_FailureConverts(t *testing.T) {
	base := errors.New("boom")
	r := Try(7, base)
	if r.IsOk() || r.Value() != 0 {
		t.Fatalf("failure must drop the value, got %v", r)
	}
	if r.Err().Kind() != KindWrapped || r.Err().Description() != "boom" {
		t.Fatalf("got %v %q", r.Err().Kind(), r.Err().Description())
	}

	// A unified error is propagated as-is.
	r = Try(0, error(Static("already unified")))
	if r.Err() != Static("already unified") {
		t.Fatalf("got %v", r.Err())
	}
}

func TestOr_Variants(t *testing.T) {
	failed := Try(0, errors.New("strconv: bad digit"))

	if got := failed.Or(Static("bad port")).Err(); got != Static("bad port") {
		t.Fatalf("Or(static) = %v", got)
	}
	if got := failed.Orf("bad port %q", "x1").Err(); got.Description() != `bad port "x1"` {
		t.Fatalf("Orf = %v", got)
	}
	if got := failed.Or(nil).Err(); got.Description() != "strconv: bad digit" {
		t.Fatalf("Or(nil) must keep the original, got %v", got)
	}
	if Ok(1).Orf("x").Err() != nil {
		t.Fatal("Orf must be a no-op on success")
	}
}

func TestFail_AlwaysFails(t *testing.T) {
	for _, v := range []any{"text", Static("s"), errors.New("e"), nil} {
		r := Fail[int](v)
		if r.IsOk() {
			t.Fatalf("Fail(%v) returned success", v)
		}
	}
	if Fail[int](nil).Err() != ErrNoError {
		t.Fatal("nil failure value must become ErrNoError")
	}
	if !Equal(Fail[int]("x").Err(), From("x")) {
		t.Fatal("Fail(v) must equal From(v)")
	}
	if Failure[int](nil).Err() != ErrNoError {
		t.Fatal("Failure(nil) must become ErrNoError")
	}
}

func TestThen(t *testing.T) {
	r := Then(Ok("42"), strconv.Atoi)
	if v, err := r.Get(); err != nil || v != 42 {
		t.Fatalf("got %v, %v", v, err)
	}

	r = Then(Ok("x"), strconv.Atoi)
	if r.IsOk() || r.Err().Kind() != KindWrapped {
		t.Fatalf("got %v", r)
	}

	called := false
	r = Then(Fail[string]("upstream"), func(s string) (int, error) {
		called = true
		return 0, nil
	})
	if called || r.Err().Description() != "upstream" {
		t.Fatal("failure must be forwarded without calling fn")
	}
}

func TestResult_UnwrapAndString(t *testing.T) {
	if Ok(3).Unwrap() != 3 {
		t.Fatal("Unwrap on success")
	}
	if Ok(3).String() != "ok(3)" || Fail[int]("no").String() != "failure(no)" {
		t.Fatalf("String: %s / %s", Ok(3), Fail[int]("no"))
	}

	defer func() {
		r := recover()
		if e, ok := r.(Error); !ok || e.Description() != "no" {
			t.Fatalf("Unwrap must panic with the error, got %v", r)
		}
	}()
	Fail[int]("no").Unwrap()
}
