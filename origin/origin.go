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

package origin

import (
	"bytes"
	"encoding"
	"errors"
	"reflect"
	"regexp"
	"strings"
)

// Origin is the canonical, validated identifier of the package a foreign
// error type was declared in.
//
// It is the import path of that package, normalized into dot-separated
// segments so that prefix rules can match on it.
//
// Example origins:
//
//   - "io.fs"                              (*fs.PathError)
//   - "encoding.json"                      (*json.SyntaxError)
//   - "net.url"                            (*url.Error)
//   - "errors"                             (errors.New)
//   - "google.golang.org.grpc.internal.status" (gRPC status errors)
type Origin string

// MinLength and MaxLength define the allowed length range for a canonical
// origin string.
const (
	// MinLength is the minimum length for a non-empty origin. Two characters
	// admit short standard library packages such as "io" or "os".
	MinLength = 2

	// MaxLength is the maximum length for a valid origin. Module paths can
	// be long, so this is more generous than a hand-written identifier.
	MaxLength = 192
)

const (
	// originFmt is the canonical regular expression used to validate origins.
	//
	// We accept 1 to 12 segments, dot-separated, each segment:
	//
	//   - starts with a lowercase ASCII letter [a-z]
	//   - continues with lowercase letters, digits, or underscore [a-z0-9_]*
	//
	// Examples that match:
	//
	//	"io.fs"
	//	"github.com.jackc.pgx.v5.pgconn"
	//
	// Examples that DO NOT match:
	//
	//	"IO.fs"        (uppercase)
	//	"io/fs"        (slash, fixed by Normalize)
	//	"9fans.net.go" (digit first)
	//
	// NOTE: empty string ("") is treated separately as "no origin" and does
	// not go through this regexp.
	originFmt = `^[a-z][a-z0-9_]*(\.[a-z][a-z0-9_]*){0,11}$`
)

var (
	// originRe is the compiled regexp for the above pattern.
	originRe = regexp.MustCompile(originFmt)
)

var (
	// ErrInvalidFormat is returned when an origin does not conform to the
	// expected format.
	ErrInvalidFormat = errors.New("origin: invalid format")
	// ErrInvalidLength is returned when an origin is too short or too long.
	ErrInvalidLength = errors.New("origin: invalid length")
)

// Ensure Origin implements encoding.TextMarshaler / encoding.TextUnmarshaler.
var (
	_ encoding.TextMarshaler   = (*Origin)(nil)
	_ encoding.TextUnmarshaler = (*Origin)(nil)
)

// Empty is the zero-value origin: "unknown" or "not a foreign error".
var Empty Origin = ""

// Normalize brings an import path or a hand-written prefix closer to the
// canonical origin form:
//
//   - trim spaces
//   - lower-case
//   - convert "/" to "." (import paths)
//   - replace "-" with "_" (module names such as "go-cmp")
//
// It does NOT guarantee validity. Callers should still call Parse/Validate.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "/", ".")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Parse normalizes and validates s. The empty string yields Empty without
// error.
func Parse(s string) (Origin, error) {
	s = Normalize(s)
	if s == "" {
		return Empty, nil
	}
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Origin(s), nil
}

// MustParse is the panic-on-error variant of Parse. Unlike Parse it rejects
// the empty string.
func MustParse(s string) Origin {
	o, err := Parse(s)
	if err != nil {
		panic(err)
	}
	if o == Empty {
		panic("origin: empty origin in MustParse")
	}
	return o
}

// Validate checks whether o is in canonical form. Empty is valid.
func Validate(o Origin) error {
	if o == Empty {
		return nil
	}
	return validate(string(o))
}

// Of returns the origin of err's concrete type.
//
// Errors exposing Inner() error (the unified wrapped error) are looked
// through once, so the origin is that of the foreign error rather than of
// the wrapper. An error that reports its own origin through Origin() string
// (errors decoded from a remote peer) wins over its Go type. Types without a
// package path, or whose path cannot be normalized into a valid origin,
// yield Empty.
func Of(err error) Origin {
	if err == nil {
		return Empty
	}
	if in, ok := err.(interface{ Inner() error }); ok {
		if inner := in.Inner(); inner != nil {
			err = inner
		}
	}
	if r, ok := err.(interface{ Origin() string }); ok {
		if o, perr := Parse(r.Origin()); perr == nil && o != Empty {
			return o
		}
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	o, perr := Parse(t.PkgPath())
	if perr != nil {
		return Empty
	}
	return o
}

// String returns the canonical string representation of the origin.
func (o Origin) String() string {
	return string(o)
}

// Segments splits the origin on ".". Empty yields nil.
func (o Origin) Segments() []string {
	if o == Empty {
		return nil
	}
	return strings.Split(string(o), ".")
}

// MarshalText implements encoding.TextMarshaler.
func (o Origin) MarshalText() ([]byte, error) {
	if err := Validate(o); err != nil {
		return nil, err
	}
	return []byte(o), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning. An empty
// or whitespace-only input produces Empty.
func (o *Origin) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(bytes.TrimSpace(text)))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// validate checks length and format.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrInvalidLength
	}
	if !originRe.MatchString(s) {
		return ErrInvalidFormat
	}
	return nil
}
