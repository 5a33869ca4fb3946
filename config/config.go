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

// Package config reads mapper rules and the log level from configuration
// files.
//
// A YAML example:
//
//	log_level: info
//	fallback:
//	  http: 500
//	  grpc: INTERNAL
//	kinds:
//	  dynamic: {http: 422, grpc: INVALID_ARGUMENT}
//	origins:
//	  - {prefix: "github.com.lib.pq", http: 503, grpc: UNAVAILABLE}
//	sentinels:
//	  - {name: io.eof, http: 400, grpc: INVALID_ARGUMENT}
//
// gRPC codes are given by their canonical name or number.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/apis"
	"dirpx.dev/uerrors/log"
	"dirpx.dev/uerrors/mapper"
	"google.golang.org/grpc/codes"
	"gopkg.in/go-playground/validator.v9"
)

// ErrInvalidConfig is returned for a configuration that fails validation or
// refers to unknown kinds, codes or sentinels.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mapping is the configuration of a mapper and the library logger.
type Mapping struct {
	// LogLevel is the level of the library logger.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|log_level"`

	// NoDefaults drops the library default rules.
	NoDefaults bool `mapstructure:"no_defaults"`

	Fallback  Status             `mapstructure:"fallback"`
	Kinds     map[string]*Status `mapstructure:"kinds" validate:"dive,required"`
	Origins   []*OriginRule      `mapstructure:"origins" validate:"dive,required"`
	Sentinels []*SentinelRule    `mapstructure:"sentinels" validate:"dive,required"`
}

// Status is a pair of optional transport statuses. A zero HTTP or an empty
// GRPC leaves that transport untouched. Both must denote a failure: HTTP
// 400-599 and any gRPC code but OK.
type Status struct {
	HTTP int    `mapstructure:"http" validate:"isdefault|min=400,max=599"`
	GRPC string `mapstructure:"grpc" validate:"isdefault|grpc_code"`
}

// OriginRule maps an origin prefix.
type OriginRule struct {
	Prefix string `mapstructure:"prefix" validate:"required"`
	Status `mapstructure:",squash"`
}

// SentinelRule maps a registered sentinel error by name.
type SentinelRule struct {
	Name   string `mapstructure:"name" validate:"required,sentinel"`
	Status `mapstructure:",squash"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("grpc_code", func(fl validator.FieldLevel) bool {
		c, err := ParseCode(fl.Field().String())
		return err == nil && c != codes.OK
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
		_, err := log.ParseLevel(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("sentinel", func(fl validator.FieldLevel) bool {
		return Sentinel(fl.Field().String()) != nil
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the field constraints and the kind names.
func (m *Mapping) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	for name := range m.Kinds {
		if _, ok := uerrors.ParseKind(name); !ok {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, name)
		}
	}
	return nil
}

// Options translates the configuration into mapper options.
func (m *Mapping) Options() ([]mapper.Option, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	var opts []mapper.Option
	if m.NoDefaults {
		opts = append(opts, mapper.WithoutDefaults())
	}

	if m.Fallback.HTTP != 0 {
		opts = append(opts, mapper.WithHTTPFallback(m.Fallback.HTTP))
	}
	if m.Fallback.GRPC != "" {
		opts = append(opts, mapper.WithGRPCFallback(mustCode(m.Fallback.GRPC)))
	}

	for name, st := range m.Kinds {
		k, _ := uerrors.ParseKind(name)
		if st.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPDefault(k, st.HTTP))
		}
		if st.GRPC != "" {
			opts = append(opts, mapper.WithGRPCDefault(k, mustCode(st.GRPC)))
		}
	}

	for _, o := range m.Origins {
		if o.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPPrefix(o.Prefix, o.HTTP))
		}
		if o.GRPC != "" {
			opts = append(opts, mapper.WithGRPCPrefix(o.Prefix, mustCode(o.GRPC)))
		}
	}

	for _, s := range m.Sentinels {
		target := Sentinel(s.Name)
		if s.HTTP != 0 {
			opts = append(opts, mapper.WithHTTPSentinel(target, s.HTTP))
		}
		if s.GRPC != "" {
			opts = append(opts, mapper.WithGRPCSentinel(target, mustCode(s.GRPC)))
		}
	}
	return opts, nil
}

// Mapper builds the mapper described by the configuration.
func (m *Mapping) Mapper() (apis.Mapper, error) {
	opts, err := m.Options()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}

// SetupLog applies LogLevel to the library logger. An empty level is a
// no-op.
func (m *Mapping) SetupLog() error {
	if m.LogLevel == "" {
		return nil
	}
	lvl, err := log.ParseLevel(m.LogLevel)
	if err != nil {
		return err
	}
	return log.SetLevel(lvl)
}

// ParseCode parses a gRPC code given by canonical name ("NOT_FOUND", case
// insensitive) or by number.
func ParseCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		if n > uint64(codes.Unauthenticated) {
			return 0, fmt.Errorf("%w: grpc code %d out of range", ErrInvalidConfig, n)
		}
		return codes.Code(n), nil
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(strconv.Quote(strings.ToUpper(s)))); err != nil {
		return 0, fmt.Errorf("%w: grpc code %q", ErrInvalidConfig, s)
	}
	return c, nil
}

// mustCode is only called on validated values.
func mustCode(s string) codes.Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}
