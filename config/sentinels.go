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

package config

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"sync"
)

var (
	sentinelsMu sync.RWMutex
	sentinels   = map[string]error{
		"context.canceled":          context.Canceled,
		"context.deadline_exceeded": context.DeadlineExceeded,
		"fs.not_exist":              fs.ErrNotExist,
		"fs.exist":                  fs.ErrExist,
		"fs.permission":             fs.ErrPermission,
		"io.eof":                    io.EOF,
		"io.unexpected_eof":         io.ErrUnexpectedEOF,
	}
)

// RegisterSentinel makes target addressable by name in sentinel rules.
// Registering a name twice or a nil target is an error.
func RegisterSentinel(name string, target error) error {
	if name == "" || target == nil {
		return fmt.Errorf("%w: empty sentinel registration", ErrInvalidConfig)
	}
	sentinelsMu.Lock()
	defer sentinelsMu.Unlock()
	if _, ok := sentinels[name]; ok {
		return fmt.Errorf("%w: sentinel %q already registered", ErrInvalidConfig, name)
	}
	sentinels[name] = target
	return nil
}

// Sentinel returns the error registered under name, or nil.
func Sentinel(name string) error {
	sentinelsMu.RLock()
	defer sentinelsMu.RUnlock()
	return sentinels[name]
}
