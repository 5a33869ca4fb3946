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
	"sync"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/log"
	"github.com/spf13/viper"
)

var (
	defaultOnce    sync.Once
	defaultMapping *Mapping
)

// ReadFile reads and validates the configuration file at path. The format
// follows the file extension (yaml, json, toml).
func ReadFile(path string) (*Mapping, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return read(v)
}

// ReadNamed looks up a configuration file called name (without extension)
// in paths, or in "." and "configs" when no path is given.
func ReadNamed(name string, paths ...string) (*Mapping, error) {
	v := viper.New()
	v.SetConfigName(name)
	if len(paths) == 0 {
		paths = []string{".", "configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	return read(v)
}

// Default returns the configuration made of default values only.
func Default() *Mapping {
	defaultOnce.Do(func() {
		v := viper.New()
		setDefaults(v)
		m := &Mapping{}
		if err := v.Unmarshal(m); err != nil {
			log.Debugf("Unmarshaling default mapping failed: %v", err)
			panic(err)
		}
		defaultMapping = m
	})
	return defaultMapping
}

func read(v *viper.Viper) (*Mapping, error) {
	setDefaults(v)
	m, err := uerrors.Do(func() *Mapping {
		uerrors.Check(v.ReadInConfig())
		m := &Mapping{}
		if err := v.Unmarshal(m); err != nil {
			log.Debugf("Unmarshaling mapping config failed: %v", err)
			uerrors.Raise(err)
		}
		uerrors.Check(m.Validate())
		return m
	}).Get()
	if err != nil {
		return nil, err
	}
	log.Debugf("config: loaded %s", v.ConfigFileUsed())
	return m, nil
}

func setDefaults(v *viper.Viper) {
	keys := map[string]interface{}{
		"log_level":   "warning",
		"no_defaults": false,
	}
	for k, value := range keys {
		v.SetDefault(k, value)
	}
}
