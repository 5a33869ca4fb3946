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

// Command uerrors reads files through unified errors and explains how a
// mapper resolves transport statuses.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/apis"
	"dirpx.dev/uerrors/config"
	"dirpx.dev/uerrors/log"
	"dirpx.dev/uerrors/mapper"
	"github.com/spf13/pflag"
)

const usage = `usage: uerrors <command> [flags]

Commands:
  read [--config file] <path>
        print a UTF-8 text file, or the unified error that prevented it
  explain [--config file] (--message text | --path p | --sentinel name)
        print how the mapper resolves the HTTP and gRPC status of an error

Flags common to all commands:
  -c, --config file   mapping configuration (yaml, json or toml)
  -v, --verbose       log at debug level to stderr
`

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

func main() {
	os.Exit(main1(os.Args[1:]))
}

func main1(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	switch args[0] {
	case "read":
		return runRead(args[1:])
	case "explain":
		return runExplain(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	}
	fmt.Fprintf(stderr, "uerrors: unknown command %q\n\n%s", args[0], usage)
	return 2
}

type common struct {
	config  string
	verbose bool
}

func newFlagSet(name string, c *common) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	fs.StringVarP(&c.config, "config", "c", "", "mapping configuration file")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log at debug level")
	return fs
}

// load sets up logging and builds the mapper.
func (c *common) load() (apis.Mapper, error) {
	if c.verbose {
		log.New(stderr, "uerrors ", 0)
		if err := log.SetLevel(log.LDEBUG); err != nil {
			return nil, err
		}
	}
	if c.config == "" {
		return mapper.Default(), nil
	}
	m, err := config.ReadFile(c.config)
	if err != nil {
		return nil, err
	}
	if !c.verbose {
		if err := m.SetupLog(); err != nil {
			return nil, err
		}
	}
	return m.Mapper()
}

func runRead(args []string) int {
	var c common
	fs := newFlagSet("read", &c)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	m, err := c.load()
	if err != nil {
		fmt.Fprintf(stderr, "uerrors: %v\n", err)
		return 2
	}

	text, e := readText(fs.Arg(0))
	if e != nil {
		report(stdout, m, e)
		return 1
	}
	fmt.Fprint(stdout, text)
	return 0
}

// readText returns the content of path as text. A read failure is
// propagated as is; content that is not UTF-8 is reported with a fixed
// message.
func readText(path string) (string, uerrors.Error) {
	data, err := uerrors.Try(os.ReadFile(path)).Get()
	if err != nil {
		return "", err
	}
	return uerrors.Try(decodeUTF8(data)).Or("cannot read binary file").Get()
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidUTF8
	}
	return string(data), nil
}

// report prints e with its detail, its cause chain and the status m
// resolves for it.
func report(w io.Writer, m apis.Mapper, e uerrors.Error) {
	fmt.Fprintf(w, "error: %s\n", e.Description())
	if d, ok := e.Detail(); ok {
		fmt.Fprintf(w, "detail: %s\n", d)
	}
	for _, c := range uerrors.Descriptions(e) {
		fmt.Fprintf(w, "caused by: %s\n", c)
	}
	st := m.Status(e)
	fmt.Fprintf(w, "status: http=%d grpc=%s\n", st.HTTP, st.GRPC)
}

func runExplain(args []string) int {
	var (
		c        common
		message  string
		path     string
		sentinel string
	)
	fs := newFlagSet("explain", &c)
	fs.StringVarP(&message, "message", "m", "", "explain a dynamic error with this message")
	fs.StringVarP(&path, "path", "p", "", "explain the error of stat(path)")
	fs.StringVarP(&sentinel, "sentinel", "s", "", "explain a registered sentinel (e.g. fs.not_exist)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	set := 0
	for _, s := range []string{message, path, sentinel} {
		if s != "" {
			set++
		}
	}
	if set != 1 || fs.NArg() != 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	m, err := c.load()
	if err != nil {
		fmt.Fprintf(stderr, "uerrors: %v\n", err)
		return 2
	}

	var target error
	switch {
	case message != "":
		target = uerrors.FromString(message)
	case path != "":
		_, target = os.Stat(path)
	default:
		if target = config.Sentinel(sentinel); target == nil {
			fmt.Fprintf(stderr, "uerrors: unknown sentinel %q\n", sentinel)
			return 2
		}
	}
	fmt.Fprintln(stdout, m.Explain(target))
	return 0
}
