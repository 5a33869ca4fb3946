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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func run(c *qt.C, args ...string) (code int, out, errOut string) {
	var o, e bytes.Buffer
	stdout, stderr = &o, &e
	c.Cleanup(func() { stdout, stderr = os.Stdout, os.Stderr })
	code = main1(args)
	return code, o.String(), e.String()
}

func TestRead(t *testing.T) {
	c := qt.New(t)
	dir := t.TempDir()
	text := filepath.Join(dir, "hello.txt")
	bin := filepath.Join(dir, "blob.bin")
	c.Assert(os.WriteFile(text, []byte("Hello, world\n"), 0o644), qt.IsNil)
	c.Assert(os.WriteFile(bin, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644), qt.IsNil)

	c.Run("text", func(c *qt.C) {
		code, out, _ := run(c, "read", text)
		c.Assert(code, qt.Equals, 0)
		c.Assert(out, qt.Equals, "Hello, world\n")
	})

	c.Run("missing", func(c *qt.C) {
		missing := filepath.Join(dir, "missing.txt")
		code, out, _ := run(c, "read", missing)
		c.Assert(code, qt.Equals, 1)
		c.Assert(out, qt.Equals, "error: open "+missing+": no such file or directory\n"+
			"caused by: no such file or directory\n"+
			"status: http=404 grpc=NotFound\n")
	})

	c.Run("binary", func(c *qt.C) {
		code, out, _ := run(c, "read", bin)
		c.Assert(code, qt.Equals, 1)
		c.Assert(out, qt.Equals, "error: cannot read binary file\nstatus: http=500 grpc=Internal\n")
	})

	c.Run("usage", func(c *qt.C) {
		code, _, errOut := run(c, "read")
		c.Assert(code, qt.Equals, 2)
		c.Assert(errOut, qt.Contains, "usage: uerrors")
	})
}

func TestExplain(t *testing.T) {
	c := qt.New(t)

	c.Run("sentinel", func(c *qt.C) {
		code, out, _ := run(c, "explain", "--sentinel", "fs.not_exist")
		c.Assert(code, qt.Equals, 0)
		c.Assert(out, qt.Contains, `http: source=sentinel rule="file does not exist" -> 404`)
		c.Assert(out, qt.Contains, `grpc: source=sentinel rule="file does not exist" -> NOT_FOUND(5)`)
	})

	c.Run("message", func(c *qt.C) {
		code, out, _ := run(c, "explain", "-m", "boom")
		c.Assert(code, qt.Equals, 0)
		c.Assert(out, qt.Contains, `error="boom" kind="dynamic" origin=""`)
		c.Assert(out, qt.Contains, `http: source=kind rule="dynamic" -> 500`)
	})

	c.Run("config", func(c *qt.C) {
		code, out, _ := run(c, "explain", "--config", filepath.Join("testdata", "mapping.yaml"), "--message", "bad input")
		c.Assert(code, qt.Equals, 0)
		c.Assert(out, qt.Contains, `http: source=kind rule="dynamic" -> 422`)
		c.Assert(out, qt.Contains, `-> INVALID_ARGUMENT(3)`)
	})

	c.Run("path", func(c *qt.C) {
		code, out, _ := run(c, "explain", "--path", filepath.Join(t.TempDir(), "nope"))
		c.Assert(code, qt.Equals, 0)
		c.Assert(out, qt.Contains, `origin="io.fs"`)
		c.Assert(out, qt.Contains, `-> 404`)
	})

	c.Run("unknown sentinel", func(c *qt.C) {
		code, _, errOut := run(c, "explain", "-s", "sql.no_rows")
		c.Assert(code, qt.Equals, 2)
		c.Assert(errOut, qt.Contains, `unknown sentinel "sql.no_rows"`)
	})

	c.Run("two targets", func(c *qt.C) {
		code, _, _ := run(c, "explain", "-m", "a", "-s", "io.eof")
		c.Assert(code, qt.Equals, 2)
	})

	c.Run("bad config", func(c *qt.C) {
		code, _, errOut := run(c, "explain", "-c", filepath.Join("testdata", "absent.yaml"), "-m", "x")
		c.Assert(code, qt.Equals, 2)
		c.Assert(errOut, qt.Contains, "uerrors: ")
	})
}

func TestUnknownCommand(t *testing.T) {
	c := qt.New(t)
	code, _, errOut := run(c, "frobnicate")
	c.Assert(code, qt.Equals, 2)
	c.Assert(errOut, qt.Contains, `unknown command "frobnicate"`)

	code, out, _ := run(c, "help")
	c.Assert(code, qt.Equals, 0)
	c.Assert(out, qt.Contains, "Commands:")
}
