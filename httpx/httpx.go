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

// Package httpx writes unified errors as HTTP responses and reads them back.
package httpx

import (
	"io"
	"net/http"
	"strings"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/adapter"
	"dirpx.dev/uerrors/apis"
	"dirpx.dev/uerrors/log"
	"dirpx.dev/uerrors/mapper"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
)

// Header names read and written by this package.
const (
	HeaderCorrelationID = "X-Request-Id"
	HeaderOccurrenceID  = "X-Occurrence-Id"
)

// maxErrorBody bounds how much of an error response DecodeResponse reads.
const maxErrorBody = 1 << 20

// Writer is a thin adapter that knows how to turn an error into an HTTP
// response using the provided status mapper. The zero Writer uses
// mapper.Default.
type Writer struct {
	Mapper apis.Mapper
}

func (w Writer) resolver() apis.Mapper {
	if w.Mapper == nil {
		return mapper.Default()
	}
	return w.Mapper
}

// Write resolves the status of err and writes it as a JSON-encoded
// google.rpc.Status. Nothing is written for a nil error. A resolved status
// outside 400-599 is replaced with 500.
//
// No automatic redaction or filtering is performed here: the detail and the
// nearest cause are exposed as-is. Higher-level handlers should apply
// policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta apis.Meta) {
	e := uerrors.From(err)
	if e == nil {
		return
	}
	meta = adapter.WithOccurrence(meta)
	st := w.resolver().Status(e)
	if st.HTTP < http.StatusBadRequest || st.HTTP > 599 {
		log.Warningf("httpx: mapper resolved %q to %d, sending %d", e.Description(), st.HTTP, http.StatusInternalServerError)
		st.HTTP = http.StatusInternalServerError
	}

	if st.HTTP >= http.StatusInternalServerError {
		log.Errorf("httpx: %d occurrence=%s: %+v", st.HTTP, meta.OccurrenceID, e)
	} else {
		log.Debugf("httpx: %d occurrence=%s: %+v", st.HTTP, meta.OccurrenceID, e)
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set(HeaderOccurrenceID, meta.OccurrenceID)
	rw.WriteHeader(st.HTTP)

	// protojson keeps the field names and the Any type URLs of the
	// google.rpc.Status wire form.
	b, merr := protojson.Marshal(adapter.ToStatusProto(e, st, meta))
	if merr != nil {
		log.Errorf("httpx: cannot marshal status for occurrence %s: %v", meta.OccurrenceID, merr)
		return
	}
	_, _ = rw.Write(b)
}

// HandlerFunc is an HTTP handler that reports failure by returning an error.
type HandlerFunc func(rw http.ResponseWriter, r *http.Request) error

// Handler adapts fn into an http.Handler. Errors returned by fn, and errors
// propagated inside it with uerrors.Must, uerrors.Check or uerrors.Raise,
// are written with w. The request's X-Request-Id header becomes the
// correlation ID.
func Handler(w Writer, fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		res := uerrors.Do(func() struct{} {
			uerrors.Check(fn(rw, r))
			return struct{}{}
		})
		if err := res.Err(); err != nil {
			w.Write(rw, err, apis.Meta{CorrelationID: r.Header.Get(HeaderCorrelationID)})
		}
	})
}

// DecodeResponse turns an error response written by Writer back into a
// unified error. Responses below 400 yield nil. Bodies that are not a
// google.rpc.Status become a dynamic error carrying the status line and the
// body text.
func DecodeResponse(resp *http.Response) uerrors.Error {
	if resp == nil || resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return uerrors.Wrap(err, uerrors.WithDetailf("reading %s error body", resp.Status))
	}
	var s spb.Status
	if err := protojson.Unmarshal(body, &s); err != nil || s.GetCode() == 0 {
		text := strings.TrimSpace(string(body))
		if text == "" {
			return uerrors.FromString(resp.Status)
		}
		return uerrors.Errorf("%s: %s", resp.Status, text)
	}
	return adapter.FromStatusProto(&s)
}
