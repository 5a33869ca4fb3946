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

package adapter

import (
	"strconv"
	"strings"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/apis"
	"dirpx.dev/uerrors/mapper"
	"github.com/google/uuid"
	errdetails "google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/types/known/anypb"
)

// DefaultDomain is the ErrorInfo domain used when the error has no origin.
const DefaultDomain = "uerrors"

// Metadata keys written into google.rpc.ErrorInfo.
const (
	MetaDetail        = "detail"
	MetaCause         = "cause"
	MetaHTTPStatus    = "http_status"
	MetaOccurrenceID  = "occurrence_id"
	MetaCorrelationID = "correlation_id"
)

// WithOccurrence returns meta with a fresh random OccurrenceID when it has
// none. Transports call it once per reported error so that the log line and
// the response carry the same identifier.
func WithOccurrence(meta apis.Meta) apis.Meta {
	if meta.OccurrenceID == "" {
		meta.OccurrenceID = uuid.NewString()
	}
	return meta
}

// ToView converts a unified error together with its resolved transport
// status into a portable ErrorView.
//
// No redaction is performed: the detail and the cause chain are exposed
// as-is. It is up to the caller to decide what reaches the wire.
func ToView(e uerrors.Error, st apis.Status, meta apis.Meta) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	meta = WithOccurrence(meta)
	v := apis.ErrorView{
		Kind:          e.Kind().String(),
		Description:   e.Description(),
		Origin:        mapper.OriginOf(e).String(),
		Causes:        uerrors.Descriptions(e),
		HTTPStatus:    st.HTTP,
		GRPCCode:      int(st.GRPC),
		OccurrenceID:  meta.OccurrenceID,
		CorrelationID: meta.CorrelationID,
	}
	if d, ok := e.Detail(); ok {
		v.Detail = d
	}
	return v
}

// ToStatusProto converts a unified error into a google.rpc.Status carrying
// a single google.rpc.ErrorInfo detail.
//
// The ErrorInfo reason is the upper-cased kind ("STATIC", "DYNAMIC",
// "WRAPPED"); the domain is the error origin, or DefaultDomain. The detail,
// the nearest cause, the HTTP status and the meta identifiers travel as
// metadata.
func ToStatusProto(e uerrors.Error, st apis.Status, meta apis.Meta) *spb.Status {
	if e == nil {
		return &spb.Status{}
	}
	v := ToView(e, st, meta)

	md := map[string]string{
		MetaOccurrenceID: v.OccurrenceID,
		MetaHTTPStatus:   strconv.Itoa(v.HTTPStatus),
	}
	if v.Detail != "" {
		md[MetaDetail] = v.Detail
	}
	if len(v.Causes) > 0 {
		md[MetaCause] = v.Causes[0]
	}
	if v.CorrelationID != "" {
		md[MetaCorrelationID] = v.CorrelationID
	}
	domain := v.Origin
	if domain == "" {
		domain = DefaultDomain
	}

	s := &spb.Status{
		Code:    int32(st.GRPC),
		Message: v.Description,
	}
	info, err := anypb.New(&errdetails.ErrorInfo{
		Reason:   strings.ToUpper(v.Kind),
		Domain:   domain,
		Metadata: md,
	})
	if err == nil {
		s.Details = append(s.Details, info)
	}
	return s
}
