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

// Package grpcx converts unified errors to and from gRPC statuses carrying a
// google.rpc.ErrorInfo detail.
package grpcx

import (
	"context"

	"dirpx.dev/uerrors"
	"dirpx.dev/uerrors/adapter"
	"dirpx.dev/uerrors/apis"
	"dirpx.dev/uerrors/log"
	"dirpx.dev/uerrors/mapper"
	errdetails "google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	gstatus "google.golang.org/grpc/status"
)

// CorrelationKey is the incoming metadata key read by the default MetaFn.
const CorrelationKey = "x-request-id"

// MetaFn extracts per-occurrence metadata from the call context and the
// unified error. It may return a zero apis.Meta.
type MetaFn func(ctx context.Context, e uerrors.Error) apis.Meta

// IncomingMeta is the default MetaFn: it takes the correlation ID from the
// x-request-id incoming metadata key.
func IncomingMeta(ctx context.Context, _ uerrors.Error) apis.Meta {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return apis.Meta{}
	}
	if v := md.Get(CorrelationKey); len(v) > 0 {
		return apis.Meta{CorrelationID: v[0]}
	}
	return apis.Meta{}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// handler errors into gRPC statuses with a google.rpc.ErrorInfo detail.
//
// Errors that already carry a gRPC status (status.Error values, or errors
// received from another gRPC peer) are returned unchanged. A nil mapper
// uses mapper.Default; a nil metaFn uses IncomingMeta.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	c := newConverter(m, metaFn)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, c.convert(ctx, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming counterpart of
// UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.StreamServerInterceptor {
	c := newConverter(m, metaFn)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if err := handler(srv, ss); err != nil {
			return c.convert(ss.Context(), info.FullMethod, err)
		}
		return nil
	}
}

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that turns
// failed calls into unified errors with FromError.
func UnaryClientInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
			return FromError(err)
		}
		return nil
	}
}

// FromError converts an error returned by a gRPC call into a unified error.
//
// Status errors become a uerrors.Wrapped around an *adapter.RemoteError:
// the description is the status message, the detail and origin come from
// the ErrorInfo detail when the peer sent one. Other errors are wrapped
// as-is.
func FromError(err error) uerrors.Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(uerrors.Error); ok {
		return e
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return uerrors.FromError(err)
	}
	return adapter.FromStatusProto(st.Proto())
}

// ExtractInfo pulls the google.rpc.ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ToStatus resolves err with m and builds the gRPC status that the server
// interceptors send. A nil err yields nil.
//
// The status of a non-nil err is never OK: a mapper resolving a failure to
// codes.OK is overridden with codes.Unknown, so the failure still reaches
// the client.
func ToStatus(m apis.Mapper, err error, meta apis.Meta) *gstatus.Status {
	e := uerrors.From(err)
	if e == nil {
		return nil
	}
	if m == nil {
		m = mapper.Default()
	}
	st := m.Status(e)
	if st.GRPC == gcodes.OK {
		log.Warningf("grpcx: mapper resolved %q to OK, sending %s", e.Description(), gcodes.Unknown)
		st.GRPC = gcodes.Unknown
	}
	return gstatus.FromProto(adapter.ToStatusProto(e, st, meta))
}

type converter struct {
	mapper apis.Mapper
	metaFn MetaFn
}

func newConverter(m apis.Mapper, metaFn MetaFn) converter {
	if m == nil {
		m = mapper.Default()
	}
	if metaFn == nil {
		metaFn = IncomingMeta
	}
	return converter{mapper: m, metaFn: metaFn}
}

func (c converter) convert(ctx context.Context, method string, err error) error {
	// already a status, possibly a remote error being proxied
	if _, ok := gstatus.FromError(err); ok {
		return err
	}
	e := uerrors.From(err)
	meta := adapter.WithOccurrence(c.metaFn(ctx, e))
	st := ToStatus(c.mapper, e, meta)
	if serverSide(st.Code()) {
		log.Errorf("grpcx: %s %s occurrence=%s: %+v", method, st.Code(), meta.OccurrenceID, e)
	} else {
		log.Debugf("grpcx: %s %s occurrence=%s: %+v", method, st.Code(), meta.OccurrenceID, e)
	}
	return st.Err()
}

// serverSide reports whether code signals a failure on the server rather
// than a problem with the call.
func serverSide(code gcodes.Code) bool {
	switch code {
	case gcodes.Unknown, gcodes.Internal, gcodes.Unavailable, gcodes.DataLoss, gcodes.Unimplemented:
		return true
	}
	return false
}
