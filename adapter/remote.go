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
	"dirpx.dev/uerrors"
	errdetails "google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RemoteError is an error reported by a peer and decoded from a
// google.rpc.Status. It is always handed out inside a uerrors.Wrapped.
type RemoteError struct {
	Code    codes.Code
	Message string
	// Kind and Domain come from the first ErrorInfo detail, if any.
	Kind     string
	Domain   string
	Metadata map[string]string

	proto *spb.Status
}

func (e *RemoteError) Error() string { return e.Message }

// Detail implements apis.DetailedError.
func (e *RemoteError) Detail() string { return e.Metadata[MetaDetail] }

// Cause implements apis.CausedError. The peer only sends the description of
// the nearest cause, which comes back as a dynamic error.
func (e *RemoteError) Cause() error {
	if c := e.Metadata[MetaCause]; c != "" {
		return uerrors.FromString(c)
	}
	return nil
}

// Origin reports the origin the peer resolved, so that prefix rules keep
// working across process boundaries.
func (e *RemoteError) Origin() string {
	if e.Domain == DefaultDomain {
		return ""
	}
	return e.Domain
}

// GRPCStatus lets the original status flow through status.FromError, so a
// proxying server reports the peer's code unchanged.
func (e *RemoteError) GRPCStatus() *status.Status {
	return status.FromProto(e.proto)
}

// FromStatusProto decodes s into a wrapped unified error. An OK or nil
// status yields nil.
func FromStatusProto(s *spb.Status) uerrors.Error {
	if s == nil || codes.Code(s.GetCode()) == codes.OK {
		return nil
	}
	re := &RemoteError{
		Code:    codes.Code(s.GetCode()),
		Message: s.GetMessage(),
		proto:   s,
	}
	for _, d := range s.GetDetails() {
		var info errdetails.ErrorInfo
		if d.UnmarshalTo(&info) != nil {
			continue
		}
		re.Kind = info.GetReason()
		re.Domain = info.GetDomain()
		re.Metadata = info.GetMetadata()
		break
	}
	return uerrors.FromError(re)
}
