// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/serializer"
)

// HTTPStatusFromCode maps a structured error code to an HTTP status.
func HTTPStatusFromCode(code exterrors.ErrorCode) int {
	switch code {
	case exterrors.ErrCodeInvalidRequest,
		exterrors.ErrCodeConfiguration,
		exterrors.ErrCodeOptionRequired,
		exterrors.ErrCodeUnknownOptions,
		exterrors.ErrCodeInvalidValue:
		return http.StatusBadRequest
	case exterrors.ErrCodeNotFound:
		return http.StatusNotFound
	case exterrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case exterrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case exterrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case exterrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case exterrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code exterrors.ErrorCode) bool {
	switch code {
	case exterrors.ErrCodeTimeout,
		exterrors.ErrCodeUnavailable,
		exterrors.ErrCodeRateLimitExceeded,
		exterrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes an ErrorResponse with the given status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code exterrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as an ErrorResponse. Structured errors keep
// their code, message and context; any other error is reported as INTERNAL
// with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	var se *exterrors.StructuredError
	if errors.As(err, &se) {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message,
			retryableFromCode(se.Code), details)
		return
	}

	details := mergeDetails(extraDetails, nil)
	if err != nil {
		details = mergeDetails(details, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, exterrors.ErrCodeInternal,
		fallbackMessage, true, details)
}
