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
package serializer

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/extensible/pkg/defaults"
	"github.com/NVIDIA/extensible/pkg/errors"
)

// RespondJSON writes a JSON response with the given status code and data.
// The body is encoded before headers are written so a failed encoding never
// produces a partial response.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}

const (
	HttpReaderUserAgent = "extensible-serializer/1.0"

	// HttpReaderDefaultMaxBytes caps remote option documents.
	HttpReaderDefaultMaxBytes = 4 << 20
)

var (
	HttpReaderDefaultTimeout               = defaults.HTTPClientTimeout
	HttpReaderDefaultKeepAlive             = defaults.HTTPKeepAlive
	HttpReaderDefaultConnectTimeout        = defaults.HTTPConnectTimeout
	HttpReaderDefaultTLSHandshakeTimeout   = defaults.HTTPTLSHandshakeTimeout
	HttpReaderDefaultResponseHeaderTimeout = defaults.HTTPResponseHeaderTimeout
	HttpReaderDefaultIdleConnTimeout       = defaults.HTTPIdleConnTimeout
)

// HttpReaderOption defines a configuration option for HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches option documents over HTTP.
type HttpReader struct {
	UserAgent          string
	TotalTimeout       time.Duration
	MaxBytes           int64
	InsecureSkipVerify bool
	Client             *http.Client
}

func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		r.TotalTimeout = timeout
	}
}

// WithMaxBytes limits the size of a fetched document. Non-positive values
// keep the default.
func WithMaxBytes(n int64) HttpReaderOption {
	return func(r *HttpReader) {
		if n > 0 {
			r.MaxBytes = n
		}
	}
}

func WithInsecureSkipVerify(skip bool) HttpReaderOption {
	return func(r *HttpReader) {
		r.InsecureSkipVerify = skip
	}
}

// WithClient replaces the HTTP client. Transport settings of a custom
// client are left untouched.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		r.Client = client
	}
}

// NewHttpReader creates a new HttpReader with the specified options.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent:    HttpReaderUserAgent,
		TotalTimeout: HttpReaderDefaultTimeout,
		MaxBytes:     HttpReaderDefaultMaxBytes,
	}

	for _, opt := range options {
		opt(r)
	}

	if r.Client == nil {
		r.Client = &http.Client{
			Timeout:   r.TotalTimeout,
			Transport: newDefaultHTTPTransport(r.InsecureSkipVerify),
		}
	}
	return r
}

func newDefaultHTTPTransport(insecure bool) *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   HttpReaderDefaultConnectTimeout,
			KeepAlive: HttpReaderDefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   HttpReaderDefaultTLSHandshakeTimeout,
		ResponseHeaderTimeout: HttpReaderDefaultResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       HttpReaderDefaultIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: insecure, //nolint:gosec // opt-in for self-signed config hosts
		},
	}
}

// Read fetches data from the specified URL and returns it as a byte slice.
func (r *HttpReader) Read(url string) ([]byte, error) {
	return r.ReadWithContext(context.Background(), url)
}

// ReadWithContext fetches data from the specified URL bound to ctx.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "url is empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if r.Client == nil {
		return nil, errors.New(errors.ErrCodeInternal, "http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to create request for url %s", url), err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout,
				fmt.Sprintf("http request canceled for url %s", url), err)
		}
		return nil, errors.Wrap(errors.ErrCodeUnavailable,
			fmt.Sprintf("http request failed for url %s", url), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound,
			fmt.Sprintf("failed to fetch data: status %s", resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeUnavailable,
			fmt.Sprintf("failed to fetch data: status %s", resp.Status))
	}

	limit := r.MaxBytes
	if limit <= 0 {
		limit = HttpReaderDefaultMaxBytes
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read response body", err)
	}
	if int64(len(data)) > limit {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidValue,
			"remote document exceeds size limit", map[string]any{"limit": limit})
	}
	return data, nil
}
