package serializer

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/extensible/pkg/errors"
)

type testData struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusCreated, testData{Message: "success", Code: 201})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result testData
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result.Message != "success" || result.Code != 201 {
		t.Errorf("unexpected body: %+v", result)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondJSON(w, http.StatusOK, map[string]float64{"bad": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHttpReader_Read(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte(r.UserAgent()))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		case "/boom":
			w.WriteHeader(http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("default user agent", func(t *testing.T) {
		data, err := NewHttpReader().Read(srv.URL + "/ok")
		require.NoError(t, err)
		assert.Equal(t, HttpReaderUserAgent, string(data))
	})

	t.Run("custom user agent", func(t *testing.T) {
		data, err := NewHttpReader(WithUserAgent("extctl/test")).Read(srv.URL + "/ok")
		require.NoError(t, err)
		assert.Equal(t, "extctl/test", string(data))
	})

	tests := []struct {
		name   string
		reader *HttpReader
		url    string
		code   errors.ErrorCode
	}{
		{name: "empty url", reader: NewHttpReader(), url: "", code: errors.ErrCodeInvalidRequest},
		{name: "not found", reader: NewHttpReader(), url: srv.URL + "/missing", code: errors.ErrCodeNotFound},
		{name: "server error", reader: NewHttpReader(), url: srv.URL + "/boom", code: errors.ErrCodeUnavailable},
		{name: "too large", reader: NewHttpReader(WithMaxBytes(16)), url: srv.URL + "/big", code: errors.ErrCodeInvalidValue},
		{name: "nil client", reader: &HttpReader{}, url: srv.URL + "/ok", code: errors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.reader.ReadWithContext(context.Background(), tt.url)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "expected %s, got %v", tt.code, err)
		})
	}
}

func TestHttpReader_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHttpReader().ReadWithContext(ctx, srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeTimeout))
}

func TestNewHttpReader_Options(t *testing.T) {
	custom := &http.Client{Timeout: time.Second}
	r := NewHttpReader(WithClient(custom), WithTotalTimeout(time.Minute), WithMaxBytes(-1), WithInsecureSkipVerify(true))

	assert.Same(t, custom, r.Client)
	assert.Equal(t, time.Minute, r.TotalTimeout)
	assert.Equal(t, int64(HttpReaderDefaultMaxBytes), r.MaxBytes)
	assert.True(t, r.InsecureSkipVerify)
}
