package main

import (
	"bytes"
	"encoding/json"
	"filmorate/proj/internal/config"
	"filmorate/proj/internal/lib/logger"
	"filmorate/proj/internal/lib/ratelimit"
	"filmorate/proj/internal/services"
	"filmorate/proj/internal/storage/memory"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func NewTestApplication(limiter ratelimit.Limiter, t *testing.T) *Application {
	t.Helper()
	cfg := &config.Config{Storage: config.StorageMemory}
	return NewApplication(cfg, logger.Discard(), services.MemoryStorage(memory.New(true)), limiter)
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	return &testServer{t: t, handler: NewTestApplication(nil, t).routes()}
}

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	s.t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// decode fails the test unless the response has the expected status, then
// unmarshals its body into dst.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder, status int) T {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	var dst T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dst))
	return dst
}
