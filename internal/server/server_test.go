package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/handler"
	"github.com/MKhiriev/work-notes/internal/logger"
)

func newTestServer(address string) *server {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return &server{
		httpServer: newHTTPServer(router, config.Server{HTTPAddress: address}, logger.Nop()),
		logger:     logger.Nop(),
	}
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: "127.0.0.1:5000"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:5000", RequestTimeout: 30 * time.Second}, logger.Nop())

	assert.Equal(t, "127.0.0.1:5000", h.server.Addr)
	assert.Equal(t, 30*time.Second, h.server.ReadTimeout)
	assert.Equal(t, 35*time.Second, h.server.WriteTimeout)
	assert.Equal(t, readHeaderTimeout, h.server.ReadHeaderTimeout)

	noLimit := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:5000"}, logger.Nop())
	assert.Zero(t, noLimit.server.WriteTimeout)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := newTestServer("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- srv.run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRun_ListenError(t *testing.T) {
	srv := newTestServer("127.0.0.1:99999")

	err := srv.run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
}
