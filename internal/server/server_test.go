package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avoronin/go-item-vault/internal/config"
	"github.com/avoronin/go-item-vault/internal/handler"
	"github.com/avoronin/go-item-vault/internal/logger"
)

func TestNewServer_NoAddressConfigured(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestHTTPServer_ListenErrorIsReturned(t *testing.T) {
	// occupy a port so that ListenAndServe fails immediately
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	h := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: listener.Addr().String()}, logger.Nop())

	require.Error(t, h.RunServer())
}

func TestHTTPServer_GracefulShutdownIsNotAnError(t *testing.T) {
	h := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- h.RunServer() }()

	time.Sleep(50 * time.Millisecond)
	h.Shutdown()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
