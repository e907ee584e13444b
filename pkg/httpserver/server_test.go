package httpserver_test

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/coursekit/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServerRunAndShutdown(t *testing.T) {
	addr := freeAddr(t)
	srv := httpserver.New(httpserver.Config{Addr: addr, ShutdownTimeout: time.Second}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
	}()

	var resp *http.Response
	var err error
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://%s/", addr))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerShutdownBeforeRun(t *testing.T) {
	srv := httpserver.New(httpserver.Config{}, nil)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
