package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/desertthunder/genie/internal/shared"
)

func TestServer(t *testing.T) {
	t.Run("Serves Until Cancelled", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok"))
		})
		srv := NewServer("127.0.0.1:0", handler, time.Second, shared.NewLogger(io.Discard))

		if err := srv.Listen(); err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Start(ctx) }()

		resp, err := http.Get("http://" + srv.Addr() + "/")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != "ok" {
			t.Errorf("expected ok, got %q", body)
		}

		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("expected clean shutdown, got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("Listen Error", func(t *testing.T) {
		first := NewServer("127.0.0.1:0", http.NotFoundHandler(), time.Second, shared.NewLogger(io.Discard))
		if err := first.Listen(); err != nil {
			t.Fatalf("failed to listen: %v", err)
		}
		defer first.listener.Close()

		second := NewServer(first.Addr(), http.NotFoundHandler(), time.Second, shared.NewLogger(io.Discard))
		if err := second.Start(context.Background()); err == nil {
			t.Error("expected error binding an address in use")
		}
	})

	t.Run("Default Grace", func(t *testing.T) {
		srv := NewServer(":0", http.NotFoundHandler(), 0, nil)
		if srv.grace != defaultShutdownGrace {
			t.Errorf("expected default grace %v, got %v", defaultShutdownGrace, srv.grace)
		}
	})
}
