package http_test

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	adapthttp "github.com/jsamuelsen11/petitions-service/internal/adapters/http"
	"github.com/jsamuelsen11/petitions-service/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// startServer runs s in the background and waits until it listens.
func startServer(t *testing.T, s *adapthttp.Server) <-chan error {
	t.Helper()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case <-s.Ready():
	case err := <-errCh:
		t.Fatalf("Start() error = %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}
	return errCh
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		t.Fatalf("SplitHostPort(%q) error = %v", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		t.Fatalf("port %q: %v", portStr, err)
	}
	return host, port
}

func TestServer_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.ServerConfig
		want string
	}{
		{"ipv4", config.ServerConfig{Host: "127.0.0.1", Port: 9090}, "127.0.0.1:9090"},
		{"all interfaces", config.ServerConfig{Host: "0.0.0.0", Port: 8080}, "0.0.0.0:8080"},
		{"ipv6", config.ServerConfig{Host: "::1", Port: 8080}, "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := adapthttp.NewServer(tt.cfg, http.NotFoundHandler(), nil)
			if got := s.Addr(); got != tt.want {
				t.Errorf("Addr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "live")
	})
	cfg := config.ServerConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  30 * time.Second,
	}
	s := adapthttp.NewServer(cfg, handler, discardLogger())
	errCh := startServer(t, s)

	if s.Addr() == "127.0.0.1:0" {
		t.Fatal("Addr() still reports port 0 after listening")
	}

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://"+s.Addr()+"/health/live", http.NoBody)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "live" {
		t.Errorf("body = %q, want %q", body, "live")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_ShutdownWithoutDeadline(t *testing.T) {
	t.Parallel()

	s := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), discardLogger())
	errCh := startServer(t, s)

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("Start() error after shutdown = %v", err)
	}
}

func TestServer_StartFailsOnBusyPort(t *testing.T) {
	t.Parallel()

	first := adapthttp.NewServer(config.ServerConfig{Host: "127.0.0.1"}, http.NotFoundHandler(), discardLogger())
	errCh := startServer(t, first)
	t.Cleanup(func() {
		_ = first.Shutdown(context.Background())
		<-errCh
	})

	host, port := splitAddr(t, first.Addr())
	second := adapthttp.NewServer(config.ServerConfig{Host: host, Port: port}, http.NotFoundHandler(), discardLogger())
	if err := second.Start(); err == nil {
		t.Error("Start() on a busy port succeeded, want error")
	}
}
