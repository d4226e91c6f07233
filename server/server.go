// Package server implements the diagnostic HTTP server. It answers every GET request,
// on any path, with a static status page so an operator can confirm the machine is
// reachable. There is no application routing and no state shared between requests.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080
)

// shutdownGrace bounds how long Serve waits for the final response to flush on shutdown.
const shutdownGrace = 5 * time.Second

// Config holds the listen address for a diagnostic server. The values are passed in
// explicitly rather than read from package globals so tests can bind ephemeral ports.
type Config struct {
	Host string
	Port int
}

// Addr formats the config as a host:port dial string.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type Server struct {
	cfg Config
	l   hclog.Logger

	ln  net.Listener
	srv *http.Server
}

// New produces a Server ready to Start. An empty host falls back to DefaultHost. Port 0
// asks the kernel for an ephemeral port; the 8080 default is applied by the serve
// command's flags.
func New(cfg Config, l hclog.Logger) *Server {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if l == nil {
		l = hclog.Default()
	}
	s := &Server{cfg: cfg, l: l}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleStatus)
	s.srv = &http.Server{Handler: mux}
	return s
}

// Start binds the listener. A bind failure (port already in use, bad address) is
// returned immediately; the server never enters the listening state.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("unable to bind %s: %w", s.cfg.Addr(), err)
	}
	s.ln = ln
	s.l.Debug("listener bound", "addr", ln.Addr().String())
	return nil
}

// Addr reports the bound address. Only valid after Start.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Port reports the bound port, which differs from the configured port when port 0
// was requested.
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Serve answers requests until ctx is canceled, then shuts the listener down. It calls
// Start first if the caller has not.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		if err := s.Start(); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.Serve(s.ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// CandidateURLs lists addresses a human can try from a browser: the loopback names
// first, then any detected non-loopback IPv4 addresses. Only valid after Start.
func (s *Server) CandidateURLs() []string {
	port := s.Port()
	urls := []string{
		fmt.Sprintf("http://localhost:%d/", port),
		fmt.Sprintf("http://127.0.0.1:%d/", port),
	}
	for _, ip := range hostIPv4s(s.l) {
		urls = append(urls, fmt.Sprintf("http://%s:%d/", ip, port))
	}
	return urls
}

// handleStatus serves the diagnostic page for GET requests on every path. All embedded
// values are server-controlled. Other methods get the handler layer's usual "not
// implemented" answer; they are not part of this server's contract.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not implemented", http.StatusNotImplemented)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	wd, err := os.Getwd()
	if err != nil {
		s.l.Debug("working directory unavailable", "error", err)
	}

	info := collectHostInfo(s.l)
	data := pageData{
		RuntimeVersion: runtime.Version(),
		Host:           s.cfg.Host,
		Port:           s.Port(),
		Hostname:       info.Hostname,
		Platform:       info.Platform,
		Uptime:         info.Uptime,
		WorkingDir:     wd,
		RequestPath:    r.URL.Path,
		ServerTime:     time.Now().Format(time.RFC1123),
	}
	if err := statusPage.Execute(w, data); err != nil {
		s.l.Error("failed to render status page", "error", err)
	}
}
