package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

const DefaultAddr = "127.0.0.1:54021"

func DefaultPIDPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = "."
	}
	p := filepath.Join(dir, "kanbord")
	_ = os.MkdirAll(p, 0o755)
	return filepath.Join(p, "server.pid")
}

// RunForeground serves the handler until SIGTERM/SIGINT, then drains
// in-flight requests.
func RunForeground(addr, pidPath string, handler http.Handler) error {
	if err := writePID(pidPath); err != nil {
		return err
	}
	defer removePID(pidPath)

	srv := &http.Server{Addr: addr, Handler: handler}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writePID(pidPath string) error {
	if _, err := os.Stat(pidPath); err == nil {
		// existing pid file
		return fmt.Errorf("pid file exists: %s", pidPath)
	}
	pid := os.Getpid()
	f, err := os.OpenFile(pidPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%d", pid)
	return err
}

func removePID(pidPath string) {
	_ = os.Remove(pidPath)
}

// DetachAttr returns platform-specific attributes to detach a process.
func DetachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}

func ReadPID(pidPath string) (int, error) {
	b, err := os.ReadFile(pidPath)
	if err != nil {
		return 0, err
	}
	var pid int
	if _, err := fmt.Sscanf(string(b), "%d", &pid); err != nil {
		return 0, err
	}
	return pid, nil
}
