package daemon

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"syscall"
	"time"

	procdashv1 "procdash/api/proto/procdash/v1"
	"procdash/internal/catalog"
	"procdash/internal/config"
	"procdash/internal/jobs"
	"procdash/internal/orchestrator"

	"google.golang.org/grpc"
)

// Server wraps the gRPC server and its UNIX listener.
type Server struct {
	grpc   *grpc.Server
	ln     net.Listener
	path   string
	ledger *jobs.Ledger
}

// Close stops the server, closes the job ledger and unlinks the socket.
func (s *Server) Close() error {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	var errs []error
	if s.ledger != nil {
		errs = append(errs, s.ledger.Close())
	}
	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	errs = append(errs, RemovePID())
	return errors.Join(errs...)
}

// NewBackend picks the orchestrator proxy when a base URL is configured and
// the local catalog otherwise. The catalog is nil in proxy mode.
func NewBackend(cfg *config.Config) (Backend, *catalog.Catalog, error) {
	if cfg.UsesOrchestrator() {
		client, err := orchestrator.New(cfg.Orchestrator.BaseURL, cfg.Orchestrator.Token, cfg.Orchestrator.Timeout)
		if err != nil {
			return nil, nil, err
		}
		return client, nil, nil
	}
	cat, err := catalog.New(cfg.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	return catalogBackend{cat: cat}, cat, nil
}

// StartDaemon binds the UNIX socket and serves the ProcDash gRPC service.
func StartDaemon(cfg *config.Config) (*Server, error) {
	if err := EnsureRuntimeDir(); err != nil {
		return nil, err
	}
	path := SocketPath()

	// If stale socket file exists but daemon is not running, remove it
	if _, err := os.Stat(path); err == nil && !IsRunning() {
		if err := os.Remove(path); err != nil {
			return nil, err
		}
	}

	backend, cat, err := NewBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.JobsDBPath), 0o700); err != nil {
		return nil, fmt.Errorf("create jobs dir: %w", err)
	}
	ledger, err := jobs.Open(cfg.JobsDBPath)
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		ledger.Close()
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		ln.Close()
		ledger.Close()
		return nil, err
	}

	gs := grpc.NewServer()
	procdashv1.RegisterProcDashServer(gs, newService(backend, cat, ledger))

	s := &Server{grpc: gs, ln: ln, path: path, ledger: ledger}
	if err := WritePID(os.Getpid()); err != nil {
		s.Close()
		return nil, err
	}
	if cat != nil {
		log.Printf("serving local catalog %s (%d processes)", cfg.CatalogPath, cat.Len())
	} else {
		log.Printf("proxying orchestrator %s", cfg.Orchestrator.BaseURL)
	}
	go func() {
		if err := gs.Serve(ln); err != nil {
			log.Printf("grpc server stopped: %v", err)
		}
	}()
	return s, nil
}

// StopRunningDaemon sends a termination signal to the currently running daemon if any.
func StopRunningDaemon(force bool) error {
	pid, err := RunningPID()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if IsRunning() {
				return fmt.Errorf("daemon is running but PID file %q is missing; stop it manually", PIDPath())
			}
			return nil
		}
		return fmt.Errorf("unable to read daemon PID: %w", err)
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := sendSignal(proc, syscall.SIGTERM); err != nil {
		return err
	}
	if waitForShutdown(3 * time.Second) {
		return nil
	}
	if !force {
		return fmt.Errorf("daemon process %d did not exit after SIGTERM", pid)
	}
	if err := sendSignal(proc, syscall.SIGKILL); err != nil {
		return err
	}
	if waitForShutdown(2 * time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func sendSignal(proc *os.Process, sig syscall.Signal) error {
	if err := proc.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			_ = RemovePID()
			return nil
		}
		return err
	}
	return nil
}

func waitForShutdown(timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if !IsRunning() {
			_ = RemovePID()
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(100 * time.Millisecond)
	}
}
