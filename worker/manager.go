package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Worker is a long-running job that stops when ctx is done.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager runs a set of watchers until the context is cancelled.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start blocks until ctx is done and every worker has returned. Worker
// errors are logged as they happen and returned joined.
func (m *Manager) Start(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i, w := range m.workers {
		wg.Add(1)
		go func(i int, w Worker) {
			defer wg.Done()
			if err := w.Start(ctx); err != nil {
				slog.Error("worker stopped", "worker", fmt.Sprintf("%T", w), "index", i, "error", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(i, w)
	}
	<-ctx.Done()
	wg.Wait()
	return errors.Join(errs...)
}

// SyncWriter serializes writes from several workers onto one writer.
type SyncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSyncWriter(w io.Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

func (s *SyncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
