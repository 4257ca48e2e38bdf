// Package collabmock holds function-backed fakes for the loan usecase's
// outbound collaborators (sequence, uploads, notifications).
package collabmock

import (
	"context"
	"io"
	"sync"

	"loan-origination-backend/internal/domain/notify"
)

type Sequence struct {
	NextFn func(ctx context.Context, name string) (int64, error)
}

func (m *Sequence) Next(ctx context.Context, name string) (int64, error) {
	if m.NextFn != nil {
		return m.NextFn(ctx, name)
	}
	return 1001, nil
}

type Uploader struct {
	PutFn func(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

func (m *Uploader) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error) {
	if m.PutFn != nil {
		return m.PutFn(ctx, key, contentType, r, size)
	}
	return "", context.Canceled
}

// Notifier records every event and returns Err.
type Notifier struct {
	Err error

	mu     sync.Mutex
	Events []notify.StatusChanged
}

func (m *Notifier) StatusChanged(_ context.Context, ev notify.StatusChanged) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, ev)
	return m.Err
}

func (m *Notifier) Received() []notify.StatusChanged {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.StatusChanged(nil), m.Events...)
}
