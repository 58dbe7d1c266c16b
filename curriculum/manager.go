// Package curriculum keeps an editable, ordered copy of a course curriculum
// in sync with the curriculum API.
package curriculum

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
)

// Manager owns the curriculum of one course. All mutations go through it.
type Manager struct {
	courseID uint
	backend  Backend
	store    *Store
	confirm  Confirmer
	logger   *log.Logger
	validate *validator.Validate
	closed   atomic.Bool
}

// ManagerOption configures a Manager
type ManagerOption func(*Manager)

// WithConfirmer sets who approves deletes. Without one every delete is refused.
func WithConfirmer(c Confirmer) ManagerOption {
	return func(m *Manager) { m.confirm = c }
}

// WithLogger replaces the default logger
func WithLogger(l *log.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// NewManager returns a manager for courseID. Call Load to fetch the curriculum.
func NewManager(courseID uint, backend Backend, opts ...ManagerOption) *Manager {
	m := &Manager{
		courseID: courseID,
		backend:  backend,
		store:    newStore(),
		logger:   log.Default(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CourseID returns the course being edited
func (m *Manager) CourseID() uint { return m.courseID }

// Store gives read access to the loaded curriculum
func (m *Manager) Store() *Store { return m.store }

// Close stops the manager. Responses arriving afterwards are ignored.
func (m *Manager) Close() { m.closed.Store(true) }

func (m *Manager) isClosed() bool { return m.closed.Load() }

// confirmed asks the confirmer, refusing when there is none
func (m *Manager) confirmed(ctx context.Context, prompt string) bool {
	if m.confirm == nil {
		return false
	}
	return m.confirm.Confirm(ctx, prompt)
}
