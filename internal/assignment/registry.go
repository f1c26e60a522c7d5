package assignment

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"orderdesk/internal/errors"
)

// Registry hands out one Flow per operator session.
type Registry struct {
	mu    sync.RWMutex
	flows map[string]*Flow
}

func NewRegistry() *Registry {
	return &Registry{flows: make(map[string]*Flow)}
}

func (r *Registry) Open() string {
	id := uuid.New().String()

	r.mu.Lock()
	r.flows[id] = NewFlow()
	r.mu.Unlock()

	return id
}

func (r *Registry) Get(id string) (*Flow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.flows[id]
	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("session %s not found", id))
	}
	return f, nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flows)
}
