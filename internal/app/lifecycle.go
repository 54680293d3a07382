package app

import (
	"fmt"
	"sync"

	"github.com/bft-labs/idn-disable/internal/domain"
	"github.com/bft-labs/idn-disable/internal/ports"
	"github.com/bft-labs/idn-disable/pkg/log"
)

// Lifecycle tracks the state of one disable job. The halt hook may run on a
// signal goroutine while Invoke is in flight, so access is locked.
type Lifecycle struct {
	mu     sync.RWMutex
	state  domain.State
	logger ports.Logger
}

// NewLifecycle creates a lifecycle in the Pending state.
func NewLifecycle(logger ports.Logger) *Lifecycle {
	return &Lifecycle{
		state:  domain.StatePending,
		logger: logger,
	}
}

// State returns the current state.
func (l *Lifecycle) State() domain.State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// TransitionTo moves to newState, or returns domain.ErrInvalidTransition.
func (l *Lifecycle) TransitionTo(newState domain.State, reason string) error {
	l.mu.Lock()
	oldState := l.state
	if !oldState.CanTransition(newState) {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, oldState, newState)
	}
	l.state = newState
	l.mu.Unlock()

	l.logger.Debug("state transition",
		log.String("from", oldState.String()),
		log.String("to", newState.String()),
		log.String("reason", reason),
	)
	return nil
}
