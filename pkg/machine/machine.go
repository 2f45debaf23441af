package machine

import (
	"errors"
	"fmt"
)

type State interface {
	~string
}

// Allowable maps a from state to the states it may move to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine tracks the current state of something and the transitions it allows
type StateMachine[S State] struct {
	current     S
	transitions []Allowable[S]
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](current S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{current: current, transitions: transitions}
}

// From starts a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// State returns the current state
func (m *StateMachine[S]) State() S {
	return m.current
}

// ToState determines if the current state can transition to s
func (m *StateMachine[S]) ToState(s S) error {
	for _, transition := range m.transitions {
		if transition.from != m.current {
			continue
		}

		for _, to := range transition.to {
			if to == s {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.current, s)
}

// Transition moves the machine to s if that is allowed from the current state
func (m *StateMachine[S]) Transition(s S) error {
	if err := m.ToState(s); err != nil {
		return err
	}

	m.current = s
	return nil
}
