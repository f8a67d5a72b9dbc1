package state

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/five82/notes/internal/notestore"
)

// Machine drives Reduce synchronously: each Dispatch performs every store
// call the event leads to before returning. It is meant for one caller at a
// time; the TUI uses Reduce and Perform directly instead.
type Machine struct {
	store notestore.Store
	state State
	log   zerolog.Logger
}

// NewMachine returns a Machine in the startup state.
func NewMachine(store notestore.Store, logger zerolog.Logger) *Machine {
	return &Machine{
		store: store,
		state: New(),
		log:   logger.With().Str("component", "engine").Logger(),
	}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Dispatch applies ev and runs the resulting store calls to completion.
func (m *Machine) Dispatch(ctx context.Context, ev Event) State {
	next, eff := Reduce(m.state, ev)
	m.state = next
	m.log.Debug().Str("event", eventName(ev)).Str("mode", next.Mode.String()).Bool("loading", next.Loading).Msg("dispatch")

	for eff != nil {
		result := Perform(ctx, m.store, eff)
		m.state, eff = Reduce(m.state, result)
		m.log.Debug().Str("event", eventName(result)).Str("mode", m.state.Mode.String()).Str("err", m.state.Err).Msg("result")
	}
	return m.state
}

func eventName(ev Event) string {
	return fmt.Sprintf("%T", ev)
}
