package agent

import (
	"math/rand"

	"github.com/hupe1980/mesa/core"
)

// Base bundles the identity every agent needs: a unique id and a reference
// to the owning model. Embed it in concrete agent implementations and supply
// a Step method to satisfy the core.Agent interface.
type Base struct {
	id    int
	model core.Model
}

// NewBase constructs a Base bound to the given model. The unique id must not
// collide with any other agent registered on the same scheduler.
func NewBase(model core.Model, id int) Base {
	return Base{id: id, model: model}
}

// UniqueID returns the agent's identifier within its model.
func (b *Base) UniqueID() int { return b.id }

// Model returns the owning model.
func (b *Base) Model() core.Model { return b.model }

// RNG is a convenience accessor for the owning model's random source.
func (b *Base) RNG() *rand.Rand { return b.model.RNG() }
