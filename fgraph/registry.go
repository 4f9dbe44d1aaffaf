// SPDX-License-Identifier: MIT

package fgraph

import "fmt"

// registry is the dense ID arena shared by variables and factors.
//
// Invariants:
//   - items[i].ID() == i for every committed slot.
//   - allocate is only called once validation has passed, so every
//     allocated ID is committed before the next allocation.
type registry struct {
	items []Item
}

func newRegistry(capacity int) *registry {
	return &registry{items: make([]Item, 0, capacity)}
}

// allocate returns the next unused ID. The slot stays invalid until register.
func (r *registry) allocate() ID {
	id := ID(len(r.items))
	r.items = append(r.items, Item{})
	return id
}

// register commits it at id. Registering an unallocated or already
// committed slot is an invariant violation.
func (r *registry) register(id ID, it Item) error {
	if int(id) >= len(r.items) {
		return fmt.Errorf("register(%d): id beyond next id %d: %w", id, len(r.items), ErrInconsistent)
	}
	if r.items[id].IsValid() {
		return fmt.Errorf("register(%d): slot already committed: %w", id, ErrInconsistent)
	}
	if !it.IsValid() || it.ID() != id {
		return fmt.Errorf("register(%d): item %s does not match slot: %w", id, it, ErrInconsistent)
	}
	r.items[id] = it
	return nil
}

// lookup returns the committed item at id.
func (r *registry) lookup(id ID) (Item, error) {
	if int(id) >= len(r.items) {
		return Item{}, fmt.Errorf("lookup(%d): id beyond next id %d: %w", id, len(r.items), ErrInconsistent)
	}
	it := r.items[id]
	if !it.IsValid() {
		return Item{}, fmt.Errorf("lookup(%d): slot never committed: %w", id, ErrInconsistent)
	}
	return it, nil
}

// nextID is the number of allocated IDs.
func (r *registry) nextID() ID { return ID(len(r.items)) }
