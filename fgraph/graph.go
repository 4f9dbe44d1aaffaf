// SPDX-License-Identifier: MIT

package fgraph

import (
	"fmt"
	"log/slog"
)

// Graph is an incrementally built factor graph.
//
// vars maps names to variables; reg indexes every node by ID.
// Factors are recovered from reg in ID order, so no separate slice is kept.
type Graph struct {
	log      *slog.Logger
	capacity int

	reg      *registry
	vars     map[string]*Variable
	nFactors int
}

// NewGraph creates an empty Graph.
// Complexity: O(len(opts)) plus the optional capacity preallocation.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(g)
	}
	g.reg = newRegistry(g.capacity)
	g.vars = make(map[string]*Variable, g.capacity)

	return g
}

// AddVariable registers a new variable called name with the given domain
// labels and returns its ID. The domain slice is copied.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrDuplicateName if a variable with that name exists. The existing
//     variable and its incident factors are left untouched.
//
// Complexity: O(len(domain)).
func (g *Graph) AddVariable(name string, domain []string) (ID, error) {
	if name == "" {
		return 0, fmt.Errorf("AddVariable: %w", ErrEmptyName)
	}
	if _, exists := g.vars[name]; exists {
		return 0, fmt.Errorf("AddVariable(%q): %w", name, ErrDuplicateName)
	}

	dom := make([]string, len(domain))
	copy(dom, domain)

	id := g.reg.allocate()
	v := &Variable{id: id, name: name, domain: dom}
	if err := g.reg.register(id, variableItem(v)); err != nil {
		return 0, fmt.Errorf("AddVariable(%q): %w", name, err)
	}
	g.vars[name] = v

	g.log.Debug("variable added", "id", id, "name", name, "cardinality", len(dom))
	return id, nil
}

// AddFactor registers a factor over scope and wires it into every scope
// variable's incident list. The scope slice is copied.
//
// The whole scope is validated before anything is mutated: on error the
// graph is unchanged and no ID is consumed.
//
// Errors:
//   - ErrEmptyScope if scope is empty.
//   - ErrNilPotential if p is nil or a nil PotentialFunc.
//   - ErrDuplicateScope if a name appears twice in scope.
//   - ErrUnknownVariable for the first scope name with no variable.
//
// Complexity: O(len(scope)).
func (g *Graph) AddFactor(scope []string, p Potential) (ID, error) {
	if len(scope) == 0 {
		return 0, fmt.Errorf("AddFactor: %w", ErrEmptyScope)
	}
	if isNilPotential(p) {
		return 0, fmt.Errorf("AddFactor(%v): %w", scope, ErrNilPotential)
	}

	members := make([]*Variable, len(scope))
	seen := make(map[string]struct{}, len(scope))
	for i, name := range scope {
		if _, dup := seen[name]; dup {
			return 0, fmt.Errorf("AddFactor: scope[%d]=%q: %w", i, name, ErrDuplicateScope)
		}
		seen[name] = struct{}{}

		v, ok := g.vars[name]
		if !ok {
			return 0, fmt.Errorf("AddFactor: scope[%d]=%q: %w", i, name, ErrUnknownVariable)
		}
		members[i] = v
	}

	sc := make([]string, len(scope))
	copy(sc, scope)

	id := g.reg.allocate()
	f := &Factor{id: id, scope: sc, potential: p}
	if err := g.reg.register(id, factorItem(f)); err != nil {
		return 0, fmt.Errorf("AddFactor(%v): %w", scope, err)
	}
	for _, v := range members {
		v.factors = append(v.factors, id)
	}
	g.nFactors++

	g.log.Debug("factor added", "id", id, "scope", sc)
	return id, nil
}

// VariableByName returns the variable called name, if any.
func (g *Graph) VariableByName(name string) (*Variable, bool) {
	v, ok := g.vars[name]
	return v, ok
}

// ItemByID returns the node registered at id.
// An unknown id yields ErrInconsistent: IDs are only obtained from the graph
// itself, so an unresolvable one means it came from somewhere else.
func (g *Graph) ItemByID(id ID) (Item, error) {
	return g.reg.lookup(id)
}

// NeighborIDs returns the IDs adjacent to id in natural order: incident
// factors in insertion order for a variable, scope variables in scope order
// for a factor. Factor scopes are resolved by name at call time.
func (g *Graph) NeighborIDs(id ID) ([]ID, error) {
	it, err := g.reg.lookup(id)
	if err != nil {
		return nil, fmt.Errorf("NeighborIDs: %w", err)
	}

	switch it.Kind() {
	case KindVariable:
		v, _ := it.Variable()
		return v.FactorIDs(), nil
	case KindFactor:
		f, _ := it.Factor()
		out := make([]ID, len(f.scope))
		for i, name := range f.scope {
			v, ok := g.vars[name]
			if !ok {
				return nil, fmt.Errorf("NeighborIDs(%d): scope variable %q missing: %w", id, name, ErrInconsistent)
			}
			out[i] = v.id
		}
		return out, nil
	default:
		return nil, fmt.Errorf("NeighborIDs(%d): kind %s: %w", id, it.Kind(), ErrInconsistent)
	}
}

// IDs returns every allocated ID in ascending order: 0..Len()-1.
func (g *Graph) IDs() []ID {
	n := g.reg.nextID()
	out := make([]ID, n)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// Len returns the number of nodes (variables plus factors).
func (g *Graph) Len() int { return int(g.reg.nextID()) }

// NumVariables returns the number of variables.
func (g *Graph) NumVariables() int { return len(g.vars) }

// NumFactors returns the number of factors.
func (g *Graph) NumFactors() int { return g.nFactors }

// Variables returns all variables in ID order.
func (g *Graph) Variables() []*Variable {
	out := make([]*Variable, 0, len(g.vars))
	for _, it := range g.reg.items {
		if v, ok := it.Variable(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Factors returns all factors in ID order.
func (g *Graph) Factors() []*Factor {
	out := make([]*Factor, 0, g.nFactors)
	for _, it := range g.reg.items {
		if f, ok := it.Factor(); ok {
			out = append(out, f)
		}
	}
	return out
}
