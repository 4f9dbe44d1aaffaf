// SPDX-License-Identifier: MIT

package fgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for factor graph construction and lookup.
var (
	// ErrEmptyName indicates that a variable was added with an empty name.
	ErrEmptyName = errors.New("fgraph: variable name is empty")

	// ErrDuplicateName indicates that a variable name is already registered.
	ErrDuplicateName = errors.New("fgraph: duplicate variable name")

	// ErrEmptyScope indicates that a factor was added over zero variables.
	ErrEmptyScope = errors.New("fgraph: factor scope is empty")

	// ErrDuplicateScope indicates that a factor scope names a variable twice.
	ErrDuplicateScope = errors.New("fgraph: variable repeated in factor scope")

	// ErrNilPotential indicates that a factor was added without a potential.
	ErrNilPotential = errors.New("fgraph: factor potential is nil")

	// ErrUnknownVariable indicates that a factor scope references a missing variable.
	ErrUnknownVariable = errors.New("fgraph: unknown variable")

	// ErrInconsistent indicates a broken internal invariant: an ID referenced
	// by an incidence list or scope has no committed item. It is never caused
	// by caller input when the Graph API is used as documented.
	ErrInconsistent = errors.New("fgraph: internal inconsistency")
)

// ID identifies a variable or factor. Variables and factors share one space.
type ID uint32

// Kind discriminates the two node variants of a factor graph.
type Kind uint8

const (
	// KindVariable marks an Item holding a *Variable.
	KindVariable Kind = iota + 1
	// KindFactor marks an Item holding a *Factor.
	KindFactor
)

// String returns "variable", "factor", or "invalid".
func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFactor:
		return "factor"
	default:
		return "invalid"
	}
}

// Variable is a named random variable with an ordered domain of value labels.
// The incident factor list grows as factors referencing the variable are added.
type Variable struct {
	id      ID
	name    string
	domain  []string
	factors []ID
}

// ID returns the variable's graph identifier.
func (v *Variable) ID() ID { return v.id }

// Name returns the variable's unique name.
func (v *Variable) Name() string { return v.name }

// Domain returns a copy of the admissible value labels, in declaration order.
func (v *Variable) Domain() []string {
	out := make([]string, len(v.domain))
	copy(out, v.domain)
	return out
}

// Cardinality returns the number of admissible values.
func (v *Variable) Cardinality() int { return len(v.domain) }

// FactorIDs returns a copy of the incident factor IDs in insertion order.
func (v *Variable) FactorIDs() []ID {
	out := make([]ID, len(v.factors))
	copy(out, v.factors)
	return out
}

// Factor is a scoring function defined over an ordered scope of variables.
type Factor struct {
	id        ID
	scope     []string
	potential Potential
}

// ID returns the factor's graph identifier.
func (f *Factor) ID() ID { return f.id }

// Scope returns a copy of the variable names this factor is defined over.
func (f *Factor) Scope() []string {
	out := make([]string, len(f.scope))
	copy(out, f.scope)
	return out
}

// Potential returns the stored potential. The graph never calls it.
func (f *Factor) Potential() Potential { return f.potential }

// Label returns the synthesized display name "factor<A,B,...>".
func (f *Factor) Label() string {
	return "factor<" + strings.Join(f.scope, ",") + ">"
}

// Item is the closed variant over Variable and Factor used wherever nodes are
// handled uniformly (traversal, rendering). The zero Item is invalid.
type Item struct {
	kind     Kind
	variable *Variable
	factor   *Factor
}

func variableItem(v *Variable) Item { return Item{kind: KindVariable, variable: v} }

func factorItem(f *Factor) Item { return Item{kind: KindFactor, factor: f} }

// Kind reports which variant the item holds.
func (it Item) Kind() Kind { return it.kind }

// IsFactor reports whether the item is a factor.
func (it Item) IsFactor() bool { return it.kind == KindFactor }

// IsValid reports whether the item holds a variant at all.
func (it Item) IsValid() bool {
	switch it.kind {
	case KindVariable:
		return it.variable != nil
	case KindFactor:
		return it.factor != nil
	default:
		return false
	}
}

// ID returns the identifier of the held node, or 0 for an invalid item.
func (it Item) ID() ID {
	switch it.kind {
	case KindVariable:
		return it.variable.id
	case KindFactor:
		return it.factor.id
	default:
		return 0
	}
}

// Name returns the variable name, or the factor's synthesized label.
func (it Item) Name() string {
	switch it.kind {
	case KindVariable:
		return it.variable.name
	case KindFactor:
		return it.factor.Label()
	default:
		return ""
	}
}

// Variable returns the held variable, if the item is one.
func (it Item) Variable() (*Variable, bool) {
	return it.variable, it.kind == KindVariable
}

// Factor returns the held factor, if the item is one.
func (it Item) Factor() (*Factor, bool) {
	return it.factor, it.kind == KindFactor
}

// String implements fmt.Stringer for debugging output.
func (it Item) String() string {
	if !it.IsValid() {
		return "Item{invalid}"
	}
	return fmt.Sprintf("%s#%d(%s)", it.kind, it.ID(), it.Name())
}

// Domain formats typed value labels into the string domain stored by a
// Variable. Callers that need the typed values keep their own mapping.
func Domain[T any](vals ...T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = fmt.Sprint(v)
	}
	return out
}
