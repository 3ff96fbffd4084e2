package domain

import (
	"fmt"
	"maps"
	"slices"
)

// SpecialSlotDef configures the special land slot of one set.
type SpecialSlotDef struct {
	Set        string
	Basics     []CardID
	Candidates []CardID
	Rate       float64
	// Note explains which card mechanics the numbers encode.
	Note string
}

// SlotInfo describes the land slot a set uses.
type SlotInfo struct {
	Set        string
	Kind       SlotKind
	Basics     []CardID
	Candidates []CardID
	Rate       float64
	Note       string
}

// Registry holds the land slot configuration of every known set. It is
// immutable once built and safe for concurrent use; slots are created per
// session by Slot.
type Registry struct {
	basics   map[string][]CardID
	specials map[string]SpecialSlotDef
}

// NewRegistry builds a registry from the basic lands of every known set and
// the special slot definitions. Every set needs at least one basic land and
// every rate must lie in [0, 1].
func NewRegistry(basics map[string][]CardID, specials []SpecialSlotDef) (*Registry, error) {
	r := &Registry{
		basics:   make(map[string][]CardID, len(basics)),
		specials: make(map[string]SpecialSlotDef, len(specials)),
	}
	for set, ids := range basics {
		if len(ids) == 0 {
			return nil, fmt.Errorf("set %s: %w", set, ErrNoBasicLands)
		}
		r.basics[set] = slices.Clone(ids)
	}
	for _, def := range specials {
		if len(def.Basics) == 0 {
			return nil, fmt.Errorf("special slot %s: %w", def.Set, ErrNoBasicLands)
		}
		if !(def.Rate >= 0 && def.Rate <= 1) {
			return nil, fmt.Errorf("special slot %s: %w (got %v)", def.Set, ErrInvalidRate, def.Rate)
		}
		if _, dup := r.specials[def.Set]; dup {
			return nil, fmt.Errorf("special slot %s: defined twice", def.Set)
		}
		def.Basics = slices.Clone(def.Basics)
		def.Candidates = slices.Clone(def.Candidates)
		r.specials[def.Set] = def
	}
	return r, nil
}

// Slot returns a new land slot for set, preferring its special slot over the
// basic one.
func (r *Registry) Slot(set string, rng RNG, u Uniquer) (LandSlot, error) {
	if def, ok := r.specials[set]; ok {
		return NewSpecialLandSlot(def.Basics, def.Candidates, def.Rate, rng, u), nil
	}
	if ids, ok := r.basics[set]; ok {
		return NewBasicLandSlot(ids, rng, u), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSet, set)
}

// Info describes the slot Slot would return for set.
func (r *Registry) Info(set string) (SlotInfo, error) {
	if def, ok := r.specials[set]; ok {
		return SlotInfo{
			Set:        set,
			Kind:       SlotSpecial,
			Basics:     slices.Clone(def.Basics),
			Candidates: slices.Clone(def.Candidates),
			Rate:       def.Rate,
			Note:       def.Note,
		}, nil
	}
	if ids, ok := r.basics[set]; ok {
		return SlotInfo{Set: set, Kind: SlotBasic, Basics: slices.Clone(ids)}, nil
	}
	return SlotInfo{}, fmt.Errorf("%w: %s", ErrUnknownSet, set)
}

// Sets returns every set code with a land slot, sorted.
func (r *Registry) Sets() []string {
	seen := maps.Clone(r.basics)
	for set, def := range r.specials {
		seen[set] = def.Basics
	}
	return slices.Sorted(maps.Keys(seen))
}
