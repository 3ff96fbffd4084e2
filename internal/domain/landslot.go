package domain

import (
	"fmt"
	"slices"
)

// SlotKind tells basic and special land slots apart.
type SlotKind string

const (
	SlotBasic   SlotKind = "basic"
	SlotSpecial SlotKind = "special"
)

// LandSlot picks the land added to each pack of a draft session.
//
// Setup must be called once with the session's common pool before the first
// Pick. Calls on one LandSlot must be serialized by the caller.
type LandSlot interface {
	Kind() SlotKind
	Setup(commons CardPool) error
	Pick() (UniqueCard, error)
}

// BasicLandSlot deals a random basic land of its set in every pack.
type BasicLandSlot struct {
	basics  []CardID
	rng     RNG
	uniquer Uniquer
}

// NewBasicLandSlot returns a slot over basics, which must not be empty.
func NewBasicLandSlot(basics []CardID, rng RNG, u Uniquer) *BasicLandSlot {
	return &BasicLandSlot{basics: basics, rng: rng, uniquer: u}
}

func (s *BasicLandSlot) Kind() SlotKind { return SlotBasic }

// Setup does nothing: basic lands are never taken from the common pool.
func (s *BasicLandSlot) Setup(CardPool) error { return nil }

func (s *BasicLandSlot) Pick() (UniqueCard, error) {
	return pickBasic(s.basics, s.rng, s.uniquer)
}

// SpecialLandSlot deals, with probability rate, one of the set's special
// lands (duals, gates, gain-lands) taken out of the common pool at Setup,
// and a basic land otherwise. Once the special lands run out every pick is
// a basic land.
type SpecialLandSlot struct {
	basics     []CardID
	candidates []CardID
	rate       float64

	rng     RNG
	uniquer Uniquer

	ready         bool
	distributable CardPool
}

// NewSpecialLandSlot returns a slot that has not been set up yet.
func NewSpecialLandSlot(basics, candidates []CardID, rate float64, rng RNG, u Uniquer) *SpecialLandSlot {
	return &SpecialLandSlot{
		basics:        basics,
		candidates:    candidates,
		rate:          rate,
		rng:           rng,
		uniquer:       u,
		distributable: CardPool{},
	}
}

func (s *SpecialLandSlot) Kind() SlotKind { return SlotSpecial }

// Setup moves every candidate found in commons, with its whole count, into
// the slot's own pool. The moved keys are deleted from commons; candidates
// with no copies left are dropped rather than moved.
func (s *SpecialLandSlot) Setup(commons CardPool) error {
	if s.ready {
		return ErrSlotAlreadySetUp
	}
	s.ready = true
	for _, id := range s.candidates {
		n, ok := commons[id]
		if !ok {
			continue
		}
		delete(commons, id)
		if n > 0 {
			s.distributable[id] = n
		}
	}
	return nil
}

// Pick falls back to basics when called before Setup.
func (s *SpecialLandSlot) Pick() (UniqueCard, error) {
	// Strict r < rate, not r <= rate: with r in [0, 1) this makes rate 0
	// never draw and rate 1 always draw.
	if s.rng.Float64() < s.rate && len(s.distributable) > 0 {
		id := RandomKey(s.rng, s.distributable)
		s.distributable.Remove(id)
		c, err := s.uniquer.Unique(id)
		if err != nil {
			return UniqueCard{}, fmt.Errorf("special land %s: %w", id, err)
		}
		return c, nil
	}
	return pickBasic(s.basics, s.rng, s.uniquer)
}

func (s *SpecialLandSlot) Rate() float64 { return s.rate }

func (s *SpecialLandSlot) Candidates() []CardID { return slices.Clone(s.candidates) }

// Remaining returns a copy of the special lands still to be dealt.
func (s *SpecialLandSlot) Remaining() CardPool { return s.distributable.Clone() }

func pickBasic(basics []CardID, rng RNG, u Uniquer) (UniqueCard, error) {
	id := RandomElement(rng, basics)
	c, err := u.Unique(id)
	if err != nil {
		return UniqueCard{}, fmt.Errorf("basic land %s: %w", id, err)
	}
	return c, nil
}
