package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// CardID identifies a single card printing.
type CardID string

// Card is a card record as stored in the card database.
type Card struct {
	ID   CardID `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Set  string `json:"set"`
}

// UniqueCard is a card instance dealt into a pack. UniqueID differs for every
// copy, even of the same printing.
type UniqueCard struct {
	Card
	UniqueID string `json:"uniqueID"`
}

// Uniquer materializes a card and stamps it with a fresh UniqueID.
type Uniquer interface {
	Unique(id CardID) (UniqueCard, error)
}
