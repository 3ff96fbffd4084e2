package domain_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathangoncalves/MTGADraft/internal/domain"
)

// scriptedRNG replays fixed floats and ints, cycling when exhausted.
type scriptedRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRNG) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRNG) IntN(n int) int {
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

// stubUniquer numbers every card it hands out.
type stubUniquer struct{ n int }

func (u *stubUniquer) Unique(id domain.CardID) (domain.UniqueCard, error) {
	u.n++
	return domain.UniqueCard{Card: domain.Card{ID: id}, UniqueID: string(rune('a' + u.n%26))}, nil
}

func seeded() domain.RNG { return rand.New(rand.NewPCG(1, 2)) }

var (
	basics     = []domain.CardID{"plains", "island", "swamp", "mountain", "forest"}
	candidates = []domain.CardID{"A", "B", "C", "D"}
)

func TestBasicLandSlot_PickReturnsBasic(t *testing.T) {
	slot := domain.NewBasicLandSlot(basics, seeded(), &stubUniquer{})
	commons := domain.CardPool{"A": 2}

	require.NoError(t, slot.Setup(commons))
	assert.Equal(t, domain.CardPool{"A": 2}, commons, "basic setup must not touch the pool")

	for range 200 {
		c, err := slot.Pick()
		require.NoError(t, err)
		assert.Contains(t, basics, c.ID)
	}
}

func TestBasicLandSlot_UniqueMarkerPerPick(t *testing.T) {
	slot := domain.NewBasicLandSlot([]domain.CardID{"plains"}, seeded(), &stubUniquer{})
	a, err := slot.Pick()
	require.NoError(t, err)
	b, err := slot.Pick()
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.UniqueID, b.UniqueID)
}

func TestSpecialLandSlot_SetupMovesCandidates(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 0.5, seeded(), &stubUniquer{})
	commons := domain.CardPool{"A": 3, "B": 2, "X": 7}
	before := commons.Clone()

	require.NoError(t, slot.Setup(commons))

	assert.Equal(t, domain.CardPool{"A": 3, "B": 2}, slot.Remaining())
	assert.Equal(t, domain.CardPool{"X": 7}, commons)

	for id := range slot.Remaining() {
		assert.Contains(t, candidates, id)
		assert.Contains(t, before, id)
		assert.NotContains(t, commons, id)
	}
	assert.Equal(t, before.Total()-commons.Total(), slot.Remaining().Total())
}

func TestSpecialLandSlot_SetupTwice(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 1, seeded(), &stubUniquer{})
	require.NoError(t, slot.Setup(domain.CardPool{"A": 1}))

	commons := domain.CardPool{"B": 4}
	err := slot.Setup(commons)
	assert.ErrorIs(t, err, domain.ErrSlotAlreadySetUp)
	assert.Equal(t, domain.CardPool{"B": 4}, commons)
	assert.Equal(t, domain.CardPool{"A": 1}, slot.Remaining())
}

func TestSpecialLandSlot_RateOneDrainsPool(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 1, seeded(), &stubUniquer{})
	commons := domain.CardPool{"A": 3, "B": 2, "C": 1}
	require.NoError(t, slot.Setup(commons))

	drawn := domain.CardPool{}
	for range 6 {
		c, err := slot.Pick()
		require.NoError(t, err)
		require.Contains(t, candidates, c.ID)
		drawn[c.ID]++
	}
	assert.Equal(t, domain.CardPool{"A": 3, "B": 2, "C": 1}, drawn)
	assert.Empty(t, slot.Remaining())

	for range 50 {
		c, err := slot.Pick()
		require.NoError(t, err)
		assert.Contains(t, basics, c.ID)
	}
}

func TestSpecialLandSlot_ZeroCountCandidate(t *testing.T) {
	// Index 0 would land on "A" if it were kept in the pool.
	rng := &scriptedRNG{floats: []float64{0}, ints: []int{0}}
	slot := domain.NewSpecialLandSlot(basics, candidates, 1, rng, &stubUniquer{})
	commons := domain.CardPool{"A": 0, "B": 1, "X": 2}
	initial := commons.Clone()

	require.NoError(t, slot.Setup(commons))
	assert.Equal(t, domain.CardPool{"B": 1}, slot.Remaining())
	assert.Equal(t, domain.CardPool{"X": 2}, commons)

	specials := 0
	for range initial.Total() {
		c, err := slot.Pick()
		require.NoError(t, err)
		if slices.Contains(candidates, c.ID) {
			specials++
		}
	}
	assert.Equal(t, 1, specials, "rate 1 deals exactly the candidate copies")
	assert.Empty(t, slot.Remaining())

	c, err := slot.Pick()
	require.NoError(t, err)
	assert.Contains(t, basics, c.ID)
}

func TestSpecialLandSlot_RateZeroNeverDrawsCandidates(t *testing.T) {
	rng := &scriptedRNG{floats: []float64{0, 0.25, 0.999}, ints: []int{0, 1, 2, 3}}
	slot := domain.NewSpecialLandSlot(basics, candidates, 0, rng, &stubUniquer{})
	require.NoError(t, slot.Setup(domain.CardPool{"A": 5, "D": 5}))

	for range 100 {
		c, err := slot.Pick()
		require.NoError(t, err)
		assert.NotContains(t, candidates, c.ID)
	}
	assert.Equal(t, 10, slot.Remaining().Total())
}

func TestSpecialLandSlot_EmptyIntersection(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 1, seeded(), &stubUniquer{})
	commons := domain.CardPool{"X": 1, "Y": 2}
	require.NoError(t, slot.Setup(commons))

	assert.Empty(t, slot.Remaining())
	assert.Len(t, commons, 2)
	for range 20 {
		c, err := slot.Pick()
		require.NoError(t, err)
		assert.Contains(t, basics, c.ID)
	}
}

func TestSpecialLandSlot_PickBeforeSetup(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 1, seeded(), &stubUniquer{})
	c, err := slot.Pick()
	require.NoError(t, err)
	assert.Contains(t, basics, c.ID)
}

func TestSpecialLandSlot_ThresholdAndUniformKeys(t *testing.T) {
	// Keys are drawn over the sorted key list: [A B].
	rng := &scriptedRNG{
		floats: []float64{0.49, 0.5, 0.1},
		ints:   []int{1, 3, 0},
	}
	slot := domain.NewSpecialLandSlot(basics, candidates, 0.5, rng, &stubUniquer{})
	require.NoError(t, slot.Setup(domain.CardPool{"A": 1, "B": 9}))

	got := make([]domain.CardID, 0, 3)
	for range 3 {
		c, err := slot.Pick()
		require.NoError(t, err)
		got = append(got, c.ID)
	}
	assert.Equal(t, []domain.CardID{"B", "mountain", "A"}, got)
	assert.Equal(t, domain.CardPool{"B": 8}, slot.Remaining())
}

func TestSpecialLandSlot_M19Convergence(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 0.5, seeded(), &stubUniquer{})
	commons := domain.CardPool{"A": 3000, "B": 2000}
	require.NoError(t, slot.Setup(commons))
	assert.NotContains(t, commons, domain.CardID("A"))
	assert.NotContains(t, commons, domain.CardID("B"))

	const picks = 4000
	special := 0
	for range picks {
		c, err := slot.Pick()
		require.NoError(t, err)
		if slices.Contains(candidates, c.ID) {
			special++
		}
	}
	assert.InDelta(t, 0.5, float64(special)/picks, 0.05)
	assert.Equal(t, 5000-special, slot.Remaining().Total())
}

type failingUniquer struct{}

func (failingUniquer) Unique(domain.CardID) (domain.UniqueCard, error) {
	return domain.UniqueCard{}, domain.ErrCardNotFound
}

func TestSpecialLandSlot_UniquerError(t *testing.T) {
	slot := domain.NewSpecialLandSlot(basics, candidates, 1, seeded(), failingUniquer{})
	require.NoError(t, slot.Setup(domain.CardPool{"A": 1}))
	_, err := slot.Pick()
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}
