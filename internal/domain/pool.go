package domain

import (
	"maps"
	"slices"
)

// CardPool counts the remaining copies of each card.
type CardPool map[CardID]int

// Remove takes one copy of id out of the pool, deleting the key when no
// copies remain.
func (p CardPool) Remove(id CardID) {
	n, ok := p[id]
	if !ok {
		return
	}
	if n <= 1 {
		delete(p, id)
		return
	}
	p[id] = n - 1
}

// Total returns the number of copies across all keys.
func (p CardPool) Total() int {
	total := 0
	for _, n := range p {
		total += n
	}
	return total
}

// Keys returns the pool's keys in sorted order.
func (p CardPool) Keys() []CardID {
	return slices.Sorted(maps.Keys(p))
}

// Clone returns an independent copy of the pool. Clone of a nil pool is an
// empty pool.
func (p CardPool) Clone() CardPool {
	out := make(CardPool, len(p))
	maps.Copy(out, p)
	return out
}

// RandomElement returns a uniformly chosen element of s. s must not be empty.
func RandomElement[T any](rng RNG, s []T) T {
	return s[rng.IntN(len(s))]
}

// RandomKey returns a key of p chosen uniformly over distinct keys,
// regardless of counts. Keys are sorted first so a seeded RNG gives
// reproducible draws. p must not be empty.
func RandomKey(rng RNG, p CardPool) CardID {
	return RandomElement(rng, p.Keys())
}
