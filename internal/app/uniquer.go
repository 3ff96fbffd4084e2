package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathangoncalves/MTGADraft/internal/domain"
	"github.com/jonathangoncalves/MTGADraft/internal/ports"
)

// CardUniquer materializes cards from a CardStore and stamps each copy with
// a random UUID.
type CardUniquer struct {
	ctx   context.Context
	cards ports.CardStore
}

// NewCardUniquer returns a uniquer whose lookups run under ctx.
func NewCardUniquer(ctx context.Context, cards ports.CardStore) CardUniquer {
	return CardUniquer{ctx: ctx, cards: cards}
}

func (u CardUniquer) Unique(id domain.CardID) (domain.UniqueCard, error) {
	c, err := u.cards.GetCard(u.ctx, id)
	if err != nil {
		return domain.UniqueCard{}, err
	}
	return domain.UniqueCard{Card: c, UniqueID: uuid.NewString()}, nil
}
