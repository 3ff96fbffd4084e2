package ports

import (
	"context"

	"github.com/jonathangoncalves/MTGADraft/internal/domain"
)

// CardStore provides access to the card database.
type CardStore interface {
	GetCard(ctx context.Context, id domain.CardID) (domain.Card, error)
	// BasicLands returns, for every known set code, its basic land printings
	// in a stable order.
	BasicLands(ctx context.Context) (map[string][]domain.CardID, error)
}
