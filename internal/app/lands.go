package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonathangoncalves/MTGADraft/internal/domain"
	"github.com/jonathangoncalves/MTGADraft/internal/ports"
)

// MaxPacks bounds a single simulation.
const MaxPacks = 100

// SimulateRequest is the application-level input (no HTTP types).
type SimulateRequest struct {
	Set     string
	Commons domain.CardPool
	Packs   int
}

// SimulateResult is the application-level output.
type SimulateResult struct {
	Set   string
	Kind  domain.SlotKind
	Lands []domain.UniqueCard
	// Commons is what is left of the request's common pool after setup.
	Commons domain.CardPool
	// Distributable holds the special lands not dealt yet; nil for basic
	// slots.
	Distributable domain.CardPool
}

// LandService runs land slot sessions against the registry.
type LandService struct {
	registry *domain.Registry
	cards    ports.CardStore
	rng      domain.RNG
	logger   *slog.Logger
}

// NewLandService wires the service. rng must be safe for concurrent use when
// the service is shared across requests.
func NewLandService(reg *domain.Registry, cards ports.CardStore, rng domain.RNG, logger *slog.Logger) *LandService {
	return &LandService{
		registry: reg,
		cards:    cards,
		rng:      rng,
		logger:   logger,
	}
}

func (s *LandService) Sets() []string {
	return s.registry.Sets()
}

func (s *LandService) Describe(_ context.Context, set string) (domain.SlotInfo, error) {
	return s.registry.Info(set)
}

// Simulate opens a session for req.Set, sets it up with a copy of
// req.Commons and deals the land of req.Packs packs.
func (s *LandService) Simulate(ctx context.Context, req SimulateRequest) (SimulateResult, error) {
	if req.Packs < 1 || req.Packs > MaxPacks {
		return SimulateResult{}, domain.ErrInvalidPacks
	}

	slot, err := s.registry.Slot(req.Set, s.rng, NewCardUniquer(ctx, s.cards))
	if err != nil {
		return SimulateResult{}, err
	}

	commons := req.Commons.Clone()
	if err := slot.Setup(commons); err != nil {
		return SimulateResult{}, fmt.Errorf("setup: %w", err)
	}

	lands := make([]domain.UniqueCard, 0, req.Packs)
	for i := range req.Packs {
		c, err := slot.Pick()
		if err != nil {
			return SimulateResult{}, fmt.Errorf("pack %d: %w", i+1, err)
		}
		lands = append(lands, c)
	}

	res := SimulateResult{
		Set:     req.Set,
		Kind:    slot.Kind(),
		Lands:   lands,
		Commons: commons,
	}
	if special, ok := slot.(*domain.SpecialLandSlot); ok {
		res.Distributable = special.Remaining()
	}

	s.logger.DebugContext(ctx, "land slot simulated",
		"set", req.Set,
		"kind", res.Kind,
		"packs", req.Packs,
		"moved", req.Commons.Total()-commons.Total(),
	)
	return res, nil
}
