package http

import "github.com/jonathangoncalves/MTGADraft/internal/domain"

// SlotResponse is the JSON shape returned by GET /v1/sets/:set/land-slot.
type SlotResponse struct {
	Set        string          `json:"set"`
	Kind       domain.SlotKind `json:"kind"`
	Basics     []domain.CardID `json:"basics"`
	Candidates []domain.CardID `json:"candidates,omitempty"`
	Rate       float64         `json:"rate"`
	Note       string          `json:"note,omitempty"`
}

// SimulateRequest is the body of POST /v1/sets/:set/land-slot/simulate.
// Packs is required and must be between 1 and 100.
type SimulateRequest struct {
	Commons domain.CardPool `json:"commons"`
	Packs   int             `json:"packs"`
}

type SimulateResponse struct {
	Set           string              `json:"set"`
	Kind          domain.SlotKind     `json:"kind"`
	Lands         []domain.UniqueCard `json:"lands"`
	Commons       domain.CardPool     `json:"commons"`
	Distributable domain.CardPool     `json:"distributable,omitempty"`
	Meta          MetaResp            `json:"meta"`
}

type SetsResponse struct {
	Sets []string `json:"sets"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
