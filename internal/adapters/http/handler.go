package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jonathangoncalves/MTGADraft/internal/app"
	"github.com/jonathangoncalves/MTGADraft/internal/domain"
)

type Handler struct {
	svc *app.LandService
}

func NewHandler(svc *app.LandService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/sets", h.ListSets)
	e.GET("/v1/sets/:set/land-slot", h.DescribeSlot)
	e.POST("/v1/sets/:set/land-slot/simulate", h.Simulate)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListSets(c echo.Context) error {
	return c.JSON(http.StatusOK, SetsResponse{Sets: h.svc.Sets()})
}

func (h *Handler) DescribeSlot(c echo.Context) error {
	info, err := h.svc.Describe(c.Request().Context(), c.Param("set"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, SlotResponse{
		Set:        info.Set,
		Kind:       info.Kind,
		Basics:     info.Basics,
		Candidates: info.Candidates,
		Rate:       info.Rate,
		Note:       info.Note,
	})
}

func (h *Handler) Simulate(c echo.Context) error {
	var body SimulateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
	}
	for id, n := range body.Commons {
		if n < 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "negative count for " + string(id)})
		}
	}

	start := time.Now()
	res, err := h.svc.Simulate(c.Request().Context(), app.SimulateRequest{
		Set:     c.Param("set"),
		Commons: body.Commons,
		Packs:   body.Packs,
	})
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, SimulateResponse{
		Set:           res.Set,
		Kind:          res.Kind,
		Lands:         res.Lands,
		Commons:       res.Commons,
		Distributable: res.Distributable,
		Meta: MetaResp{
			RequestID: requestID,
			LatencyMS: time.Since(start).Milliseconds(),
		},
	})
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrUnknownSet):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidPacks):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
