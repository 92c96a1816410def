package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Metadata(ctx context.Context, id int64) (domain.Metadata, error)
	GetDetails(ctx context.Context, id int64) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type SettlementSvc interface {
	Reserve(ctx context.Context, eventID int64, participant string, amount int64) error
	CheckIn(ctx context.Context, eventID int64, participant string) error
	Sweep(ctx context.Context, eventID int64, caller string) (int64, error)
	Reservation(ctx context.Context, eventID int64, participant string) (*domain.Reservation, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Reservation, error)
	ListByParticipant(ctx context.Context, participant string) ([]*domain.Reservation, error)
}

type WalletSvc interface {
	Deposit(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	Withdraw(ctx context.Context, accountID string, amount int64) (*domain.Wallet, error)
	Balance(ctx context.Context, accountID string) (*domain.Wallet, error)
}

type Handler struct {
	eventService      EventSvc
	settlementService SettlementSvc
	walletService     WalletSvc
}

func NewHandler(eventService EventSvc, settlementService SettlementSvc, walletService WalletSvc) *Handler {
	return &Handler{
		eventService:      eventService,
		settlementService: settlementService,
		walletService:     walletService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	// Field-level checks (capacity, price, window) are deliberately left to
	// the service so each missing field reports its own error kind.
	var startsAt time.Time
	if req.StartsAt != "" {
		var err error
		startsAt, err = time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid starts_at format, expected RFC3339",
			})
			return
		}
	}

	input := domain.CreateEventInput{
		Owner:    req.OwnerID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Price:    req.Price,
		StartsAt: startsAt,
		Duration: time.Duration(req.DurationSeconds) * time.Second,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// GetEventMetadata never 404s: an unknown id answers with empty fields,
// so collaborators can probe existence without an error path.
func (h *Handler) GetEventMetadata(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	meta, err := h.eventService.Metadata(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MetadataResponse{Name: meta.Name, Owner: meta.Owner})
}

func (h *Handler) GetEventDetails(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Settlement

func (h *Handler) Reserve(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.settlementService.Reserve(c.Request.Context(), id, req.ParticipantID, req.Amount); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ginext.H{"status": "reserved"})
}

func (h *Handler) CheckIn(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.settlementService.CheckIn(c.Request.Context(), id, req.ParticipantID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "checked_in"})
}

func (h *Handler) Sweep(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, err := h.settlementService.Sweep(c.Request.Context(), id, req.OrganizerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SweepResponse{EventID: id, Amount: amount})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	reservation, err := h.settlementService.Reservation(c.Request.Context(), id, c.Param("participant"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListEventReservations(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	reservations, err := h.settlementService.ListByEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *Handler) ListParticipantReservations(c *ginext.Context) {
	participant := c.Param("id")

	reservations, err := h.settlementService.ListByParticipant(c.Request.Context(), participant)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

// Wallets

func (h *Handler) Deposit(c *ginext.Context) {
	accountID := c.Param("id")

	var req dto.WalletAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	wallet, err := h.walletService.Deposit(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *Handler) Withdraw(c *ginext.Context) {
	accountID := c.Param("id")

	var req dto.WalletAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	wallet, err := h.walletService.Withdraw(c.Request.Context(), accountID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *Handler) GetWallet(c *ginext.Context) {
	wallet, err := h.walletService.Balance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

func (h *Handler) eventID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return 0, false
	}
	return id, true
}

func toReservationResponses(reservations []*domain.Reservation) []dto.ReservationResponse {
	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyReserved),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrOverbooked),
		errors.Is(err, domain.ErrEventNotInProgress),
		errors.Is(err, domain.ErrEventNotEnded),
		errors.Is(err, domain.ErrNothingToWithdraw),
		errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotCreator):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMissingCapacity),
		errors.Is(err, domain.ErrMissingPrice),
		errors.Is(err, domain.ErrMissingStartTime),
		errors.Is(err, domain.ErrMissingDuration),
		errors.Is(err, domain.ErrPriceNotMet),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
