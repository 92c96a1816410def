package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/philbirt/event-staking/internal/domain"
	"github.com/philbirt/event-staking/internal/handler/dto"
	hmocks "github.com/philbirt/event-staking/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockSettlementSvc, *hmocks.MockWalletSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	settlementSvc := hmocks.NewMockSettlementSvc(t)
	walletSvc := hmocks.NewMockWalletSvc(t)

	h := NewHandler(eventSvc, settlementSvc, walletSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEventMetadata)
		api.GET("/events/:id/details", h.GetEventDetails)
		api.POST("/events/:id/reserve", h.Reserve)
		api.POST("/events/:id/checkin", h.CheckIn)
		api.POST("/events/:id/sweep", h.Sweep)
		api.GET("/events/:id/reservations", h.ListEventReservations)
		api.GET("/events/:id/reservations/:participant", h.GetReservation)
		api.GET("/participants/:id/reservations", h.ListParticipantReservations)
		api.POST("/wallets/:id/deposit", h.Deposit)
		api.POST("/wallets/:id/withdraw", h.Withdraw)
		api.GET("/wallets/:id", h.GetWallet)
	}

	return eventSvc, settlementSvc, walletSvc, r
}

func postJSON(t *testing.T, r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleEvent() *domain.Event {
	return &domain.Event{
		ID:        1,
		Owner:     "5f0c3c9e-0000-4000-8000-000000000001",
		Name:      "yakult event",
		Capacity:  4,
		Price:     2,
		StartsAt:  time.Unix(1000, 0),
		Duration:  2000 * time.Second,
		CreatedAt: time.Unix(900, 0),
	}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	event := sampleEvent()
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := postJSON(t, r, "/api/events", dto.CreateEventRequest{
		OwnerID:         event.Owner,
		Name:            "yakult event",
		Capacity:        4,
		Price:           2,
		StartsAt:        event.StartsAt.Format(time.RFC3339),
		DurationSeconds: 2000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "yakult event", resp.Name)
	assert.Zero(t, resp.EscrowBalance)
}

func TestHandler_CreateEvent_BadOwner(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/events", dto.CreateEventRequest{OwnerID: "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidStartTime(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"owner_id":"` + uuid.New().String() + `","name":"X","capacity":1,"price":1,"starts_at":"not-a-date","duration_seconds":60}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_MissingFields(t *testing.T) {
	// The service reports which required field is absent; the handler maps
	// every missing-field error to 400.
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, domain.ErrMissingCapacity)

	w := postJSON(t, r, "/api/events", dto.CreateEventRequest{
		OwnerID: uuid.New().String(),
		Name:    "no capacity",
		Price:   2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEventMetadata_Known(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Metadata(mock.Anything, int64(1)).
		Return(domain.Metadata{Name: "yakult event", Owner: "owner-1"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MetadataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "yakult event", resp.Name)
	assert.Equal(t, "owner-1", resp.Owner)
}

func TestHandler_GetEventMetadata_UnknownIsEmptyNot404(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().Metadata(mock.Anything, int64(42)).Return(domain.Metadata{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.MetadataResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Name)
	assert.Empty(t, resp.Owner)
}

func TestHandler_GetEventMetadata_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEventDetails_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	details := &domain.EventDetails{
		Event:       *sampleEvent(),
		StakedCount: 3,
		SlotsLeft:   1,
		Reservations: []domain.Reservation{
			{EventID: 1, Participant: "p1", Status: domain.ReservationStaked, Amount: 2, ReservedAt: time.Unix(950, 0)},
		},
	}
	eventSvc.EXPECT().GetDetails(mock.Anything, int64(1)).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1/details", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.StakedCount)
	assert.Equal(t, 1, resp.SlotsLeft)
	assert.Len(t, resp.Reservations, 1)
}

func TestHandler_GetEventDetails_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetDetails(mock.Anything, int64(7)).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/7/details", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{sampleEvent(), {ID: 2, StartsAt: time.Unix(2000, 0)}}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Settlement ---

func TestHandler_Reserve_Success(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	settlementSvc.EXPECT().Reserve(mock.Anything, int64(1), participant, int64(2)).Return(nil)

	w := postJSON(t, r, "/api/events/1/reserve", dto.ReserveRequest{
		ParticipantID: participant,
		Amount:        2,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Reserve_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"event not found", domain.ErrEventNotFound, http.StatusNotFound},
		{"price not met", domain.ErrPriceNotMet, http.StatusBadRequest},
		{"already reserved", domain.ErrAlreadyReserved, http.StatusConflict},
		{"already checked in", domain.ErrAlreadyCheckedIn, http.StatusConflict},
		{"overbooked", domain.ErrOverbooked, http.StatusConflict},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, settlementSvc, _, r := setupRouter(t)

			participant := uuid.New().String()
			settlementSvc.EXPECT().Reserve(mock.Anything, int64(1), participant, int64(2)).
				Return(tc.err)

			w := postJSON(t, r, "/api/events/1/reserve", dto.ReserveRequest{
				ParticipantID: participant,
				Amount:        2,
			})

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestHandler_Reserve_InvalidEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/api/events/bad-id/reserve", dto.ReserveRequest{
		ParticipantID: uuid.New().String(),
		Amount:        2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Reserve_MissingAmount(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"participant_id":"` + uuid.New().String() + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/1/reserve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_Success(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	settlementSvc.EXPECT().CheckIn(mock.Anything, int64(1), participant).Return(nil)

	w := postJSON(t, r, "/api/events/1/checkin", dto.CheckInRequest{ParticipantID: participant})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckIn_OutsideWindow(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	settlementSvc.EXPECT().CheckIn(mock.Anything, int64(1), participant).
		Return(domain.ErrEventNotInProgress)

	w := postJSON(t, r, "/api/events/1/checkin", dto.CheckInRequest{ParticipantID: participant})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CheckIn_NoReservation(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	settlementSvc.EXPECT().CheckIn(mock.Anything, int64(1), participant).
		Return(domain.ErrReservationNotFound)

	w := postJSON(t, r, "/api/events/1/checkin", dto.CheckInRequest{ParticipantID: participant})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Sweep_Success(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	organizer := uuid.New().String()
	settlementSvc.EXPECT().Sweep(mock.Anything, int64(1), organizer).Return(int64(4), nil)

	w := postJSON(t, r, "/api/events/1/sweep", dto.SweepRequest{OrganizerID: organizer})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.EventID)
	assert.Equal(t, int64(4), resp.Amount)
}

func TestHandler_Sweep_NotCreator(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	organizer := uuid.New().String()
	settlementSvc.EXPECT().Sweep(mock.Anything, int64(1), organizer).
		Return(int64(0), domain.ErrNotCreator)

	w := postJSON(t, r, "/api/events/1/sweep", dto.SweepRequest{OrganizerID: organizer})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Sweep_Conflicts(t *testing.T) {
	for _, wantErr := range []error{domain.ErrEventNotEnded, domain.ErrNothingToWithdraw} {
		t.Run(wantErr.Error(), func(t *testing.T) {
			_, settlementSvc, _, r := setupRouter(t)

			organizer := uuid.New().String()
			settlementSvc.EXPECT().Sweep(mock.Anything, int64(1), organizer).
				Return(int64(0), wantErr)

			w := postJSON(t, r, "/api/events/1/sweep", dto.SweepRequest{OrganizerID: organizer})

			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestHandler_ListEventReservations_Success(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	reservations := []*domain.Reservation{
		{EventID: 1, Participant: "p1", Status: domain.ReservationStaked, Amount: 2, ReservedAt: time.Unix(950, 0)},
		{EventID: 1, Participant: "p2", Status: domain.ReservationSettled, Amount: 3, ReservedAt: time.Unix(960, 0)},
	}
	settlementSvc.EXPECT().ListByEvent(mock.Anything, int64(1)).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "staked", resp[0].Status)
	assert.Equal(t, "settled", resp[1].Status)
}

func TestHandler_GetReservation_Success(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	settlementSvc.EXPECT().Reservation(mock.Anything, int64(1), participant).
		Return(&domain.Reservation{
			EventID:     1,
			Participant: participant,
			Status:      domain.ReservationStaked,
			Amount:      2,
			ReservedAt:  time.Unix(950, 0),
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1/reservations/"+participant, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, participant, resp.Participant)
	assert.Equal(t, int64(2), resp.Amount)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	settlementSvc.EXPECT().Reservation(mock.Anything, int64(1), participant).
		Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1/reservations/"+participant, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListParticipantReservations_Success(t *testing.T) {
	_, settlementSvc, _, r := setupRouter(t)

	participant := uuid.New().String()
	reservations := []*domain.Reservation{
		{EventID: 1, Participant: participant, Status: domain.ReservationStaked, Amount: 2, ReservedAt: time.Unix(950, 0)},
	}
	settlementSvc.EXPECT().ListByParticipant(mock.Anything, participant).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/participants/"+participant+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Wallets ---

func TestHandler_Deposit_Success(t *testing.T) {
	_, _, walletSvc, r := setupRouter(t)

	walletSvc.EXPECT().Deposit(mock.Anything, "acc-1", int64(100)).
		Return(&domain.Wallet{AccountID: "acc-1", Balance: 100}, nil)

	w := postJSON(t, r, "/api/wallets/acc-1/deposit", dto.WalletAmountRequest{Amount: 100})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(100), resp.Balance)
}

func TestHandler_Deposit_MissingAmount(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/wallets/acc-1/deposit", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Withdraw_InsufficientFunds(t *testing.T) {
	_, _, walletSvc, r := setupRouter(t)

	walletSvc.EXPECT().Withdraw(mock.Anything, "acc-1", int64(500)).
		Return(nil, domain.ErrInsufficientFunds)

	w := postJSON(t, r, "/api/wallets/acc-1/withdraw", dto.WalletAmountRequest{Amount: 500})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetWallet_UnknownIsZero(t *testing.T) {
	_, _, walletSvc, r := setupRouter(t)

	walletSvc.EXPECT().Balance(mock.Anything, "ghost").
		Return(&domain.Wallet{AccountID: "ghost"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/wallets/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.WalletResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Balance)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetDetails(mock.Anything, int64(1)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/1/details", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
