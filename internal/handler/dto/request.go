package dto

type CreateEventRequest struct {
	OwnerID         string `json:"owner_id" binding:"required,uuid"`
	Name            string `json:"name"`
	Capacity        int    `json:"capacity"`
	Price           int64  `json:"price"`
	StartsAt        string `json:"starts_at"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type ReserveRequest struct {
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
}

type CheckInRequest struct {
	ParticipantID string `json:"participant_id" binding:"required,uuid"`
}

type SweepRequest struct {
	OrganizerID string `json:"organizer_id" binding:"required,uuid"`
}

type WalletAmountRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
