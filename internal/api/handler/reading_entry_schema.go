package handler

import "time"

// Request payloads for the reading entry lifecycle endpoints. Lifecycle
// changes go through dedicated verbs rather than a generic PATCH so the
// transition rules stay in one place.

type addToLibraryRequest struct {
	// UserID defaults to the acting user; adding into someone else's
	// library needs the edit_reading_entry permission.
	UserID string `json:"user_id" validate:"omitempty,uuid4"`
	BookID string `json:"book_id" validate:"required,uuid4"`
}

type updateProgressRequest struct {
	Progress float64 `json:"progress" validate:"gte=0,lte=100"`
}

type completeEntryRequest struct {
	EndDate *time.Time `json:"end_date"`
}

type updateReviewRequest struct {
	Rating int     `json:"rating" validate:"required,gte=1,lte=5"`
	Review *string `json:"review" validate:"omitempty,max=2000"`
}
