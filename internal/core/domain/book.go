package domain

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog record that reading entries reference. Books are created
// by users (usually from an OpenLibrary lookup) and shared across libraries.
type Book struct {
	ID             uuid.UUID `json:"id" bson:"_id"`
	Title          string    `json:"title" bson:"title"`
	Author         string    `json:"author" bson:"author"`
	ISBN           string    `json:"isbn,omitempty" bson:"isbn,omitempty"`
	OLID           string    `json:"olid,omitempty" bson:"olid,omitempty"`
	CoverURL       string    `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	OpenLibraryURL string    `json:"openlibrary_url,omitempty" bson:"openlibrary_url,omitempty"`
	CreatedBy      uuid.UUID `json:"created_by" bson:"created_by"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
