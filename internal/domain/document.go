package domain

import "time"

// ConsentDocument is the personal-data consent PDF a rental's consent refers
// to. FileKey points into the document storage service.
type ConsentDocument struct {
	ID        int32     `json:"id"`
	Title     string    `json:"title"`
	FileKey   string    `json:"file_key"`
	IsActive  bool      `json:"is_active"`
	CreatedOn time.Time `json:"created_on"`
}
