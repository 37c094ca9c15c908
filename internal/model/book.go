package model

// Book mirrors a book record owned by the remote library service.
type Book struct {
	ID              int64      `json:"id"`
	Title           string     `json:"titulo"`
	Author          string     `json:"autor"`
	ISBN            string     `json:"isbn,omitempty"`
	PublicationYear *int       `json:"añoPublicacion,omitempty"`
	Available       bool       `json:"disponible"`
	CreatedAt       *Timestamp `json:"fechaCreacion,omitempty"`
}

// BookInput is the payload for create and partial update calls.
// Pointer fields distinguish "not sent" (nil) from zero values; nil fields
// are omitted from the JSON body entirely.
type BookInput struct {
	Title           *string `json:"titulo,omitempty"`
	Author          *string `json:"autor,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	PublicationYear *int    `json:"añoPublicacion,omitempty"`
	Available       *bool   `json:"disponible,omitempty"`
}

// BookID returns the identifier of b.
func BookID(b Book) int64 { return b.ID }
