package model

// User mirrors a library member record owned by the remote library service.
type User struct {
	ID        int64      `json:"id"`
	Name      string     `json:"nombre"`
	Email     string     `json:"email"`
	Phone     string     `json:"telefono,omitempty"`
	Active    bool       `json:"activo"`
	CreatedAt *Timestamp `json:"fechaCreacion,omitempty"`
}

// UserInput is the payload for create and partial update calls.
type UserInput struct {
	Name   *string `json:"nombre,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"telefono,omitempty"`
	Active *bool   `json:"activo,omitempty"`
}

// UserID returns the identifier of u.
func UserID(u User) int64 { return u.ID }
