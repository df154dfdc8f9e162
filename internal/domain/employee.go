package domain

// Employee is a directory entry. The directory is read-only at runtime; it is
// populated once at startup.
type Employee struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
	ImageURL   string `json:"imageUrl,omitempty"`
}
