package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// User is a login account. Employee accounts share their identifier with the
// corresponding directory entry, so the session subject doubles as the
// directory key.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}
