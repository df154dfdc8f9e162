package repository

import (
	"strings"

	"github.com/escala-hq/escala/backend/internal/domain"
)

// AddUser registers a login account. Accounts are created at seed time only.
func (r *Repository) AddUser(user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := user
	r.users = append(r.users, &cp)
}

// GetUserByEmail matches case-insensitively, mirroring the login form.
func (r *Repository) GetUserByEmail(email string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, true
		}
	}
	return nil, false
}

func (r *Repository) GetUserByID(id string) (*domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			cp := *user
			return &cp, true
		}
	}
	return nil, false
}
