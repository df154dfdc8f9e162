package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/escala-hq/escala/backend/internal/domain"
)

const sessionCookieName = "__escala_session"

func sessionKey(userID string) string {
	return "session:" + userID
}

type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Login resolves the account by email only. The password field is accepted
// and ignored: this deployment has no credential store, matching the mock
// sign-in the product shipped with.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	user, ok := h.repository.GetUserByEmail(req.Email)
	if !ok {
		h.errorResponse(w, r, "invalid email or password")
		return
	}

	expiration := time.Now().Add(time.Duration(h.config.JWT.Expiration) * time.Second)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	})
	ss, err := token.SignedString([]byte(h.config.JWT.Secret))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// Persist the serialized current-user record so a reload (or another API
	// instance) can restore the session without re-login.
	payload, err := json.Marshal(user)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, sessionKey(user.ID), payload, time.Until(expiration)).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    ss,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
	}

	if h.config.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	}

	http.SetCookie(w, cookie)

	h.successResponse(w, r, "login successful", user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	// Best effort: clear the durable session slot if the cookie still parses.
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		claims := &AuthClaims{}
		if _, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(h.config.JWT.Secret), nil
		}); err == nil {
			ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
			defer cancel()

			if err := h.redisClient.Del(ctx, sessionKey(claims.Subject)).Err(); err != nil {
				h.logInternalServerError(r, err)
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:    sessionCookieName,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	h.successResponse(w, r, "logout successful", nil)
}

func (h *Handler) GetMyInfo(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(CurrentUserCtxKey).(*domain.User)

	h.successResponse(w, r, "current user retrieved", user)
}

// GetMySchedule returns the calling user's own assignments for a month,
// regardless of role.
func (h *Handler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	user := r.Context().Value(CurrentUserCtxKey).(*domain.User)
	assignments := h.repository.GetAssignmentsByMonth(year, month, user.ID)

	h.successResponse(w, r, "schedule retrieved", assignments)
}
