package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/escala-hq/escala/backend/internal/domain"
)

func (h *Handler) GetAllShiftTypes(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "shift types retrieved", h.repository.GetAllShiftTypes())
}

func (h *Handler) GetShiftType(w http.ResponseWriter, r *http.Request) {
	st, ok := h.repository.GetShiftType(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, "shift type not found")
		return
	}

	h.successResponse(w, r, "shift type retrieved", st)
}

// UpsertShiftType creates or replaces a catalog entry. An id matching an
// existing entry replaces it; an empty or unknown id creates a new entry
// under a fresh id. Code, description and color must be present, though the
// caller may deliberately send them empty; that is why they are pointers.
func (h *Handler) UpsertShiftType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string                 `json:"id"`
		Code        *string                `json:"code" validate:"required"`
		Description *string                `json:"description" validate:"required"`
		Color       *string                `json:"color" validate:"required"`
		StartTime   string                 `json:"startTime"`
		EndTime     string                 `json:"endTime"`
		Breaks      []domain.BreakInterval `json:"breaks"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	st := h.repository.UpsertShiftType(domain.ShiftType{
		ID:          req.ID,
		Code:        *req.Code,
		Description: *req.Description,
		Color:       *req.Color,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Breaks:      req.Breaks,
	})

	h.successResponse(w, r, "shift type saved", st)
}

// DeleteShiftType removes a catalog entry. Assignments that reference it are
// not touched; they render as unassigned from now on.
func (h *Handler) DeleteShiftType(w http.ResponseWriter, r *http.Request) {
	if !h.repository.RemoveShiftType(chi.URLParam(r, "id")) {
		h.errorResponse(w, r, "shift type not found")
		return
	}

	h.successResponse(w, r, "shift type deleted", nil)
}
