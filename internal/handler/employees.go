package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetAllEmployees lists the directory, optionally narrowed by a
// case-insensitive name fragment and an exact department.
func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	department := r.URL.Query().Get("department")

	emps := h.repository.FilterEmployees(name, department)

	h.successResponse(w, r, "employees retrieved", emps)
}

func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "departments retrieved", h.repository.Departments())
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, ok := h.repository.GetEmployee(chi.URLParam(r, "id"))
	if !ok {
		h.errorResponse(w, r, "employee not found")
		return
	}

	h.successResponse(w, r, "employee retrieved", emp)
}
