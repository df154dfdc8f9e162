package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/escala-hq/escala/backend/internal/calendar"
	"github.com/escala-hq/escala/backend/internal/domain"
)

// GetSchedule returns a month of assignments. Admins may scope to any
// employee (or none, meaning everyone); employees always get their own
// schedule no matter what the employee parameter says.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	employeeID := r.URL.Query().Get("employee")

	user := r.Context().Value(CurrentUserCtxKey).(*domain.User)
	if user.Role != domain.RoleAdmin {
		employeeID = user.ID
	}

	assignments := h.repository.GetAssignmentsByMonth(year, month, employeeID)

	h.successResponse(w, r, "schedule retrieved", assignments)
}

// UpsertSchedule assigns a shift type to an employee on a date, overwriting
// any previous assignment for that pair. The employee and shift-type ids are
// not checked against the directory or the catalog; a dangling reference
// renders as unassigned later.
func (h *Handler) UpsertSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		EmployeeID  string `json:"employeeId" validate:"required"`
		Date        string `json:"date" validate:"required"`
		ShiftTypeID string `json:"shiftTypeId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	assignment, err := h.repository.UpsertAssignment(req.EmployeeID, req.Date, req.ShiftTypeID)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.notifyScheduleUpdated(r, assignment)

	h.successResponse(w, r, "assignment saved", assignment)
}

// notifyScheduleUpdated queues a schedule-change email for the affected
// employee. The assignment is already stored at this point, so a broken
// notification path must not fail the edit; it only gets logged.
func (h *Handler) notifyScheduleUpdated(r *http.Request, assignment *domain.Assignment) {
	emp, ok := h.repository.GetEmployee(assignment.EmployeeID)
	if !ok || emp.Email == "" {
		return
	}

	data := domain.ScheduleUpdatedMailData{
		EmployeeName: emp.Name,
		Date:         assignment.Date,
	}
	if st, ok := h.repository.GetShiftType(assignment.ShiftTypeID); ok {
		data.ShiftCode = st.Code
		data.ShiftDescription = st.Description
		data.StartTime = st.StartTime
		data.EndTime = st.EndTime
	}

	body, err := json.Marshal(domain.MailMessage{
		Type: "schedule_updated",
		To:   emp.Email,
		Data: data,
	})
	if err != nil {
		h.logInternalServerError(r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.logInternalServerError(r, err)
	}
}

// GetCalendar returns the month grid as rows of seven ISO dates, padded with
// adjacent-month days exactly as the views render it.
func (h *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	weeks := calendar.Project(year, month)

	grid := make([][]string, 0, len(weeks))
	for _, week := range weeks {
		row := make([]string, 0, len(week))
		for _, day := range week {
			row = append(row, day.Format(domain.DateLayout))
		}
		grid = append(grid, row)
	}

	h.successResponse(w, r, "calendar retrieved", grid)
}
