package upcomingreminders

import (
	"errors"
	"net/http"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/services"
	service "tasknotes/internal/core/services/upcoming_reminders"
	"tasknotes/internal/http/handlers/identity"
	"tasknotes/internal/http/handlers/response"
	"time"

	"github.com/golang-module/carbon/v2"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	from, err := parseTimestamp(r.URL.Query().Get("from"))
	if err != nil {
		response.RenderError(rw, "invalid from query parameter", http.StatusBadRequest)
		return
	}
	to, err := parseTimestamp(r.URL.Query().Get("to"))
	if err != nil {
		response.RenderError(rw, "invalid to query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{UserID: userID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrRemindAtTimeIsNotUTC) || errors.Is(err, reminder.ErrInvalidTimeRange):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Reminders: response.Reminders(result.Reminders)}, http.StatusOK)
}

func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("timestamp must be set")
	}
	// Zone-less timestamps are read as UTC, never as server-local time.
	ts := carbon.Parse(raw, carbon.UTC)
	if ts.Error != nil {
		return time.Time{}, ts.Error
	}
	return ts.Carbon2Time().UTC(), nil
}
