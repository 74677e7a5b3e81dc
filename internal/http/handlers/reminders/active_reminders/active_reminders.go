package activereminders

import (
	"net/http"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/services"
	service "tasknotes/internal/core/services/active_reminders"
	"tasknotes/internal/http/handlers/identity"
	"tasknotes/internal/http/handlers/response"
	"time"
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
	Reminders []response.ActiveReminder `json:"reminders"`
	At        time.Time                 `json:"at"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{UserID: userID})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.Render(
		rw,
		Result{Reminders: response.ActiveReminders(result.Reminders), At: result.At},
		http.StatusOK,
	)
}
