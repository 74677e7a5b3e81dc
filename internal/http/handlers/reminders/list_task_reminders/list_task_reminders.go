package listtaskreminders

import (
	"errors"
	"net/http"
	"strconv"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/services"
	service "tasknotes/internal/core/services/list_task_reminders"
	"tasknotes/internal/http/handlers/identity"
	"tasknotes/internal/http/handlers/response"
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

	rawTaskID := r.URL.Query().Get("task_id")
	taskID, err := strconv.ParseInt(rawTaskID, 10, 64)
	if err != nil || taskID <= 0 {
		response.RenderError(rw, "invalid task_id query parameter", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{UserID: userID, TaskID: task.ID(taskID)})
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTaskDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, task.ErrTaskPermission):
			response.RenderError(rw, err.Error(), http.StatusForbidden)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(rw, Result{Reminders: response.Reminders(result.Reminders)}, http.StatusOK)
}
