package createreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "tasknotes/internal/core/domain/errors"
	ratelimiter "tasknotes/internal/core/domain/rate_limiter"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/services"
	service "tasknotes/internal/core/services/create_reminder"
	"tasknotes/internal/http/handlers/identity"
	"tasknotes/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	TaskID   int64  `json:"task_id"`
	RemindAt string `json:"remind_at"`
}

type Result struct {
	Reminder response.Reminder `json:"reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TaskID, validation.Required, validation.Min(1)),
		validation.Field(&i.RemindAt, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	// Zone-less timestamps are read as UTC, never as server-local time.
	remindAt := carbon.Parse(input.RemindAt, carbon.UTC)
	if remindAt.Error != nil {
		response.RenderError(rw, "invalid remind_at value", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			UserID:   userID,
			TaskID:   task.ID(input.TaskID),
			RemindAt: remindAt.Carbon2Time().UTC(),
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, task.ErrTaskDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, task.ErrTaskPermission):
			response.RenderError(rw, err.Error(), http.StatusForbidden)
		case errors.Is(err, reminder.ErrRemindAtTimeIsNotUTC):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rem := response.Reminder{}
	rem.FromDomainType(result.Reminder)
	response.Render(rw, Result{Reminder: rem}, http.StatusCreated)
}
