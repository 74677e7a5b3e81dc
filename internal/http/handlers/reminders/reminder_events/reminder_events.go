package reminderevents

import (
	"net/http"
	e "tasknotes/internal/core/domain/errors"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/http/handlers/identity"
	"tasknotes/internal/http/handlers/response"
	"tasknotes/internal/implementations/broadcaster"
)

type Handler struct {
	log         logging.Logger
	broadcaster *broadcaster.SSE
}

func New(
	log logging.Logger,
	b *broadcaster.SSE,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if b == nil {
		panic(e.NewNilArgumentError("broadcaster"))
	}
	return &Handler{log: log, broadcaster: b}
}

// ServeHTTP opens a server-sent events stream carrying the user's active
// reminder set. A user may only attach to their own stream.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	userID, ok := identity.FromContext(r.Context())
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}

	streamID := r.URL.Query().Get("stream")
	if streamID != broadcaster.StreamID(userID) {
		h.log.Info(r.Context(), "Stream does not belong to the user.", logging.Entry("userID", userID))
		response.RenderError(rw, "unknown stream", http.StatusNotFound)
		return
	}

	h.broadcaster.Subscribe(userID)
	h.log.Info(r.Context(), "Subscribed to reminder events.", logging.Entry("userID", userID))

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.broadcaster.Unsubscribe(userID)
		h.log.Info(r.Context(), "Unsubscribed from reminder events.", logging.Entry("userID", userID))
	}()

	h.broadcaster.ServeHTTP(rw, r)
}
