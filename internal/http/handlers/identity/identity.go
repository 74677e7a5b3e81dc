package identity

import (
	"context"
	"net/http"
	"strconv"
	"tasknotes/internal/core/domain/user"
)

// Authentication happens at the application gateway; it forwards the
// authenticated user in a trusted header.
const USER_ID_HEADER = "X-User-ID"

type contextKey struct{}

var CONTEXT_USER_ID_KEY = contextKey{}

func ParseUserID(r *http.Request) (userID user.ID, ok bool) {
	header := r.Header.Get(USER_ID_HEADER)
	if header == "" {
		return userID, false
	}
	rawUserID, err := strconv.ParseInt(header, 10, 64)
	if err != nil || rawUserID <= 0 {
		return userID, false
	}
	return user.ID(rawUserID), true
}

func SetUserIDToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ParseUserID(r)
		if ok {
			ctx := context.WithValue(r.Context(), CONTEXT_USER_ID_KEY, userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func FromContext(ctx context.Context) (userID user.ID, ok bool) {
	userID, ok = ctx.Value(CONTEXT_USER_ID_KEY).(user.ID)
	return userID, ok
}
