package identity

import (
	"net/http"
	"net/http/httptest"
	"tasknotes/internal/core/domain/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserID(t *testing.T) {
	cases := []struct {
		id         string
		header     string
		expectedID user.ID
		expectedOk bool
	}{
		{id: "valid", header: "42", expectedID: user.ID(42), expectedOk: true},
		{id: "missing", header: "", expectedOk: false},
		{id: "not a number", header: "abc", expectedOk: false},
		{id: "zero", header: "0", expectedOk: false},
		{id: "negative", header: "-1", expectedOk: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if testcase.header != "" {
				req.Header.Set(USER_ID_HEADER, testcase.header)
			}

			userID, ok := ParseUserID(req)

			assert.Equal(t, testcase.expectedOk, ok)
			if testcase.expectedOk {
				assert.Equal(t, testcase.expectedID, userID)
			}
		})
	}
}

func TestSetUserIDToContext(t *testing.T) {
	var gotUserID user.ID
	var gotOk bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOk = FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(USER_ID_HEADER, "42")
	SetUserIDToContext(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, gotOk)
	assert.Equal(t, user.ID(42), gotUserID)
}

func TestSetUserIDToContextWithoutHeader(t *testing.T) {
	var gotOk bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotOk = FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	SetUserIDToContext(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.False(t, gotOk)
}
