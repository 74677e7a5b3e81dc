package upsertreminder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	service "tasknotes/internal/core/services/upsert_reminder"
	"tasknotes/internal/http/handlers/identity"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	wasCreated bool
	err        error
	input      *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Reminder = reminder.Reminder{
		ID:       reminder.ID(1),
		TaskID:   input.TaskID,
		RemindAt: input.RemindAt,
	}
	result.WasCreated = s.wasCreated
	return result, nil
}

func serve(stub *stubService, userID string, body string) *httptest.ResponseRecorder {
	handler := identity.SetUserIDToContext(New(stub))
	req := httptest.NewRequest(http.MethodPut, "/reminders", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(identity.USER_ID_HEADER, userID)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestUpsertReminderHandlerCreated(t *testing.T) {
	stub := &stubService{wasCreated: true}

	recorder := serve(stub, "42", `{"task_id": 7, "remind_at": "2029-06-15T10:30:00Z"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, user.ID(42), stub.input.UserID)
	assert.Equal(t, task.ID(7), stub.input.TaskID)
	assert.Equal(t, time.Date(2029, 6, 15, 10, 30, 0, 0, time.UTC), stub.input.RemindAt)
}

func TestUpsertReminderHandlerReplaced(t *testing.T) {
	stub := &stubService{wasCreated: false}

	recorder := serve(stub, "42", `{"task_id": 7, "remind_at": "2029-06-15T10:30:00Z"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpsertReminderHandlerReadsZonelessTimestampAsUTC(t *testing.T) {
	stub := &stubService{wasCreated: true}

	recorder := serve(stub, "42", `{"task_id": 7, "remind_at": "2029-06-15 10:30:00"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, stub.input)
	assert.Equal(t, time.Date(2029, 6, 15, 10, 30, 0, 0, time.UTC), stub.input.RemindAt)
}

func TestUpsertReminderHandlerRequiresIdentity(t *testing.T) {
	stub := &stubService{}

	recorder := serve(stub, "", `{"task_id": 7, "remind_at": "2029-06-15T10:30:00Z"}`)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Nil(t, stub.input)
}

func TestUpsertReminderHandlerErrorMapping(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
	}{
		{err: task.ErrTaskDoesNotExist, expectedStatus: http.StatusNotFound},
		{err: task.ErrTaskPermission, expectedStatus: http.StatusForbidden},
		{err: reminder.ErrRemindAtTimeIsNotUTC, expectedStatus: http.StatusUnprocessableEntity},
	}

	for _, testcase := range cases {
		t.Run(testcase.err.Error(), func(t *testing.T) {
			stub := &stubService{err: testcase.err}

			recorder := serve(stub, "42", `{"task_id": 7, "remind_at": "2029-06-15T10:30:00Z"}`)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}
