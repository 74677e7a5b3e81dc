package upsertreminder

import (
	"context"
	"testing"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
	uow "tasknotes/internal/core/domain/unit_of_work"
	"tasknotes/internal/core/domain/user"
	"tasknotes/internal/core/services"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID = user.ID(42)
	TASK_ID = task.ID(7)
)

var Now time.Time = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger         *logging.FakeLogger
	unitOfWork     *uow.FakeUnitOfWork
	eventPublisher *reminder.FakeEventPublisher
	service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.unitOfWork = uow.NewFakeUnitOfWork()
	suite.eventPublisher = reminder.NewFakeEventPublisher()
	suite.unitOfWork.Tasks().AddTask(task.Task{ID: TASK_ID, Content: "buy milk"}, USER_ID)
	suite.service = New(
		suite.logger,
		suite.unitOfWork,
		suite.eventPublisher,
		func() time.Time { return Now },
	)
}

func TestUpsertReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestUpsertCreatesWhenNoUndismissedReminderExists() {
	remindAt := Now.Add(time.Hour)

	result, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, TaskID: TASK_ID, RemindAt: remindAt},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.WasCreated)
	assert.Equal(remindAt, result.Reminder.RemindAt)
	assert.Len(s.unitOfWork.Reminders().Reminders, 1)
	assert.Len(s.eventPublisher.Published, 1)
}

func (s *testSuite) TestUpsertReplacesNotDuplicates() {
	t1 := Now.Add(time.Hour)
	t2 := Now.Add(2 * time.Hour)

	first, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, TaskID: TASK_ID, RemindAt: t1},
	)
	s.Require().Nil(err)
	second, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, TaskID: TASK_ID, RemindAt: t2},
	)
	s.Require().Nil(err)

	assert := s.Require()
	assert.True(first.WasCreated)
	assert.False(second.WasCreated)
	assert.Equal(first.Reminder.ID, second.Reminder.ID)
	assert.Len(s.unitOfWork.Reminders().Reminders, 1)
	assert.Equal(t2, s.unitOfWork.Reminders().Reminders[first.Reminder.ID].RemindAt)
	// Only the initial creation is announced.
	assert.Len(s.eventPublisher.Published, 1)
}

func (s *testSuite) TestUpsertIgnoresDismissedReminders() {
	first, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, TaskID: TASK_ID, RemindAt: Now.Add(time.Hour)},
	)
	s.Require().Nil(err)

	rem := s.unitOfWork.Reminders().Reminders[first.Reminder.ID]
	rem.Dismissed = true
	s.unitOfWork.Reminders().Reminders[rem.ID] = rem

	second, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, TaskID: TASK_ID, RemindAt: Now.Add(2 * time.Hour)},
	)
	s.Require().Nil(err)

	assert := s.Require()
	assert.True(second.WasCreated)
	assert.NotEqual(first.Reminder.ID, second.Reminder.ID)
	assert.Len(s.unitOfWork.Reminders().Reminders, 2)
}

func (s *testSuite) TestUpsertTaskNotFound() {
	_, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, TaskID: task.ID(999), RemindAt: Now.Add(time.Hour)},
	)

	s.Require().ErrorIs(err, task.ErrTaskDoesNotExist)
	s.Require().False(s.unitOfWork.Context.WasCommitCalled)
}

func (s *testSuite) TestUpsertTaskOwnedByAnotherUser() {
	_, err := s.service.Run(
		context.Background(),
		Input{UserID: user.ID(1000), TaskID: TASK_ID, RemindAt: Now.Add(time.Hour)},
	)

	s.Require().ErrorIs(err, task.ErrTaskPermission)
	s.Require().Empty(s.unitOfWork.Reminders().Reminders)
}
