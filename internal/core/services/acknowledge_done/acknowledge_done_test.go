package acknowledgedone

import (
	"context"
	"testing"
	"tasknotes/internal/core/domain/logging"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/task"
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
	logger             *logging.FakeLogger
	taskProvider       *task.FakeTaskProvider
	reminderRepository *reminder.TestReminderRepository
	eventPublisher     *reminder.FakeEventPublisher
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.taskProvider = task.NewFakeTaskProvider()
	suite.reminderRepository = reminder.NewTestReminderRepository(suite.taskProvider)
	suite.eventPublisher = reminder.NewFakeEventPublisher()
	suite.taskProvider.AddTask(task.Task{ID: TASK_ID, Content: "submit expenses"}, USER_ID)
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		suite.taskProvider,
		suite.taskProvider,
		suite.eventPublisher,
	)
}

func TestAcknowledgeDoneService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createReminder() reminder.Reminder {
	rem, err := s.reminderRepository.Create(context.Background(), reminder.CreateInput{
		TaskID:    TASK_ID,
		RemindAt:  Now.Add(-time.Hour),
		CreatedAt: Now,
	})
	s.Require().Nil(err)
	return rem
}

func (s *testSuite) TestAcknowledgeCompletesTaskAndDismissesReminder() {
	rem := s.createReminder()

	result, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, ReminderID: rem.ID, TaskID: TASK_ID},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Reminder.Dismissed)
	assert.True(s.taskProvider.Tasks[TASK_ID].IsDone)
	assert.Len(s.eventPublisher.Published, 1)
	assert.Equal("dismissed", s.eventPublisher.Published[0].Type)
}

func (s *testSuite) TestTaskWriteFailureSkipsDismiss() {
	rem := s.createReminder()
	s.taskProvider.SetDoneError = context.DeadlineExceeded

	_, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, ReminderID: rem.ID, TaskID: TASK_ID},
	)

	assert := s.Require()
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.False(s.reminderRepository.Reminders[rem.ID].Dismissed)
	assert.Empty(s.eventPublisher.Published)
}

func (s *testSuite) TestAcknowledgeAlreadyDismissedReminder() {
	rem := s.createReminder()
	_, err := s.reminderRepository.Update(context.Background(), reminder.UpdateInput{
		ID:                rem.ID,
		DoDismissedUpdate: true,
		Dismissed:         true,
	})
	s.Require().Nil(err)

	result, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, ReminderID: rem.ID, TaskID: TASK_ID},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Reminder.Dismissed)
	assert.True(s.taskProvider.Tasks[TASK_ID].IsDone)
	assert.Empty(s.eventPublisher.Published)
}

func (s *testSuite) TestReminderNotFound() {
	_, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, ReminderID: reminder.ID(999), TaskID: TASK_ID},
	)

	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrReminderDoesNotExist)
	assert.Empty(s.taskProvider.SetDoneCalls)
}

func (s *testSuite) TestReminderOfAnotherUser() {
	rem := s.createReminder()

	_, err := s.service.Run(
		context.Background(),
		Input{UserID: user.ID(1000), ReminderID: rem.ID, TaskID: TASK_ID},
	)

	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrReminderPermission)
	assert.Empty(s.taskProvider.SetDoneCalls)
}
