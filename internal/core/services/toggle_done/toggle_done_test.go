package toggledone

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
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		suite.taskProvider,
		suite.taskProvider,
		suite.eventPublisher,
	)
}

func TestToggleDoneService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) addTask(isDone bool) {
	s.taskProvider.AddTask(task.Task{ID: TASK_ID, Content: "clean the garage", IsDone: isDone}, USER_ID)
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

func (s *testSuite) TestToggleToDoneDismissesReminder() {
	s.addTask(false)
	rem := s.createReminder()

	result, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, ReminderID: rem.ID, TaskID: TASK_ID, CurrentIsDone: false},
	)

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.IsDone)
	assert.True(result.Reminder.Dismissed)
	assert.True(s.taskProvider.Tasks[TASK_ID].IsDone)
	assert.Len(s.eventPublisher.Published, 1)
}

func (s *testSuite) TestToggleBackToNotDoneLeavesDismissalAlone() {
	cases := []struct {
		id        string
		dismissed bool
	}{
		{id: "undismissed reminder stays undismissed", dismissed: false},
		{id: "dismissed reminder stays dismissed", dismissed: true},
	}
	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			s.SetupTest()
			s.addTask(true)
			rem := s.createReminder()
			if testcase.dismissed {
				_, err := s.reminderRepository.Update(context.Background(), reminder.UpdateInput{
					ID:                rem.ID,
					DoDismissedUpdate: true,
					Dismissed:         true,
				})
				s.Require().Nil(err)
			}

			result, err := s.service.Run(
				context.Background(),
				Input{UserID: USER_ID, ReminderID: rem.ID, TaskID: TASK_ID, CurrentIsDone: true},
			)

			assert := s.Require()
			assert.Nil(err)
			assert.False(result.IsDone)
			assert.False(s.taskProvider.Tasks[TASK_ID].IsDone)
			assert.Equal(testcase.dismissed, s.reminderRepository.Reminders[rem.ID].Dismissed)
			assert.Empty(s.eventPublisher.Published)
		})
	}
}

func (s *testSuite) TestToggleReminderNotFound() {
	s.addTask(false)

	_, err := s.service.Run(
		context.Background(),
		Input{UserID: USER_ID, ReminderID: reminder.ID(999), TaskID: TASK_ID, CurrentIsDone: false},
	)

	assert := s.Require()
	assert.ErrorIs(err, reminder.ErrReminderDoesNotExist)
	assert.Empty(s.taskProvider.SetDoneCalls)
}

func (s *testSuite) TestToggleReminderOfAnotherUser() {
	s.addTask(false)
	rem := s.createReminder()

	_, err := s.service.Run(
		context.Background(),
		Input{UserID: user.ID(1000), ReminderID: rem.ID, TaskID: TASK_ID, CurrentIsDone: false},
	)

	s.Require().ErrorIs(err, reminder.ErrReminderPermission)
	s.Require().False(s.taskProvider.Tasks[TASK_ID].IsDone)
}
