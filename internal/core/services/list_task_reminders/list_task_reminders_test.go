package listtaskreminders

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
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.taskProvider = task.NewFakeTaskProvider()
	suite.reminderRepository = reminder.NewTestReminderRepository(suite.taskProvider)
	suite.taskProvider.AddTask(task.Task{ID: TASK_ID, Content: "prepare slides"}, USER_ID)
	suite.service = New(suite.logger, suite.reminderRepository, suite.taskProvider)
}

func TestListTaskRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestListReturnsAllRemindersOfTask() {
	for _, offset := range []time.Duration{-time.Hour, time.Hour} {
		_, err := s.reminderRepository.Create(context.Background(), reminder.CreateInput{
			TaskID:    TASK_ID,
			RemindAt:  Now.Add(offset),
			CreatedAt: Now,
		})
		s.Require().Nil(err)
	}

	result, err := s.service.Run(context.Background(), Input{UserID: USER_ID, TaskID: TASK_ID})

	s.Require().Nil(err)
	s.Require().Len(result.Reminders, 2)
}

func (s *testSuite) TestListEmptyForTaskWithoutReminders() {
	result, err := s.service.Run(context.Background(), Input{UserID: USER_ID, TaskID: TASK_ID})

	s.Require().Nil(err)
	s.Require().Empty(result.Reminders)
}

func (s *testSuite) TestListTaskNotFound() {
	_, err := s.service.Run(context.Background(), Input{UserID: USER_ID, TaskID: task.ID(999)})

	s.Require().ErrorIs(err, task.ErrTaskDoesNotExist)
}

func (s *testSuite) TestListTaskOfAnotherUser() {
	_, err := s.service.Run(context.Background(), Input{UserID: user.ID(1000), TaskID: TASK_ID})

	s.Require().ErrorIs(err, task.ErrTaskPermission)
}
