package publishactivereminders

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
	USER_A = user.ID(42)
	USER_B = user.ID(43)
	TASK_A = task.ID(7)
	TASK_B = task.ID(8)
)

var Now time.Time = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger             *logging.FakeLogger
	taskProvider       *task.FakeTaskProvider
	reminderRepository *reminder.TestReminderRepository
	broadcaster        *reminder.FakeBroadcaster
	service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.taskProvider = task.NewFakeTaskProvider()
	suite.reminderRepository = reminder.NewTestReminderRepository(suite.taskProvider)
	suite.broadcaster = reminder.NewFakeBroadcaster()
	suite.taskProvider.AddTask(task.Task{ID: TASK_A, Content: "water the plants"}, USER_A)
	suite.taskProvider.AddTask(task.Task{ID: TASK_B, Content: "pay rent"}, USER_B)
	suite.service = New(
		suite.logger,
		suite.reminderRepository,
		suite.broadcaster,
		func() time.Time { return Now },
	)
}

func TestPublishActiveRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createReminder(taskID task.ID, remindAt time.Time) {
	_, err := s.reminderRepository.Create(context.Background(), reminder.CreateInput{
		TaskID:    taskID,
		RemindAt:  remindAt,
		CreatedAt: Now,
	})
	s.Require().Nil(err)
}

func (s *testSuite) TestPublishesPerSubscribedUser() {
	s.createReminder(TASK_A, Now.Add(-time.Hour))
	s.createReminder(TASK_B, Now.Add(-time.Hour))
	s.broadcaster.Subscribe(USER_A)
	s.broadcaster.Subscribe(USER_B)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(2, result.PublishedCount)
	assert.Len(s.broadcaster.PublishedTo[USER_A], 1)
	assert.Len(s.broadcaster.PublishedTo[USER_A][0], 1)
	assert.Equal(TASK_A, s.broadcaster.PublishedTo[USER_A][0][0].TaskID)
	assert.Len(s.broadcaster.PublishedTo[USER_B], 1)
}

func (s *testSuite) TestUnsubscribedUsersAreSkipped() {
	s.createReminder(TASK_A, Now.Add(-time.Hour))

	result, err := s.service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Require().Equal(0, result.PublishedCount)
	s.Require().Empty(s.broadcaster.PublishedTo)
}

func (s *testSuite) TestEmptyActiveSetIsStillPublished() {
	// An empty set clears the client's notification list after a dismissal.
	s.broadcaster.Subscribe(USER_A)

	result, err := s.service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Require().Equal(1, result.PublishedCount)
	s.Require().Len(s.broadcaster.PublishedTo[USER_A], 1)
	s.Require().Empty(s.broadcaster.PublishedTo[USER_A][0])
}

func (s *testSuite) TestReadFailureSkipsTickForThatUser() {
	s.broadcaster.Subscribe(USER_A)
	s.reminderRepository.ReadError = context.DeadlineExceeded

	result, err := s.service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Require().Equal(0, result.PublishedCount)
	s.Require().Empty(s.broadcaster.PublishedTo)
}
