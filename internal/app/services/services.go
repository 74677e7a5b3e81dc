package services

import (
	"tasknotes/internal/app/deps"
	drl "tasknotes/internal/core/domain/rate_limiter"
	"tasknotes/internal/core/services"
	acknowledgedone "tasknotes/internal/core/services/acknowledge_done"
	activereminders "tasknotes/internal/core/services/active_reminders"
	createreminder "tasknotes/internal/core/services/create_reminder"
	deletereminder "tasknotes/internal/core/services/delete_reminder"
	dismissreminder "tasknotes/internal/core/services/dismiss_reminder"
	listtaskreminders "tasknotes/internal/core/services/list_task_reminders"
	publishactivereminders "tasknotes/internal/core/services/publish_active_reminders"
	ratelimiting "tasknotes/internal/core/services/rate_limiting"
	toggledone "tasknotes/internal/core/services/toggle_done"
	upcomingreminders "tasknotes/internal/core/services/upcoming_reminders"
	upsertreminder "tasknotes/internal/core/services/upsert_reminder"
)

type Services struct {
	CreateReminder    services.Service[createreminder.Input, createreminder.Result]
	UpsertReminder    services.Service[upsertreminder.Input, upsertreminder.Result]
	DeleteReminder    services.Service[deletereminder.Input, deletereminder.Result]
	DismissReminder   services.Service[dismissreminder.Input, dismissreminder.Result]
	AcknowledgeDone   services.Service[acknowledgedone.Input, acknowledgedone.Result]
	ToggleDone        services.Service[toggledone.Input, toggledone.Result]
	ListTaskReminders services.Service[listtaskreminders.Input, listtaskreminders.Result]
	ActiveReminders   services.Service[activereminders.Input, activereminders.Result]
	UpcomingReminders services.Service[upcomingreminders.Input, upcomingreminders.Result]

	PublishActiveReminders services.Service[publishactivereminders.Input, publishactivereminders.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	writeLimit := drl.Limit{Interval: drl.Minute, Value: deps.Config.ReminderWriteRateLimit}

	s.CreateReminder = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		writeLimit,
		createreminder.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.ReminderEventPublisher,
			deps.Now,
		),
	)
	s.UpsertReminder = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		writeLimit,
		upsertreminder.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.ReminderEventPublisher,
			deps.Now,
		),
	)
	s.DeleteReminder = deletereminder.New(
		deps.Logger,
		deps.UnitOfWork,
	)
	s.DismissReminder = dismissreminder.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ReminderEventPublisher,
	)
	s.AcknowledgeDone = acknowledgedone.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.TaskProvider,
		deps.TaskOwners,
		deps.ReminderEventPublisher,
	)
	s.ToggleDone = toggledone.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.TaskProvider,
		deps.TaskOwners,
		deps.ReminderEventPublisher,
	)
	s.ListTaskReminders = listtaskreminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.TaskOwners,
	)
	s.ActiveReminders = activereminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Now,
	)
	s.UpcomingReminders = upcomingreminders.New(
		deps.Logger,
		deps.ReminderRepository,
	)

	s.PublishActiveReminders = publishactivereminders.New(
		deps.Logger,
		deps.ReminderRepository,
		deps.Broadcaster,
		deps.Now,
	)

	return s
}
