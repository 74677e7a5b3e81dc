package reminder

import "errors"

var (
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrReminderPermission   = errors.New("reminder belongs to another user")
	ErrRemindAtTimeIsNotUTC = errors.New("remind_at time must be in UTC")
	ErrInvalidTimeRange     = errors.New("time range is not valid")
)
