package schema

import (
	"encoding/json"
	"time"
)

const (
	EventReminderCreated   = "reminder.created"
	EventReminderDismissed = "reminder.dismissed"
)

type ReminderEvent struct {
	Type       string
	ReminderID int64
	TaskID     int64
	RemindAt   time.Time
}

func (e *ReminderEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *ReminderEvent) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}
