package response

import (
	"tasknotes/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	RemindAt  time.Time `json:"remind_at"`
	Sent      bool      `json:"sent"`
	Dismissed bool      `json:"dismissed"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = int64(dr.ID)
	r.TaskID = int64(dr.TaskID)
	r.RemindAt = dr.RemindAt
	r.Sent = dr.Sent
	r.Dismissed = dr.Dismissed
	r.CreatedAt = dr.CreatedAt
}

type ActiveReminder struct {
	ReminderID  int64     `json:"reminder_id"`
	TaskID      int64     `json:"task_id"`
	RemindAt    time.Time `json:"remind_at"`
	TaskContent string    `json:"task_content"`
	TaskIsDone  bool      `json:"task_is_done"`
}

func (r *ActiveReminder) FromDomainType(dr reminder.ActiveReminder) {
	r.ReminderID = int64(dr.ReminderID)
	r.TaskID = int64(dr.TaskID)
	r.RemindAt = dr.RemindAt
	r.TaskContent = dr.TaskContent
	r.TaskIsDone = dr.TaskIsDone
}

func Reminders(drs []reminder.Reminder) []Reminder {
	reminders := make([]Reminder, 0, len(drs))
	for _, dr := range drs {
		r := Reminder{}
		r.FromDomainType(dr)
		reminders = append(reminders, r)
	}
	return reminders
}

func ActiveReminders(drs []reminder.ActiveReminder) []ActiveReminder {
	reminders := make([]ActiveReminder, 0, len(drs))
	for _, dr := range drs {
		r := ActiveReminder{}
		r.FromDomainType(dr)
		reminders = append(reminders, r)
	}
	return reminders
}
