package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderIsActiveAt(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		id        string
		remindAt  time.Time
		dismissed bool
		expected  bool
	}{
		{id: "due in the past", remindAt: now.Add(-time.Hour), expected: true},
		{id: "due exactly now", remindAt: now, expected: true},
		{id: "due one millisecond later", remindAt: now.Add(time.Millisecond), expected: false},
		{id: "dismissed and overdue", remindAt: now.Add(-time.Hour), dismissed: true, expected: false},
		{id: "dismissed at the boundary", remindAt: now, dismissed: true, expected: false},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			r := Reminder{RemindAt: testcase.remindAt, Dismissed: testcase.dismissed}
			assert.Equal(t, testcase.expected, r.IsActiveAt(now))
		})
	}
}
