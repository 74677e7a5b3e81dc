package broadcaster

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"tasknotes/internal/core/domain/reminder"
	"tasknotes/internal/core/domain/user"
	"time"

	"github.com/r3labs/sse/v2"
)

// SSE broadcasts active reminder sets over server-sent events, one stream
// per user. Stream IDs are the decimal user ID.
type SSE struct {
	server *sse.Server

	mu         sync.Mutex
	subscribed map[user.ID]int
}

func NewSSE() *SSE {
	server := sse.New()
	server.AutoReplay = false
	server.AutoStream = false
	return &SSE{
		server:     server,
		subscribed: make(map[user.ID]int),
	}
}

func StreamID(userID user.ID) string {
	return strconv.FormatInt(int64(userID), 10)
}

func (b *SSE) Subscribe(userID user.ID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribed[userID]++
	if b.subscribed[userID] == 1 {
		b.server.CreateStream(StreamID(userID))
	}
}

func (b *SSE) Unsubscribe(userID user.ID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	count, ok := b.subscribed[userID]
	if !ok {
		return
	}
	if count > 1 {
		b.subscribed[userID] = count - 1
		return
	}
	delete(b.subscribed, userID)
	b.server.RemoveStream(StreamID(userID))
}

func (b *SSE) Subscribed() []user.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]user.ID, 0, len(b.subscribed))
	for id := range b.subscribed {
		ids = append(ids, id)
	}
	return ids
}

func (b *SSE) PublishActiveSet(
	ctx context.Context,
	userID user.ID,
	reminders []reminder.ActiveReminder,
) error {
	data, err := json.Marshal(activeSetEvent(reminders))
	if err != nil {
		return err
	}
	b.server.Publish(StreamID(userID), &sse.Event{
		Event: []byte("active-reminders"),
		Data:  data,
	})
	return nil
}

func (b *SSE) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.server.ServeHTTP(w, r)
}

func (b *SSE) Close() {
	b.server.Close()
}

type activeReminderView struct {
	ReminderID  int64  `json:"reminder_id"`
	TaskID      int64  `json:"task_id"`
	RemindAt    string `json:"remind_at"`
	TaskContent string `json:"task_content"`
	TaskIsDone  bool   `json:"task_is_done"`
}

func activeSetEvent(reminders []reminder.ActiveReminder) []activeReminderView {
	views := make([]activeReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, activeReminderView{
			ReminderID:  int64(r.ReminderID),
			TaskID:      int64(r.TaskID),
			RemindAt:    r.RemindAt.UTC().Format(time.RFC3339),
			TaskContent: r.TaskContent,
			TaskIsDone:  r.TaskIsDone,
		})
	}
	return views
}
