package reminder

import (
	"context"
	"sort"
	"sync"
	"tasknotes/internal/core/domain/task"
	"tasknotes/internal/core/domain/user"
	"time"
)

// TestReminderRepository is a behavioral in-memory implementation. Ownership
// scoping and the active-set join need task data, so the fake reads it from a
// FakeTaskProvider shared with the test.
type TestReminderRepository struct {
	Tasks *task.FakeTaskProvider

	Reminders map[ID]Reminder
	LockedIDs []ID

	CreateError error
	ReadError   error
	GetError    error
	UpdateError error
	DeleteError error

	nextID ID
	lock   sync.Mutex
}

func NewTestReminderRepository(tasks *task.FakeTaskProvider) *TestReminderRepository {
	return &TestReminderRepository{
		Tasks:     tasks,
		Reminders: make(map[ID]Reminder),
	}
}

func (r *TestReminderRepository) Create(ctx context.Context, input CreateInput) (Reminder, error) {
	if r.CreateError != nil {
		return Reminder{}, r.CreateError
	}
	if _, err := r.Tasks.GetByID(ctx, input.TaskID); err != nil {
		return Reminder{}, err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	rem := Reminder{
		ID:        r.nextID,
		TaskID:    input.TaskID,
		RemindAt:  input.RemindAt,
		CreatedAt: input.CreatedAt,
	}
	r.Reminders[rem.ID] = rem
	return rem, nil
}

func (r *TestReminderRepository) Lock(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.LockedIDs = append(r.LockedIDs, id)
	return nil
}

func (r *TestReminderRepository) GetByID(ctx context.Context, id ID) (Reminder, error) {
	if r.GetError != nil {
		return Reminder{}, r.GetError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[id]
	if !ok {
		return Reminder{}, ErrReminderDoesNotExist
	}
	return rem, nil
}

func (r *TestReminderRepository) Read(ctx context.Context, options ReadOptions) ([]Reminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	reminders := make([]Reminder, 0)
	for _, rem := range r.Reminders {
		if !r.matches(ctx, rem, options) {
			continue
		}
		reminders = append(reminders, rem)
	}
	sort.Slice(reminders, func(i, j int) bool { return reminders[i].ID < reminders[j].ID })
	return reminders, nil
}

func (r *TestReminderRepository) ReadActive(
	ctx context.Context,
	owner user.ID,
	now time.Time,
) ([]ActiveReminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	reminders := make([]Reminder, 0, len(r.Reminders))
	for _, rem := range r.Reminders {
		reminders = append(reminders, rem)
	}
	r.lock.Unlock()

	sort.Slice(reminders, func(i, j int) bool { return reminders[i].ID < reminders[j].ID })
	active := make([]ActiveReminder, 0)
	for _, rem := range reminders {
		if !rem.IsActiveAt(now) {
			continue
		}
		taskOwner, err := r.Tasks.ResolveOwner(ctx, rem.TaskID)
		if err != nil || taskOwner != owner {
			continue
		}
		t, err := r.Tasks.GetByID(ctx, rem.TaskID)
		if err != nil {
			continue
		}
		active = append(active, ActiveReminder{
			ReminderID:  rem.ID,
			TaskID:      rem.TaskID,
			RemindAt:    rem.RemindAt,
			TaskContent: t.Content,
			TaskIsDone:  t.IsDone,
		})
	}
	return active, nil
}

func (r *TestReminderRepository) Update(ctx context.Context, input UpdateInput) (Reminder, error) {
	if r.UpdateError != nil {
		return Reminder{}, r.UpdateError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	rem, ok := r.Reminders[input.ID]
	if !ok {
		return Reminder{}, ErrReminderDoesNotExist
	}
	if input.DoRemindAtUpdate {
		rem.RemindAt = input.RemindAt
	}
	if input.DoSentUpdate {
		rem.Sent = input.Sent
	}
	if input.DoDismissedUpdate {
		rem.Dismissed = input.Dismissed
	}
	r.Reminders[rem.ID] = rem
	return rem, nil
}

func (r *TestReminderRepository) Delete(ctx context.Context, id ID) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.Reminders[id]; !ok {
		return ErrReminderDoesNotExist
	}
	delete(r.Reminders, id)
	return nil
}

func (r *TestReminderRepository) matches(ctx context.Context, rem Reminder, options ReadOptions) bool {
	if options.TaskIDEquals.IsPresent && rem.TaskID != options.TaskIDEquals.Value {
		return false
	}
	if options.DismissedEquals.IsPresent && rem.Dismissed != options.DismissedEquals.Value {
		return false
	}
	if options.RemindAtFrom.IsPresent && rem.RemindAt.Before(options.RemindAtFrom.Value) {
		return false
	}
	if options.RemindAtUntil.IsPresent && rem.RemindAt.After(options.RemindAtUntil.Value) {
		return false
	}
	if options.OwnerEquals.IsPresent {
		owner, err := r.Tasks.ResolveOwner(ctx, rem.TaskID)
		if err != nil || owner != options.OwnerEquals.Value {
			return false
		}
	}
	return true
}

type PublishedEvent struct {
	Type     string
	Reminder Reminder
}

type FakeEventPublisher struct {
	Published    []PublishedEvent
	PublishError error
	lock         sync.Mutex
}

func NewFakeEventPublisher() *FakeEventPublisher {
	return &FakeEventPublisher{}
}

func (p *FakeEventPublisher) PublishCreated(ctx context.Context, r Reminder) error {
	return p.publish("created", r)
}

func (p *FakeEventPublisher) PublishDismissed(ctx context.Context, r Reminder) error {
	return p.publish("dismissed", r)
}

func (p *FakeEventPublisher) publish(eventType string, r Reminder) error {
	if p.PublishError != nil {
		return p.PublishError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, PublishedEvent{Type: eventType, Reminder: r})
	return nil
}

type FakeBroadcaster struct {
	Streams      map[user.ID]struct{}
	PublishedTo  map[user.ID][][]ActiveReminder
	PublishError error
	lock         sync.Mutex
}

func NewFakeBroadcaster() *FakeBroadcaster {
	return &FakeBroadcaster{
		Streams:     make(map[user.ID]struct{}),
		PublishedTo: make(map[user.ID][][]ActiveReminder),
	}
}

func (b *FakeBroadcaster) Subscribe(userID user.ID) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.Streams[userID] = struct{}{}
}

func (b *FakeBroadcaster) Unsubscribe(userID user.ID) {
	b.lock.Lock()
	defer b.lock.Unlock()
	delete(b.Streams, userID)
}

func (b *FakeBroadcaster) Subscribed() []user.ID {
	b.lock.Lock()
	defer b.lock.Unlock()
	userIDs := make([]user.ID, 0, len(b.Streams))
	for userID := range b.Streams {
		userIDs = append(userIDs, userID)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i] < userIDs[j] })
	return userIDs
}

func (b *FakeBroadcaster) PublishActiveSet(
	ctx context.Context,
	userID user.ID,
	reminders []ActiveReminder,
) error {
	if b.PublishError != nil {
		return b.PublishError
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	b.PublishedTo[userID] = append(b.PublishedTo[userID], reminders)
	return nil
}
