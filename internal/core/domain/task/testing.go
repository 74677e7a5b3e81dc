package task

import (
	"context"
	"sync"
	"tasknotes/internal/core/domain/user"
)

type SetDoneCall struct {
	TaskID ID
	IsDone bool
}

type FakeTaskProvider struct {
	Tasks        map[ID]Task
	Owners       map[ID]user.ID
	GetByIDError error
	SetDoneError error
	ResolveError error
	SetDoneCalls []SetDoneCall
	lock         sync.Mutex
}

func NewFakeTaskProvider() *FakeTaskProvider {
	return &FakeTaskProvider{
		Tasks:  make(map[ID]Task),
		Owners: make(map[ID]user.ID),
	}
}

// AddTask registers a task and its resolved owner in one call.
func (p *FakeTaskProvider) AddTask(t Task, owner user.ID) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Tasks[t.ID] = t
	p.Owners[t.ID] = owner
}

func (p *FakeTaskProvider) GetByID(ctx context.Context, id ID) (Task, error) {
	if p.GetByIDError != nil {
		return Task{}, p.GetByIDError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	t, ok := p.Tasks[id]
	if !ok {
		return Task{}, ErrTaskDoesNotExist
	}
	return t, nil
}

func (p *FakeTaskProvider) SetDone(ctx context.Context, id ID, isDone bool) error {
	if p.SetDoneError != nil {
		return p.SetDoneError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	t, ok := p.Tasks[id]
	if !ok {
		return ErrTaskDoesNotExist
	}
	t.IsDone = isDone
	p.Tasks[id] = t
	p.SetDoneCalls = append(p.SetDoneCalls, SetDoneCall{TaskID: id, IsDone: isDone})
	return nil
}

func (p *FakeTaskProvider) ResolveOwner(ctx context.Context, id ID) (user.ID, error) {
	if p.ResolveError != nil {
		return 0, p.ResolveError
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	owner, ok := p.Owners[id]
	if !ok {
		return 0, ErrTaskDoesNotExist
	}
	return owner, nil
}
