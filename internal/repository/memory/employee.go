// Package memory holds the authoritative employee collection: an ordered
// in-memory slice with mutation notifications. Persistence is layered on
// top by subscribing a snapshot writer.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
)

type subscriber struct {
	id int
	fn func(employee.Change)
}

type EmployeeStore struct {
	mu        sync.RWMutex
	employees []employee.Employee

	subMu     sync.Mutex
	subs      []subscriber
	nextSubID int
}

// NewEmployeeStore creates a store seeded with the given records (a loaded
// snapshot or a seed set). Insertion order is preserved from then on.
func NewEmployeeStore(initial []employee.Employee) *EmployeeStore {
	s := &EmployeeStore{
		employees: make([]employee.Employee, len(initial)),
	}
	copy(s.employees, initial)
	return s
}

// List implements employee.EmployeeRepository.
func (s *EmployeeStore) List(ctx context.Context) ([]employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

// GetByID implements employee.EmployeeRepository.
func (s *EmployeeStore) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Add implements employee.EmployeeRepository. Validation happened upstream;
// the store appends unconditionally.
func (s *EmployeeStore) Add(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	s.mu.Lock()
	e.ID = uuid.NewString()
	s.employees = append(s.employees, e)
	s.mu.Unlock()

	s.notify(employee.Change{Op: employee.ChangeAdd, IDs: []string{e.ID}})
	return e, nil
}

// Update implements employee.EmployeeRepository. The id never changes, even
// when the caller passes a record carrying a different one.
func (s *EmployeeStore) Update(ctx context.Context, id string, e employee.Employee) error {
	s.mu.Lock()
	idx := -1
	for i := range s.employees {
		if s.employees[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return employee.ErrEmployeeNotFound
	}
	e.ID = id
	s.employees[idx] = e
	s.mu.Unlock()

	s.notify(employee.Change{Op: employee.ChangeUpdate, IDs: []string{id}})
	return nil
}

// Delete implements employee.EmployeeRepository. Deleting an absent id is a
// no-op: no notification fires and the call reports false.
func (s *EmployeeStore) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	removed := false
	kept := s.employees[:0]
	for _, e := range s.employees {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.employees = kept
	s.mu.Unlock()

	if removed {
		s.notify(employee.Change{Op: employee.ChangeDelete, IDs: []string{id}})
	}
	return removed, nil
}

// DeleteMany implements employee.EmployeeRepository: one compaction pass,
// one notification, regardless of how many ids matched. Unknown ids are
// ignored.
func (s *EmployeeStore) DeleteMany(ctx context.Context, ids []string) (int, error) {
	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	s.mu.Lock()
	var removedIDs []string
	kept := s.employees[:0]
	for _, e := range s.employees {
		if _, ok := doomed[e.ID]; ok {
			removedIDs = append(removedIDs, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	s.employees = kept
	s.mu.Unlock()

	if len(removedIDs) > 0 {
		s.notify(employee.Change{Op: employee.ChangeBulkDelete, IDs: removedIDs})
	}
	return len(removedIDs), nil
}

// Count returns the current number of records.
func (s *EmployeeStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.employees)
}

// Subscribe implements employee.EmployeeRepository. Listeners run after the
// mutation is fully applied, in registration order.
func (s *EmployeeStore) Subscribe(listener func(employee.Change)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subs = append(s.subs, subscriber{id: id, fn: listener})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *EmployeeStore) notify(change employee.Change) {
	s.subMu.Lock()
	listeners := make([]func(employee.Change), len(s.subs))
	for i, sub := range s.subs {
		listeners[i] = sub.fn
	}
	s.subMu.Unlock()

	// Invoked outside the collection lock so listeners can read back the
	// already-applied state.
	for _, fn := range listeners {
		fn(change)
	}
}
