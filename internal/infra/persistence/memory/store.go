// Package memory is a transactional in-process store for local runs and tests.
// Writers are serialized and work on a private copy that replaces the live
// state only when the transaction function returns nil.
package memory

import (
	"context"
	"sort"
	"sync"

	"lab-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	users        map[uuid.UUID]UserRecord
	laboratories map[uuid.UUID]LaboratoryRecord
	experiments  map[uuid.UUID]ExperimentRecord
	devices      map[uuid.UUID]DeviceRecord
	links        map[DeviceLink]struct{}
	maintenances map[uuid.UUID]MaintenanceRecord
	reservations map[uuid.UUID]ReservationRecord
}

func newState() state {
	return state{
		users:        map[uuid.UUID]UserRecord{},
		laboratories: map[uuid.UUID]LaboratoryRecord{},
		experiments:  map[uuid.UUID]ExperimentRecord{},
		devices:      map[uuid.UUID]DeviceRecord{},
		links:        map[DeviceLink]struct{}{},
		maintenances: map[uuid.UUID]MaintenanceRecord{},
		reservations: map[uuid.UUID]ReservationRecord{},
	}
}

// clone copies every map. Records are values; their time pointers are never mutated in place.
func (s state) clone() state {
	c := newState()
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.laboratories {
		c.laboratories[k] = v
	}
	for k, v := range s.experiments {
		c.experiments[k] = v
	}
	for k, v := range s.devices {
		c.devices[k] = v
	}
	for k := range s.links {
		c.links[k] = struct{}{}
	}
	for k, v := range s.maintenances {
		c.maintenances[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

type Store struct {
	mu    sync.RWMutex
	state state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

// Within implements shared.UnitOfWork.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &memTx{state: s.state.clone()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.state = t.state
	return nil
}

func (s *Store) view(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.state)
}

// Seed merges the fixture into the live state.
func (s *Store) Seed(f Fixture) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range f.Users {
		s.state.users[u.ID] = u
	}
	for _, l := range f.Laboratories {
		s.state.laboratories[l.ID] = l
	}
	for _, e := range f.Experiments {
		s.state.experiments[e.ID] = e
	}
	for _, d := range f.Devices {
		s.state.devices[d.ID] = d
	}
	for _, l := range f.DeviceLinks {
		s.state.links[l] = struct{}{}
	}
	for _, m := range f.Maintenances {
		s.state.maintenances[m.ID] = m
	}
	for _, r := range f.Reservations {
		s.state.reservations[r.ID] = r
	}
}

// Export returns a copy of the live state, sorted by id for stable comparisons.
func (s *Store) Export() Fixture {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var f Fixture
	for _, u := range s.state.users {
		f.Users = append(f.Users, u)
	}
	for _, l := range s.state.laboratories {
		f.Laboratories = append(f.Laboratories, l)
	}
	for _, e := range s.state.experiments {
		f.Experiments = append(f.Experiments, e)
	}
	for _, d := range s.state.devices {
		f.Devices = append(f.Devices, d)
	}
	for l := range s.state.links {
		f.DeviceLinks = append(f.DeviceLinks, l)
	}
	for _, m := range s.state.maintenances {
		f.Maintenances = append(f.Maintenances, m)
	}
	for _, r := range s.state.reservations {
		f.Reservations = append(f.Reservations, r)
	}

	sort.Slice(f.Users, func(i, j int) bool { return f.Users[i].ID.String() < f.Users[j].ID.String() })
	sort.Slice(f.Laboratories, func(i, j int) bool { return f.Laboratories[i].ID.String() < f.Laboratories[j].ID.String() })
	sort.Slice(f.Experiments, func(i, j int) bool { return f.Experiments[i].ID.String() < f.Experiments[j].ID.String() })
	sort.Slice(f.Devices, func(i, j int) bool { return f.Devices[i].ID.String() < f.Devices[j].ID.String() })
	sort.Slice(f.DeviceLinks, func(i, j int) bool {
		a, b := f.DeviceLinks[i], f.DeviceLinks[j]
		if a.DeviceID != b.DeviceID {
			return a.DeviceID.String() < b.DeviceID.String()
		}
		return a.ExperimentID.String() < b.ExperimentID.String()
	})
	sort.Slice(f.Maintenances, func(i, j int) bool { return f.Maintenances[i].ID.String() < f.Maintenances[j].ID.String() })
	sort.Slice(f.Reservations, func(i, j int) bool {
		a, b := f.Reservations[i], f.Reservations[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
	return f
}
