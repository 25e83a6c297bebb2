package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"retention/internal/records/models"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
)

// InMemory is the map-backed record register. Records are stored without
// their resolved ScheduleYears; reads fill it from the schedule table.
type InMemory struct {
	mu         sync.RWMutex
	records    map[id.RecordID]*models.Record
	byNumber   map[string]id.RecordID
	schedules  map[id.ScheduleID]*models.Schedule
	containers map[id.ContainerID]*models.Container
	nextRecord id.RecordID
	nextSched  id.ScheduleID
	nextCont   id.ContainerID
}

func NewInMemory() *InMemory {
	return &InMemory{
		records:    make(map[id.RecordID]*models.Record),
		byNumber:   make(map[string]id.RecordID),
		schedules:  make(map[id.ScheduleID]*models.Schedule),
		containers: make(map[id.ContainerID]*models.Container),
	}
}

func numberKey(number string) string {
	return strings.ToUpper(number)
}

// Create assigns the next id. Numbers are unique case-insensitively.
func (s *InMemory) Create(_ context.Context, r *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[r.ScheduleID]; !ok {
		return fmt.Errorf("schedule %d: %w", r.ScheduleID, sentinel.ErrNotFound)
	}
	if r.ContainerID != 0 {
		if _, ok := s.containers[r.ContainerID]; !ok {
			return fmt.Errorf("container %d: %w", r.ContainerID, sentinel.ErrNotFound)
		}
	}
	key := numberKey(r.Number)
	if _, taken := s.byNumber[key]; taken {
		return fmt.Errorf("record number %s: %w", r.Number, sentinel.ErrConflict)
	}
	s.nextRecord++
	r.ID = s.nextRecord
	r.ScheduleYears = s.schedules[r.ScheduleID].Years
	s.records[r.ID] = r.Clone()
	s.byNumber[key] = r.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, recordID id.RecordID) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[recordID]
	if !ok {
		return nil, fmt.Errorf("record %d: %w", recordID, sentinel.ErrNotFound)
	}
	return s.resolved(r), nil
}

// FindByIDs returns the records that exist, in the order requested.
// Duplicate ids are returned once.
func (s *InMemory) FindByIDs(_ context.Context, ids []id.RecordID) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Record, 0, len(ids))
	seen := make(map[id.RecordID]struct{}, len(ids))
	for _, recordID := range ids {
		if _, dup := seen[recordID]; dup {
			continue
		}
		seen[recordID] = struct{}{}
		if r, ok := s.records[recordID]; ok {
			out = append(out, s.resolved(r))
		}
	}
	return out, nil
}

// FindByContainer returns the container's records ordered by id.
func (s *InMemory) FindByContainer(_ context.Context, containerID id.ContainerID) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Record
	for _, r := range s.records {
		if r.ContainerID == containerID {
			out = append(out, s.resolved(r))
		}
	}
	slices.SortFunc(out, func(a, b *models.Record) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (s *InMemory) ExistsByNumber(_ context.Context, number string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byNumber[numberKey(number)]
	return ok, nil
}

// Close stamps the closure date. Destroyed records cannot be closed again.
func (s *InMemory) Close(_ context.Context, recordID id.RecordID, closedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.records[recordID]
	if !ok {
		return fmt.Errorf("record %d: %w", recordID, sentinel.ErrNotFound)
	}
	if r.IsDestroyed() {
		return fmt.Errorf("record %d is destroyed: %w", recordID, sentinel.ErrInvalidState)
	}
	t := closedAt
	r.ClosedAt = &t
	r.UpdatedAt = closedAt
	return nil
}

// MarkDestroyed stamps every record or none.
func (s *InMemory) MarkDestroyed(_ context.Context, ids []id.RecordID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, recordID := range ids {
		r, ok := s.records[recordID]
		if !ok {
			return fmt.Errorf("record %d: %w", recordID, sentinel.ErrNotFound)
		}
		if r.IsDestroyed() {
			return fmt.Errorf("record %d already destroyed: %w", recordID, sentinel.ErrInvalidState)
		}
	}
	for _, recordID := range ids {
		t := at
		s.records[recordID].DestroyedAt = &t
		s.records[recordID].UpdatedAt = at
	}
	return nil
}

// SaveSchedule upserts a schedule; a zero id is assigned the next one.
func (s *InMemory) SaveSchedule(_ context.Context, sched *models.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sched.ID == 0 {
		s.nextSched++
		sched.ID = s.nextSched
	} else if sched.ID > s.nextSched {
		s.nextSched = sched.ID
	}
	stored := *sched
	s.schedules[sched.ID] = &stored
	return nil
}

func (s *InMemory) FindSchedule(_ context.Context, scheduleID id.ScheduleID) (*models.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sched, ok := s.schedules[scheduleID]
	if !ok {
		return nil, fmt.Errorf("schedule %d: %w", scheduleID, sentinel.ErrNotFound)
	}
	out := *sched
	return &out, nil
}

// SaveContainer upserts a container; a zero id is assigned the next one.
func (s *InMemory) SaveContainer(_ context.Context, c *models.Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		s.nextCont++
		c.ID = s.nextCont
	} else if c.ID > s.nextCont {
		s.nextCont = c.ID
	}
	stored := *c
	s.containers[c.ID] = &stored
	return nil
}

func (s *InMemory) FindContainer(_ context.Context, containerID id.ContainerID) (*models.Container, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.containers[containerID]
	if !ok {
		return nil, fmt.Errorf("container %d: %w", containerID, sentinel.ErrNotFound)
	}
	out := *c
	return &out, nil
}

// resolved copies r and fills ScheduleYears. Caller holds the lock.
func (s *InMemory) resolved(r *models.Record) *models.Record {
	out := r.Clone()
	if sched, ok := s.schedules[r.ScheduleID]; ok {
		out.ScheduleYears = sched.Years
	}
	return out
}
