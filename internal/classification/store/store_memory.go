package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"retention/internal/classification/models"
	id "retention/pkg/domain"
	"retention/pkg/platform/sentinel"
)

// InMemory keeps classifications and the parent→child adjacency in maps.
// Children are kept as sets so repeated AddChild calls are idempotent.
type InMemory struct {
	mu              sync.RWMutex
	classifications map[id.ClassificationID]*models.Classification
	children        map[id.ClassificationID]map[id.ClassificationID]struct{}
	hasParent       map[id.ClassificationID]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{
		classifications: make(map[id.ClassificationID]*models.Classification),
		children:        make(map[id.ClassificationID]map[id.ClassificationID]struct{}),
		hasParent:       make(map[id.ClassificationID]struct{}),
	}
}

func (s *InMemory) Save(_ context.Context, c *models.Classification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *c
	s.classifications[c.ID] = &stored
	return nil
}

// AddChild records child under parent. Both must already exist.
func (s *InMemory) AddChild(_ context.Context, parent, child id.ClassificationID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.classifications[parent]; !ok {
		return fmt.Errorf("parent %d: %w", parent, sentinel.ErrNotFound)
	}
	if _, ok := s.classifications[child]; !ok {
		return fmt.Errorf("child %d: %w", child, sentinel.ErrNotFound)
	}
	set, ok := s.children[parent]
	if !ok {
		set = make(map[id.ClassificationID]struct{})
		s.children[parent] = set
	}
	set[child] = struct{}{}
	s.hasParent[child] = struct{}{}
	return nil
}

func (s *InMemory) FindByID(_ context.Context, classificationID id.ClassificationID) (*models.Classification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.classifications[classificationID]; ok {
		found := *c
		return &found, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByName matches case-insensitively.
func (s *InMemory) FindByName(_ context.Context, name string) (*models.Classification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.classifications {
		if strings.EqualFold(c.Name, name) {
			found := *c
			return &found, nil
		}
	}
	return nil, sentinel.ErrNotFound
}

// FindChildren returns child ids in ascending order. An unknown parent has no
// children rather than being an error.
func (s *InMemory) FindChildren(_ context.Context, parent id.ClassificationID) ([]id.ClassificationID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]id.ClassificationID, 0, len(s.children[parent]))
	for child := range s.children[parent] {
		ids = append(ids, child)
	}
	slices.Sort(ids)
	return ids, nil
}

// Roots returns the candidate roots: classifications with no parent entry.
func (s *InMemory) Roots(_ context.Context) ([]*models.Classification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roots []*models.Classification
	for cid, c := range s.classifications {
		if _, ok := s.hasParent[cid]; ok {
			continue
		}
		found := *c
		roots = append(roots, &found)
	}
	slices.SortFunc(roots, func(a, b *models.Classification) int { return cmp.Compare(a.ID, b.ID) })
	return roots, nil
}
