package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/jonboulle/clockwork"

	"github.com/and161185/values-journal/internal/errs"
	"github.com/and161185/values-journal/internal/model"
	"github.com/and161185/values-journal/internal/repository"
)

// EntryService defines owner-scoped journal operations.
type EntryService interface {
	// Add validates and persists one entry with its value tags.
	Add(ctx context.Context, owner, text string, ratings map[string]int32) (uuid.UUID, error)
	// Load returns every entry and tag owned by the given user.
	Load(ctx context.Context, owner string) ([]model.Entry, []model.Tag, error)
}

type EntryServiceImpl struct {
	repo  repository.EntryRepository
	clock clockwork.Clock

	mu    sync.Mutex
	cache map[string]*cachedJournal // read-through, keyed by owner
}

type cachedJournal struct {
	entries []model.Entry
	tags    []model.Tag
}

// NewEntryService constructs EntryService with required dependencies.
func NewEntryService(repo repository.EntryRepository, clock clockwork.Clock) *EntryServiceImpl {
	return &EntryServiceImpl{repo: repo, clock: clock, cache: map[string]*cachedJournal{}}
}

// Add persists one entry and its tags in a single repository transaction.
// Validation rules:
// - owner non-empty
// - text non-empty
// - each rating within [0, 99]
// Nothing is written when validation fails. The owner's cached reads are
// invalidated before Add returns, so the writer's next Load is never stale.
func (s *EntryServiceImpl) Add(ctx context.Context, owner, text string, ratings map[string]int32) (uuid.UUID, error) {
	if owner == "" {
		return uuid.Nil, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	if text == "" {
		return uuid.Nil, fmt.Errorf("%w: empty text", errs.ErrValidation)
	}
	for value, rating := range ratings {
		if rating < 0 || rating > 99 {
			return uuid.Nil, fmt.Errorf("%w: rating %d for %q outside [0,99]", errs.ErrValidation, rating, value)
		}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	entry := &model.Entry{
		ID:        id,
		Owner:     owner,
		CreatedAt: s.clock.Now().UTC(),
		Text:      text,
	}
	tags := make([]model.Tag, 0, len(ratings))
	for value, rating := range ratings {
		r := rating
		tags = append(tags, model.Tag{EntryID: id, Value: value, Rating: &r})
	}

	if err := s.repo.CreateEntry(ctx, entry, tags); err != nil {
		return uuid.Nil, fmt.Errorf("create entry: %w", err)
	}

	s.mu.Lock()
	delete(s.cache, owner)
	s.mu.Unlock()

	return id, nil
}

// Load returns the owner's journal, serving repeated reads from the cache
// until a write to the same owner invalidates it.
func (s *EntryServiceImpl) Load(ctx context.Context, owner string) ([]model.Entry, []model.Tag, error) {
	if owner == "" {
		return nil, nil, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}

	s.mu.Lock()
	if c, ok := s.cache[owner]; ok {
		s.mu.Unlock()
		return c.entries, c.tags, nil
	}
	s.mu.Unlock()

	entries, tags, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, nil, fmt.Errorf("load entries: %w", err)
	}

	s.mu.Lock()
	s.cache[owner] = &cachedJournal{entries: entries, tags: tags}
	s.mu.Unlock()

	return entries, tags, nil
}
