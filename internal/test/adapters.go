package test

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/salesorders/internal/domain/errors"
	"github.com/polkiloo/salesorders/internal/domain/model"
)

// ExtractorStub returns predefined items.
type ExtractorStub struct {
	Items []model.ExtractedItem
	Err   error
	Calls int
}

// Extract returns configured items or error.
func (s *ExtractorStub) Extract(ctx context.Context, filename string, data []byte) ([]model.ExtractedItem, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// MatcherStub answers batch match calls from a fixed table.
type MatcherStub struct {
	Results map[string][]model.MatchCandidate
	Err     error
	// Block makes calls wait for context cancellation.
	Block bool

	mu      sync.Mutex
	Queries [][]string
}

// MatchBatch records queries and answers from Results.
func (s *MatcherStub) MatchBatch(ctx context.Context, queries []string) (map[string][]model.MatchCandidate, error) {
	s.mu.Lock()
	s.Queries = append(s.Queries, append([]string(nil), queries...))
	s.mu.Unlock()

	if s.Block {
		<-ctx.Done()
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrMatchUnavailable, ctx.Err())
	}
	if s.Err != nil {
		return nil, s.Err
	}
	out := make(map[string][]model.MatchCandidate, len(queries))
	for _, q := range queries {
		if candidates, ok := s.Results[q]; ok {
			out[q] = candidates
		}
	}
	return out, nil
}

// FileStoreStub keeps uploads in memory.
type FileStoreStub struct {
	mu      sync.Mutex
	Files   map[string][]byte
	Removed []string
	SaveErr error
}

// NewFileStoreStub constructs empty stub store.
func NewFileStoreStub() *FileStoreStub {
	return &FileStoreStub{Files: make(map[string][]byte)}
}

// Save stores data under a generated name.
func (s *FileStoreStub) Save(originalName string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	if s.Files == nil {
		s.Files = make(map[string][]byte)
	}
	name := uuid.NewString() + ".pdf"
	s.Files[name] = append([]byte(nil), data...)
	return name, nil
}

// Remove deletes stored data.
func (s *FileStoreStub) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Files, name)
	s.Removed = append(s.Removed, name)
	return nil
}

// CatalogStub resolves entries by id or name.
type CatalogStub struct {
	Entries []model.CatalogItem
}

// Lookup finds an entry by id or name.
func (s CatalogStub) Lookup(key string) (model.CatalogItem, bool) {
	for _, e := range s.Entries {
		if e.ID == key || e.Name == key {
			return e, true
		}
	}
	return model.CatalogItem{}, false
}

// Items returns all entries.
func (s CatalogStub) Items() []model.CatalogItem {
	return s.Entries
}
