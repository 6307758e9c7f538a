// Package config persists named full-form configurations. All records live
// in one JSON mapping name -> record under a single storage key; every
// operation is a read-modify-write of the whole mapping, which is what makes
// single-name operations all-or-nothing on this storage model.
package config

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"schemaforge/pkg/models"
	"schemaforge/pkg/storage"
)

const storageKey = "schemaConfigs"

var (
	ErrEmptyName = errors.New("configuration name is required")
	ErrNotFound  = errors.New("configuration not found")
)

// Store is the sole writer of its storage key. The mutex serializes the
// read-modify-write cycle within the process.
type Store struct {
	mu sync.Mutex
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) readAll(ctx context.Context) (map[string]models.NamedConfiguration, error) {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("read configurations: %w", err)
	}
	configs := make(map[string]models.NamedConfiguration)
	if !ok {
		return configs, nil
	}
	if err := json.Unmarshal([]byte(raw), &configs); err != nil {
		return nil, fmt.Errorf("decode configurations: %w", err)
	}
	return configs, nil
}

func (s *Store) writeAll(ctx context.Context, configs map[string]models.NamedConfiguration) error {
	b, err := json.Marshal(configs)
	if err != nil {
		return fmt.Errorf("encode configurations: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, string(b)); err != nil {
		return fmt.Errorf("write configurations: %w", err)
	}
	return nil
}

// Save stores the snapshot under the trimmed name, silently overwriting any
// existing record. The record ID survives overwrites; the timestamp is the
// save time.
func (s *Store) Save(ctx context.Context, name string, state models.FormState) (models.NamedConfiguration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NamedConfiguration{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return models.NamedConfiguration{}, err
	}

	id := uuid.NewString()
	if old, ok := configs[name]; ok && old.ID != "" {
		id = old.ID
	}

	rec := models.NamedConfiguration{
		ID:        id,
		Name:      name,
		Timestamp: time.Now().UTC(),
		Selected:  state.Selected,
		Data:      state.Data,
	}
	configs[name] = rec

	if err := s.writeAll(ctx, configs); err != nil {
		return models.NamedConfiguration{}, err
	}
	return rec, nil
}

func (s *Store) Load(ctx context.Context, name string) (models.NamedConfiguration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NamedConfiguration{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return models.NamedConfiguration{}, err
	}
	rec, ok := configs[name]
	if !ok {
		return models.NamedConfiguration{}, ErrNotFound
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := configs[name]; !ok {
		return ErrNotFound
	}
	delete(configs, name)
	return s.writeAll(ctx, configs)
}

// List returns the stored names, sorted. Empty is a valid result.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
