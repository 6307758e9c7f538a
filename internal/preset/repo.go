// Package preset persists named business presets: the organization and
// website subset of a configuration. Presets use their own storage key,
// independent from configurations, with the same whole-mapping
// read-modify-write contract, and double as the file interchange format.
package preset

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"schemaforge/pkg/models"
	"schemaforge/pkg/storage"
)

const storageKey = "schemaPresets"

var (
	ErrEmptyName     = errors.New("preset name is required")
	ErrNotFound      = errors.New("preset not found")
	ErrExists        = errors.New("preset already exists")
	ErrInvalidPreset = errors.New("invalid preset format")
)

type Store struct {
	mu sync.Mutex
	kv storage.KV
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) readAll(ctx context.Context) (map[string]models.NamedPreset, error) {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	presets := make(map[string]models.NamedPreset)
	if !ok {
		return presets, nil
	}
	if err := json.Unmarshal([]byte(raw), &presets); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	return presets, nil
}

func (s *Store) writeAll(ctx context.Context, presets map[string]models.NamedPreset) error {
	b, err := json.Marshal(presets)
	if err != nil {
		return fmt.Errorf("encode presets: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, string(b)); err != nil {
		return fmt.Errorf("write presets: %w", err)
	}
	return nil
}

// Save stores the organization/website subset under the trimmed name.
// Overwrite-confirmation for an existing name is a UI concern; the store
// writes unconditionally. The ID survives overwrites.
func (s *Store) Save(ctx context.Context, name string, org models.OrganizationFields, site models.WebSiteFields) (models.NamedPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NamedPreset{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.readAll(ctx)
	if err != nil {
		return models.NamedPreset{}, err
	}

	id := uuid.NewString()
	if old, ok := presets[name]; ok && old.ID != "" {
		id = old.ID
	}

	rec := models.NamedPreset{
		ID:           id,
		Name:         name,
		Timestamp:    time.Now().UTC(),
		Organization: org,
		Website:      site,
	}
	presets[name] = rec

	if err := s.writeAll(ctx, presets); err != nil {
		return models.NamedPreset{}, err
	}
	return rec, nil
}

func (s *Store) Load(ctx context.Context, name string) (models.NamedPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NamedPreset{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.readAll(ctx)
	if err != nil {
		return models.NamedPreset{}, err
	}
	rec, ok := presets[name]
	if !ok {
		return models.NamedPreset{}, ErrNotFound
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

	presets, err := s.readAll(ctx)
	if err != nil {
		return err
	}
	if _, ok := presets[name]; !ok {
		return ErrNotFound
	}
	delete(presets, name)
	return s.writeAll(ctx, presets)
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ExportFilename derives the download filename for a preset name.
func ExportFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_") + "_preset.json"
}

// Export serializes one named preset as a standalone pretty-printed JSON
// document for file download.
func (s *Store) Export(ctx context.Context, name string) ([]byte, string, error) {
	rec, err := s.Load(ctx, name)
	if err != nil {
		return nil, "", err
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encode preset: %w", err)
	}
	return b, ExportFilename(rec.Name), nil
}

// importedPreset mirrors the interchange document. Pointer sub-objects
// distinguish absent keys from empty ones during validation.
type importedPreset struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	Timestamp    time.Time                  `json:"timestamp"`
	Organization *models.OrganizationFields `json:"organization"`
	Website      *models.WebSiteFields      `json:"website"`
}

// Import parses the raw document and stores it. The document must carry a
// non-empty name and both organization and website objects, otherwise
// ErrInvalidPreset. On a name collision the caller decides: without
// overwrite the import fails with ErrExists and nothing changes; with it
// the write is unconditional. A failed import never mutates the mapping.
func (s *Store) Import(ctx context.Context, raw []byte, overwrite bool) (models.NamedPreset, error) {
	var in importedPreset
	if err := json.Unmarshal(raw, &in); err != nil {
		return models.NamedPreset{}, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || in.Organization == nil || in.Website == nil {
		return models.NamedPreset{}, fmt.Errorf("%w: name, organization and website are required", ErrInvalidPreset)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	presets, err := s.readAll(ctx)
	if err != nil {
		return models.NamedPreset{}, err
	}

	existing, collision := presets[name]
	if collision && !overwrite {
		return models.NamedPreset{}, ErrExists
	}

	rec := models.NamedPreset{
		ID:           in.ID,
		Name:         name,
		Timestamp:    in.Timestamp,
		Organization: *in.Organization,
		Website:      *in.Website,
	}
	if collision && existing.ID != "" {
		rec.ID = existing.ID
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	presets[name] = rec

	if err := s.writeAll(ctx, presets); err != nil {
		return models.NamedPreset{}, err
	}
	return rec, nil
}
