package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("record not found")

// FieldKind is the declared primitive kind of a schema field.
type FieldKind string

const (
	KindString  FieldKind = "string"
	KindNumber  FieldKind = "number"
	KindBoolean FieldKind = "boolean"
	KindArray   FieldKind = "array"
	KindObject  FieldKind = "object"
	// KindMixed accepts any value including null.
	KindMixed FieldKind = "mixed"
)

// Schema declares the shape of a collection's records. The auto-generated
// fields (id, createdAt, updatedAt) are implicit and must not be declared.
type Schema map[string]FieldKind

// Record is one schemaless JSON document keyed by its "id" field.
type Record map[string]any

// Auto-generated field names.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %q: %s", e.Field, e.Reason)
}

// Store hands out collections backed by one JSON document per entity type
// under a shared data directory.
type Store struct {
	dir    string
	logger *zap.SugaredLogger

	mu          sync.Mutex
	collections map[string]*Collection
}

func New(dir string, logger *zap.SugaredLogger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Store{
		dir:         dir,
		logger:      logger,
		collections: make(map[string]*Collection),
	}, nil
}

// Collection registers (or returns the already registered) collection for an
// entity type. The collection persists to <dir>/<name>.json.
func (s *Store) Collection(name string, schema Schema) *Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.collections[name]; ok {
		return c
	}

	path := filepath.Join(s.dir, name+".json")
	c := &Collection{
		name:   name,
		path:   path,
		schema: schema,
		logger: s.logger,
		flock:  flock.New(path + ".lock"),
	}
	s.collections[name] = c

	return c
}

// Collection is generic CRUD over one entity-type JSON document. The whole
// document is loaded on every operation and rewritten on every mutation,
// which is acceptable only because entity counts stay small. Writers are
// serialized by an in-process mutex plus an advisory file lock, so two
// concurrent mutations cannot lose each other's write.
type Collection struct {
	name   string
	path   string
	schema Schema
	logger *zap.SugaredLogger

	mu    sync.Mutex
	flock *flock.Flock
}

// Create validates data against the schema, injects id/createdAt/updatedAt
// and persists the new record. Every declared field must be present.
func (c *Collection) Create(data Record) (Record, error) {
	if err := c.validate(data, false); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.flock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", c.name, err)
	}
	defer c.flock.Unlock()

	records, err := c.loadAll()
	if err != nil {
		return nil, err
	}

	record := Record{}
	for k, v := range data {
		record[k] = v
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	record[FieldID] = uuid.NewString()
	record[FieldCreatedAt] = now
	record[FieldUpdatedAt] = now

	records[record[FieldID].(string)] = record
	if err := c.saveAll(records); err != nil {
		return nil, err
	}

	return record, nil
}

// Get returns the record with the given id or ErrNotFound.
func (c *Collection) Get(id string) (Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.flock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", c.name, err)
	}
	defer c.flock.Unlock()

	records, err := c.loadAll()
	if err != nil {
		return nil, err
	}

	record, ok := records[id]
	if !ok {
		return nil, ErrNotFound
	}

	return record, nil
}

// List returns all records matching the filter, oldest first. A nil filter
// matches everything.
func (c *Collection) List(filter func(Record) bool) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.flock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", c.name, err)
	}
	defer c.flock.Unlock()

	records, err := c.loadAll()
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(records))
	for _, record := range records {
		if filter == nil || filter(record) {
			out = append(out, record)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		ci, _ := out[i][FieldCreatedAt].(string)
		cj, _ := out[j][FieldCreatedAt].(string)
		if ci == cj {
			ii, _ := out[i][FieldID].(string)
			ij, _ := out[j][FieldID].(string)
			return ii < ij
		}
		return ci < cj
	})

	return out, nil
}

// Update merges a partial patch into the stored record and refreshes
// updatedAt. The auto-generated fields cannot be patched. updatedAt is
// guaranteed to strictly increase even on sub-nanosecond clock resolution.
func (c *Collection) Update(id string, patch Record) (Record, error) {
	if err := c.validate(patch, true); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.flock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", c.name, err)
	}
	defer c.flock.Unlock()

	records, err := c.loadAll()
	if err != nil {
		return nil, err
	}

	record, ok := records[id]
	if !ok {
		return nil, ErrNotFound
	}

	for k, v := range patch {
		record[k] = v
	}

	now := time.Now().UTC()
	if prev, err := time.Parse(time.RFC3339Nano, stringField(record, FieldUpdatedAt)); err == nil && !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	record[FieldUpdatedAt] = now.Format(time.RFC3339Nano)

	records[id] = record
	if err := c.saveAll(records); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes the record with the given id or returns ErrNotFound.
func (c *Collection) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.flock.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", c.name, err)
	}
	defer c.flock.Unlock()

	records, err := c.loadAll()
	if err != nil {
		return err
	}

	if _, ok := records[id]; !ok {
		return ErrNotFound
	}
	delete(records, id)

	return c.saveAll(records)
}

func (c *Collection) validate(data Record, partial bool) error {
	for field := range data {
		switch field {
		case FieldID, FieldCreatedAt, FieldUpdatedAt:
			return &ValidationError{Field: field, Reason: "field is auto-generated"}
		}

		kind, ok := c.schema[field]
		if !ok {
			return &ValidationError{Field: field, Reason: "unknown field"}
		}

		if !matchesKind(data[field], kind) {
			return &ValidationError{Field: field, Reason: fmt.Sprintf("expected %s", kind)}
		}
	}

	if partial {
		return nil
	}

	for field := range c.schema {
		if _, ok := data[field]; !ok {
			return &ValidationError{Field: field, Reason: "field is required"}
		}
	}

	return nil
}

func matchesKind(value any, kind FieldKind) bool {
	if kind == KindMixed {
		return true
	}
	if value == nil {
		return false
	}

	switch kind {
	case KindString:
		_, ok := value.(string)
		return ok
	case KindBoolean:
		_, ok := value.(bool)
		return ok
	case KindNumber:
		switch reflect.ValueOf(value).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return true
		}
		return false
	case KindArray:
		k := reflect.ValueOf(value).Kind()
		return k == reflect.Slice || k == reflect.Array
	case KindObject:
		k := reflect.ValueOf(value).Kind()
		return k == reflect.Map || k == reflect.Struct
	}

	return false
}

func (c *Collection) loadAll() (map[string]Record, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]Record{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", c.path, err)
	}

	records := map[string]Record{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", c.path, err)
		}
	}

	return records, nil
}

// saveAll rewrites the whole document through a temp file + rename so a
// crashed write never leaves a truncated document behind.
func (c *Collection) saveAll(records map[string]Record) error {
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.name, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), c.name+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", c.name, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", c.name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", c.name, err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", c.path, err)
	}

	return nil
}

func stringField(record Record, field string) string {
	s, _ := record[field].(string)
	return s
}

// Decode converts a raw record into a typed model through a JSON round trip.
func Decode(record Record, out any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}

// Encode converts a typed model into a raw record, dropping the
// auto-generated fields so the result can be passed to Create or Update.
func Encode(in any) (Record, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	delete(record, FieldID)
	delete(record, FieldCreatedAt)
	delete(record, FieldUpdatedAt)

	return record, nil
}
