// Package store provides the identity-mapped entity cache shared by every
// client component. The store holds at most one instance per (type, id);
// pushing a record for a cached identity merges the record's fields into the
// existing instance and returns that same instance.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
)

var (
	// ErrMissingIdentity is returned when a record lacks its type's identity
	// field.
	ErrMissingIdentity = errors.New("record has no identity")

	// ErrUnknownType is returned for entity types that were never registered.
	ErrUnknownType = errors.New("unknown entity type")
)

// Entity is anything the store can hold.
type Entity interface {
	EntityID() string
}

// Record is a normalized raw record, ready to be pushed.
type Record struct {
	Type       Type
	ID         string
	Attributes map[string]any
}

type key struct {
	typ Type
	id  string
}

// Store is an identity-mapped cache of entities. Its methods are safe for
// concurrent use and concurrent pushes for the same identity are applied in
// arrival order, so the last push wins. Pushes merge into the returned
// instances in place: an instance must not be read while its identity may be
// pushed from another goroutine.
type Store struct {
	logger hclog.Logger

	mu       sync.RWMutex
	kinds    map[Type]Kind
	entities map[key]Entity
}

// New creates a store with every built-in entity type registered.
func New(logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Store{
		logger:   logger.Named("store"),
		kinds:    make(map[Type]Kind, len(defaultKinds)),
		entities: make(map[key]Entity),
	}
	for t, k := range defaultKinds {
		s.kinds[t] = k
	}

	return s
}

// Register adds or replaces an entity type.
func (s *Store) Register(t Type, k Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kinds[t] = k
}

func (s *Store) kind(t Type) (Kind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	k, ok := s.kinds[t]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return k, nil
}

// Normalize canonicalizes the keys of raw to lower camel case and extracts
// the record's identity. It has no side effects on the store.
func (s *Store) Normalize(t Type, raw map[string]any) (Record, error) {
	k, err := s.kind(t)
	if err != nil {
		return Record{}, err
	}

	attrs := make(map[string]any, len(raw)+1)
	for name, v := range raw {
		attrs[strcase.ToLowerCamel(name)] = v
	}

	var id string
	for _, field := range k.identityFields() {
		if v, ok := identityString(attrs[field]); ok && v != "" {
			id = v
			break
		}
	}
	if id == "" {
		return Record{}, fmt.Errorf("%w: %s record lacks %s",
			ErrMissingIdentity, t, strings.Join(k.identityFields(), " or "))
	}
	attrs["id"] = id

	return Record{Type: t, ID: id, Attributes: attrs}, nil
}

// Push inserts rec, or merges it into the cached instance with the same
// identity, and returns the canonical instance.
func (s *Store) Push(rec Record) (Entity, error) {
	k, err := s.kind(rec.Type)
	if err != nil {
		return nil, err
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("%w: %s record", ErrMissingIdentity, rec.Type)
	}
	if k.New == nil {
		return nil, fmt.Errorf("%s entities are derived and cannot be pushed from records", rec.Type)
	}

	// Decode into a scratch instance first so that a malformed record never
	// leaves a cached instance half merged.
	fresh := k.New()
	if err := decode(rec.Attributes, fresh); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", rec.Type, rec.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := key{typ: rec.Type, id: rec.ID}
	existing, ok := s.entities[id]
	if !ok {
		s.entities[id] = fresh
		s.logger.Trace("pushed entity", "type", rec.Type, "id", rec.ID)
		return fresh, nil
	}

	if err := decode(rec.Attributes, existing); err != nil {
		return nil, fmt.Errorf("failed to merge %s %s: %w", rec.Type, rec.ID, err)
	}
	s.logger.Trace("merged entity", "type", rec.Type, "id", rec.ID)

	return existing, nil
}

// Get returns the cached instance for (t, id).
func (s *Store) Get(t Type, id string) (Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[key{typ: t, id: id}]
	return e, ok
}

// Len returns the number of cached instances of type t.
func (s *Store) Len(t Type) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for k := range s.entities {
		if k.typ == t {
			n++
		}
	}
	return n
}

// Clear evicts every cached instance. Registered types are kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entities)
	s.entities = make(map[key]Entity)
	s.logger.Debug("cleared store", "evicted", n)
}

// PushAs normalizes raw as type t, pushes it, and returns the canonical
// instance as T.
func PushAs[T Entity](s *Store, t Type, raw map[string]any) (T, error) {
	var zero T

	rec, err := s.Normalize(t, raw)
	if err != nil {
		return zero, err
	}
	e, err := s.Push(rec)
	if err != nil {
		return zero, err
	}

	typed, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("%s %s is cached as %T", t, rec.ID, e)
	}
	return typed, nil
}

// GetAs returns the cached instance for (t, id) as T.
func GetAs[T Entity](s *Store, t Type, id string) (T, bool) {
	var zero T

	e, ok := s.Get(t, id)
	if !ok {
		return zero, false
	}
	typed, ok := e.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Upsert stores a derived entity built in code. When an instance with the
// same identity is cached, its fields are replaced by v's and the cached
// instance is returned.
func Upsert[T any, PT interface {
	*T
	Entity
}](s *Store, t Type, v PT) (PT, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot upsert nil %s", t)
	}
	if _, err := s.kind(t); err != nil {
		return nil, err
	}
	id := v.EntityID()
	if id == "" {
		return nil, fmt.Errorf("%w: %s entity", ErrMissingIdentity, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{typ: t, id: id}
	e, ok := s.entities[k]
	if !ok {
		s.entities[k] = v
		return v, nil
	}

	existing, ok := e.(PT)
	if !ok {
		return nil, fmt.Errorf("%s %s is cached as %T", t, id, e)
	}
	if existing != v {
		*existing = *v
	}
	return existing, nil
}
