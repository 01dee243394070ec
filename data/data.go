// Package data saves small settings records between runs.
//
// Every record type implements [Persistent] and is stored as yaml at
// <Store.Dir>/<Path()>.yaml. Loading never fails: a missing or unreadable
// file yields the type's default value.
package data

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDir is where records are stored unless configured otherwise.
const DefaultDir = ".data"

const fileExt = ".yaml"

// Persistent is implemented by records that can be saved. Path names the
// file without directory or extension.
type Persistent interface {
	Path() string
}

// Defaulter is implemented by records whose zero value is not their default.
type Defaulter interface {
	Default()
}

type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{Dir: dir}
}

// Init creates the store directory. Failure is logged and otherwise ignored;
// later saves will report their own errors.
func (s *Store) Init() {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		log.Printf("data: couldn't create the save directory %s: %v", s.Dir, err)
	}
}

// File returns the path a record is stored at.
func (s *Store) File(p Persistent) string {
	return filepath.Join(s.Dir, p.Path()+fileExt)
}

// IsRecordFile reports whether path looks like a stored record.
func IsRecordFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), fileExt)
}

// Load reads a record from disk, or returns its default value.
func Load[T any, P interface {
	*T
	Persistent
}](s *Store) T {
	var v T
	Reload[T, P](s, &v)
	return v
}

// Reload overwrites v with the saved value, or with the default when nothing
// valid is saved.
func Reload[T any, P interface {
	*T
	Persistent
}](s *Store, v *T) {
	fresh := defaultOf[T, P]()
	raw, err := os.ReadFile(s.File(P(&fresh)))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("data: read %s: %v", s.File(P(&fresh)), err)
		}
		*v = fresh
		return
	}
	if err := yaml.Unmarshal(raw, &fresh); err != nil {
		log.Printf("data: decode %s, using defaults: %v", s.File(P(v)), err)
		*v = defaultOf[T, P]()
		return
	}
	*v = fresh
}

// Persist serializes v and writes it to disk.
func Persist[T any, P interface {
	*T
	Persistent
}](s *Store, v *T) error {
	name := P(v).Path()
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("data: serialize %s: %w", name, err)
	}
	if err := os.WriteFile(s.File(P(v)), raw, 0o644); err != nil {
		return fmt.Errorf("data: save %s: %w", name, err)
	}
	return nil
}

// Update applies fn to v and persists the result.
func Update[T any, P interface {
	*T
	Persistent
}](s *Store, v *T, fn func(*T)) error {
	fn(v)
	return Persist[T, P](s, v)
}

// Reset restores v to its default and persists it.
func Reset[T any, P interface {
	*T
	Persistent
}](s *Store, v *T) error {
	*v = defaultOf[T, P]()
	return Persist[T, P](s, v)
}

func defaultOf[T any, P interface {
	*T
	Persistent
}]() T {
	var v T
	if d, ok := any(&v).(Defaulter); ok {
		d.Default()
	}
	return v
}
