package ruleconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	v "github.com/Gobd/fieldvalidation"
)

// ErrDuplicateForm is returned when two forms share a name.
var ErrDuplicateForm = errors.New("duplicate form")

// Store holds named rule sets. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	forms map[string]v.RuleSet
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{forms: make(map[string]v.RuleSet)}
}

// Add registers rules under name.
func (s *Store) Add(name string, rules v.RuleSet) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("ruleconfig: %w", ErrEmptyForm)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[name]; ok {
		return fmt.Errorf("ruleconfig: %w %q", ErrDuplicateForm, name)
	}
	s.forms[name] = rules
	return nil
}

// LoadFS walks fsys and adds every form found in .yaml, .yml and .json
// files. A nil fsys is a no-op.
func (s *Store) LoadFS(fsys fs.FS, reg Registry) error {
	if fsys == nil {
		return nil
	}
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isRuleFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("ruleconfig: read %s: %w", path, err)
		}
		form, err := Parse(data, reg)
		if err != nil {
			return fmt.Errorf("%w (file %s)", err, path)
		}
		if err := s.Add(form.Name, form.Rules); err != nil {
			return fmt.Errorf("%w (file %s)", err, path)
		}
		return nil
	})
}

// Form returns the rule set registered under name.
func (s *Store) Form(name string) (v.RuleSet, bool) {
	if s == nil {
		return v.RuleSet{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rules, ok := s.forms[name]
	return rules, ok
}

// Names returns the registered form names sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.forms))
	for name := range s.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func isRuleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}
