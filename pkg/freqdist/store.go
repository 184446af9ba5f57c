package freqdist

import "sync"

// Store caches parsed tables so each source is read from disk at most once
// per process. It replaces the usual global cache singleton: the orchestrator
// constructs one Store and passes it down, so tests get deterministic,
// isolated caches.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*Table
	opts   []Option
}

// NewStore creates an empty table store. Options are forwarded to every Load.
func NewStore(opts ...Option) *Store {
	return &Store{
		tables: make(map[string]*Table),
		opts:   opts,
	}
}

// Load returns the table for path, parsing it on first access and serving
// the cached table afterwards. Concurrent callers for the same path parse at
// most once.
func (s *Store) Load(path string) (*Table, error) {
	s.mu.RLock()
	t, ok := s.tables[path]
	s.mu.RUnlock()
	if ok {
		return t, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tables[path]; ok {
		return t, nil
	}

	t, err := Load(path, s.opts...)
	if err != nil {
		return nil, err
	}
	s.tables[path] = t
	return t, nil
}

// Len reports how many tables are cached.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

// LoadAll resolves a manifest into its three tables.
func (s *Store) LoadAll(m Manifest) (*TableSet, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	firstMale, err := s.Load(m.FirstMale)
	if err != nil {
		return nil, err
	}
	firstFemale, err := s.Load(m.FirstFemale)
	if err != nil {
		return nil, err
	}
	last, err := s.Load(m.Last)
	if err != nil {
		return nil, err
	}

	return &TableSet{FirstMale: firstMale, FirstFemale: firstFemale, Last: last}, nil
}

// TableSet holds the three loaded distributions a generator needs.
type TableSet struct {
	FirstMale   *Table
	FirstFemale *Table
	Last        *Table
}

// FirstNames unions the male and female tables into the single first-name
// population used for sampling.
func (ts *TableSet) FirstNames() *Table {
	return Merge(ts.FirstMale, ts.FirstFemale)
}
