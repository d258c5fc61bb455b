package history

import (
	"fmt"
	"sync"

	"github.com/Margii4/weimaraner-faq-bot/internal/lang"
)

// Entry is one answered question.
type Entry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Record is everything persisted per user: the chosen response language and
// the bounded recent-interaction log, oldest first.
type Record struct {
	Lang    lang.Code `json:"lang,omitempty"`
	Entries []Entry   `json:"entries"`
}

// Repository abstracts persistence of the full user mapping.
// Load is called once at startup; Save after every mutation.
// Implementations must not leave a partially written state readable
// by a later Load.
type Repository interface {
	Load() (map[string]Record, error)
	Save(map[string]Record) error
}

// Store keeps per-user records in memory and writes through to a Repository.
// A single mutex serializes read-modify-write, so concurrent messages from
// the same user cannot race the truncation.
type Store struct {
	mu    sync.Mutex
	limit int
	repo  Repository
	users map[string]Record
}

func NewStore(repo Repository, limit int) (*Store, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("history limit must be positive, got %d", limit)
	}
	users, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if users == nil {
		users = make(map[string]Record)
	}
	return &Store{limit: limit, repo: repo, users: users}, nil
}

// Append records one answered question and truncates the log to the most
// recent limit entries before persisting.
func (s *Store) Append(userID, question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.users[userID]
	rec.Entries = append(rec.Entries, Entry{Question: question, Answer: answer})
	if len(rec.Entries) > s.limit {
		rec.Entries = rec.Entries[len(rec.Entries)-s.limit:]
	}
	s.users[userID] = rec
	return s.save()
}

// Clear empties the user's log but keeps the record (and language choice).
func (s *Store) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.users[userID]
	rec.Entries = []Entry{}
	s.users[userID] = rec
	return s.save()
}

// Get returns a copy of the user's entries, oldest first.
func (s *Store) Get(userID string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	es := s.users[userID].Entries
	out := make([]Entry, len(es))
	copy(out, es)
	return out
}

// RecentQuestions returns up to n most recent questions, oldest first.
func (s *Store) RecentQuestions(userID string, n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	es := s.users[userID].Entries
	if len(es) > n {
		es = es[len(es)-n:]
	}
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Question)
	}
	return out
}

// Lang returns the user's stored language preference, if any.
func (s *Store) Lang(userID string) (lang.Code, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[userID]
	if !ok || rec.Lang == "" {
		return "", false
	}
	return rec.Lang, true
}

// SetLang stores and persists the user's language preference.
func (s *Store) SetLang(userID string, code lang.Code) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.users[userID]
	rec.Lang = code
	s.users[userID] = rec
	return s.save()
}

func (s *Store) save() error {
	if err := s.repo.Save(s.users); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
