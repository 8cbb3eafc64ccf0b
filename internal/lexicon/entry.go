package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one rendered word: the transcription it came from, its
// syllabified form, and the spelling that was produced.
type Entry struct {
	ID        string
	IPA       string
	Syllables string
	Spelling  string
	CreatedAt time.Time
}

// ErrNotFound is returned by Get when no entry has the requested ID.
var ErrNotFound = errors.New("lexicon: entry not found")

// Add logs one rendering and returns it with its generated ID.
// The same (ipa, spelling) pair may be logged any number of times;
// each call is a distinct entry.
func (s *Store) Add(ctx context.Context, ipa, syllables, spelling string) (Entry, error) {
	e := Entry{
		ID:        uuid.NewString(),
		IPA:       ipa,
		Syllables: syllables,
		Spelling:  spelling,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO entries (id, ipa, syllables, spelling)
		VALUES (?, ?, ?, ?)
		RETURNING created_at
	`, e.ID, e.IPA, e.Syllables, e.Spelling).Scan(&timeScanner{&e.CreatedAt})
	if err != nil {
		return Entry{}, fmt.Errorf("add entry: %w", err)
	}

	return e, nil
}

// Get returns the entry with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Entry, error) {
	var e Entry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, ipa, syllables, spelling, created_at
		FROM entries WHERE id = ?
	`, id).Scan(&e.ID, &e.IPA, &e.Syllables, &e.Spelling, &timeScanner{&e.CreatedAt})
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// List returns entries newest first. An empty ipa matches everything;
// limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, ipa string, limit int) ([]Entry, error) {
	query := `
		SELECT id, ipa, syllables, spelling, created_at
		FROM entries
	`
	var args []any
	if ipa != "" {
		query += " WHERE ipa = ?"
		args = append(args, ipa)
	}
	query += " ORDER BY created_at DESC, id DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.IPA, &e.Syllables, &e.Spelling, &timeScanner{&e.CreatedAt}); err != nil {
			return nil, fmt.Errorf("list entries: scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// Spellings returns the distinct spellings logged for a transcription,
// most frequent first. Useful for reviewing what the randomized rules
// have actually produced for a word.
func (s *Store) Spellings(ctx context.Context, ipa string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT spelling FROM entries
		WHERE ipa = ?
		GROUP BY spelling
		ORDER BY COUNT(*) DESC, spelling
	`, ipa)
	if err != nil {
		return nil, fmt.Errorf("list spellings: %w", err)
	}
	defer rows.Close()

	var spellings []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("list spellings: scan: %w", err)
		}
		spellings = append(spellings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spellings: %w", err)
	}

	return spellings, nil
}

// timeScanner reads the TEXT timestamps schema.sql writes.
type timeScanner struct {
	t *time.Time
}

func (ts *timeScanner) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*ts.t = x
		return nil
	case string:
		t, err := time.Parse("2006-01-02T15:04:05.999Z", x)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", x, err)
		}
		*ts.t = t
		return nil
	default:
		return fmt.Errorf("unexpected timestamp type %T", v)
	}
}
