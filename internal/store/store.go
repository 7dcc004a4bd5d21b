// Package store persists request history and the translation memory in
// SQLite. Memory lookups key on the NFC-normalized, lowercased source
// sentence so resubmissions of the same sentence hit the cache.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
	_ "modernc.org/sqlite"

	"github.com/akanlabs/nkyerease/internal"
)

type Store struct {
	db *sql.DB
}

// MemoryEntry is one cached translation, exposed for the history command.
type MemoryEntry struct {
	SourceText  string
	TwiText     string
	ServiceUsed string
	UsageCount  int
	LastUsed    time.Time
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS translation_requests (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		debug BOOLEAN DEFAULT FALSE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS translation_memory (
		id TEXT PRIMARY KEY,
		source_text TEXT NOT NULL,
		twi_text TEXT NOT NULL,
		service_used TEXT,
		usage_count INTEGER DEFAULT 1,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(source_text)
	);

	CREATE INDEX IF NOT EXISTS idx_memory_lookup ON translation_memory(source_text);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) SaveRequest(ctx context.Context, req internal.TranslationRequest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_requests (id, source_text, debug, created_at) VALUES (?, ?, ?, ?)`,
		req.ID, req.SourceText, req.Debug, req.Timestamp)
	return err
}

// GetCached returns the remembered Twi text for sourceText, bumping its
// usage counters on a hit.
func (s *Store) GetCached(ctx context.Context, sourceText string) (string, string, bool, error) {
	key := normalizeKey(sourceText)

	var twiText, serviceUsed string
	err := s.db.QueryRowContext(ctx,
		`SELECT twi_text, COALESCE(service_used, '') FROM translation_memory WHERE source_text = ?`,
		key).Scan(&twiText, &serviceUsed)
	if err == sql.ErrNoRows {
		return "", "", false, nil
	}
	if err != nil {
		return "", "", false, err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE translation_memory SET usage_count = usage_count + 1, last_used = ? WHERE source_text = ?`,
		time.Now(), key)

	return twiText, serviceUsed, true, err
}

func (s *Store) SaveToMemory(ctx context.Context, sourceText, twiText, serviceUsed string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO translation_memory (id, source_text, twi_text, service_used, usage_count, last_used, created_at)
		 VALUES (?, ?, ?, ?, 1, ?, ?)
		 ON CONFLICT(source_text) DO UPDATE SET twi_text = excluded.twi_text, service_used = excluded.service_used, last_used = excluded.last_used`,
		uuid.NewString(), normalizeKey(sourceText), twiText, serviceUsed, time.Now(), time.Now())
	return err
}

func (s *Store) ListMemory(ctx context.Context) ([]MemoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source_text, twi_text, COALESCE(service_used, ''), usage_count, last_used
		 FROM translation_memory ORDER BY last_used DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []MemoryEntry
	for rows.Next() {
		var e MemoryEntry
		if err := rows.Scan(&e.SourceText, &e.TwiText, &e.ServiceUsed, &e.UsageCount, &e.LastUsed); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) ClearMemory(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM translation_memory`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func normalizeKey(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}
