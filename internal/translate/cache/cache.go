// Package cache is a SQLite-backed store of past translations so repeated
// catalog runs do not spend provider budget on strings already translated.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `CREATE TABLE IF NOT EXISTS translations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	source_text TEXT NOT NULL,
	src_lang TEXT NOT NULL,
	tgt_lang TEXT NOT NULL,
	translation TEXT NOT NULL,
	created_at TEXT NOT NULL,
	UNIQUE(source_text, src_lang, tgt_lang)
)`

// Store implements translate.Cache on a local SQLite database.
type Store struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// Open opens (creating if needed) the cache database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("make cache dir: %w", err)
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache schema: %w", err)
	}
	return &Store{db: db, sq: sq.StatementBuilder}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Get returns a cached translation, or ("", false) on miss. Lookup errors are
// treated as misses; the cache is best effort.
func (s *Store) Get(ctx context.Context, text, srcLang, tgtLang string) (string, bool) {
	q := s.sq.Select("translation").
		From("translations").
		Where(sq.Eq{
			"source_text": text,
			"src_lang":    srcLang,
			"tgt_lang":    tgtLang,
		}).
		Limit(1)
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return "", false
	}
	var translation string
	if err := s.db.QueryRowContext(ctx, sqlStr, args...).Scan(&translation); err != nil {
		return "", false
	}
	return translation, true
}

// Put stores a translation, replacing any prior entry for the same key.
func (s *Store) Put(ctx context.Context, text, srcLang, tgtLang, translation string) error {
	q := s.sq.Insert("translations").
		Columns("source_text", "src_lang", "tgt_lang", "translation", "created_at").
		Values(text, srcLang, tgtLang, translation, time.Now().UTC().Format(time.RFC3339)).
		Suffix("ON CONFLICT(source_text, src_lang, tgt_lang) DO UPDATE SET translation=excluded.translation")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build cache insert: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("cache insert: %w", err)
	}
	return nil
}
