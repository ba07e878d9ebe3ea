// Package sqlite is the file-backed store.Store implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/textrel/pkg/textrel/internalerr"
	"github.com/cognicore/textrel/pkg/textrel/relation"
	"github.com/cognicore/textrel/pkg/textrel/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite database with WAL mode enabled and initializes the
// corpus schema. Failures to open or prepare the database wrap
// internalerr.ErrStoreUnavailable.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, internalerr.ErrStoreUnavailable)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL on %s: %v: %w", path, err, internalerr.ErrStoreUnavailable)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys on %s: %v: %w", path, err, internalerr.ErrStoreUnavailable)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema in %s: %v: %w", path, err, internalerr.ErrStoreUnavailable)
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS docs (
	id TEXT PRIMARY KEY,
	title TEXT,
	ingested_at TEXT
);

CREATE TABLE IF NOT EXISTS doc_lines (
	doc_id TEXT NOT NULL,
	line_no INTEGER NOT NULL,
	text TEXT NOT NULL,
	PRIMARY KEY(doc_id, line_no),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS doc_meta (
	doc_id TEXT NOT NULL,
	key TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY(doc_id, key),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS term_counts (
	doc_id TEXT NOT NULL,
	term TEXT NOT NULL,
	count INTEGER NOT NULL,
	PRIMARY KEY(doc_id, term),
	FOREIGN KEY(doc_id) REFERENCES docs(id) ON DELETE CASCADE
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// UpsertDoc inserts or updates a document and replaces its lines and meta.
func (s *sqliteStore) UpsertDoc(ctx context.Context, d store.Doc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const stmt = `
INSERT INTO docs (id, title, ingested_at)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	title=excluded.title,
	ingested_at=excluded.ingested_at;
`

	ingested := d.IngestedAt
	if ingested.IsZero() {
		ingested = time.Now()
	}
	if _, err := tx.ExecContext(ctx, stmt, d.ID, d.Title, ingested.UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	if err := replaceDocLines(ctx, tx, d.ID, d.Lines); err != nil {
		return err
	}
	if err := replaceDocMeta(ctx, tx, d.ID, d.Meta); err != nil {
		return err
	}

	return tx.Commit()
}

func replaceDocLines(ctx context.Context, tx *sql.Tx, docID string, lines []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM doc_lines WHERE doc_id=?`, docID); err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO doc_lines (doc_id, line_no, text) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, line := range lines {
		if _, err := stmt.ExecContext(ctx, docID, i+1, line); err != nil {
			return err
		}
	}
	return nil
}

func replaceDocMeta(ctx context.Context, tx *sql.Tx, docID string, meta map[string]string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM doc_meta WHERE doc_id=?`, docID); err != nil {
		return err
	}
	if len(meta) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO doc_meta (doc_id, key, value) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for k, v := range meta {
		if _, err := stmt.ExecContext(ctx, docID, k, v); err != nil {
			return err
		}
	}
	return nil
}

// GetDoc returns a document by id.
func (s *sqliteStore) GetDoc(ctx context.Context, id string) (store.Doc, bool, error) {
	var d store.Doc
	var ingested string
	err := s.db.QueryRowContext(ctx, `SELECT id, title, ingested_at FROM docs WHERE id=?`, id).
		Scan(&d.ID, &d.Title, &ingested)
	if err == sql.ErrNoRows {
		return store.Doc{}, false, nil
	}
	if err != nil {
		return store.Doc{}, false, err
	}
	if t, perr := time.Parse(time.RFC3339, ingested); perr == nil {
		d.IngestedAt = t
	}

	rows, err := s.db.QueryContext(ctx, `SELECT text FROM doc_lines WHERE doc_id=? ORDER BY line_no`, id)
	if err != nil {
		return store.Doc{}, false, err
	}
	defer rows.Close()
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return store.Doc{}, false, err
		}
		d.Lines = append(d.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return store.Doc{}, false, err
	}

	metaRows, err := s.db.QueryContext(ctx, `SELECT key, value FROM doc_meta WHERE doc_id=?`, id)
	if err != nil {
		return store.Doc{}, false, err
	}
	defer metaRows.Close()
	for metaRows.Next() {
		var k, v string
		if err := metaRows.Scan(&k, &v); err != nil {
			return store.Doc{}, false, err
		}
		if d.Meta == nil {
			d.Meta = make(map[string]string)
		}
		d.Meta[k] = v
	}
	if err := metaRows.Err(); err != nil {
		return store.Doc{}, false, err
	}

	return d, true, nil
}

// ListDocIDs returns all stored document ids in sorted order.
func (s *sqliteStore) ListDocIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM docs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReplaceTermCounts replaces the stored counts for one document.
func (s *sqliteStore) ReplaceTermCounts(ctx context.Context, docID string, counts []relation.TermCount) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM term_counts WHERE doc_id=?`, docID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO term_counts (doc_id, term, count) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, tc := range counts {
		if _, err := stmt.ExecContext(ctx, docID, tc.Term, tc.Count); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// TermCounts returns the counts for the given documents, or for the whole
// corpus when no ids are given, sorted by (doc id, term).
func (s *sqliteStore) TermCounts(ctx context.Context, docIDs ...string) ([]relation.TermCount, error) {
	query := `SELECT doc_id, term, count FROM term_counts ORDER BY doc_id, term`
	args := make([]interface{}, 0, len(docIDs))
	if len(docIDs) > 0 {
		query = `SELECT doc_id, term, count FROM term_counts WHERE doc_id IN (?` +
			strings.Repeat(",?", len(docIDs)-1) + `) ORDER BY doc_id, term`
		for _, id := range docIDs {
			args = append(args, id)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []relation.TermCount
	for rows.Next() {
		var tc relation.TermCount
		if err := rows.Scan(&tc.DocID, &tc.Term, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
