package ledger

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"dojo/internal/platform"
	"dojo/internal/problem"
)

// Catalog is the structured store of attempted problems, one SQLite table
// keyed by an autoincrementing id. Rows are inserted once and never updated
// or deleted; there is no migration path.
type Catalog struct {
	db *sql.DB
}

// Row is one catalog entry as stored.
type Row struct {
	ID         int64
	Platform   string
	ContestID  string
	ProblemID  string
	SourceURL  string
	Difficulty string
	Tags       []string
	CreatedAt  time.Time
	Status     string
}

// OpenCatalog opens (or creates) the catalog database at path and ensures
// the schema exists. Use ":memory:" in tests.
func OpenCatalog(path string) (*Catalog, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Catalog) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS problems (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		platform TEXT NOT NULL,
		contest_id TEXT NOT NULL,
		problem_id TEXT NOT NULL,
		source_url TEXT NOT NULL,
		difficulty TEXT,
		tags TEXT,
		created_at DATETIME NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending'
	);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create problems table: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Insert adds one row for the record. Tags are serialized as a compact JSON
// array string.
func (c *Catalog) Insert(rec problem.Record) error {
	tags, err := json.Marshal(rec.Tags)
	if err != nil {
		return &Error{Sink: "catalog", Err: err}
	}

	_, err = c.db.Exec(
		`INSERT INTO problems (platform, contest_id, problem_id, source_url, difficulty, tags, created_at, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(rec.Platform), rec.ContestID, rec.ProblemID, rec.SourceURL,
		rec.Difficulty, string(tags), rec.CreatedAt.UTC(), string(rec.Status),
	)
	if err != nil {
		return &Error{Sink: "catalog", Err: err}
	}
	return nil
}

// Recent returns the newest rows, most recent first.
func (c *Catalog) Recent(limit int) ([]Row, error) {
	rows, err := c.db.Query(
		`SELECT id, platform, contest_id, problem_id, source_url, difficulty, tags, created_at, status
		 FROM problems ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var tags string
		if err := rows.Scan(&r.ID, &r.Platform, &r.ContestID, &r.ProblemID, &r.SourceURL,
			&r.Difficulty, &tags, &r.CreatedAt, &r.Status); err != nil {
			return nil, fmt.Errorf("failed to scan catalog row: %w", err)
		}
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
				return nil, fmt.Errorf("failed to decode tags for row %d: %w", r.ID, err)
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the total number of catalog rows.
func (c *Catalog) Count() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM problems`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count catalog rows: %w", err)
	}
	return n, nil
}

// CountByPlatform returns per-platform row counts for every supported
// platform, including zeroes.
func (c *Catalog) CountByPlatform() (map[string]int, error) {
	counts := make(map[string]int, len(platform.All()))
	for _, p := range platform.All() {
		counts[string(p)] = 0
	}

	rows, err := c.db.Query(`SELECT platform, COUNT(*) FROM problems GROUP BY platform`)
	if err != nil {
		return nil, fmt.Errorf("failed to query platform counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p string
		var n int
		if err := rows.Scan(&p, &n); err != nil {
			return nil, fmt.Errorf("failed to scan platform count: %w", err)
		}
		counts[p] = n
	}
	return counts, rows.Err()
}
