package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Chunk is one stored document with the category it was ingested under.
type Chunk struct {
	ID        string
	Category  string
	Document  string
	CreatedAt time.Time
}

// ChunkStore persists source documents for embedding extraction in SQLite.
type ChunkStore struct {
	db *sql.DB
}

func Open(dbPath string) (*ChunkStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &ChunkStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *ChunkStore) Close() error {
	return s.db.Close()
}

func (s *ChunkStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS chunks (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		document TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_chunks_category ON chunks(category);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add inserts a document and returns its generated ID.
func (s *ChunkStore) Add(ctx context.Context, category, document string) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chunks (id, category, document, created_at) VALUES (?, ?, ?, ?)`,
		id, category, document, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("failed to insert chunk: %w", err)
	}
	return id, nil
}

// All returns every chunk, ordered by category then ID for stable output.
func (s *ChunkStore) All(ctx context.Context) ([]Chunk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, document, created_at FROM chunks ORDER BY category, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []Chunk
	for rows.Next() {
		var c Chunk
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.Category, &c.Document, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		c.CreatedAt = time.Unix(createdAt, 0)
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

func (s *ChunkStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chunks`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count chunks: %w", err)
	}
	return n, nil
}
