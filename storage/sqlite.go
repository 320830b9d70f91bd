// Package storage persists save slots and the high score board in a local
// SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/nathoo/gangwar/types"
)

// ErrNoSave is returned when a slot has nothing saved in it.
var ErrNoSave = errors.New("no saved game in slot")

// BoardSize is the number of entries kept on the high score board.
const BoardSize = 10

// DefaultScores seed an empty board.
var DefaultScores = []types.HighScore{
	{Name: "Big Tony", Score: 1000000},
	{Name: "Ice Pick", Score: 800000},
	{Name: "Salty Sam", Score: 600000},
	{Name: "Lil' Pookie", Score: 500000},
	{Name: "Crazy Steve", Score: 400000},
	{Name: "The Rat", Score: 300000},
	{Name: "Johnny Two-Toes", Score: 200000},
	{Name: "Sneaky Pete", Score: 100000},
	{Name: "Baby Face", Score: 50000},
	{Name: "Unknown Punk", Score: 10000},
}

// Store is a handle on the game database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedScores(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed high scores: %w", err)
	}
	return s, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS saves (
			slot TEXT PRIMARY KEY,
			save_id TEXT NOT NULL,
			data TEXT NOT NULL,
			day INTEGER NOT NULL DEFAULT 1,
			saved_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS high_scores (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			recorded_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame writes data to slot, replacing what was there.
func (s *Store) SaveGame(ctx context.Context, slot string, day int, data []byte) error {
	query := `
		INSERT INTO saves (slot, save_id, data, day, saved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			save_id=excluded.save_id,
			data=excluded.data,
			day=excluded.day,
			saved_at=excluded.saved_at
	`
	_, err := s.db.ExecContext(ctx, query, slot, uuid.NewString(), string(data), day, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	return nil
}

// LoadGame reads the data saved in slot.
func (s *Store) LoadGame(ctx context.Context, slot string) ([]byte, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w %q", ErrNoSave, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return []byte(data), nil
}

// DeleteGame removes slot. Deleting an empty slot is not an error.
func (s *Store) DeleteGame(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

// AddHighScore records a finished run and trims the board to BoardSize.
// It reports whether the score made the board.
func (s *Store) AddHighScore(ctx context.Context, name string, score int) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO high_scores (id, name, score, recorded_at) VALUES (?, ?, ?, ?)`,
		id, name, score, time.Now().UTC()); err != nil {
		return false, fmt.Errorf("failed to add high score: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM high_scores WHERE id NOT IN (
			SELECT id FROM high_scores ORDER BY score DESC, recorded_at ASC LIMIT ?
		)`, BoardSize); err != nil {
		return false, fmt.Errorf("failed to trim high scores: %w", err)
	}

	var kept int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM high_scores WHERE id = ?`, id).Scan(&kept); err != nil {
		return false, fmt.Errorf("failed to check high score: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit high score: %w", err)
	}
	return kept == 1, nil
}

// TopScores returns the board, best first.
func (s *Store) TopScores(ctx context.Context) ([]types.HighScore, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, score FROM high_scores ORDER BY score DESC, recorded_at ASC LIMIT ?`, BoardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []types.HighScore
	for rows.Next() {
		var hs types.HighScore
		if err := rows.Scan(&hs.Name, &hs.Score); err != nil {
			return nil, err
		}
		scores = append(scores, hs)
	}
	return scores, rows.Err()
}

func (s *Store) seedScores(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM high_scores`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, hs := range DefaultScores {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO high_scores (id, name, score, recorded_at) VALUES (?, ?, ?, ?)`,
			uuid.NewString(), hs.Name, hs.Score, now); err != nil {
			return err
		}
	}
	return nil
}
