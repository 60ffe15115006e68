// Package storage provides SQLite-based persistence for players, scores,
// settings, aggregate statistics and missions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Sentinel errors for constraint violations. Lookup misses are not errors:
// getters return (nil, nil) when a row is absent.
var (
	// ErrPlayerExists is returned when creating a player whose name is taken.
	ErrPlayerExists = errors.New("storage: player name already registered")

	// ErrNoSuchPlayer is returned when writing against a missing player id.
	ErrNoSuchPlayer = errors.New("storage: player does not exist")

	// ErrNoSuchMission is returned when updating a missing mission id.
	ErrNoSuchMission = errors.New("storage: mission does not exist")

	// ErrEmptyName is returned when creating a player without a name.
	ErrEmptyName = errors.New("storage: player name must not be empty")
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Player is a registered player. Created once per unique name and never
// updated afterwards.
type Player struct {
	ID           int64
	Name         string
	RegisteredAt time.Time
}

// ScoreEntry is one immutable run record.
type ScoreEntry struct {
	ID          int64
	PlayerID    int64
	Score       int
	Level       int
	ElapsedTime int // seconds
	Stars       int
	MaxCombo    int
	RecordedAt  time.Time
}

// LeaderboardRow is a score joined with its player's name.
type LeaderboardRow struct {
	ScoreEntry
	PlayerName string
}

// Settings is a player's persisted preferences, one row per player.
type Settings struct {
	ID         int64
	PlayerID   int64
	Volume     int    // 0-100
	Difficulty string // Easy, Normal, Hard
}

// Stats is a player's aggregate statistics, one row per player.
// Fields only ever grow: games and stars accumulate, bests are maxima.
type Stats struct {
	ID          int64
	PlayerID    int64
	GamesPlayed int
	TotalStars  int
	BestCombo   int
	BestTime    int // seconds
}

// Mission is a time-boxed objective, independent of any single player.
type Mission struct {
	ID          int64
	Description string
	Target      int
	Progress    int
	Completed   bool
	ValidFrom   string // date, YYYY-MM-DD
	ValidUntil  string // date, empty when open-ended
	Kind        string // "daily", ...
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Single in-process caller; one connection keeps the FK pragma and
	// transactions on the same session.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot enable foreign keys: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			registered_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			elapsed_time INTEGER NOT NULL DEFAULT 0,
			stars INTEGER NOT NULL DEFAULT 0,
			max_combo INTEGER NOT NULL DEFAULT 0,
			recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_level ON scores(level, score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			volume INTEGER NOT NULL DEFAULT 50,
			difficulty TEXT NOT NULL DEFAULT 'Normal',
			FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_id INTEGER NOT NULL,
			games_played INTEGER NOT NULL DEFAULT 0,
			total_stars INTEGER NOT NULL DEFAULT 0,
			best_combo INTEGER NOT NULL DEFAULT 0,
			best_time INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS missions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			description TEXT NOT NULL,
			target INTEGER NOT NULL,
			progress INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			valid_from TEXT DEFAULT (date('now')),
			valid_until TEXT,
			kind TEXT NOT NULL DEFAULT 'daily'
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreatePlayer registers a new player and returns its id. A default
// settings row (volume 50, Normal) and a zeroed stats row are created in
// the same transaction. Returns ErrEmptyName for an empty name and
// ErrPlayerExists if the name is taken.
func (s *Store) CreatePlayer(name string) (int64, error) {
	if name == "" {
		return 0, ErrEmptyName
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing int64
	err = tx.QueryRow("SELECT id FROM players WHERE name = ?", name).Scan(&existing)
	if err == nil {
		return 0, ErrPlayerExists
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("storage: cannot check player name: %w", err)
	}

	result, err := tx.Exec("INSERT INTO players (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create player: %w", err)
	}
	playerID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO settings (player_id) VALUES (?)", playerID); err != nil {
		return 0, fmt.Errorf("storage: cannot create default settings: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO stats (player_id) VALUES (?)", playerID); err != nil {
		return 0, fmt.Errorf("storage: cannot create default stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit: %w", err)
	}
	return playerID, nil
}

// GetPlayer retrieves a player by name. Returns (nil, nil) if absent.
func (s *Store) GetPlayer(name string) (*Player, error) {
	var p Player
	var registeredAt any

	err := s.db.QueryRow(
		"SELECT id, name, registered_at FROM players WHERE name = ?",
		name,
	).Scan(&p.ID, &p.Name, &registeredAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player: %w", err)
	}

	p.RegisteredAt = parseTimestamp(registeredAt)
	return &p, nil
}

// DeletePlayer removes a player; its scores, settings and stats rows go
// with it via cascade. Returns ErrNoSuchPlayer if the id is unknown.
func (s *Store) DeletePlayer(playerID int64) error {
	result, err := s.db.Exec("DELETE FROM players WHERE id = ?", playerID)
	if err != nil {
		return fmt.Errorf("storage: cannot delete player: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check deleted rows: %w", err)
	}
	if n == 0 {
		return ErrNoSuchPlayer
	}
	return nil
}

// SaveScore appends an immutable run record for the given player.
// Returns ErrNoSuchPlayer if the player id does not exist.
func (s *Store) SaveScore(playerID int64, score, level, elapsedTime, stars, maxCombo int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRow("SELECT id FROM players WHERE id = ?", playerID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNoSuchPlayer
	}
	if err != nil {
		return fmt.Errorf("storage: cannot check player: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO scores (player_id, score, level, elapsed_time, stars, max_combo)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		playerID, score, level, elapsedTime, stars, maxCombo,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Leaderboard retrieves the top scores joined with player names, sorted by
// score descending with ties in insertion order. level 0 means all levels.
func (s *Store) Leaderboard(level, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT s.id, s.player_id, s.score, s.level, s.elapsed_time,
	                 s.stars, s.max_combo, s.recorded_at, p.name
	          FROM scores s
	          JOIN players p ON s.player_id = p.id`
	args := []any{}
	if level > 0 {
		query += " WHERE s.level = ?"
		args = append(args, level)
	}
	query += " ORDER BY s.score DESC, s.id ASC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderboardRow
	for rows.Next() {
		var e LeaderboardRow
		var recordedAt any
		if err := rows.Scan(
			&e.ID, &e.PlayerID, &e.Score, &e.Level, &e.ElapsedTime,
			&e.Stars, &e.MaxCombo, &recordedAt, &e.PlayerName,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.RecordedAt = parseTimestamp(recordedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// UpdateStatistics accumulates into a player's aggregate stats: games and
// stars are added, bests are kept as running maxima. Zero arguments are
// identity operations. Returns ErrNoSuchPlayer for an unknown id.
func (s *Store) UpdateStatistics(playerID int64, games, stars, bestCombo, bestTime int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`UPDATE stats SET
			games_played = games_played + ?,
			total_stars = total_stars + ?,
			best_combo = MAX(best_combo, ?),
			best_time = MAX(best_time, ?)
		 WHERE player_id = ?`,
		games, stars, bestCombo, bestTime, playerID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update statistics: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check updated rows: %w", err)
	}
	if n == 0 {
		return ErrNoSuchPlayer
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// PlayerStats retrieves a player's aggregate stats. Returns (nil, nil) if
// absent.
func (s *Store) PlayerStats(playerID int64) (*Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT id, player_id, games_played, total_stars, best_combo, best_time
		 FROM stats WHERE player_id = ?`,
		playerID,
	).Scan(&st.ID, &st.PlayerID, &st.GamesPlayed, &st.TotalStars, &st.BestCombo, &st.BestTime)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return &st, nil
}

// CreateMission creates a new mission and returns its id.
func (s *Store) CreateMission(description string, target int, kind string) (int64, error) {
	if kind == "" {
		kind = "daily"
	}

	result, err := s.db.Exec(
		"INSERT INTO missions (description, target, kind) VALUES (?, ?, ?)",
		description, target, kind,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create mission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// ActiveMissions retrieves incomplete missions that are still valid today,
// newest first.
func (s *Store) ActiveMissions() ([]Mission, error) {
	rows, err := s.db.Query(
		`SELECT id, description, target, progress, completed, valid_from, valid_until, kind
		 FROM missions
		 WHERE completed = 0
		 AND (valid_until IS NULL OR valid_until >= date('now'))
		 ORDER BY valid_from DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query missions: %w", err)
	}
	defer rows.Close()

	var missions []Mission
	for rows.Next() {
		var m Mission
		var completed int
		var validUntil sql.NullString
		if err := rows.Scan(
			&m.ID, &m.Description, &m.Target, &m.Progress,
			&completed, &m.ValidFrom, &validUntil, &m.Kind,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		m.Completed = completed != 0
		if validUntil.Valid {
			m.ValidUntil = validUntil.String
		}
		missions = append(missions, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return missions, nil
}

// UpdateMissionProgress increments a mission's progress by delta and flips
// the completion flag in the same transaction once progress reaches the
// target. The flag never flips back. Returns ErrNoSuchMission for an
// unknown id.
func (s *Store) UpdateMissionProgress(missionID int64, delta int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"UPDATE missions SET progress = progress + ? WHERE id = ?",
		delta, missionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update mission progress: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check updated rows: %w", err)
	}
	if n == 0 {
		return ErrNoSuchMission
	}

	var target, progress int
	err = tx.QueryRow(
		"SELECT target, progress FROM missions WHERE id = ?",
		missionID,
	).Scan(&target, &progress)
	if err != nil {
		return fmt.Errorf("storage: cannot check mission completion: %w", err)
	}

	if progress >= target {
		if _, err := tx.Exec("UPDATE missions SET completed = 1 WHERE id = ?", missionID); err != nil {
			return fmt.Errorf("storage: cannot mark mission complete: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// GetSettings retrieves a player's settings. Returns (nil, nil) if absent.
func (s *Store) GetSettings(playerID int64) (*Settings, error) {
	var st Settings
	err := s.db.QueryRow(
		"SELECT id, player_id, volume, difficulty FROM settings WHERE player_id = ?",
		playerID,
	).Scan(&st.ID, &st.PlayerID, &st.Volume, &st.Difficulty)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	return &st, nil
}

// UpdateSettings applies a partial update: only non-nil fields change.
// With both arguments nil it performs no write at all.
func (s *Store) UpdateSettings(playerID int64, volume *int, difficulty *string) error {
	sets := ""
	args := []any{}

	if volume != nil {
		sets = "volume = ?"
		args = append(args, *volume)
	}
	if difficulty != nil {
		if sets != "" {
			sets += ", "
		}
		sets += "difficulty = ?"
		args = append(args, *difficulty)
	}
	if sets == "" {
		return nil
	}

	args = append(args, playerID)
	result, err := s.db.Exec("UPDATE settings SET "+sets+" WHERE player_id = ?", args...)
	if err != nil {
		return fmt.Errorf("storage: cannot update settings: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check updated rows: %w", err)
	}
	if n == 0 {
		return ErrNoSuchPlayer
	}
	return nil
}

// parseTimestamp converts a scanned DATETIME column, which the driver may
// hand back as time.Time or string, into a time.Time.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
