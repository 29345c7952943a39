// Package record persists per-turn and chat data rows for later analysis.
// It sits outside the game core behind the Store interface; the hub treats
// every write as best-effort.
package record

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store receives game data as it happens.
type Store interface {
	SaveTurn(rec TurnRecord) error
	SaveChat(rec ChatRecord) error
	SaveOutcome(gameID string, outcome string) error
	Close() error
}

// TurnRecord is one completed turn.
type TurnRecord struct {
	GameID   string
	Turn     int
	PlayerID string
	Returned int // cards returned to the deck by the reshuffle
	DeckSize int
	At       time.Time
}

// ChatRecord is one relayed chat message.
type ChatRecord struct {
	GameID   string
	PlayerID string
	Text     string
	At       time.Time
}

// DB is the SQLite-backed Store.
type DB struct {
	conn *sql.DB
}

// Open initializes the database connection and creates the schema.
func Open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &DB{conn: conn}
	if err := d.migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return d, nil
}

func (d *DB) migrate() error {
	_, err := d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS turns (
		game_id   TEXT NOT NULL,
		turn      INTEGER NOT NULL,
		player_id TEXT NOT NULL,
		returned  INTEGER NOT NULL,
		deck_size INTEGER NOT NULL,
		at        TEXT NOT NULL,
		PRIMARY KEY (game_id, turn)
	);`)
	if err != nil {
		return err
	}

	_, err = d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS chat (
		game_id   TEXT NOT NULL,
		player_id TEXT NOT NULL,
		text      TEXT NOT NULL,
		at        TEXT NOT NULL
	);`)
	if err != nil {
		return err
	}

	_, err = d.conn.Exec(`
	CREATE TABLE IF NOT EXISTS outcomes (
		game_id TEXT PRIMARY KEY,
		outcome TEXT NOT NULL
	);`)
	return err
}

func (d *DB) SaveTurn(rec TurnRecord) error {
	_, err := d.conn.Exec(
		"INSERT OR REPLACE INTO turns (game_id, turn, player_id, returned, deck_size, at) VALUES (?, ?, ?, ?, ?, ?)",
		rec.GameID, rec.Turn, rec.PlayerID, rec.Returned, rec.DeckSize, rec.At.UTC().Format(time.RFC3339),
	)
	return err
}

func (d *DB) SaveChat(rec ChatRecord) error {
	_, err := d.conn.Exec(
		"INSERT INTO chat (game_id, player_id, text, at) VALUES (?, ?, ?, ?)",
		rec.GameID, rec.PlayerID, rec.Text, rec.At.UTC().Format(time.RFC3339),
	)
	return err
}

func (d *DB) SaveOutcome(gameID, outcome string) error {
	_, err := d.conn.Exec(
		"INSERT OR REPLACE INTO outcomes (game_id, outcome) VALUES (?, ?)",
		gameID, outcome,
	)
	return err
}

// Turns returns a game's recorded turns in order.
func (d *DB) Turns(gameID string) ([]TurnRecord, error) {
	rows, err := d.conn.Query(
		"SELECT game_id, turn, player_id, returned, deck_size, at FROM turns WHERE game_id = ? ORDER BY turn",
		gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		var at string
		if err := rows.Scan(&rec.GameID, &rec.Turn, &rec.PlayerID, &rec.Returned, &rec.DeckSize, &at); err != nil {
			return nil, err
		}
		rec.At, _ = time.Parse(time.RFC3339, at)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (d *DB) Close() error {
	return d.conn.Close()
}
