package game

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "rounds"

// Round is one finished game as kept on the leaderboard.
type Round struct {
	ID         int
	PlayerName string
	Score      int
	Length     int
	CreatedAt  time.Time
}

// HighScoreService keeps finished rounds in SQLite. The in-game high score
// is not read from here; it lives only as long as its GameManager.
type HighScoreService struct {
	db *sql.DB
}

func NewHighScoreService(dbPath string) (*HighScoreService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", dbPath, err)
	}

	service := &HighScoreService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return service, nil
}

// createTable creates the rounds table if it does not exist.
func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		length INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Rounds table ensured.")
	return nil
}

func (serviceImpl *HighScoreService) SaveRound(ctx context.Context, round Round) error {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (player_name, score, length, created_at)
	VALUES (?, ?, ?, ?);`

	createdAt := round.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := serviceImpl.db.ExecContext(ctx, insertSQL,
		round.PlayerName, round.Score, round.Length, createdAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert round for %s: %w", round.PlayerName, err)
	}
	return nil
}

// TopRounds retrieves a page of rounds, best score first. Ties go to the
// earlier round.
func (serviceImpl *HighScoreService) TopRounds(ctx context.Context, limit, offset int) ([]Round, error) {
	const selectSQL = `
	SELECT id, player_name, score, length, created_at
	FROM ` + tableName + `
	ORDER BY score DESC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.QueryContext(ctx, selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var round Round
		var createdAt string
		if err := rows.Scan(&round.ID, &round.PlayerName, &round.Score, &round.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339, createdAt)
		if err == nil {
			round.CreatedAt = parsed
		} else {
			log.Warn("Time parsing error for round", "id", round.ID, "raw", createdAt, "error", err)
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return rounds, nil
}

func (serviceImpl *HighScoreService) CountRounds(ctx context.Context) (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	if err := serviceImpl.db.QueryRowContext(ctx, countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total round count: %w", err)
	}
	return count, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
