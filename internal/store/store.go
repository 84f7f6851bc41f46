// Package store holds the persistence layer: the Postgres-backed games/
// game_data relations and the "last snapshot by code" two-step lookup,
// adapted from the service's internal/db package.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Database wraps *sql.DB the same way the service's db package does,
// embedding it so callers get the stdlib API plus the methods below.
type Database struct {
	*sql.DB
	driver string
}

// Config is the discrete-field Postgres connection configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewDatabase opens and pings a Postgres connection pool.
func NewDatabase(config Config) (*Database, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connection established")
	return &Database{DB: db, driver: "postgres"}, nil
}

// NewLocalDatabase opens a modernc.org/sqlite-backed database at path (use
// ":memory:" for an ephemeral store). This is the local development
// fallback for running the service without a Postgres instance.
func NewLocalDatabase(path string) (*Database, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping local sqlite database: %w", err)
	}

	log.Println("✅ Local sqlite database connection established")
	return &Database{DB: db, driver: "sqlite"}, nil
}

// Close closes the underlying connection pool.
func (db *Database) Close() error {
	return db.DB.Close()
}

// Migrate creates the games/game_data relations if they do not yet exist.
func (db *Database) Migrate() error {
	log.Println("🔄 Running database migrations...")

	migrationSQL := postgresMigration
	if db.driver == "sqlite" {
		migrationSQL = sqliteMigration
	}

	if _, err := db.Exec(migrationSQL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed successfully")
	return nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS games (
    game_id VARCHAR(64) PRIMARY KEY,
    game_code VARCHAR(32) NOT NULL,
    summoner_name VARCHAR(64),
    champion_name VARCHAR(64),
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_games_game_code ON games(game_code);
CREATE INDEX IF NOT EXISTS idx_games_created_at ON games(created_at);

CREATE TABLE IF NOT EXISTS game_data (
    id SERIAL PRIMARY KEY,
    game_id VARCHAR(64) NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
    game_time DOUBLE PRECISION NOT NULL,
    game_data JSONB NOT NULL,
    summoner_name VARCHAR(64),
    champion_name VARCHAR(64)
);

CREATE INDEX IF NOT EXISTS idx_game_data_game_id ON game_data(game_id);
CREATE INDEX IF NOT EXISTS idx_game_data_game_time ON game_data(game_id, game_time DESC);
`

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS games (
    game_id VARCHAR(64) PRIMARY KEY,
    game_code VARCHAR(32) NOT NULL,
    summoner_name VARCHAR(64),
    champion_name VARCHAR(64),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_games_game_code ON games(game_code);
CREATE INDEX IF NOT EXISTS idx_games_created_at ON games(created_at);

CREATE TABLE IF NOT EXISTS game_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    game_id VARCHAR(64) NOT NULL REFERENCES games(game_id) ON DELETE CASCADE,
    game_time DOUBLE PRECISION NOT NULL,
    game_data TEXT NOT NULL,
    summoner_name VARCHAR(64),
    champion_name VARCHAR(64)
);

CREATE INDEX IF NOT EXISTS idx_game_data_game_id ON game_data(game_id);
CREATE INDEX IF NOT EXISTS idx_game_data_game_time ON game_data(game_id, game_time DESC);
`

// Health pings the connection with a bounded deadline.
func (db *Database) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}

// Snapshot is the persisted row pair resolved by LastByCode: the owning
// games row's metadata plus the most recent game_data payload for it.
// SummonerName and ChampionName are empty strings when the underlying
// column is NULL, rather than sql.NullString, so a Snapshot round-trips
// through JSON cleanly for the read-through cache.
type Snapshot struct {
	GameID       string
	GameCode     string
	SummonerName string
	ChampionName string
	CreatedAt    time.Time
	GameDataJSON string
}

// LastByCode resolves the most recent games row for code, then the most
// recent game_data row for that game, ordered by game_time descending —
// two queries, not a join, matching the upstream lookup shape.
func (db *Database) LastByCode(ctx context.Context, code string) (*Snapshot, error) {
	var snap Snapshot
	var summonerName, championName sql.NullString
	gameRow := db.QueryRowContext(ctx, `
		SELECT game_id, game_code, summoner_name, champion_name, created_at
		FROM games
		WHERE game_code = $1
		ORDER BY created_at DESC
		LIMIT 1`, code)
	if err := gameRow.Scan(&snap.GameID, &snap.GameCode, &summonerName, &championName, &snap.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("store: lookup games by code: %w", err)
	}
	snap.SummonerName = summonerName.String
	snap.ChampionName = championName.String

	dataRow := db.QueryRowContext(ctx, `
		SELECT game_data
		FROM game_data
		WHERE game_id = $1
		ORDER BY game_time DESC
		LIMIT 1`, snap.GameID)
	if err := dataRow.Scan(&snap.GameDataJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("store: lookup game_data by game_id: %w", err)
	}

	return &snap, nil
}
