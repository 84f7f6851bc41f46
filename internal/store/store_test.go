package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDatabase(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Database{DB: db, driver: "postgres"}, mock
}

func TestLastByCodeReturnsSnapshotAcrossTwoQueries(t *testing.T) {
	database, mock := newMockDatabase(t)
	now := time.Now()

	gameRows := sqlmock.NewRows([]string{"game_id", "game_code", "summoner_name", "champion_name", "created_at"}).
		AddRow("game-1", "ABC123", "Faker", "Ashe", now)
	mock.ExpectQuery("SELECT game_id, game_code, summoner_name, champion_name, created_at").
		WithArgs("ABC123").
		WillReturnRows(gameRows)

	dataRows := sqlmock.NewRows([]string{"game_data"}).AddRow(`{"activePlayer":{}}`)
	mock.ExpectQuery("SELECT game_data").
		WithArgs("game-1").
		WillReturnRows(dataRows)

	snap, err := database.LastByCode(context.Background(), "ABC123")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "game-1", snap.GameID)
	assert.Equal(t, "Faker", snap.SummonerName)
	assert.Equal(t, `{"activePlayer":{}}`, snap.GameDataJSON)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastByCodeNilWhenGameMissing(t *testing.T) {
	database, mock := newMockDatabase(t)
	mock.ExpectQuery("SELECT game_id, game_code, summoner_name, champion_name, created_at").
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	snap, err := database.LastByCode(context.Background(), "NOPE")
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestLastByCodeNilWhenGameDataMissing(t *testing.T) {
	database, mock := newMockDatabase(t)
	now := time.Now()
	gameRows := sqlmock.NewRows([]string{"game_id", "game_code", "summoner_name", "champion_name", "created_at"}).
		AddRow("game-1", "ABC123", nil, nil, now)
	mock.ExpectQuery("SELECT game_id, game_code, summoner_name, champion_name, created_at").
		WithArgs("ABC123").
		WillReturnRows(gameRows)
	mock.ExpectQuery("SELECT game_data").
		WithArgs("game-1").
		WillReturnError(sql.ErrNoRows)

	snap, err := database.LastByCode(context.Background(), "ABC123")
	assert.NoError(t, err)
	assert.Nil(t, snap)
}

func TestLastByCodeNullSummonerAndChampionBecomeEmptyStrings(t *testing.T) {
	database, mock := newMockDatabase(t)
	now := time.Now()
	gameRows := sqlmock.NewRows([]string{"game_id", "game_code", "summoner_name", "champion_name", "created_at"}).
		AddRow("game-2", "XYZ789", nil, nil, now)
	mock.ExpectQuery("SELECT game_id, game_code, summoner_name, champion_name, created_at").
		WithArgs("XYZ789").
		WillReturnRows(gameRows)
	dataRows := sqlmock.NewRows([]string{"game_data"}).AddRow(`{}`)
	mock.ExpectQuery("SELECT game_data").
		WithArgs("game-2").
		WillReturnRows(dataRows)

	snap, err := database.LastByCode(context.Background(), "XYZ789")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "", snap.SummonerName)
	assert.Equal(t, "", snap.ChampionName)
}

func TestMigrateRunsSchema(t *testing.T) {
	database, mock := newMockDatabase(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS games").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, database.Migrate())
	assert.NoError(t, mock.ExpectationsWereMet())
}
