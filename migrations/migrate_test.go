package migrations

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := embedMigrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	data, err := embedMigrations.ReadFile("00001_init.sql")
	require.NoError(t, err)
	for _, table := range []string{"users", "login_history", "face_expression_history", "feedback",
		"success_stories", "assessment_results", "chats", "diary_entries", "caretakers", "user_preferences"} {
		assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}

func TestEmbeddedMigrations_Media(t *testing.T) {
	data, err := embedMigrations.ReadFile("00002_media.sql")
	require.NoError(t, err)
	for _, table := range []string{"images", "emoji_catalogue"} {
		assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS "+table+" ")
		assert.Contains(t, string(data), "DROP TABLE IF EXISTS "+table+";")
	}
}
