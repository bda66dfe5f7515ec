package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pawdopt/internal/entities"
)

func TestDatabaseInitialization(t *testing.T) {
	t.Run("NewDatabase creates database file", func(t *testing.T) {
		dbPath := "./init_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		_, err = os.Stat(dbPath)
		assert.NoError(t, err)
	})

	t.Run("NewDatabase migrates the schema", func(t *testing.T) {
		dbPath := "./migrate_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		assert.True(t, db.DB.Migrator().HasTable(&entities.Animal{}))
		assert.True(t, db.DB.Migrator().HasTable(&entities.Setting{}))
	})

	t.Run("NewDatabase is idempotent", func(t *testing.T) {
		dbPath := "./reopen_test.db"
		defer os.Remove(dbPath)

		db1, err := NewDatabase(dbPath)
		require.NoError(t, err)
		require.NoError(t, db1.DB.Create(&entities.Animal{ExternalID: "a-1", Name: "Max", Species: "dog"}).Error)
		db1.Close()

		db2, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db2.Close()

		var count int64
		require.NoError(t, db2.DB.Model(&entities.Animal{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Close closes database connection", func(t *testing.T) {
		dbPath := "./close_test.db"
		defer os.Remove(dbPath)

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)

		err = db.Close()
		assert.NoError(t, err)
	})
}
