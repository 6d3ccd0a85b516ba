package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retail-crud/internal/database"
	"retail-crud/internal/database/dbtest"
	"retail-crud/internal/database/models"
)

func TestAcquireAndRelease(t *testing.T) {
	db := dbtest.New(t)

	conn, err := database.Acquire(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 1, dbtest.InUse(t, db))

	require.NoError(t, conn.DB.Create(&models.Demo{Name: "grace hopper"}).Error)

	var count int64
	require.NoError(t, conn.DB.Model(&models.Demo{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, 1, dbtest.InUse(t, db), "session statements must reuse the checked-out connection")

	require.NoError(t, conn.Release())
	assert.Equal(t, 0, dbtest.InUse(t, db))

	t.Run("second release is a no-op", func(t *testing.T) {
		assert.NoError(t, conn.Release())
	})

	t.Run("nil conn release", func(t *testing.T) {
		var c *database.Conn
		assert.NoError(t, c.Release())
	})
}

func TestAcquireCancelledContext(t *testing.T) {
	db := dbtest.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conn, err := database.Acquire(ctx, db)
	assert.Error(t, err)
	assert.Nil(t, conn)
	assert.Equal(t, 0, dbtest.InUse(t, db))
}

func TestConnFromContext(t *testing.T) {
	db := dbtest.New(t)

	_, err := database.ConnFrom(context.Background())
	assert.ErrorIs(t, err, database.ErrNoConnection)

	conn, err := database.Acquire(context.Background(), db)
	require.NoError(t, err)
	defer conn.Release()

	ctx := database.WithConn(context.Background(), conn)
	session, err := database.ConnFrom(ctx)
	require.NoError(t, err)

	var names []string
	require.NoError(t, session.Raw("SELECT DISTINCT name FROM test").Scan(&names).Error)
	assert.Empty(t, names)
}
