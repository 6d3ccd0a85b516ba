package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrNoConnection = errors.New("no database connection bound to request")

type connKey struct{}

// Conn is one connection checked out of the pool. DB is a gorm session whose
// statements all run on that connection.
type Conn struct {
	DB  *gorm.DB
	raw *sql.Conn
}

// Acquire checks a dedicated connection out of the pool. It blocks until one
// is free or ctx is done.
func Acquire(ctx context.Context, db *gorm.DB) (*Conn, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	raw, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}

	session := db.Session(&gorm.Session{NewDB: true, Context: ctx})
	session.Statement.ConnPool = raw

	return &Conn{DB: session, raw: raw}, nil
}

// Release returns the connection to the pool. Calling it twice is harmless.
func (c *Conn) Release() error {
	if c == nil || c.raw == nil {
		return nil
	}
	err := c.raw.Close()
	if errors.Is(err, sql.ErrConnDone) {
		return nil
	}
	return err
}

func WithConn(ctx context.Context, conn *Conn) context.Context {
	return context.WithValue(ctx, connKey{}, conn)
}

// ConnFrom returns the request's gorm session, or ErrNoConnection when the
// request never got one.
func ConnFrom(ctx context.Context) (*gorm.DB, error) {
	conn, ok := ctx.Value(connKey{}).(*Conn)
	if !ok || conn == nil || conn.DB == nil {
		return nil, ErrNoConnection
	}
	return conn.DB.WithContext(ctx), nil
}
