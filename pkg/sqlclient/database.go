package sqlclient

import (
	"context"
	"database/sql"
)

// Database runs statements on a connection opened for the duration of one call.
type Database interface {
	Execute(ctx context.Context, statement string, opts ...Option) (*Result, error)
	ExecuteMany(ctx context.Context, statement string, rows [][]any, opts ...Option) error
}

// Result holds every row fetched by Execute, either as mappings or as ordered tuples.
type Result struct {
	Columns []string
	Rows    []map[string]any
	Tuples  [][]any
}

// Opener returns a fresh handle; the client closes it when the call ends.
type Opener func() (*sql.DB, error)

type database struct {
	open Opener
}

func (d *database) Execute(ctx context.Context, statement string, opts ...Option) (res *Result, err error) {
	options := splitOptions(opts)

	conn, release, err := d.connect(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := release(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	tr, err := begin(ctx, conn, options.autocommit)
	if err != nil {
		return nil, err
	}

	res, err = tr.query(ctx, statement, options.mappings)
	if err != nil {
		return nil, tr.Rollback(err)
	}

	if err = tr.Commit(); err != nil {
		return nil, tr.Rollback(err)
	}

	return res, nil
}

func (d *database) ExecuteMany(ctx context.Context, statement string, rows [][]any, opts ...Option) (err error) {
	if len(rows) == 0 {
		return nil
	}

	options := splitOptions(opts)

	conn, release, err := d.connect(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := release(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	tr, err := begin(ctx, conn, options.autocommit)
	if err != nil {
		return err
	}

	if err = tr.execMany(ctx, statement, rows); err != nil {
		return tr.Rollback(err)
	}

	if err = tr.Commit(); err != nil {
		return tr.Rollback(err)
	}

	return nil
}

func (d *database) connect(ctx context.Context) (*sql.Conn, func() error, error) {
	db, err := d.open()
	if err != nil {
		return nil, nil, err
	}

	db.SetMaxOpenConns(1)

	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	release := func() error {
		connErr := conn.Close()
		if err := db.Close(); err != nil {
			return err
		}

		return connErr
	}

	return conn, release, nil
}

// NewDatabase opens driverName with dsn on every call.
func NewDatabase(driverName, dsn string) Database {
	return NewDatabaseFromOpener(func() (*sql.DB, error) {
		return sql.Open(driverName, dsn)
	})
}

func NewDatabaseFromOpener(open Opener) Database {
	return &database{open: open}
}
