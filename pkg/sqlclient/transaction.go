package sqlclient

import (
	"context"
	"database/sql"
	"errors"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// transaction runs statements inside an *sql.Tx, or directly on the connection in
// autocommit mode, where Commit and Rollback do nothing.
type transaction struct {
	conn *sql.Conn
	tx   *sql.Tx
}

func (t *transaction) querier() querier {
	if t.tx != nil {
		return t.tx
	}

	return t.conn
}

func (t *transaction) Commit() error {
	if t.tx == nil {
		return nil
	}

	return t.tx.Commit()
}

// Rollback keeps the original cause first and joins any rollback failure to it.
func (t *transaction) Rollback(cause error) error {
	if t.tx == nil {
		return cause
	}

	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return errors.Join(cause, err)
	}

	return cause
}

func (t *transaction) query(ctx context.Context, statement string, mappings bool) (*Result, error) {
	rows, err := t.querier().QueryContext(ctx, statement)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := &Result{Columns: columns}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))

		for i := range values {
			pointers[i] = &values[i]
		}

		if err = rows.Scan(pointers...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}

		if mappings {
			res.Rows = append(res.Rows, toMapping(columns, values))
			continue
		}

		res.Tuples = append(res.Tuples, values)
	}

	return res, rows.Err()
}

func (t *transaction) execMany(ctx context.Context, statement string, rows [][]any) error {
	stmt, err := t.querier().PrepareContext(ctx, statement)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return err
		}
	}

	return nil
}

func toMapping(columns []string, values []any) map[string]any {
	row := make(map[string]any, len(columns))
	for i, column := range columns {
		row[column] = values[i]
	}

	return row
}

func begin(ctx context.Context, conn *sql.Conn, autocommit bool) (*transaction, error) {
	if autocommit {
		return &transaction{conn: conn}, nil
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &transaction{conn: conn, tx: tx}, nil
}
