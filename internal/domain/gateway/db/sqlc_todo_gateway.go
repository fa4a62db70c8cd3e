package db

import (
	"context"
	"database/sql"
	"fmt"

	"todo-api/internal/domain/entity"
)

const todoSchema = `
CREATE TABLE IF NOT EXISTS todo_items (
	id          BIGSERIAL PRIMARY KEY,
	position    INTEGER     NOT NULL,
	title       TEXT        NOT NULL,
	description TEXT        NOT NULL,
	status      SMALLINT    NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_todo_items_position ON todo_items (position);
CREATE TABLE IF NOT EXISTS todo_owner (
	id         BIGSERIAL PRIMARY KEY,
	address    VARCHAR(42) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

type SQLCTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLCTodoGateway)(nil)

func NewSQLCTodoGateway(db *sql.DB) *SQLCTodoGateway {
	return &SQLCTodoGateway{DB: db}
}

// EnsureSchema creates the todo tables when missing.
func (gateway *SQLCTodoGateway) EnsureSchema(ctx context.Context) error {
	if _, err := gateway.DB.ExecContext(ctx, todoSchema); err != nil {
		return fmt.Errorf("create todo schema: %w", err)
	}
	return nil
}

func (gateway *SQLCTodoGateway) InitOwner(ctx context.Context, owner entity.Address) (entity.Address, error) {
	var stored string
	err := gateway.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO todo_owner (address)
			SELECT $1::varchar
			WHERE NOT EXISTS (SELECT 1 FROM todo_owner)`, owner.String())
		if err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `SELECT address FROM todo_owner ORDER BY id ASC LIMIT 1`).Scan(&stored)
	})
	if err != nil {
		return entity.ZeroAddress, err
	}
	return entity.ParseAddress(stored)
}

func (gateway *SQLCTodoGateway) Count(ctx context.Context) (int, error) {
	var count int
	err := gateway.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM todo_items`).Scan(&count)
	return count, err
}

func (gateway *SQLCTodoGateway) FindAll(ctx context.Context) (todos []entity.Todo, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT title, description, status
		FROM todo_items
		ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	todos = make([]entity.Todo, 0)
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.Title, &t.Description, &t.Status); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (gateway *SQLCTodoGateway) FindByIndex(ctx context.Context, index int) (*entity.Todo, error) {
	var t entity.Todo
	err := gateway.DB.QueryRowContext(ctx, `
		SELECT title, description, status
		FROM todo_items
		WHERE position = $1`, index).
		Scan(&t.Title, &t.Description, &t.Status)
	if err == sql.ErrNoRows {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (gateway *SQLCTodoGateway) Append(ctx context.Context, todo entity.Todo) (int, error) {
	var position int
	err := gateway.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM todo_items`).Scan(&position); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO todo_items (position, title, description, status)
			VALUES ($1, $2, $3, $4)`,
			position, todo.Title, todo.Description, uint8(todo.Status))
		return err
	})
	if err != nil {
		return 0, err
	}
	return position, nil
}

func (gateway *SQLCTodoGateway) ReplaceAt(ctx context.Context, index int, todo entity.Todo) error {
	result, err := gateway.DB.ExecContext(ctx, `
		UPDATE todo_items
		SET title = $1, description = $2, status = $3, updated_at = NOW()
		WHERE position = $4`,
		todo.Title, todo.Description, uint8(todo.Status), index)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (gateway *SQLCTodoGateway) RemoveAt(ctx context.Context, index int) error {
	return gateway.inTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM todo_items WHERE position = $1`, index)
		if err != nil {
			return err
		}
		if err := requireAffected(result); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE todo_items
			SET position = position - 1
			WHERE position > $1`, index)
		return err
	})
}

// inTx runs fn in a transaction, committing on success and rolling back otherwise.
func (gateway *SQLCTodoGateway) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := gateway.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPositionNotFound
	}
	return nil
}
