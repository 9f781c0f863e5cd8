package repositories

import (
	"context"
	"database/sql"
	"errors"
)

// RowScanner is satisfied by both *sql.Row and *sql.Rows, so one scan
// function per entity covers single-row and paged reads.
type RowScanner interface {
	Scan(dest ...any) error
}

// EntityQueries bundles the statements and field bindings for one entity.
// Args returns the owned fields in the order the insert and update
// statements expect them; the id is never part of the owned fields.
type EntityQueries[T any] struct {
	SelectByID string
	SelectPage string
	Insert     string
	Update     string
	Delete     string
	Scan       func(RowScanner) (T, error)
	Args       func(T) []any
}

// CRUDRepository executes the five statements of one entity against the
// database. Update and delete report their affected-row count so the
// service layer can tell a missing row from a successful write.
type CRUDRepository[T any] struct {
	DB      *sql.DB
	Queries EntityQueries[T]
}

// FindByID returns nil without an error when no row matches.
func (r *CRUDRepository[T]) FindByID(ctx context.Context, id int) (*T, error) {
	row := r.DB.QueryRowContext(ctx, r.Queries.SelectByID, id)
	entity, err := r.Queries.Scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *CRUDRepository[T]) FindAll(ctx context.Context, size, offset int) ([]T, error) {
	rows, err := r.DB.QueryContext(ctx, r.Queries.SelectPage, size, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []T
	for rows.Next() {
		entity, err := r.Queries.Scan(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, rows.Err()
}

// Save inserts the entity's owned fields and returns the assigned id
// alongside the affected-row count.
func (r *CRUDRepository[T]) Save(ctx context.Context, entity T) (int, int64, error) {
	res, err := r.DB.ExecContext(ctx, r.Queries.Insert, r.Queries.Args(entity)...)
	if err != nil {
		return 0, 0, err
	}
	id, _ := res.LastInsertId()
	affected, err := res.RowsAffected()
	return int(id), affected, err
}

// Update overwrites every owned column of the row at id.
func (r *CRUDRepository[T]) Update(ctx context.Context, entity T, id int) (int64, error) {
	args := append(r.Queries.Args(entity), id)
	res, err := r.DB.ExecContext(ctx, r.Queries.Update, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CRUDRepository[T]) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.DB.ExecContext(ctx, r.Queries.Delete, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
