package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/calpick/internal/models"
)

const selectionColumns = "id, pick_mode, value_type, format, payload, month_time, created_at"

// SaveSelection records an emitted picker value and returns its id.
func (d *Database) SaveSelection(ctx context.Context, s models.Selection) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		created := s.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		res, err := d.DB.ExecContext(ctx,
			"INSERT INTO selections (pick_mode, value_type, format, payload, month_time, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			string(s.PickMode), string(s.ValueType), nullableString(s.Format), s.Payload, s.MonthTime, created)
		if err != nil {
			return 0, wrapErr(EntitySelection, "save", 0, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, wrapErr(EntitySelection, "last id", 0, err)
		}
		return id, nil
	})
}

// LatestSelection returns the most recent selection, if any.
func (d *Database) LatestSelection(ctx context.Context) (models.Selection, bool, error) {
	var found bool
	s, err := withDBContextResult(d, ctx, func(ctx context.Context) (models.Selection, error) {
		row := d.DB.QueryRowContext(ctx, "SELECT "+selectionColumns+" FROM selections ORDER BY id DESC LIMIT 1")
		s, err := scanSelection(row)
		if isNoRows(err) {
			return models.Selection{}, nil
		}
		if err != nil {
			return models.Selection{}, wrapErr(EntitySelection, "latest", 0, err)
		}
		found = true
		return s, nil
	})
	return s, found, err
}

// ListSelections returns up to limit selections, newest first.
func (d *Database) ListSelections(ctx context.Context, limit int) ([]models.Selection, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Selection, error) {
		rows, err := d.DB.QueryContext(ctx, "SELECT "+selectionColumns+" FROM selections ORDER BY id DESC LIMIT ?", limit)
		if err != nil {
			return nil, wrapErr(EntitySelection, "list", 0, err)
		}
		defer rows.Close()

		var out []models.Selection
		for rows.Next() {
			s, err := scanSelection(rows)
			if err != nil {
				return nil, wrapErr(EntitySelection, "list", 0, err)
			}
			out = append(out, s)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntitySelection, "list", 0, err)
		}
		return out, nil
	})
}

// DeleteSelection removes one selection by id.
func (d *Database) DeleteSelection(ctx context.Context, id int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM selections WHERE id = ?", id)
		return wrapErr(EntitySelection, "delete", id, err)
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSelection(row rowScanner) (models.Selection, error) {
	var s models.Selection
	var mode, typ string
	var format *string
	if err := row.Scan(&s.ID, &mode, &typ, &format, &s.Payload, &s.MonthTime, &s.CreatedAt); err != nil {
		return models.Selection{}, err
	}
	s.PickMode = models.PickMode(mode)
	s.ValueType = models.ValueType(typ)
	if format != nil {
		s.Format = *format
	}
	return s, nil
}
