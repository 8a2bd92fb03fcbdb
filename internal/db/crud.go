package db

import (
	"context"
	"strings"

	"umrah/internal/domain"
	"umrah/internal/domain/models"
)

// UpdateColumns rewrites exactly the given columns of one row.
// Column names must come from a models.*Update Fields() method.
func UpdateColumns(ctx context.Context, q Execer, kind domain.Kind, id int64, fields []models.Field) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if len(fields) == 0 {
		return domain.ValidationError{Msg: "tidak ada kolom yang diubah"}
	}

	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, f := range fields {
		sets = append(sets, "`"+f.Column+"`=?")
		args = append(args, f.Value)
	}
	args = append(args, id)

	res, err := q.ExecContext(ctx, "UPDATE `"+kind.Table()+"` SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return Classify("update "+string(kind), err)
	}
	// clientFoundRows=true: affected means matched.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: string(kind)}
	}
	return nil
}

// DeleteByID removes one row. A missing id is not an error.
func DeleteByID(ctx context.Context, q Execer, kind domain.Kind, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if _, err := q.ExecContext(ctx, "DELETE FROM `"+kind.Table()+"` WHERE id=?", id); err != nil {
		return Classify("delete "+string(kind), err)
	}
	return nil
}
