package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/dashboard/internal/entity"
)

const defaultAuditLimit = 20

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) SaveAuditEntry(ctx context.Context, entry entity.AuditEntry) error {
	sqlQuery :=
		`INSERT INTO audit_entries (id, client_id, action, user_id, user_email, user_ip, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, sqlQuery,
		entry.ID,
		entry.ClientID,
		entry.Action,
		entry.UserID,
		entry.UserEmail,
		entry.UserIP,
		entry.RequestID,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

// AuditEntriesByFilter returns one page of entries, newest first, and the total count.
func (r *Repository) AuditEntriesByFilter(ctx context.Context, filter entity.AuditFilter) ([]entity.AuditEntry, int, error) {
	stmt := applyAuditFilter(sq.Select("count(*)").From("audit_entries").PlaceholderFormat(sq.Dollar), filter)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, fmt.Errorf("count audit entries: %w", err)
	}

	if count == 0 {
		return []entity.AuditEntry{}, 0, nil
	}

	if filter.Limit == 0 {
		filter.Limit = defaultAuditLimit
	}

	if filter.Page == 0 {
		filter.Page = 1
	}

	stmt = sq.Select(
		"id",
		"client_id",
		"action",
		"user_id",
		"user_email",
		"user_ip",
		"request_id",
		"created_at",
	).From("audit_entries").PlaceholderFormat(sq.Dollar)

	stmt = applyAuditFilter(stmt, filter).
		OrderBy("created_at DESC", "id").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select audit entries: %w", err)
	}

	defer rows.Close()

	entries := make([]entity.AuditEntry, 0, filter.Limit)

	for rows.Next() {
		var entry entity.AuditEntry

		err = rows.Scan(
			&entry.ID,
			&entry.ClientID,
			&entry.Action,
			&entry.UserID,
			&entry.UserEmail,
			&entry.UserIP,
			&entry.RequestID,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		entries = append(entries, entry)
	}

	if rows.Err() != nil {
		return nil, 0, rows.Err()
	}

	return entries, count, nil
}

func (r *Repository) DeleteAuditEntriesOlderThan(ctx context.Context, t time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM audit_entries WHERE created_at < $1`, t)
	if err != nil {
		return 0, fmt.Errorf("delete audit entries: %w", err)
	}

	return tag.RowsAffected(), nil
}

func applyAuditFilter(stmt sq.SelectBuilder, filter entity.AuditFilter) sq.SelectBuilder {
	if filter.ClientID != 0 {
		stmt = stmt.Where(sq.Eq{"client_id": filter.ClientID})
	}

	if filter.Action != "" {
		stmt = stmt.Where(sq.Eq{"action": filter.Action})
	}

	return stmt
}
