package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

// latestStatusEvents ranks each inquiry's status events newest first.
// rn = 1 is the current status; equal timestamps fall back to the event id
// so the choice is deterministic.
const latestStatusEvents = `SELECT inquiry_id, status, created_at, updated_by,
	       ROW_NUMBER() OVER (PARTITION BY inquiry_id ORDER BY created_at DESC, id DESC) AS rn
	  FROM inquiry_status_events`

const latestStatusJoin = `LEFT JOIN (` + latestStatusEvents + `) ls ON ls.inquiry_id = i.id AND ls.rn = 1`

const inquirySelectCols = `id, name, phone, email, read, created_at`

// PgInquiryRepository is the PostgreSQL implementation of InquiryRepository.
type PgInquiryRepository struct {
	q Querier
}

// NewPgInquiryRepository creates a PgInquiryRepository backed by q.
func NewPgInquiryRepository(q Querier) *PgInquiryRepository {
	return &PgInquiryRepository{q: q}
}

var _ InquiryRepository = (*PgInquiryRepository)(nil)

// Create inserts a new inquiry and fills ID, Read and CreatedAt from RETURNING.
func (r *PgInquiryRepository) Create(ctx context.Context, inq *model.Inquiry) error {
	query, args, err := psql.Insert("inquiries").
		Columns("name", "phone", "email").
		Values(inq.Name, inq.Phone, inq.Email).
		Suffix("RETURNING id, read, created_at").
		ToSql()
	if err != nil {
		return mapError("create inquiry", err)
	}
	err = r.q.QueryRow(ctx, query, args...).Scan(&inq.ID, &inq.Read, &inq.CreatedAt)
	return mapError("create inquiry", err)
}

// FindByID returns the inquiry with the given id or ErrNotFound.
func (r *PgInquiryRepository) FindByID(ctx context.Context, id int64) (*model.Inquiry, error) {
	var inq model.Inquiry
	err := r.q.QueryRow(ctx,
		`SELECT `+inquirySelectCols+` FROM inquiries WHERE id = $1`, id,
	).Scan(&inq.ID, &inq.Name, &inq.Phone, &inq.Email, &inq.Read, &inq.CreatedAt)
	if err != nil {
		return nil, mapError("find inquiry", err)
	}
	return &inq, nil
}

// MarkRead sets the read flag. PostgreSQL counts matched rows even when the
// value is unchanged, so a repeated call still reports one affected row.
func (r *PgInquiryRepository) MarkRead(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE inquiries SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return mapError("mark inquiry read", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark inquiry read %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListWithStatus returns inquiries joined with their latest status event,
// ordered by inquiry creation time descending (id descending on ties).
func (r *PgInquiryRepository) ListWithStatus(ctx context.Context, opts model.InquiryListOptions) ([]*model.InquiryWithStatus, error) {
	b := psql.Select(
		"i.id", "i.name", "i.phone", "i.email", "i.read", "i.created_at",
		"ls.status", "ls.created_at", "ls.updated_by",
	).
		From("inquiries i").
		JoinClause(latestStatusJoin).
		OrderBy("i.created_at DESC", "i.id DESC")

	if opts.Status != "" {
		b = b.Where(sq.Eq{"ls.status": opts.Status})
	}
	if opts.UnreadOnly {
		b = b.Where(sq.Eq{"i.read": false})
	}
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		b = b.Offset(uint64(opts.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, mapError("list inquiries with status", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list inquiries with status", err)
	}
	defer rows.Close()

	var out []*model.InquiryWithStatus
	for rows.Next() {
		var (
			row       model.InquiryWithStatus
			status    *string
			updatedAt *time.Time
			updatedBy *uuid.UUID
		)
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Phone, &row.Email, &row.Read, &row.CreatedAt,
			&status, &updatedAt, &updatedBy,
		); err != nil {
			return nil, mapError("scan inquiry with status", err)
		}
		row.CurrentStatus = status
		row.LastUpdated = updatedAt
		row.UpdatedBy = updatedBy
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list inquiries with status", err)
	}
	return out, nil
}
