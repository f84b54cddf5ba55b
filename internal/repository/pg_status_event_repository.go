package repository

import (
	"context"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

type pgStatusEventRepository struct {
	q Querier
}

// NewPgStatusEventRepository returns a PostgreSQL-backed StatusEventRepository.
func NewPgStatusEventRepository(q Querier) StatusEventRepository {
	return &pgStatusEventRepository{q: q}
}

// Append inserts a new event; ID and CreatedAt come from the database.
// A missing inquiry surfaces as ErrNotFound through the foreign key.
func (r *pgStatusEventRepository) Append(ctx context.Context, ev *model.StatusEvent) error {
	query, args, err := psql.Insert("inquiry_status_events").
		Columns("inquiry_id", "status", "updated_by").
		Values(ev.InquiryID, ev.Status, ev.UpdatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return mapError("append status event", err)
	}
	err = r.q.QueryRow(ctx, query, args...).Scan(&ev.ID, &ev.CreatedAt)
	return mapError("append status event", err)
}

// ListByInquiry returns the inquiry's events newest first.
func (r *pgStatusEventRepository) ListByInquiry(ctx context.Context, inquiryID int64) ([]*model.StatusEvent, error) {
	query, args, err := psql.Select("id", "inquiry_id", "status", "updated_by", "created_at").
		From("inquiry_status_events").
		Where("inquiry_id = ?", inquiryID).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, mapError("list status events", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list status events", err)
	}
	defer rows.Close()

	var events []*model.StatusEvent
	for rows.Next() {
		var ev model.StatusEvent
		if err := rows.Scan(&ev.ID, &ev.InquiryID, &ev.Status, &ev.UpdatedBy, &ev.CreatedAt); err != nil {
			return nil, mapError("scan status event", err)
		}
		events = append(events, &ev)
	}
	return events, mapError("list status events", rows.Err())
}
