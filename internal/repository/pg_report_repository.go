package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

type pgReportRepository struct {
	q Querier
}

// NewPgReportRepository returns a PostgreSQL-backed ReportRepository.
func NewPgReportRepository(q Querier) ReportRepository {
	return &pgReportRepository{q: q}
}

func (r *pgReportRepository) TotalStatusUpdates(ctx context.Context) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From("inquiry_status_events").ToSql()
	if err != nil {
		return 0, mapError("count status updates", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, mapError("count status updates", err)
	}
	return total, nil
}

// TopStatusUpdaters ranks updaters by event count, ties broken by updater id.
func (r *pgReportRepository) TopStatusUpdaters(ctx context.Context, limit int) ([]model.UpdaterCount, error) {
	query, args, err := psql.Select("e.updated_by", "COALESCE(u.name, '')", "COUNT(*) AS cnt").
		From("inquiry_status_events e").
		LeftJoin("users u ON u.id = e.updated_by").
		GroupBy("e.updated_by", "u.name").
		OrderBy("cnt DESC", "e.updated_by ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, mapError("top status updaters", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("top status updaters", err)
	}
	defer rows.Close()

	out := make([]model.UpdaterCount, 0, limit)
	for rows.Next() {
		var c model.UpdaterCount
		if err := rows.Scan(&c.UpdatedBy, &c.Name, &c.Count); err != nil {
			return nil, mapError("scan status updater", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("top status updaters", err)
	}
	return out, nil
}

func (r *pgReportRepository) StatusUpdateCounts(ctx context.Context) (map[string]int, error) {
	b := psql.Select("status", "COUNT(*)").
		From("inquiry_status_events").
		GroupBy("status")
	return r.labelCounts(ctx, "status update counts", b)
}

func (r *pgReportRepository) CurrentStatusCounts(ctx context.Context) (map[string]int, error) {
	b := psql.Select("ls.status", "COUNT(*)").
		From("("+latestStatusEvents+") ls").
		Where(sq.Eq{"ls.rn": 1}).
		GroupBy("ls.status")
	return r.labelCounts(ctx, "current status counts", b)
}

func (r *pgReportRepository) WhatsAppSentCounts(ctx context.Context, entity model.MessageEntity) (map[string]int, error) {
	b := psql.Select("category", "COUNT(*)").
		From("whatsapp_messages").
		Where(sq.Eq{"entity_type": string(entity)}).
		GroupBy("category")
	return r.labelCounts(ctx, "whatsapp sent counts", b)
}

// labelCounts runs a two-column (label, count) query into a map.
// An empty result is an empty map, never nil.
func (r *pgReportRepository) labelCounts(ctx context.Context, op string, b sq.SelectBuilder) (map[string]int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, mapError(op, err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(op, err)
	}

	counts := make(map[string]int)
	var (
		label string
		n     int
	)
	_, err = pgx.ForEachRow(rows, []any{&label, &n}, func() error {
		counts[label] = n
		return nil
	})
	if err != nil {
		return nil, mapError(op, err)
	}
	return counts, nil
}
