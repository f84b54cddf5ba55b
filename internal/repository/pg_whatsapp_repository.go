package repository

import (
	"context"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

type pgWhatsAppMessageRepository struct {
	q Querier
}

// NewPgWhatsAppMessageRepository returns a PostgreSQL-backed WhatsAppMessageRepository.
func NewPgWhatsAppMessageRepository(q Querier) WhatsAppMessageRepository {
	return &pgWhatsAppMessageRepository{q: q}
}

// Record appends a sent-message row. Each entity type has its own foreign key
// column, so an unknown id maps to ErrNotFound.
func (r *pgWhatsAppMessageRepository) Record(ctx context.Context, msg *model.WhatsAppMessage) error {
	query, args, err := psql.Insert("whatsapp_messages").
		Columns("entity_type", "inquiry_id", "registration_id", "category", "sent_by").
		Values(string(msg.EntityType), entityRef(msg, model.MessageEntityInquiry), entityRef(msg, model.MessageEntityRegistration), msg.Category, msg.SentBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return mapError("record whatsapp message", err)
	}
	err = r.q.QueryRow(ctx, query, args...).Scan(&msg.ID, &msg.CreatedAt)
	return mapError("record whatsapp message", err)
}

// entityRef returns the entity id for the column matching kind, or nil.
func entityRef(msg *model.WhatsAppMessage, kind model.MessageEntity) *int64 {
	if msg.EntityType != kind {
		return nil
	}
	id := msg.EntityID
	return &id
}
