package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	q Querier
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(q Querier) *PgUserRepository {
	return &PgUserRepository{q: q}
}

const userSelectCols = `id, email, name, role, suspended_at, created_at, updated_at`

// FindByID は ID でユーザーを取得する
func (r *PgUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.q.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.SuspendedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapError("find user", err)
	}
	return &u, nil
}

// Ensure は存在しなければユーザーを作成する。既存の行は変更しない
func (r *PgUserRepository) Ensure(ctx context.Context, u *model.User) error {
	query, args, err := psql.Insert("users").
		Columns("id", "email", "name", "role").
		Values(u.ID, u.Email, u.Name, u.Role).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return mapError("ensure user", err)
	}
	_, err = r.q.Exec(ctx, query, args...)
	return mapError("ensure user", err)
}
