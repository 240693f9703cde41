package user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]model.UserEntity, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (first_name, last_name, email, mobile, password_hash, role, premium, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, UTC_TIMESTAMP())`
	userColumns     = `id, first_name, last_name, email, mobile, password_hash, role, premium, created_at, updated_at`
	getUserBase     = `SELECT ` + userColumns + ` FROM user WHERE true`
	getUsersByIDs   = `SELECT ` + userColumns + ` FROM user WHERE id IN (?)`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.FirstName, data.LastName, data.Email, data.Mobile, data.PasswordHash, data.Role, data.Premium)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns the first user matching the filter, or nil when none does.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Mobile != "" {
		query += " AND mobile = ?"
		args = append(args, filter.Mobile)
	}
	query += " LIMIT 1"

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDs loads every user whose id is in ids. Missing ids are simply absent from the result.
func (s *SQL) GetByIDs(ctx context.Context, ids []uint64) ([]model.UserEntity, error) {
	if len(ids) == 0 {
		return []model.UserEntity{}, nil
	}
	query, args, err := sqlx.In(getUsersByIDs, ids)
	if err != nil {
		return nil, err
	}

	users := make([]model.UserEntity, 0, len(ids))
	if err := s.conn.SelectContext(ctx, &users, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return users, nil
}
