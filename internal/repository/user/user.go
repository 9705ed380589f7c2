package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelnet/internal/entities"
	"parcelnet/internal/repository"
	"parcelnet/internal/service/auth"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModifyEntity entities.UserModify) (int64, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)
	query := `INSERT INTO users (mobile, role, district, status, password_hash)
		VALUES ($1, $2, COALESCE($3, ''), $4, COALESCE($5, ''))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		userModifyModel.Mobile,
		userModifyModel.Role,
		userModifyModel.District,
		userModifyModel.Status,
		userModifyModel.PasswordHash,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrMobileTaken
		}
		return 0, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	// опционнные поля
	if userModifyModel.Mobile != nil {
		builder = builder.Set("mobile", userModifyModel.Mobile)
	}
	if userModifyModel.Role != nil {
		builder = builder.Set("role", userModifyModel.Role)
	}
	if userModifyModel.District != nil {
		builder = builder.Set("district", userModifyModel.District)
	}
	if userModifyModel.Status != nil {
		builder = builder.Set("status", userModifyModel.Status)
	}
	if userModifyModel.PasswordHash != nil {
		builder = builder.Set("password_hash", userModifyModel.PasswordHash)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING id, mobile, role, district, status, password_hash, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&userModel.ID,
			&userModel.Mobile,
			&userModel.Role,
			&userModel.District,
			&userModel.Status,
			&userModel.PasswordHash,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, auth.ErrMobileTaken
		}

		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByMobile(ctx context.Context, mobile string) (*entities.User, error) {
	query := `SELECT id, mobile, role, district, status, password_hash, created_at, updated_at
		FROM users
		WHERE mobile = $1`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, mobile).
		Scan(
			&userModel.ID,
			&userModel.Mobile,
			&userModel.Role,
			&userModel.District,
			&userModel.Status,
			&userModel.PasswordHash,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}

		return nil, fmt.Errorf("unexpected user repository getbymobile error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) CountDistrictAdmins(ctx context.Context, district string) (int64, error) {
	query := `SELECT COUNT(*)
		FROM users
		WHERE role = 'district_admin' AND district = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, district).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository count district admins error: %w", err)
	}

	return count, nil
}
