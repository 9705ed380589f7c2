package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcelnet/internal/entities"
	"parcelnet/internal/repository"
	"parcelnet/internal/service/auth"
	"parcelnet/internal/service/route"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverModifyEntity entities.DriverModify) (int64, error) {
	driverModifyModel := FromDomainModify(&driverModifyEntity)
	query := `INSERT INTO drivers (name, mobile, user_id, district)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverModifyModel.Name,
		driverModifyModel.Mobile,
		driverModifyModel.UserID,
		driverModifyModel.District,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrMobileTaken
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, name, mobile, user_id, district, created_at, updated_at
		FROM drivers
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*entities.Driver, error) {
	query := `SELECT id, name, mobile, user_id, district, created_at, updated_at
		FROM drivers
		WHERE user_id = $1`

	return r.getOne(ctx, query, userID)
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Driver, error) {
	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Mobile,
			&driverModel.UserID,
			&driverModel.District,
			&driverModel.CreatedAt,
			&driverModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrDriverNotFound
		}

		return nil, fmt.Errorf("unexpected driver repository get error: %w", err)
	}

	return ToDomain(&driverModel), nil
}
