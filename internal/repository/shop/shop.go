package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"parcelnet/internal/entities"
	"parcelnet/internal/repository"
	"parcelnet/internal/service/auth"
	"parcelnet/internal/service/parcel"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shopModifyEntity entities.ShopModify) (int64, error) {
	shopModifyModel := FromDomainModify(&shopModifyEntity)
	query := `INSERT INTO shops (shop_code, shop_name, owner_name, mobile, user_id, district, area, commission, is_hub)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, FALSE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		shopModifyModel.ShopCode,
		shopModifyModel.ShopName,
		shopModifyModel.OwnerName,
		shopModifyModel.Mobile,
		shopModifyModel.UserID,
		shopModifyModel.District,
		shopModifyModel.Area,
		shopModifyModel.Commission,
		shopModifyModel.IsHub,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, auth.ErrMobileTaken
		}
		return 0, fmt.Errorf("unexpected shop repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shop, error) {
	query := `SELECT id, shop_code, shop_name, owner_name, mobile, user_id, district, area, commission, is_hub, created_at, updated_at
		FROM shops
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*entities.Shop, error) {
	query := `SELECT id, shop_code, shop_name, owner_name, mobile, user_id, district, area, commission, is_hub, created_at, updated_at
		FROM shops
		WHERE user_id = $1`

	return r.getOne(ctx, query, userID)
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Shop, error) {
	var shopModel ShopDB
	err := r.querier.QueryRow(ctx, query, arg).
		Scan(
			&shopModel.ID,
			&shopModel.ShopCode,
			&shopModel.ShopName,
			&shopModel.OwnerName,
			&shopModel.Mobile,
			&shopModel.UserID,
			&shopModel.District,
			&shopModel.Area,
			&shopModel.Commission,
			&shopModel.IsHub,
			&shopModel.CreatedAt,
			&shopModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrShopNotFound
		}

		return nil, fmt.Errorf("unexpected shop repository get error: %w", err)
	}

	return ToDomain(&shopModel), nil
}
