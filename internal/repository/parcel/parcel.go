package parcel

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelnet/internal/entities"
	"parcelnet/internal/service/parcel"
	"parcelnet/internal/service/scope"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, tracking_number, sender_name, sender_mobile, receiver_name, receiver_mobile,
		district, destination_district, destination_area, destination_zone,
		source_shop_id, route_id, size, payment_mode, price, status, delivery_otp, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	query := `
		INSERT INTO parcels (tracking_number, sender_name, sender_mobile, receiver_name, receiver_mobile,
			district, destination_district, destination_area, destination_zone,
			source_shop_id, size, payment_mode, price, status, delivery_otp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, ''), $10, $11, $12, $13, $14, COALESCE($15, ''))
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := scanParcel(r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.TrackingNumber,
		parcelModifyModel.SenderName,
		parcelModifyModel.SenderMobile,
		parcelModifyModel.ReceiverName,
		parcelModifyModel.ReceiverMobile,
		parcelModifyModel.District,
		parcelModifyModel.DestinationDistrict,
		parcelModifyModel.DestinationArea,
		parcelModifyModel.DestinationZone,
		parcelModifyModel.SourceShopID,
		parcelModifyModel.Size,
		parcelModifyModel.PaymentMode,
		parcelModifyModel.Price,
		parcelModifyModel.Status,
		parcelModifyModel.DeliveryOTP,
	), &parcelModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := scanParcel(r.querier.QueryRow(ctx, query, id), &parcelModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) Update(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)

	builder := qb.
		Update("parcels")

	// опционнные поля
	if parcelModifyModel.Status != nil {
		builder = builder.Set("status", parcelModifyModel.Status)
	}
	if parcelModifyModel.RouteID != nil {
		builder = builder.Set("route_id", parcelModifyModel.RouteID)
	}
	if parcelModifyModel.DeliveryOTP != nil {
		builder = builder.Set("delivery_otp", parcelModifyModel.DeliveryOTP)
	}
	if parcelModifyModel.DestinationArea != nil {
		builder = builder.Set("destination_area", parcelModifyModel.DestinationArea)
	}
	if parcelModifyModel.DestinationZone != nil {
		builder = builder.Set("destination_zone", parcelModifyModel.DestinationZone)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": parcelModifyModel.ID}).
		Suffix("RETURNING " + parcelColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	var parcelModel ParcelDB
	err = scanParcel(r.querier.QueryRow(ctx, query, args...), &parcelModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository update error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

// Search выборка по скоупу роли плюс необязательный поиск: точное совпадение
// по id, номеру отслеживания или действующему OTP, подстрока по мобильным.
// Фильтр скоупа применяется безусловно.
func (r *Repository) Search(ctx context.Context, parcelScope scope.ParcelScope, search string) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("parcels")

	switch {
	case parcelScope.All:
	case parcelScope.District != "":
		builder = builder.Where(sq.Or{
			sq.Eq{"district": parcelScope.District},
			sq.Eq{"destination_district": parcelScope.District},
		})
	case parcelScope.ShopID != 0:
		builder = builder.Where(sq.Eq{"source_shop_id": parcelScope.ShopID})
	default:
		return []entities.Parcel{}, nil
	}

	if search != "" {
		match := sq.Or{
			sq.Eq{"tracking_number": search},
			sq.Like{"sender_mobile": "%" + search + "%"},
			sq.Like{"receiver_mobile": "%" + search + "%"},
			sq.Eq{"delivery_otp": search},
		}
		if id, err := strconv.ParseInt(search, 10, 64); err == nil {
			match = append(match, sq.Eq{"id": id})
		}
		builder = builder.Where(match)
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := scanParcel(rows, &parcelModel); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository search error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository search error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) CountBySourceShop(ctx context.Context, shopID int64) (int64, error) {
	query := `SELECT COUNT(*)
		FROM parcels
		WHERE source_shop_id = $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, shopID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected parcel repository count by shop error: %w", err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanParcel(row rowScanner, parcelModel *ParcelDB) error {
	return row.Scan(
		&parcelModel.ID,
		&parcelModel.TrackingNumber,
		&parcelModel.SenderName,
		&parcelModel.SenderMobile,
		&parcelModel.ReceiverName,
		&parcelModel.ReceiverMobile,
		&parcelModel.District,
		&parcelModel.DestinationDistrict,
		&parcelModel.DestinationArea,
		&parcelModel.DestinationZone,
		&parcelModel.SourceShopID,
		&parcelModel.RouteID,
		&parcelModel.Size,
		&parcelModel.PaymentMode,
		&parcelModel.Price,
		&parcelModel.Status,
		&parcelModel.DeliveryOTP,
		&parcelModel.CreatedAt,
		&parcelModel.UpdatedAt,
	)
}
