package route

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelnet/internal/entities"
	"parcelnet/internal/service/route"
	"parcelnet/internal/service/scope"
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

func (r *Repository) Create(ctx context.Context, routeModifyEntity entities.RouteModify) (*entities.Route, error) {
	routeModifyModel := FromDomainModify(&routeModifyEntity)

	query := `
		INSERT INTO routes (name, driver_id, district, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, driver_id, district, status, created_at, updated_at
	`

	var routeModel RouteDB
	err := r.querier.QueryRow(
		ctx,
		query,
		routeModifyModel.Name,
		routeModifyModel.DriverID,
		routeModifyModel.District,
		routeModifyModel.Status,
	).Scan(
		&routeModel.ID,
		&routeModel.Name,
		&routeModel.DriverID,
		&routeModel.District,
		&routeModel.Status,
		&routeModel.CreatedAt,
		&routeModel.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Route, error) {
	query := `SELECT id, name, driver_id, district, status, created_at, updated_at
		FROM routes
		WHERE id = $1`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&routeModel.ID,
			&routeModel.Name,
			&routeModel.DriverID,
			&routeModel.District,
			&routeModel.Status,
			&routeModel.CreatedAt,
			&routeModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteNotFound
		}

		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

// CloseOpen атомарно переводит open -> closed. Если строка не зацепилась,
// маршрут уже закрыт: существование проверяет вызывающий до этого шага.
func (r *Repository) CloseOpen(ctx context.Context, id int64) (*entities.Route, error) {
	query := `
		UPDATE routes
		SET status = 'closed',
		    updated_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING id, name, driver_id, district, status, created_at, updated_at
	`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&routeModel.ID,
			&routeModel.Name,
			&routeModel.DriverID,
			&routeModel.District,
			&routeModel.Status,
			&routeModel.CreatedAt,
			&routeModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrRouteClosed
		}

		return nil, fmt.Errorf("unexpected route repository close error: %w", err)
	}

	return ToDomain(&routeModel), nil
}

func (r *Repository) GetAll(ctx context.Context, routeScope scope.RouteScope) ([]entities.Route, error) {
	builder := qb.
		Select("id, name, driver_id, district, status, created_at, updated_at").
		From("routes")

	switch {
	case routeScope.All:
	case routeScope.District != "":
		builder = builder.Where(sq.Eq{"district": routeScope.District})
	case routeScope.DriverID != 0:
		builder = builder.Where(sq.Eq{"driver_id": routeScope.DriverID})
	default:
		return []entities.Route{}, nil
	}

	builder = builder.OrderBy("created_at DESC", "id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
	}
	defer rows.Close()

	routeModels := make([]RouteDB, 0, 8)
	for rows.Next() {
		var routeModel RouteDB
		err := rows.Scan(
			&routeModel.ID,
			&routeModel.Name,
			&routeModel.DriverID,
			&routeModel.District,
			&routeModel.Status,
			&routeModel.CreatedAt,
			&routeModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
		}
		routeModels = append(routeModels, routeModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository getall error: %w", err)
	}

	return ToDomainList(routeModels), nil
}

func (r *Repository) CountUndelivered(ctx context.Context, routeID int64) (int64, error) {
	query := `SELECT COUNT(*)
		FROM parcels
		WHERE route_id = $1 AND status != 'delivered'`

	var count int64
	err := r.querier.QueryRow(ctx, query, routeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected route repository count undelivered error: %w", err)
	}

	return count, nil
}

// ZoneLoads плотность забронированных посылок по зонам назначения района,
// отсортированная по имени зоны.
func (r *Repository) ZoneLoads(ctx context.Context, destinationDistrict string) ([]entities.ZoneLoad, error) {
	query := `
		SELECT destination_zone, COUNT(*)
		FROM parcels
		WHERE destination_district = $1
		  AND status = 'booked'
		  AND destination_zone != ''
		GROUP BY destination_zone
		ORDER BY destination_zone ASC
	`

	rows, err := r.querier.Query(ctx, query, destinationDistrict)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository zone loads error: %w", err)
	}
	defer rows.Close()

	loads := make([]entities.ZoneLoad, 0, 8)
	for rows.Next() {
		var load entities.ZoneLoad
		if err := rows.Scan(&load.Zone, &load.Count); err != nil {
			return nil, fmt.Errorf("unexpected route repository zone loads error: %w", err)
		}
		loads = append(loads, load)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository zone loads error: %w", err)
	}

	return loads, nil
}
