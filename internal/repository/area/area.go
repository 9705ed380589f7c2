package area

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelnet/internal/entities"
	"parcelnet/internal/repository"
	"parcelnet/internal/service/area"
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

func (r *Repository) Create(ctx context.Context, areaModifyEntity entities.AreaModify) (int64, error) {
	areaModifyModel := FromDomainModify(&areaModifyEntity)
	query := `INSERT INTO areas (name, normalized_name, code, pincode, district, zone, is_active)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''), COALESCE($7, TRUE))
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		areaModifyModel.Name,
		areaModifyModel.NormalizedName,
		areaModifyModel.Code,
		areaModifyModel.Pincode,
		areaModifyModel.District,
		areaModifyModel.Zone,
		areaModifyModel.IsActive,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, area.ErrDuplicate
		}
		return 0, fmt.Errorf("unexpected area repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByDistrict(ctx context.Context, district, zone string) ([]entities.Area, error) {
	builder := qb.
		Select("id, name, normalized_name, code, pincode, district, zone, is_active, created_at").
		From("areas").
		Where(sq.Eq{"district": district, "is_active": true})

	if zone != "" {
		builder = builder.Where(sq.Eq{"zone": zone})
	}

	builder = builder.OrderBy("name ASC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected area repository getbydistrict error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected area repository getbydistrict error: %w", err)
	}
	defer rows.Close()

	areaModels := make([]AreaDB, 0, 8)
	for rows.Next() {
		var areaModel AreaDB
		err := rows.Scan(
			&areaModel.ID,
			&areaModel.Name,
			&areaModel.NormalizedName,
			&areaModel.Code,
			&areaModel.Pincode,
			&areaModel.District,
			&areaModel.Zone,
			&areaModel.IsActive,
			&areaModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected area repository getbydistrict error: %w", err)
		}
		areaModels = append(areaModels, areaModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected area repository getbydistrict error: %w", err)
	}

	return ToDomainList(areaModels), nil
}

func (r *Repository) GetByNormalizedName(ctx context.Context, district, normalizedName string) (*entities.Area, error) {
	query := `SELECT id, name, normalized_name, code, pincode, district, zone, is_active, created_at
		FROM areas
		WHERE district = $1 AND normalized_name = $2 AND is_active = TRUE`

	var areaModel AreaDB
	err := r.querier.QueryRow(ctx, query, district, normalizedName).
		Scan(
			&areaModel.ID,
			&areaModel.Name,
			&areaModel.NormalizedName,
			&areaModel.Code,
			&areaModel.Pincode,
			&areaModel.District,
			&areaModel.Zone,
			&areaModel.IsActive,
			&areaModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, area.ErrAreaNotFound
		}

		return nil, fmt.Errorf("unexpected area repository getbynormalizedname error: %w", err)
	}

	return ToDomain(&areaModel), nil
}

func (r *Repository) GetZones(ctx context.Context, district string) ([]string, error) {
	query := `SELECT DISTINCT zone
		FROM areas
		WHERE district = $1 AND is_active = TRUE AND zone != ''
		ORDER BY zone`

	rows, err := r.querier.Query(ctx, query, district)
	if err != nil {
		return nil, fmt.Errorf("unexpected area repository getzones error: %w", err)
	}
	defer rows.Close()

	zones := make([]string, 0, 8)
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, fmt.Errorf("unexpected area repository getzones error: %w", err)
		}
		zones = append(zones, zone)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected area repository getzones error: %w", err)
	}

	return zones, nil
}
