package settlement

import (
	"context"
	"fmt"

	"parcelnet/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, settlementModifyEntity entities.SettlementModify) (*entities.Settlement, error) {
	settlementModifyModel := FromDomainModify(&settlementModifyEntity)

	query := `
		INSERT INTO settlements (shop_id, total_commission, period_start, period_end, status, transaction_id, district)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, shop_id, total_commission, period_start, period_end, status, transaction_id, district, created_at
	`

	var settlementModel SettlementDB
	err := r.querier.QueryRow(
		ctx,
		query,
		settlementModifyModel.ShopID,
		settlementModifyModel.TotalCommission,
		settlementModifyModel.PeriodStart,
		settlementModifyModel.PeriodEnd,
		settlementModifyModel.Status,
		settlementModifyModel.TransactionID,
		settlementModifyModel.District,
	).Scan(
		&settlementModel.ID,
		&settlementModel.ShopID,
		&settlementModel.TotalCommission,
		&settlementModel.PeriodStart,
		&settlementModel.PeriodEnd,
		&settlementModel.Status,
		&settlementModel.TransactionID,
		&settlementModel.District,
		&settlementModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository create error: %w", err)
	}

	return ToDomain(&settlementModel), nil
}

func (r *Repository) GetByShop(ctx context.Context, shopID int64) ([]entities.Settlement, error) {
	query := `
		SELECT id, shop_id, total_commission, period_start, period_end, status, transaction_id, district, created_at
		FROM settlements
		WHERE shop_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.querier.Query(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository getbyshop error: %w", err)
	}
	defer rows.Close()

	settlementModels := make([]SettlementDB, 0, 8)
	for rows.Next() {
		var settlementModel SettlementDB
		err := rows.Scan(
			&settlementModel.ID,
			&settlementModel.ShopID,
			&settlementModel.TotalCommission,
			&settlementModel.PeriodStart,
			&settlementModel.PeriodEnd,
			&settlementModel.Status,
			&settlementModel.TransactionID,
			&settlementModel.District,
			&settlementModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected settlement repository getbyshop error: %w", err)
		}
		settlementModels = append(settlementModels, settlementModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository getbyshop error: %w", err)
	}

	return ToDomainList(settlementModels), nil
}

func (r *Repository) SumByShop(ctx context.Context, shopID int64) (int64, error) {
	query := `SELECT COALESCE(SUM(total_commission), 0)
		FROM settlements
		WHERE shop_id = $1`

	var total int64
	err := r.querier.QueryRow(ctx, query, shopID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected settlement repository sumbyshop error: %w", err)
	}

	return total, nil
}

// DistrictPending невыплаченный остаток комиссии по районам: заработано всеми
// магазинами района минус выплачено.
func (r *Repository) DistrictPending(ctx context.Context) ([]entities.DistrictPending, error) {
	query := `
		SELECT s.district,
		       SUM(
		           (SELECT COUNT(*) FROM parcels p WHERE p.source_shop_id = s.id) * s.commission
		           - COALESCE((SELECT SUM(t.total_commission) FROM settlements t WHERE t.shop_id = s.id), 0)
		       ) AS pending
		FROM shops s
		GROUP BY s.district
		ORDER BY s.district
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository district pending error: %w", err)
	}
	defer rows.Close()

	pending := make([]entities.DistrictPending, 0, 8)
	for rows.Next() {
		var districtPending entities.DistrictPending
		if err := rows.Scan(&districtPending.District, &districtPending.Pending); err != nil {
			return nil, fmt.Errorf("unexpected settlement repository district pending error: %w", err)
		}
		pending = append(pending, districtPending)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected settlement repository district pending error: %w", err)
	}

	return pending, nil
}
