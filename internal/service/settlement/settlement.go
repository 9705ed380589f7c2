package settlement

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"parcelnet/internal/entities"
)

type Settlement struct {
	repository Repository
	shops      ShopRepository
	parcels    ParcelRepository
	txManager  TxManager
}

func New(
	repository Repository,
	shops ShopRepository,
	parcels ParcelRepository,
	txManager TxManager,
) *Settlement {
	return &Settlement{
		repository: repository,
		shops:      shops,
		parcels:    parcels,
		txManager:  txManager,
	}
}

// Earnings сводка комиссии магазина: заработано, выплачено, остаток и журнал
// выплат. Заработок считается по всем посылкам магазина с плоской ставкой
// комиссии из профиля магазина.
func (s *Settlement) Earnings(ctx context.Context, actor entities.AuthContext, shopID int64) (*entities.ShopEarnings, error) {
	shop, err := s.resolveShop(ctx, actor, shopID)
	if err != nil {
		return nil, err
	}

	totalParcels, err := s.parcels.CountBySourceShop(ctx, shop.ID)
	if err != nil {
		return nil, fmt.Errorf("count parcels: %w", err)
	}

	totalSettled, err := s.repository.SumByShop(ctx, shop.ID)
	if err != nil {
		return nil, fmt.Errorf("sum settlements: %w", err)
	}

	settlements, err := s.repository.GetByShop(ctx, shop.ID)
	if err != nil {
		return nil, fmt.Errorf("get settlements: %w", err)
	}

	totalEarnings := totalParcels * shop.Commission
	return &entities.ShopEarnings{
		Shop:          *shop,
		TotalParcels:  totalParcels,
		TotalEarnings: totalEarnings,
		TotalSettled:  totalSettled,
		PendingAmount: totalEarnings - totalSettled,
		Settlements:   settlements,
	}, nil
}

// MarkPaid фиксирует выплату магазину. Строка журнала только добавляется,
// переплата сверх остатка отклоняется. Проверка остатка и вставка идут под
// одной транзакцией, чтобы две параллельные выплаты не списали остаток дважды.
func (s *Settlement) MarkPaid(
	ctx context.Context,
	actor entities.AuthContext,
	shopID int64,
	amount int64,
	periodStart time.Time,
	periodEnd time.Time,
) (*entities.Settlement, error) {
	if actor.Role != entities.RoleSuperAdmin && actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrNotAllowed
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if periodStart.IsZero() || periodEnd.IsZero() || periodEnd.Before(periodStart) {
		return nil, ErrInvalidPeriod
	}

	var created *entities.Settlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shop, err := s.resolveShop(ctx, actor, shopID)
		if err != nil {
			return err
		}

		totalParcels, err := s.parcels.CountBySourceShop(ctx, shop.ID)
		if err != nil {
			return fmt.Errorf("count parcels: %w", err)
		}
		totalSettled, err := s.repository.SumByShop(ctx, shop.ID)
		if err != nil {
			return fmt.Errorf("sum settlements: %w", err)
		}

		pending := totalParcels*shop.Commission - totalSettled
		if amount > pending {
			return ErrAmountExceedsPending
		}

		paidStatus := entities.SettlementPaid
		transactionID := newTransactionID()
		created, err = s.repository.Create(ctx, entities.SettlementModify{
			ShopID:          &shop.ID,
			TotalCommission: &amount,
			PeriodStart:     &periodStart,
			PeriodEnd:       &periodEnd,
			Status:          &paidStatus,
			TransactionID:   &transactionID,
			District:        &shop.District,
		})
		if err != nil {
			return fmt.Errorf("create settlement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// DistrictPending невыплаченные остатки по районам, для фоновых метрик.
func (s *Settlement) DistrictPending(ctx context.Context) ([]entities.DistrictPending, error) {
	pending, err := s.repository.DistrictPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("district pending: %w", err)
	}
	return pending, nil
}

// resolveShop находит магазин и сверяет доступ актора. Магазин видит только
// свой кошелек, районный админ только магазины своего района. Чужой магазин
// для магазина это запрет, а не "не найдено": владелец и так знает свой id.
func (s *Settlement) resolveShop(ctx context.Context, actor entities.AuthContext, shopID int64) (*entities.Shop, error) {
	switch actor.Role {
	case entities.RoleShop:
		if actor.ShopID == 0 || shopID != actor.ShopID {
			return nil, ErrNotAllowed
		}
	case entities.RoleSuperAdmin, entities.RoleDistrictAdmin:
	default:
		return nil, ErrNotAllowed
	}

	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if actor.Role == entities.RoleDistrictAdmin && shop.District != actor.District {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

func newTransactionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("TXN-%d", time.Now().UnixNano())
	}
	return "TXN-" + hex.EncodeToString(buf)
}
