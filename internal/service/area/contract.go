//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=area_test
package area

import (
	"context"

	"parcelnet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, areaModifyEntity entities.AreaModify) (int64, error)
	GetByDistrict(ctx context.Context, district, zone string) ([]entities.Area, error)
	GetByNormalizedName(ctx context.Context, district, normalizedName string) (*entities.Area, error)
	GetZones(ctx context.Context, district string) ([]string, error)
}
