package scope

import (
	"errors"

	"parcelnet/internal/entities"
)

// Пакет задает единую таблицу "роль x ресурс -> фильтр строк".
// Репозитории применяют полученный фильтр безусловно: это граница безопасности,
// а не фильтр для UI. Параметры скоупа из запроса клиента сюда не попадают.

var ErrNoAccess = errors.New("role has no access to resource")

// ParcelScope фильтр посылок. При District != "" репозиторий обязан сверять
// и район источника, и район назначения.
type ParcelScope struct {
	All      bool
	District string
	ShopID   int64
}

type RouteScope struct {
	All      bool
	District string
	DriverID int64
}

type ShopScope struct {
	All      bool
	District string
	ShopID   int64
}

var parcelResolvers = map[entities.Role]func(entities.AuthContext) (ParcelScope, error){
	entities.RoleSuperAdmin: func(entities.AuthContext) (ParcelScope, error) {
		return ParcelScope{All: true}, nil
	},
	entities.RoleDistrictAdmin: func(actor entities.AuthContext) (ParcelScope, error) {
		if actor.District == "" {
			return ParcelScope{}, ErrNoAccess
		}
		return ParcelScope{District: actor.District}, nil
	},
	entities.RoleShop: func(actor entities.AuthContext) (ParcelScope, error) {
		if actor.ShopID == 0 {
			return ParcelScope{}, ErrNoAccess
		}
		return ParcelScope{ShopID: actor.ShopID}, nil
	},
}

var shopResolvers = map[entities.Role]func(entities.AuthContext) (ShopScope, error){
	entities.RoleSuperAdmin: func(entities.AuthContext) (ShopScope, error) {
		return ShopScope{All: true}, nil
	},
	entities.RoleDistrictAdmin: func(actor entities.AuthContext) (ShopScope, error) {
		if actor.District == "" {
			return ShopScope{}, ErrNoAccess
		}
		return ShopScope{District: actor.District}, nil
	},
	entities.RoleShop: func(actor entities.AuthContext) (ShopScope, error) {
		if actor.ShopID == 0 {
			return ShopScope{}, ErrNoAccess
		}
		return ShopScope{ShopID: actor.ShopID}, nil
	},
}

func ForParcels(actor entities.AuthContext) (ParcelScope, error) {
	resolve, ok := parcelResolvers[actor.Role]
	if !ok {
		return ParcelScope{}, ErrNoAccess
	}
	return resolve(actor)
}

// ForRoutes требует заранее разрешенный профиль водителя: листинг маршрутов
// водителя идет по свежему driverID, а не по полям токена.
func ForRoutes(actor entities.AuthContext, driverID int64) (RouteScope, error) {
	switch actor.Role {
	case entities.RoleSuperAdmin:
		return RouteScope{All: true}, nil
	case entities.RoleDistrictAdmin:
		if actor.District == "" {
			return RouteScope{}, ErrNoAccess
		}
		return RouteScope{District: actor.District}, nil
	case entities.RoleDriver:
		if driverID == 0 {
			return RouteScope{}, ErrNoAccess
		}
		return RouteScope{DriverID: driverID}, nil
	default:
		return RouteScope{}, ErrNoAccess
	}
}

func ForShops(actor entities.AuthContext) (ShopScope, error) {
	resolve, ok := shopResolvers[actor.Role]
	if !ok {
		return ShopScope{}, ErrNoAccess
	}
	return resolve(actor)
}

// CanSeeParcel точечная проверка для чтения/мутации одной посылки.
func CanSeeParcel(actor entities.AuthContext, parcel *entities.Parcel) bool {
	s, err := ForParcels(actor)
	if err != nil {
		return false
	}
	switch {
	case s.All:
		return true
	case s.District != "":
		return parcel.District == s.District || parcel.DestinationDistrict == s.District
	case s.ShopID != 0:
		return parcel.SourceShopID == s.ShopID
	default:
		return false
	}
}
