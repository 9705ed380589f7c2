package route

import (
	"context"
	"fmt"
	"strings"

	"parcelnet/internal/entities"
	"parcelnet/internal/service/scope"
)

type Route struct {
	repository Repository
	drivers    DriverRepository
	parcels    ParcelService
	txManager  TxManager
}

func New(
	repository Repository,
	drivers DriverRepository,
	parcels ParcelService,
	txManager TxManager,
) *Route {
	return &Route{
		repository: repository,
		drivers:    drivers,
		parcels:    parcels,
		txManager:  txManager,
	}
}

// Create открывает маршрут под водителя. Район маршрута штампуется из профиля
// водителя на момент создания.
func (s *Route) Create(ctx context.Context, actor entities.AuthContext, name string, driverID int64) (*entities.Route, error) {
	if actor.Role != entities.RoleSuperAdmin && actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrNotAllowed
	}
	if strings.TrimSpace(name) == "" || driverID == 0 {
		return nil, ErrMissingRequiredFields
	}

	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, ErrDriverNotFound
	}
	if driver.District == "" {
		return nil, ErrDriverNoDistrict
	}
	if actor.Role == entities.RoleDistrictAdmin && driver.District != actor.District {
		return nil, ErrDriverNotFound
	}

	openStatus := entities.RouteOpen
	created, err := s.repository.Create(ctx, entities.RouteModify{
		Name:     &name,
		DriverID: &driverID,
		District: &driver.District,
		Status:   &openStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}
	return created, nil
}

// Assign вешает посылку на открытый маршрут и форсирует статус dispatched.
// Читаем-проверяем-пишем под Serializable транзакцией, чтобы два параллельных
// назначения на закрывающийся маршрут не прошли оба.
func (s *Route) Assign(ctx context.Context, actor entities.AuthContext, routeID, parcelID int64) (*entities.Parcel, error) {
	if actor.Role != entities.RoleSuperAdmin && actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrNotAllowed
	}

	var assigned *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		routeEntity, err := s.getScoped(ctx, actor, routeID)
		if err != nil {
			return err
		}
		if routeEntity.Status != entities.RouteOpen {
			return ErrRouteClosed
		}

		if _, err := s.parcels.Get(ctx, actor, parcelID); err != nil {
			return fmt.Errorf("resolve parcel: %w", err)
		}

		assigned, err = s.parcels.AssignRoute(ctx, parcelID, routeID)
		if err != nil {
			return fmt.Errorf("assign parcel: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assigned, nil
}

type CloseResult struct {
	Route       *entities.Route
	Undelivered int64 // посылки маршрута, не достигшие delivered на момент закрытия
}

// Close закрывает маршрут. Закрытие монотонно, повторное закрытие отклоняется.
// Недоставленные посылки закрытию не мешают, их количество возвращается
// вызывающему для предупреждения.
func (s *Route) Close(ctx context.Context, actor entities.AuthContext, routeID int64) (*CloseResult, error) {
	if actor.Role != entities.RoleSuperAdmin && actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrNotAllowed
	}

	var result CloseResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.getScoped(ctx, actor, routeID); err != nil {
			return err
		}

		closed, err := s.repository.CloseOpen(ctx, routeID)
		if err != nil {
			return err
		}

		undelivered, err := s.repository.CountUndelivered(ctx, routeID)
		if err != nil {
			return fmt.Errorf("count undelivered: %w", err)
		}

		result = CloseResult{
			Route:       closed,
			Undelivered: undelivered,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// List выдает маршруты по скоупу роли. Для водителя профиль разрешается
// заново по авторизованному пользователю, а не по полям токена.
func (s *Route) List(ctx context.Context, actor entities.AuthContext) ([]entities.Route, error) {
	var driverID int64
	if actor.Role == entities.RoleDriver {
		driver, err := s.drivers.GetByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, ErrDriverNotFound
		}
		driverID = driver.ID
	}

	routeScope, err := scope.ForRoutes(actor, driverID)
	if err != nil {
		return nil, ErrNotAllowed
	}

	routes, err := s.repository.GetAll(ctx, routeScope)
	if err != nil {
		return nil, fmt.Errorf("get routes: %w", err)
	}
	return routes, nil
}

// Suggestions плотность забронированных посылок в район админа по зонам
// назначения. Посылки без зоны не учитываются.
func (s *Route) Suggestions(ctx context.Context, actor entities.AuthContext) ([]entities.ZoneLoad, error) {
	if actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrNotAllowed
	}

	loads, err := s.repository.ZoneLoads(ctx, actor.District)
	if err != nil {
		return nil, fmt.Errorf("zone loads: %w", err)
	}
	return loads, nil
}

func (s *Route) getScoped(ctx context.Context, actor entities.AuthContext, routeID int64) (*entities.Route, error) {
	routeEntity, err := s.repository.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	if actor.Role == entities.RoleDistrictAdmin && routeEntity.District != actor.District {
		return nil, ErrRouteNotFound
	}
	return routeEntity, nil
}
