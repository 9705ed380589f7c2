package route

import "parcelnet/internal/entities"

func ToDomain(r *RouteDB) *entities.Route {
	if r == nil {
		return nil
	}
	return &entities.Route{
		ID:        r.ID,
		Name:      r.Name,
		DriverID:  r.DriverID,
		District:  r.District,
		Status:    entities.RouteStatusType(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromDomainModify(routeModify *entities.RouteModify) *RouteModifyDB {
	if routeModify == nil {
		return nil
	}
	routeDB := &RouteModifyDB{}

	if routeModify.ID != nil {
		routeDB.ID = routeModify.ID
	}
	if routeModify.Name != nil {
		routeDB.Name = routeModify.Name
	}
	if routeModify.DriverID != nil {
		routeDB.DriverID = routeModify.DriverID
	}
	if routeModify.District != nil {
		routeDB.District = routeModify.District
	}
	if routeModify.Status != nil {
		status := routeModify.Status.String()
		routeDB.Status = &status
	}

	return routeDB
}

func ToDomainList(routesDB []RouteDB) []entities.Route {
	if len(routesDB) == 0 {
		return []entities.Route{}
	}

	result := make([]entities.Route, len(routesDB))
	for i, routeDB := range routesDB {
		result[i] = *ToDomain(&routeDB)
	}
	return result
}
