package entities

import "time"

type Route struct {
	ID        int64
	Name      string
	DriverID  int64
	District  string // район водителя на момент создания
	Status    RouteStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RouteStatusType string

const (
	RouteOpen   RouteStatusType = "open"
	RouteClosed RouteStatusType = "closed"
)

func (s RouteStatusType) String() string {
	return string(s)
}

type RouteModify struct {
	ID       *int64
	Name     *string
	DriverID *int64
	District *string
	Status   *RouteStatusType
}

// ZoneLoad плотность забронированных посылок по зоне назначения,
// подсказка админу района перед созданием маршрута.
type ZoneLoad struct {
	Zone  string
	Count int64
}
