package route

import "time"

type RouteDB struct {
	ID        int64
	Name      string
	DriverID  int64
	District  string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RouteModifyDB struct {
	ID       *int64
	Name     *string
	DriverID *int64
	District *string
	Status   *string
}
