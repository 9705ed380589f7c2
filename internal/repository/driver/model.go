package driver

import "time"

type DriverDB struct {
	ID        int64
	Name      string
	Mobile    string
	UserID    int64
	District  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModifyDB struct {
	ID       *int64
	Name     *string
	Mobile   *string
	UserID   *int64
	District *string
}
