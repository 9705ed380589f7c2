package entities

import "time"

type Shop struct {
	ID         int64
	ShopCode   string
	ShopName   string
	OwnerName  string
	Mobile     string
	UserID     int64
	District   string
	Area       string
	Commission int64 // ставка за посылку, в пайсах
	IsHub      bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ShopModify struct {
	ID         *int64
	ShopCode   *string
	ShopName   *string
	OwnerName  *string
	Mobile     *string
	UserID     *int64
	District   *string
	Area       *string
	Commission *int64
	IsHub      *bool
}

type Driver struct {
	ID        int64
	Name      string
	Mobile    string
	UserID    int64
	District  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModify struct {
	ID       *int64
	Name     *string
	Mobile   *string
	UserID   *int64
	District *string
}
