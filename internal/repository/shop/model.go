package shop

import "time"

type ShopDB struct {
	ID         int64
	ShopCode   string
	ShopName   string
	OwnerName  string
	Mobile     string
	UserID     int64
	District   string
	Area       string
	Commission int64
	IsHub      bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ShopModifyDB struct {
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
