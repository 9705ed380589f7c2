package entities

import "time"

type Area struct {
	ID             int64
	Name           string
	NormalizedName string
	Code           string
	Pincode        string
	District       string
	Zone           string
	IsActive       bool
	CreatedAt      time.Time
}

type AreaModify struct {
	ID             *int64
	Name           *string
	NormalizedName *string
	Code           *string
	Pincode        *string
	District       *string
	Zone           *string
	IsActive       *bool
}
