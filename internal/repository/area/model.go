package area

import "time"

type AreaDB struct {
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

type AreaModifyDB struct {
	ID             *int64
	Name           *string
	NormalizedName *string
	Code           *string
	Pincode        *string
	District       *string
	Zone           *string
	IsActive       *bool
}
