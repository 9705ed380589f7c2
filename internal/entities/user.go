package entities

import "time"

type User struct {
	ID           int64
	Mobile       string
	Role         Role
	District     string
	Status       UserStatusType
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleSuperAdmin    Role = "super_admin"
	RoleDistrictAdmin Role = "district_admin"
	RoleShop          Role = "shop"
	RoleDriver        Role = "driver"
)

func (r Role) String() string {
	return string(r)
}

type UserStatusType string

const (
	UserInvited UserStatusType = "invited"
	UserActive  UserStatusType = "active"
)

func (s UserStatusType) String() string {
	return string(s)
}

type UserModify struct {
	ID           *int64
	Mobile       *string
	Role         *Role
	District     *string
	Status       *UserStatusType
	PasswordHash *string
}

// AuthContext прикрепляется middleware к каждому запросу после проверки токена.
// Все сервисы доверяют ему и не перепроверяют личность заново.
type AuthContext struct {
	UserID   int64
	Role     Role
	District string
	ShopID   int64
}

func (a AuthContext) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

func (a AuthContext) IsDistrictAdmin() bool {
	return a.Role == RoleDistrictAdmin
}
