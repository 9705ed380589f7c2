package user

import "time"

type UserDB struct {
	ID           int64
	Mobile       string
	Role         string
	District     string
	Status       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserModifyDB struct {
	ID           *int64
	Mobile       *string
	Role         *string
	District     *string
	Status       *string
	PasswordHash *string
}
