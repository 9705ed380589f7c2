package user

import "parcelnet/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:           u.ID,
		Mobile:       u.Mobile,
		Role:         entities.Role(u.Role),
		District:     u.District,
		Status:       entities.UserStatusType(u.Status),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.Mobile != nil {
		userDB.Mobile = userModify.Mobile
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}
	if userModify.District != nil {
		userDB.District = userModify.District
	}
	if userModify.Status != nil {
		status := userModify.Status.String()
		userDB.Status = &status
	}
	if userModify.PasswordHash != nil {
		userDB.PasswordHash = userModify.PasswordHash
	}

	return userDB
}
