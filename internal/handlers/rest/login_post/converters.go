package login_post

import (
	"parcelnet/internal/entities"
	"parcelnet/internal/generated/dto"
)

func toSessionDTO(session *entities.Session) dto.SessionResponse {
	response := dto.SessionResponse{
		Token: session.Token,
		User: dto.User{
			ID:       session.User.ID,
			Mobile:   session.User.Mobile,
			Role:     session.User.Role.String(),
			District: session.User.District,
			Status:   session.User.Status.String(),
		},
	}
	if session.ShopID != 0 {
		shopID := session.ShopID
		response.ShopID = &shopID
	}
	return response
}
