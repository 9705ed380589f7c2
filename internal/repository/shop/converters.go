package shop

import "parcelnet/internal/entities"

func ToDomain(s *ShopDB) *entities.Shop {
	if s == nil {
		return nil
	}
	return &entities.Shop{
		ID:         s.ID,
		ShopCode:   s.ShopCode,
		ShopName:   s.ShopName,
		OwnerName:  s.OwnerName,
		Mobile:     s.Mobile,
		UserID:     s.UserID,
		District:   s.District,
		Area:       s.Area,
		Commission: s.Commission,
		IsHub:      s.IsHub,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromDomainModify(shopModify *entities.ShopModify) *ShopModifyDB {
	if shopModify == nil {
		return nil
	}
	shopDB := &ShopModifyDB{}

	if shopModify.ID != nil {
		shopDB.ID = shopModify.ID
	}
	if shopModify.ShopCode != nil {
		shopDB.ShopCode = shopModify.ShopCode
	}
	if shopModify.ShopName != nil {
		shopDB.ShopName = shopModify.ShopName
	}
	if shopModify.OwnerName != nil {
		shopDB.OwnerName = shopModify.OwnerName
	}
	if shopModify.Mobile != nil {
		shopDB.Mobile = shopModify.Mobile
	}
	if shopModify.UserID != nil {
		shopDB.UserID = shopModify.UserID
	}
	if shopModify.District != nil {
		shopDB.District = shopModify.District
	}
	if shopModify.Area != nil {
		shopDB.Area = shopModify.Area
	}
	if shopModify.Commission != nil {
		shopDB.Commission = shopModify.Commission
	}
	if shopModify.IsHub != nil {
		shopDB.IsHub = shopModify.IsHub
	}

	return shopDB
}
