package parcel

import "parcelnet/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:                  p.ID,
		TrackingNumber:      p.TrackingNumber,
		SenderName:          p.SenderName,
		SenderMobile:        p.SenderMobile,
		ReceiverName:        p.ReceiverName,
		ReceiverMobile:      p.ReceiverMobile,
		District:            p.District,
		DestinationDistrict: p.DestinationDistrict,
		DestinationArea:     p.DestinationArea,
		DestinationZone:     p.DestinationZone,
		SourceShopID:        p.SourceShopID,
		RouteID:             p.RouteID,
		Size:                entities.ParcelSizeType(p.Size),
		PaymentMode:         entities.PaymentModeType(p.PaymentMode),
		Price:               p.Price,
		Status:              entities.ParcelStatusType(p.Status),
		DeliveryOTP:         p.DeliveryOTP,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{}

	if parcelModify.ID != nil {
		parcelDB.ID = parcelModify.ID
	}
	if parcelModify.TrackingNumber != nil {
		parcelDB.TrackingNumber = parcelModify.TrackingNumber
	}
	if parcelModify.SenderName != nil {
		parcelDB.SenderName = parcelModify.SenderName
	}
	if parcelModify.SenderMobile != nil {
		parcelDB.SenderMobile = parcelModify.SenderMobile
	}
	if parcelModify.ReceiverName != nil {
		parcelDB.ReceiverName = parcelModify.ReceiverName
	}
	if parcelModify.ReceiverMobile != nil {
		parcelDB.ReceiverMobile = parcelModify.ReceiverMobile
	}
	if parcelModify.District != nil {
		parcelDB.District = parcelModify.District
	}
	if parcelModify.DestinationDistrict != nil {
		parcelDB.DestinationDistrict = parcelModify.DestinationDistrict
	}
	if parcelModify.DestinationArea != nil {
		parcelDB.DestinationArea = parcelModify.DestinationArea
	}
	if parcelModify.DestinationZone != nil {
		parcelDB.DestinationZone = parcelModify.DestinationZone
	}
	if parcelModify.SourceShopID != nil {
		parcelDB.SourceShopID = parcelModify.SourceShopID
	}
	if parcelModify.RouteID != nil {
		parcelDB.RouteID = parcelModify.RouteID
	}
	if parcelModify.Size != nil {
		size := parcelModify.Size.String()
		parcelDB.Size = &size
	}
	if parcelModify.PaymentMode != nil {
		paymentMode := parcelModify.PaymentMode.String()
		parcelDB.PaymentMode = &paymentMode
	}
	if parcelModify.Price != nil {
		parcelDB.Price = parcelModify.Price
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}
	if parcelModify.DeliveryOTP != nil {
		parcelDB.DeliveryOTP = parcelModify.DeliveryOTP
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}
