package parcel_post

import (
	"parcelnet/internal/entities"
	"parcelnet/internal/generated/dto"
)

// OTP доставки в ответы не попадает, он уходит получателю по SMS.
func toParcelDTO(parcel *entities.Parcel) dto.Parcel {
	return dto.Parcel{
		ID:                  parcel.ID,
		TrackingNumber:      parcel.TrackingNumber,
		SenderName:          parcel.SenderName,
		SenderMobile:        parcel.SenderMobile,
		ReceiverName:        parcel.ReceiverName,
		ReceiverMobile:      parcel.ReceiverMobile,
		District:            parcel.District,
		DestinationDistrict: parcel.DestinationDistrict,
		DestinationArea:     parcel.DestinationArea,
		DestinationZone:     parcel.DestinationZone,
		SourceShopID:        parcel.SourceShopID,
		RouteID:             parcel.RouteID,
		Size:                parcel.Size.String(),
		PaymentMode:         parcel.PaymentMode.String(),
		Price:               parcel.Price,
		Status:              parcel.Status.String(),
		CreatedAt:           parcel.CreatedAt,
		UpdatedAt:           parcel.UpdatedAt,
	}
}
