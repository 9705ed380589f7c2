package parcel

import "time"

type ParcelDB struct {
	ID                  int64
	TrackingNumber      string
	SenderName          string
	SenderMobile        string
	ReceiverName        string
	ReceiverMobile      string
	District            string
	DestinationDistrict string
	DestinationArea     string
	DestinationZone     string
	SourceShopID        int64
	RouteID             *int64
	Size                string
	PaymentMode         string
	Price               int64
	Status              string
	DeliveryOTP         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ParcelModifyDB struct {
	ID                  *int64
	TrackingNumber      *string
	SenderName          *string
	SenderMobile        *string
	ReceiverName        *string
	ReceiverMobile      *string
	District            *string
	DestinationDistrict *string
	DestinationArea     *string
	DestinationZone     *string
	SourceShopID        *int64
	RouteID             *int64
	Size                *string
	PaymentMode         *string
	Price               *int64
	Status              *string
	DeliveryOTP         *string
}
