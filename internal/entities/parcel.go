package entities

import "time"

type Parcel struct {
	ID                  int64
	TrackingNumber      string
	SenderName          string
	SenderMobile        string
	ReceiverName        string
	ReceiverMobile      string
	District            string // район исходного магазина, неизменяем после бронирования
	DestinationDistrict string
	DestinationArea     string
	DestinationZone     string
	SourceShopID        int64
	RouteID             *int64
	Size                ParcelSizeType
	PaymentMode         PaymentModeType
	Price               int64
	Status              ParcelStatusType
	DeliveryOTP         string // пустая строка = OTP отсутствует
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type ParcelStatusType string

const (
	ParcelBooked     ParcelStatusType = "booked"
	ParcelCollected  ParcelStatusType = "collected_from_shop"
	ParcelDispatched ParcelStatusType = "dispatched"
	ParcelArrived    ParcelStatusType = "arrived_at_destination"
	ParcelDelivered  ParcelStatusType = "delivered"
)

func (s ParcelStatusType) String() string {
	return string(s)
}

type ParcelSizeType string

const (
	SizeSmall  ParcelSizeType = "S"
	SizeMedium ParcelSizeType = "M"
	SizeLarge  ParcelSizeType = "L"
)

func (s ParcelSizeType) String() string {
	return string(s)
}

type PaymentModeType string

const (
	PaymentCash PaymentModeType = "cash"
	PaymentUPI  PaymentModeType = "upi"
)

func (p PaymentModeType) String() string {
	return string(p)
}

type ParcelModify struct {
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
	Size                *ParcelSizeType
	PaymentMode         *PaymentModeType
	Price               *int64
	Status              *ParcelStatusType
	DeliveryOTP         *string
}

// ParcelTrack минимальный публичный срез для неавторизованного трекинга.
type ParcelTrack struct {
	ID                  int64
	SenderName          string
	DestinationDistrict string
	Status              ParcelStatusType
	UpdatedAt           time.Time
}
