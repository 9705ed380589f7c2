package parcel

import (
	"strings"

	"parcelnet/internal/entities"
)

func isValidMobile(mobile string) bool {
	mobile = strings.TrimSpace(mobile)
	if len(mobile) != 10 {
		return false
	}
	for _, char := range mobile {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidSize(size entities.ParcelSizeType) bool {
	switch size {
	case entities.SizeSmall, entities.SizeMedium, entities.SizeLarge:
		return true
	default:
		return false
	}
}

func isValidPaymentMode(mode entities.PaymentModeType) bool {
	switch mode {
	case entities.PaymentCash, entities.PaymentUPI:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.ParcelStatusType) bool {
	switch status {
	case entities.ParcelBooked,
		entities.ParcelCollected,
		entities.ParcelDispatched,
		entities.ParcelArrived,
		entities.ParcelDelivered:
		return true
	default:
		return false
	}
}

// Линейный граф статусов. Из booked разрешен прыжок сразу в dispatched:
// назначение на маршрут не требует подтверждения забора из магазина.
var allowedTransitions = map[entities.ParcelStatusType][]entities.ParcelStatusType{
	entities.ParcelBooked:     {entities.ParcelCollected, entities.ParcelDispatched},
	entities.ParcelCollected:  {entities.ParcelDispatched},
	entities.ParcelDispatched: {entities.ParcelArrived},
	entities.ParcelArrived:    {entities.ParcelDelivered},
}

func canTransition(from, to entities.ParcelStatusType) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
