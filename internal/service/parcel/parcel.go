package parcel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcelnet/internal/entities"
	"parcelnet/internal/service/scope"
)

type Parcel struct {
	repository Repository
	shops      ShopRepository
	areas      AreaDirectory
	notifier   Notifier
	limiter    AttemptLimiter
	txManager  TxManager
}

func New(
	repository Repository,
	shops ShopRepository,
	areas AreaDirectory,
	notifier Notifier,
	limiter AttemptLimiter,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		repository: repository,
		shops:      shops,
		areas:      areas,
		notifier:   notifier,
		limiter:    limiter,
		txManager:  txManager,
	}
}

type BookRequest struct {
	SenderName          string
	SenderMobile        string
	ReceiverName        string
	ReceiverMobile      string
	DestinationDistrict string
	DestinationArea     string
	Size                entities.ParcelSizeType
	PaymentMode         entities.PaymentModeType
	Price               int64

	// только для админов, магазин всегда бронирует от своего имени
	SourceShopID int64
}

// Book бронирует посылку. Район посылки штампуется из магазина-источника и
// дальше не меняется; OTP доставки генерируется сразу при бронировании.
func (s *Parcel) Book(ctx context.Context, actor entities.AuthContext, req BookRequest) (*entities.Parcel, error) {
	if req.SenderName == "" || req.ReceiverName == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidMobile(req.SenderMobile) || !isValidMobile(req.ReceiverMobile) {
		return nil, ErrInvalidMobile
	}
	if !isValidSize(req.Size) {
		return nil, ErrInvalidSize
	}
	if !isValidPaymentMode(req.PaymentMode) {
		return nil, ErrInvalidPaymentMode
	}
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if !entities.IsValidDistrict(req.DestinationDistrict) {
		return nil, ErrInvalidDistrict
	}

	shop, err := s.resolveSourceShop(ctx, actor, req.SourceShopID)
	if err != nil {
		return nil, err
	}

	destArea, err := s.areas.Lookup(ctx, req.DestinationDistrict, req.DestinationArea)
	if err != nil {
		return nil, ErrUnknownArea
	}

	now := time.Now().UTC()
	otp := newDeliveryOTP()
	tracking := newTrackingNumber(now)
	status := entities.ParcelBooked

	created, err := s.repository.Create(ctx, entities.ParcelModify{
		TrackingNumber:      &tracking,
		SenderName:          &req.SenderName,
		SenderMobile:        &req.SenderMobile,
		ReceiverName:        &req.ReceiverName,
		ReceiverMobile:      &req.ReceiverMobile,
		District:            &shop.District,
		DestinationDistrict: &req.DestinationDistrict,
		DestinationArea:     &destArea.Name,
		DestinationZone:     &destArea.Zone,
		SourceShopID:        &shop.ID,
		Size:                &req.Size,
		PaymentMode:         &req.PaymentMode,
		Price:               &req.Price,
		Status:              &status,
		DeliveryOTP:         &otp,
	})
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	s.notifier.Send(ctx, entities.SMS{
		Mobile:   created.SenderMobile,
		Message:  fmt.Sprintf("Parcel %s booked to %s", created.TrackingNumber, created.DestinationDistrict),
		ParcelID: created.ID,
	})
	s.notifier.Send(ctx, entities.SMS{
		Mobile:   created.ReceiverMobile,
		Message:  fmt.Sprintf("Parcel %s is on its way. Delivery OTP: %s", created.TrackingNumber, otp),
		ParcelID: created.ID,
	})

	return created, nil
}

// UpdateStatus двигает посылку по линейному графу статусов. Переходы назад и
// прыжки (кроме booked->dispatched) отклоняются. Переход в delivered гасит OTP,
// чтобы не оставался висеть потребленный код.
func (s *Parcel) UpdateStatus(ctx context.Context, actor entities.AuthContext, id int64, status entities.ParcelStatusType) (*entities.Parcel, error) {
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if actor.Role != entities.RoleSuperAdmin && actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrNotAllowed
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		// чужой район получает тот же not found, что и несуществующая посылка
		if !scope.CanSeeParcel(actor, current) {
			return ErrParcelNotFound
		}
		if !canTransition(current.Status, status) {
			return ErrInvalidTransition
		}

		modify := entities.ParcelModify{
			ID:     &id,
			Status: &status,
		}
		if status == entities.ParcelDelivered {
			empty := ""
			modify.DeliveryOTP = &empty
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update parcel status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyBoth(ctx, updated, fmt.Sprintf("Parcel %s status: %s", updated.TrackingNumber, status))
	return updated, nil
}

// VerifyDelivery подтверждает вручение по OTP получателя. Сравнение строгое,
// после лимита неудач проверка блокируется на окно лимитера.
func (s *Parcel) VerifyDelivery(ctx context.Context, actor entities.AuthContext, id int64, otp string) (*entities.Parcel, error) {
	if otp == "" {
		return nil, ErrMissingRequiredFields
	}

	locked, err := s.limiter.Locked(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check otp lockout: %w", err)
	}
	if locked {
		return nil, ErrTooManyAttempts
	}

	var updated *entities.Parcel
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}
		if !s.canConfirmDelivery(actor, current) {
			return ErrParcelNotFound
		}
		if current.DeliveryOTP == "" {
			return ErrNoActiveOTP
		}
		if current.DeliveryOTP != otp {
			return ErrOTPMismatch
		}

		delivered := entities.ParcelDelivered
		empty := ""
		updated, err = s.repository.Update(ctx, entities.ParcelModify{
			ID:          &id,
			Status:      &delivered,
			DeliveryOTP: &empty,
		})
		if err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOTPMismatch) {
			_ = s.limiter.RegisterFailure(ctx, id)
		}
		return nil, err
	}

	_ = s.limiter.Reset(ctx, id)

	s.notifyBoth(ctx, updated, fmt.Sprintf("Parcel %s delivered", updated.TrackingNumber))
	return updated, nil
}

// GenerateOTP перевыпускает OTP доставки, если прежний утерян. Работает в
// любом статусе, старый код затирается.
func (s *Parcel) GenerateOTP(ctx context.Context, actor entities.AuthContext, id int64) (*entities.Parcel, error) {
	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if !scope.CanSeeParcel(actor, current) {
		return nil, ErrParcelNotFound
	}

	otp := newDeliveryOTP()
	updated, err := s.repository.Update(ctx, entities.ParcelModify{
		ID:          &id,
		DeliveryOTP: &otp,
	})
	if err != nil {
		return nil, fmt.Errorf("store new otp: %w", err)
	}

	s.notifier.Send(ctx, entities.SMS{
		Mobile:   updated.ReceiverMobile,
		Message:  fmt.Sprintf("New delivery OTP for parcel %s: %s", updated.TrackingNumber, otp),
		ParcelID: updated.ID,
	})
	return updated, nil
}

// ResendOTP повторно шлет существующий OTP получателю, не перегенерируя его.
func (s *Parcel) ResendOTP(ctx context.Context, actor entities.AuthContext, id int64) error {
	current, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get parcel: %w", err)
	}
	if !s.canResend(actor, current) {
		return ErrNotAllowed
	}
	if current.DeliveryOTP == "" {
		return ErrNoActiveOTP
	}

	s.notifier.Send(ctx, entities.SMS{
		Mobile:   current.ReceiverMobile,
		Message:  fmt.Sprintf("Delivery OTP for parcel %s: %s", current.TrackingNumber, current.DeliveryOTP),
		ParcelID: current.ID,
	})
	return nil
}

// AssignRoute вешает посылку на маршрут и принудительно переводит в dispatched
// независимо от текущего статуса. Вызывается сервисом маршрутов внутри его
// транзакции.
func (s *Parcel) AssignRoute(ctx context.Context, parcelID, routeID int64) (*entities.Parcel, error) {
	dispatched := entities.ParcelDispatched
	updated, err := s.repository.Update(ctx, entities.ParcelModify{
		ID:      &parcelID,
		RouteID: &routeID,
		Status:  &dispatched,
	})
	if err != nil {
		return nil, fmt.Errorf("assign parcel to route: %w", err)
	}

	s.notifyBoth(ctx, updated, fmt.Sprintf("Parcel %s dispatched", updated.TrackingNumber))
	return updated, nil
}

// Get читает одну посылку в пределах скоупа роли. Посылка чужого района
// неотличима от несуществующей.
func (s *Parcel) Get(ctx context.Context, actor entities.AuthContext, id int64) (*entities.Parcel, error) {
	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	if !scope.CanSeeParcel(actor, parcel) {
		return nil, ErrParcelNotFound
	}
	return parcel, nil
}

// List выдает посылки по скоупу роли. Поиск точный: по номеру отслеживания
// или мобильному отправителя/получателя.
func (s *Parcel) List(ctx context.Context, actor entities.AuthContext, search string) ([]entities.Parcel, error) {
	parcelScope, err := scope.ForParcels(actor)
	if err != nil {
		return nil, ErrNotAllowed
	}

	parcels, err := s.repository.Search(ctx, parcelScope, search)
	if err != nil {
		return nil, fmt.Errorf("search parcels: %w", err)
	}
	return parcels, nil
}

// Track публичный минимальный статус без авторизации.
func (s *Parcel) Track(ctx context.Context, id int64) (*entities.ParcelTrack, error) {
	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return &entities.ParcelTrack{
		ID:                  parcel.ID,
		SenderName:          parcel.SenderName,
		DestinationDistrict: parcel.DestinationDistrict,
		Status:              parcel.Status,
		UpdatedAt:           parcel.UpdatedAt,
	}, nil
}

func (s *Parcel) resolveSourceShop(ctx context.Context, actor entities.AuthContext, requestedShopID int64) (*entities.Shop, error) {
	var shopID int64
	switch actor.Role {
	case entities.RoleShop:
		// магазин бронирует только от себя, присланный id игнорируется
		shopID = actor.ShopID
	case entities.RoleSuperAdmin, entities.RoleDistrictAdmin:
		shopID = requestedShopID
	default:
		return nil, ErrNotAllowed
	}
	if shopID == 0 {
		return nil, ErrShopResolution
	}

	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, ErrShopNotFound
	}
	if actor.Role == entities.RoleDistrictAdmin && shop.District != actor.District {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// canConfirmDelivery: водитель подтверждает по самому факту знания OTP,
// остальные роли в пределах своего скоупа.
func (s *Parcel) canConfirmDelivery(actor entities.AuthContext, parcel *entities.Parcel) bool {
	if actor.Role == entities.RoleDriver {
		return true
	}
	return scope.CanSeeParcel(actor, parcel)
}

func (s *Parcel) canResend(actor entities.AuthContext, parcel *entities.Parcel) bool {
	switch actor.Role {
	case entities.RoleSuperAdmin:
		return true
	case entities.RoleDistrictAdmin:
		return actor.District == parcel.District || actor.District == parcel.DestinationDistrict
	case entities.RoleShop:
		return actor.ShopID == parcel.SourceShopID
	default:
		return false
	}
}

func (s *Parcel) notifyBoth(ctx context.Context, parcel *entities.Parcel, message string) {
	s.notifier.Send(ctx, entities.SMS{
		Mobile:   parcel.SenderMobile,
		Message:  message,
		ParcelID: parcel.ID,
	})
	s.notifier.Send(ctx, entities.SMS{
		Mobile:   parcel.ReceiverMobile,
		Message:  message,
		ParcelID: parcel.ID,
	})
}
