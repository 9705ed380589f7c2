package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"parcelnet/internal/entities"
)

const bcryptCost = 10

type Auth struct {
	users             UserRepository
	shops             ShopRepository
	drivers           DriverRepository
	tokens            TokenIssuer
	txManager         TxManager
	setupOTP          string
	defaultCommission int64
}

func New(
	users UserRepository,
	shops ShopRepository,
	drivers DriverRepository,
	tokens TokenIssuer,
	txManager TxManager,
	setupOTP string,
	defaultCommission int64,
) *Auth {
	return &Auth{
		users:             users,
		shops:             shops,
		drivers:           drivers,
		tokens:            tokens,
		txManager:         txManager,
		setupOTP:          setupOTP,
		defaultCommission: defaultCommission,
	}
}

func (s *Auth) Login(ctx context.Context, mobile, password string) (*entities.Session, error) {
	if mobile == "" || password == "" {
		return nil, ErrMissingRequiredFields
	}

	user, err := s.users.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("get user by mobile: %w", err)
	}

	if user.Status == entities.UserInvited {
		return nil, ErrSetupRequired
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.newSession(ctx, user)
}

type SignupRequest struct {
	Mobile   string
	OTP      string
	Password string

	// только для магазинов
	ShopName  string
	OwnerName string
	Area      string
}

// Signup активирует приглашенный аккаунт. Для роли магазина запись Shop
// создается в той же транзакции, что и активация пользователя.
func (s *Auth) Signup(ctx context.Context, req SignupRequest) (*entities.Session, error) {
	if req.Mobile == "" || req.OTP == "" || req.Password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPassword(req.Password) {
		return nil, ErrInvalidPassword
	}

	user, err := s.users.GetByMobile(ctx, req.Mobile)
	if err != nil {
		return nil, ErrNotInvited
	}
	if user.Status == entities.UserActive {
		return nil, ErrAlreadyActive
	}
	if req.OTP != s.setupOTP {
		return nil, ErrInvalidSetupOTP
	}
	if user.Role == entities.RoleShop && (!isValidName(req.ShopName) || !isValidName(req.OwnerName)) {
		return nil, ErrShopDetailsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var activated *entities.User
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		activeStatus := entities.UserActive
		passwordHash := string(hash)
		activated, err = s.users.Update(ctx, entities.UserModify{
			ID:           &user.ID,
			Status:       &activeStatus,
			PasswordHash: &passwordHash,
		})
		if err != nil {
			return fmt.Errorf("activate user: %w", err)
		}

		if user.Role == entities.RoleShop {
			shopCode := newShopCode(user.District, req.Area)
			_, err = s.shops.Create(ctx, entities.ShopModify{
				ShopCode:   &shopCode,
				ShopName:   &req.ShopName,
				OwnerName:  &req.OwnerName,
				Mobile:     &user.Mobile,
				UserID:     &user.ID,
				District:   &user.District,
				Area:       &req.Area,
				Commission: &s.defaultCommission,
			})
			if err != nil {
				return fmt.Errorf("create shop: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.newSession(ctx, activated)
}

// Invite создает приглашенный аккаунт по правилам иерархии ролей:
// супер-админ зовет только админов районов (район из фиксированного списка,
// не больше одного на район), админ района зовет только магазины и район
// приглашения всегда его собственный.
func (s *Auth) Invite(ctx context.Context, actor entities.AuthContext, mobile string, role entities.Role, district string) (*entities.User, error) {
	if !isValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	switch actor.Role {
	case entities.RoleSuperAdmin:
		if role != entities.RoleDistrictAdmin {
			return nil, ErrInviteNotAllowed
		}
		if !entities.IsValidDistrict(district) {
			return nil, ErrInvalidDistrict
		}

		count, err := s.users.CountDistrictAdmins(ctx, district)
		if err != nil {
			return nil, fmt.Errorf("count district admins: %w", err)
		}
		if count > 0 {
			return nil, ErrDistrictAdminExists
		}

	case entities.RoleDistrictAdmin:
		if role != entities.RoleShop {
			return nil, ErrInviteNotAllowed
		}
		// строгое наследование: район берем у приглашающего, не из запроса
		district = actor.District

	default:
		return nil, ErrInviteNotAllowed
	}

	invitedStatus := entities.UserInvited
	id, err := s.users.Create(ctx, entities.UserModify{
		Mobile:   &mobile,
		Role:     &role,
		District: &district,
		Status:   &invitedStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("create invited user: %w", err)
	}

	return &entities.User{
		ID:       id,
		Mobile:   mobile,
		Role:     role,
		District: district,
		Status:   invitedStatus,
	}, nil
}

// CreateDriver заводит водителя вместе со связанным пользователем одной
// транзакцией. Район водителя всегда район приглашающего админа.
func (s *Auth) CreateDriver(ctx context.Context, actor entities.AuthContext, name, mobile string) (*entities.Driver, error) {
	if actor.Role != entities.RoleDistrictAdmin {
		return nil, ErrInviteNotAllowed
	}
	if !isValidName(name) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}

	district := actor.District

	var driver entities.Driver
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driverRole := entities.RoleDriver
		invitedStatus := entities.UserInvited
		userID, err := s.users.Create(ctx, entities.UserModify{
			Mobile:   &mobile,
			Role:     &driverRole,
			District: &district,
			Status:   &invitedStatus,
		})
		if err != nil {
			return fmt.Errorf("create driver user: %w", err)
		}

		driverID, err := s.drivers.Create(ctx, entities.DriverModify{
			Name:     &name,
			Mobile:   &mobile,
			UserID:   &userID,
			District: &district,
		})
		if err != nil {
			return fmt.Errorf("create driver profile: %w", err)
		}

		driver = entities.Driver{
			ID:       driverID,
			Name:     name,
			Mobile:   mobile,
			UserID:   userID,
			District: district,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *Auth) newSession(ctx context.Context, user *entities.User) (*entities.Session, error) {
	authCtx := entities.AuthContext{
		UserID:   user.ID,
		Role:     user.Role,
		District: user.District,
	}

	// shopId разрешаем одним lookup по владельцу, а не из данных клиента
	if user.Role == entities.RoleShop {
		shop, err := s.shops.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("resolve shop for user: %w", err)
		}
		authCtx.ShopID = shop.ID
	}

	signed, err := s.tokens.Issue(authCtx)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.Session{
		Token:  signed,
		User:   *user,
		ShopID: authCtx.ShopID,
	}, nil
}

func newShopCode(district, area string) string {
	suffix, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		suffix = big.NewInt(0)
	}
	return fmt.Sprintf("%s-%s-%04d", codePrefix(district), codePrefix(area), suffix.Int64())
}

func codePrefix(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "GEN"
	}
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}
