package area

import (
	"context"
	"fmt"
	"strings"

	"parcelnet/internal/entities"
)

type Area struct {
	repository Repository
}

func New(repository Repository) *Area {
	return &Area{
		repository: repository,
	}
}

func (s *Area) Districts() []string {
	return entities.Districts
}

func (s *Area) Areas(ctx context.Context, district, zone string) ([]entities.Area, error) {
	if !entities.IsValidDistrict(district) {
		return nil, ErrInvalidDistrict
	}

	areas, err := s.repository.GetByDistrict(ctx, district, zone)
	if err != nil {
		return nil, fmt.Errorf("get areas: %w", err)
	}
	return areas, nil
}

func (s *Area) Zones(ctx context.Context, district string) ([]string, error) {
	if !entities.IsValidDistrict(district) {
		return nil, ErrInvalidDistrict
	}

	zones, err := s.repository.GetZones(ctx, district)
	if err != nil {
		return nil, fmt.Errorf("get zones: %w", err)
	}
	return zones, nil
}

type CreateRequest struct {
	Name     string
	Code     string
	Pincode  string
	District string
	Zone     string
}

// Create добавляет справочную зону доставки. Супер-админ пишет в любой район,
// админ района только в свой: присланный район в этом случае игнорируется,
// а не проверяется.
func (s *Area) Create(ctx context.Context, actor entities.AuthContext, req CreateRequest) (*entities.Area, error) {
	switch actor.Role {
	case entities.RoleSuperAdmin:
	case entities.RoleDistrictAdmin:
		req.District = actor.District
	default:
		return nil, ErrNotAllowed
	}

	if req.Name == "" || req.Code == "" || req.Pincode == "" {
		return nil, ErrMissingRequiredFields
	}
	if !entities.IsValidDistrict(req.District) {
		return nil, ErrInvalidDistrict
	}

	normalized := Normalize(req.Name)
	if normalized == "" {
		return nil, ErrMissingRequiredFields
	}

	// дружелюбная ошибка до вставки; настоящая защита от гонки
	// check-then-act — уникальный индекс в БД
	existing, err := s.repository.GetByNormalizedName(ctx, req.District, normalized)
	if err == nil && existing != nil {
		return nil, ErrDuplicate
	}

	isActive := true
	id, err := s.repository.Create(ctx, entities.AreaModify{
		Name:           &req.Name,
		NormalizedName: &normalized,
		Code:           &req.Code,
		Pincode:        &req.Pincode,
		District:       &req.District,
		Zone:           &req.Zone,
		IsActive:       &isActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create area: %w", err)
	}

	return &entities.Area{
		ID:             id,
		Name:           req.Name,
		NormalizedName: normalized,
		Code:           req.Code,
		Pincode:        req.Pincode,
		District:       req.District,
		Zone:           req.Zone,
		IsActive:       true,
	}, nil
}

// Lookup находит зону доставки по району и названию, нормализуя название
// тем же правилом, что и при создании.
func (s *Area) Lookup(ctx context.Context, district, name string) (*entities.Area, error) {
	normalized := Normalize(name)
	if normalized == "" {
		return nil, ErrMissingRequiredFields
	}

	found, err := s.repository.GetByNormalizedName(ctx, district, normalized)
	if err != nil {
		return nil, fmt.Errorf("lookup area: %w", err)
	}
	return found, nil
}

// Normalize приводит название к ключу уникальности: нижний регистр,
// только буквы и цифры. "Alathiyur" и "alathiyur " дают один ключ.
func Normalize(name string) string {
	var b strings.Builder
	for _, char := range strings.ToLower(name) {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') {
			b.WriteRune(char)
		}
	}
	return b.String()
}
