package service

import (
	"context"
	"strings"
	"time"

	"github.com/creatorpage/internal/db"
	"github.com/creatorpage/internal/patch"
	"gorm.io/gorm"
)

// BrandService 维护合作品牌列表
type BrandService struct {
	repo *db.Repository[db.BrandPartnership]
	now  func() time.Time
}

// NewBrandService 构造 BrandService
func NewBrandService(gdb *gorm.DB) *BrandService {
	return &BrandService{repo: db.NewRepository[db.BrandPartnership](gdb), now: time.Now}
}

// CreateBrandInput 描述新建合作品牌的字段
type CreateBrandInput struct {
	Name            string  `json:"name" validate:"required,max=100"`
	LogoURL         string  `json:"logo_url" validate:"required,url"`
	WebsiteURL      *string `json:"website_url" validate:"omitnil,url"`
	PartnershipType *string `json:"partnership_type" validate:"omitnil,max=50"`
	IsActive        *bool   `json:"is_active"`
	DisplayOrder    *int    `json:"display_order" validate:"omitnil,gte=0"`
}

// UpdateBrandInput 描述局部更新；website_url 与 partnership_type 可以显式置为 null
type UpdateBrandInput struct {
	ID              uint                `json:"id"`
	Name            patch.Field[string] `json:"name"`
	LogoURL         patch.Field[string] `json:"logo_url"`
	WebsiteURL      patch.Field[string] `json:"website_url"`
	PartnershipType patch.Field[string] `json:"partnership_type"`
	IsActive        patch.Field[bool]   `json:"is_active"`
	DisplayOrder    patch.Field[int]    `json:"display_order"`
}

// Create 校验输入并新建合作品牌
func (s *BrandService) Create(ctx context.Context, input CreateBrandInput) (*db.BrandPartnership, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	brand := newBrand(input, stamp(s.now()))
	if err := insertRow(ctx, s.repo, KindBrandPartnership, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// Update 局部更新合作品牌
func (s *BrandService) Update(ctx context.Context, input UpdateBrandInput) (*db.BrandPartnership, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	changes := input.changes()
	return updateRow(ctx, s.repo, KindBrandPartnership, input.ID, func(current *db.BrandPartnership) map[string]interface{} {
		return merge(changes, current.UpdatedAt, s.now())
	})
}

// ListActive 返回启用中的合作品牌
func (s *BrandService) ListActive(ctx context.Context) ([]db.BrandPartnership, error) {
	return listRows(ctx, s.repo, KindBrandPartnership, activeOnly, byDisplayOrder)
}

func (in CreateBrandInput) normalize() CreateBrandInput {
	in.Name = strings.TrimSpace(in.Name)
	in.LogoURL = strings.TrimSpace(in.LogoURL)
	in.WebsiteURL = trimPtr(in.WebsiteURL)
	in.PartnershipType = trimPtr(in.PartnershipType)
	return in
}

func (in CreateBrandInput) validate() error {
	c := newChecker(KindBrandPartnership)
	c.structTags(in)
	return c.err()
}

func newBrand(in CreateBrandInput, now time.Time) db.BrandPartnership {
	return db.BrandPartnership{
		Name:            in.Name,
		LogoURL:         in.LogoURL,
		WebsiteURL:      in.WebsiteURL,
		PartnershipType: in.PartnershipType,
		IsActive:        boolOr(in.IsActive, true),
		DisplayOrder:    intOr(in.DisplayOrder, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (in UpdateBrandInput) normalize() UpdateBrandInput {
	in.Name = in.Name.Map(strings.TrimSpace)
	in.LogoURL = in.LogoURL.Map(strings.TrimSpace)
	in.WebsiteURL = in.WebsiteURL.Map(strings.TrimSpace)
	in.PartnershipType = in.PartnershipType.Map(strings.TrimSpace)
	return in
}

func (in UpdateBrandInput) validate() error {
	c := newChecker(KindBrandPartnership)
	checkID(c, in.ID)
	checkField(c, "name", in.Name, "required,max=100", false)
	checkField(c, "logo_url", in.LogoURL, "required,url", false)
	checkField(c, "website_url", in.WebsiteURL, "url", true)
	checkField(c, "partnership_type", in.PartnershipType, "max=50", true)
	checkField(c, "is_active", in.IsActive, "", false)
	checkField(c, "display_order", in.DisplayOrder, "gte=0", false)
	return c.err()
}

func (in UpdateBrandInput) changes() changeSet {
	cs := changeSet{}
	putField(cs, "name", in.Name)
	putField(cs, "logo_url", in.LogoURL)
	putField(cs, "website_url", in.WebsiteURL)
	putField(cs, "partnership_type", in.PartnershipType)
	putField(cs, "is_active", in.IsActive)
	putField(cs, "display_order", in.DisplayOrder)
	return cs
}
