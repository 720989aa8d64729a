package service

import (
	"context"
	"strings"
	"time"

	"github.com/creatorpage/internal/db"
	"github.com/creatorpage/internal/patch"
	"gorm.io/gorm"
)

// SocialLinkService 维护主页上的社交平台链接
// 前台只能读取启用中的条目，按 display_order 升序、插入顺序排列
type SocialLinkService struct {
	repo *db.Repository[db.SocialLink]
	now  func() time.Time
}

// NewSocialLinkService 构造 SocialLinkService
func NewSocialLinkService(gdb *gorm.DB) *SocialLinkService {
	return &SocialLinkService{repo: db.NewRepository[db.SocialLink](gdb), now: time.Now}
}

// CreateSocialLinkInput 描述新建社交链接的字段
// IsActive/DisplayOrder 使用指针判断是否显式传入，未传入时分别默认为 true 和 0
type CreateSocialLinkInput struct {
	Platform     string  `json:"platform" validate:"required,max=50"`
	Username     string  `json:"username" validate:"required,max=100"`
	URL          string  `json:"url" validate:"required,url"`
	IconURL      *string `json:"icon_url" validate:"omitnil,url"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order" validate:"omitnil,gte=0"`
}

// UpdateSocialLinkInput 描述局部更新，未出现的字段保持不变
type UpdateSocialLinkInput struct {
	ID           uint                `json:"id"`
	Platform     patch.Field[string] `json:"platform"`
	Username     patch.Field[string] `json:"username"`
	URL          patch.Field[string] `json:"url"`
	IconURL      patch.Field[string] `json:"icon_url"`
	IsActive     patch.Field[bool]   `json:"is_active"`
	DisplayOrder patch.Field[int]    `json:"display_order"`
}

// Create 校验输入并新建一条社交链接
func (s *SocialLinkService) Create(ctx context.Context, input CreateSocialLinkInput) (*db.SocialLink, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	link := newSocialLink(input, stamp(s.now()))
	if err := insertRow(ctx, s.repo, KindSocialLink, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// Update 只写入请求中出现的字段，并刷新 updated_at
func (s *SocialLinkService) Update(ctx context.Context, input UpdateSocialLinkInput) (*db.SocialLink, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	changes := input.changes()
	return updateRow(ctx, s.repo, KindSocialLink, input.ID, func(current *db.SocialLink) map[string]interface{} {
		return merge(changes, current.UpdatedAt, s.now())
	})
}

// ListActive 返回启用中的社交链接
func (s *SocialLinkService) ListActive(ctx context.Context) ([]db.SocialLink, error) {
	return listRows(ctx, s.repo, KindSocialLink, activeOnly, byDisplayOrder)
}

func (in CreateSocialLinkInput) normalize() CreateSocialLinkInput {
	in.Platform = strings.TrimSpace(in.Platform)
	in.Username = strings.TrimSpace(in.Username)
	in.URL = strings.TrimSpace(in.URL)
	in.IconURL = trimPtr(in.IconURL)
	return in
}

func (in CreateSocialLinkInput) validate() error {
	c := newChecker(KindSocialLink)
	c.structTags(in)
	return c.err()
}

// newSocialLink 为未传入的可选字段填充默认值
func newSocialLink(in CreateSocialLinkInput, now time.Time) db.SocialLink {
	return db.SocialLink{
		Platform:     in.Platform,
		Username:     in.Username,
		URL:          in.URL,
		IconURL:      in.IconURL,
		IsActive:     boolOr(in.IsActive, true),
		DisplayOrder: intOr(in.DisplayOrder, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (in UpdateSocialLinkInput) normalize() UpdateSocialLinkInput {
	in.Platform = in.Platform.Map(strings.TrimSpace)
	in.Username = in.Username.Map(strings.TrimSpace)
	in.URL = in.URL.Map(strings.TrimSpace)
	in.IconURL = in.IconURL.Map(strings.TrimSpace)
	return in
}

func (in UpdateSocialLinkInput) validate() error {
	c := newChecker(KindSocialLink)
	checkID(c, in.ID)
	checkField(c, "platform", in.Platform, "required,max=50", false)
	checkField(c, "username", in.Username, "required,max=100", false)
	checkField(c, "url", in.URL, "required,url", false)
	checkField(c, "icon_url", in.IconURL, "url", true)
	checkField(c, "is_active", in.IsActive, "", false)
	checkField(c, "display_order", in.DisplayOrder, "gte=0", false)
	return c.err()
}

func (in UpdateSocialLinkInput) changes() changeSet {
	cs := changeSet{}
	putField(cs, "platform", in.Platform)
	putField(cs, "username", in.Username)
	putField(cs, "url", in.URL)
	putField(cs, "icon_url", in.IconURL)
	putField(cs, "is_active", in.IsActive)
	putField(cs, "display_order", in.DisplayOrder)
	return cs
}
