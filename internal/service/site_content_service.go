package service

import (
	"context"
	"strings"
	"time"

	"github.com/creatorpage/internal/db"
	"github.com/creatorpage/internal/patch"
	"gorm.io/gorm"
)

// SiteContentService 维护按 section/key 组织的页面文案
// 同一 (section, key) 允许存在多条记录，读取时不做去重
type SiteContentService struct {
	repo *db.Repository[db.SiteContent]
	now  func() time.Time
}

// NewSiteContentService 构造 SiteContentService
func NewSiteContentService(gdb *gorm.DB) *SiteContentService {
	return &SiteContentService{repo: db.NewRepository[db.SiteContent](gdb), now: time.Now}
}

// CreateSiteContentInput 描述新建内容的字段，ContentType 未传入时为 text
type CreateSiteContentInput struct {
	Section     string  `json:"section" validate:"required,max=50"`
	Key         string  `json:"key" validate:"required,max=100"`
	Value       string  `json:"value"`
	ContentType *string `json:"content_type" validate:"omitnil,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateSiteContentInput 描述局部更新
type UpdateSiteContentInput struct {
	ID          uint                `json:"id"`
	Section     patch.Field[string] `json:"section"`
	Key         patch.Field[string] `json:"key"`
	Value       patch.Field[string] `json:"value"`
	ContentType patch.Field[string] `json:"content_type"`
	IsActive    patch.Field[bool]   `json:"is_active"`
}

// Create 校验输入并新建内容，value 按原样保存
func (s *SiteContentService) Create(ctx context.Context, input CreateSiteContentInput) (*db.SiteContent, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	content := newSiteContent(input, stamp(s.now()))
	if err := insertRow(ctx, s.repo, KindSiteContent, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// Update 局部更新内容
func (s *SiteContentService) Update(ctx context.Context, input UpdateSiteContentInput) (*db.SiteContent, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	changes := input.changes()
	return updateRow(ctx, s.repo, KindSiteContent, input.ID, func(current *db.SiteContent) map[string]interface{} {
		return merge(changes, current.UpdatedAt, s.now())
	})
}

// ListActive 按过滤条件返回内容，按插入顺序排列。
// 不传任何条件时返回全部内容（包括未启用的条目）。
func (s *SiteContentService) ListActive(ctx context.Context, filter ContentFilter) ([]db.SiteContent, error) {
	return listRows(ctx, s.repo, KindSiteContent, filter.predicates(), byInsertion)
}

func (in CreateSiteContentInput) normalize() CreateSiteContentInput {
	in.Section = strings.TrimSpace(in.Section)
	in.Key = strings.TrimSpace(in.Key)
	in.ContentType = trimPtr(in.ContentType)
	return in
}

func (in CreateSiteContentInput) validate() error {
	c := newChecker(KindSiteContent)
	c.structTags(in)
	return c.err()
}

func newSiteContent(in CreateSiteContentInput, now time.Time) db.SiteContent {
	return db.SiteContent{
		Section:     in.Section,
		Key:         in.Key,
		Value:       in.Value,
		ContentType: stringOr(in.ContentType, db.ContentTypeText),
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (in UpdateSiteContentInput) normalize() UpdateSiteContentInput {
	in.Section = in.Section.Map(strings.TrimSpace)
	in.Key = in.Key.Map(strings.TrimSpace)
	in.ContentType = in.ContentType.Map(strings.TrimSpace)
	return in
}

func (in UpdateSiteContentInput) validate() error {
	c := newChecker(KindSiteContent)
	checkID(c, in.ID)
	checkField(c, "section", in.Section, "required,max=50", false)
	checkField(c, "key", in.Key, "required,max=100", false)
	checkField(c, "value", in.Value, "", false)
	checkField(c, "content_type", in.ContentType, "max=20", false)
	checkField(c, "is_active", in.IsActive, "", false)
	return c.err()
}

func (in UpdateSiteContentInput) changes() changeSet {
	cs := changeSet{}
	putField(cs, "section", in.Section)
	putField(cs, "key", in.Key)
	putField(cs, "value", in.Value)
	putField(cs, "content_type", in.ContentType)
	putField(cs, "is_active", in.IsActive)
	return cs
}
