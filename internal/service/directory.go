package service

import (
	"context"
	"errors"
	"time"

	"github.com/creatorpage/internal/db"
	"gorm.io/gorm"
)

// Directory 汇总主页上的四个独立目录，彼此之间没有级联关系
type Directory struct {
	SocialLinks *SocialLinkService
	Brands      *BrandService
	SiteContent *SiteContentService
	Contacts    *ContactService
}

// NewDirectory 基于同一个数据库连接构造全部目录服务
func NewDirectory(gdb *gorm.DB) *Directory {
	return &Directory{
		SocialLinks: NewSocialLinkService(gdb),
		Brands:      NewBrandService(gdb),
		SiteContent: NewSiteContentService(gdb),
		Contacts:    NewContactService(gdb),
	}
}

// SetClock 替换所有目录使用的时钟，主要面向测试和数据导入脚本
func (d *Directory) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	d.SocialLinks.now = now
	d.Brands.now = now
	d.SiteContent.now = now
	d.Contacts.now = now
}

// Profile 是公开主页一次性需要的全部内容
type Profile struct {
	SocialLinks []db.SocialLink             `json:"social_links"`
	Brands      []db.BrandPartnership       `json:"brands"`
	Content     map[string][]db.SiteContent `json:"content"`
}

// Profile 读取启用中的社交链接、合作品牌，以及按 section 分组的启用内容
func (d *Directory) Profile(ctx context.Context) (*Profile, error) {
	links, err := d.SocialLinks.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := d.Brands.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	active := true
	content, err := d.SiteContent.ListActive(ctx, ContentFilter{IsActive: &active})
	if err != nil {
		return nil, err
	}

	return &Profile{
		SocialLinks: links,
		Brands:      brands,
		Content:     groupBySection(content),
	}, nil
}

func insertRow[T any](ctx context.Context, repo *db.Repository[T], kind Kind, row *T) error {
	if err := repo.Insert(ctx, row); err != nil {
		return &StorageError{Kind: kind, Op: "create", Err: err}
	}
	return nil
}

func updateRow[T any](ctx context.Context, repo *db.Repository[T], kind Kind, id uint, fields func(current *T) map[string]interface{}) (*T, error) {
	row, err := repo.UpdateByID(ctx, id, fields)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, &NotFoundError{Kind: kind, ID: id}
		}
		return nil, &StorageError{Kind: kind, Op: "update", Err: err}
	}
	return row, nil
}

func listRows[T any](ctx context.Context, repo *db.Repository[T], kind Kind, where []db.Predicate, orderBy []db.Order) ([]T, error) {
	items, err := repo.Find(ctx, where, orderBy)
	if err != nil {
		return nil, &StorageError{Kind: kind, Op: "list", Err: err}
	}
	return items, nil
}
