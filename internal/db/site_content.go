package db

import "time"

// 常见的内容类型，ContentType 字段并不限制在这几个取值内。
const (
	ContentTypeText = "text"
	ContentTypeHTML = "html"
	ContentTypeURL  = "url"
	ContentTypeJSON = "json"
)

// SiteContent 保存按 section/key 组织的页面文案
// (section, key) 不做唯一约束，调用方需要自行记录创建时返回的 ID
type SiteContent struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Section     string    `gorm:"size:50;not null;index" json:"section"`
	Key         string    `gorm:"size:100;not null" json:"key"`
	Value       string    `gorm:"type:text;not null" json:"value"`
	ContentType string    `gorm:"size:20;not null" json:"content_type"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

// TableName 返回自定义表名
func (SiteContent) TableName() string {
	return "site_contents"
}
