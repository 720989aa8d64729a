package db

import "time"

// SocialLink 保存主页展示的社交平台链接
// 同一平台允许存在多条记录
// DisplayOrder 值越小越靠前，IsActive=false 的条目不在前台展示
type SocialLink struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Platform     string    `gorm:"size:50;not null" json:"platform"`
	Username     string    `gorm:"size:100;not null" json:"username"`
	URL          string    `gorm:"column:url;type:text;not null" json:"url"`
	IconURL      *string   `gorm:"column:icon_url;type:text" json:"icon_url"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// TableName 返回自定义表名
func (SocialLink) TableName() string {
	return "social_links"
}
