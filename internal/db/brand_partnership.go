package db

import "time"

// BrandPartnership 保存合作品牌
type BrandPartnership struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	LogoURL         string    `gorm:"column:logo_url;type:text;not null" json:"logo_url"`
	WebsiteURL      *string   `gorm:"column:website_url;type:text" json:"website_url"`
	PartnershipType *string   `gorm:"size:50" json:"partnership_type"`
	IsActive        bool      `gorm:"not null" json:"is_active"`
	DisplayOrder    int       `gorm:"not null" json:"display_order"`
	CreatedAt       time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time `gorm:"not null" json:"updated_at"`
}

// TableName 返回自定义表名
func (BrandPartnership) TableName() string {
	return "brand_partnerships"
}
