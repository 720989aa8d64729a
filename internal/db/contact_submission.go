package db

import "time"

// 联系表单的处理状态，新提交的记录总是 pending。
const (
	ContactStatusPending  = "pending"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// ContactSubmission 记录访客提交的联系表单，只追加不修改
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IPAddress *string   `gorm:"column:ip_address;size:45" json:"ip_address"`
	UserAgent *string   `gorm:"column:user_agent;type:text" json:"user_agent"`
	Status    string    `gorm:"size:20;not null" json:"status"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// TableName 返回自定义表名
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
