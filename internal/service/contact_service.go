package service

import (
	"context"
	"strings"
	"time"

	"github.com/creatorpage/internal/db"
	"gorm.io/gorm"
)

// ContactService 记录访客的联系表单，只提供新增与全量读取
type ContactService struct {
	repo *db.Repository[db.ContactSubmission]
	now  func() time.Time
}

// NewContactService 构造 ContactService
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{repo: db.NewRepository[db.ContactSubmission](gdb), now: time.Now}
}

// CreateContactInput 描述一次表单提交。
// IPAddress/UserAgent 由调用方按原样提供；输入中没有 status，新记录总是 pending。
type CreateContactInput struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Subject   string  `json:"subject" validate:"required,max=200"`
	Message   string  `json:"message" validate:"required,max=2000"`
	IPAddress *string `json:"ip_address" validate:"omitnil,max=45"`
	UserAgent *string `json:"user_agent"`
}

// Create 校验并保存一次提交
func (s *ContactService) Create(ctx context.Context, input CreateContactInput) (*db.ContactSubmission, error) {
	input = input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	now := stamp(s.now())
	submission := db.ContactSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
		Status:    db.ContactStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := insertRow(ctx, s.repo, KindContactSubmission, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// ListAll 返回全部提交，最新的在前
func (s *ContactService) ListAll(ctx context.Context) ([]db.ContactSubmission, error) {
	return listRows(ctx, s.repo, KindContactSubmission, nil, newestFirst)
}

func (in CreateContactInput) normalize() CreateContactInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	return in
}

func (in CreateContactInput) validate() error {
	c := newChecker(KindContactSubmission)
	c.structTags(in)
	return c.err()
}
