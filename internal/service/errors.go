package service

import (
	"errors"
	"fmt"
	"strings"
)

// Kind 标识目录中的条目类型
type Kind string

const (
	KindSocialLink        Kind = "social_link"
	KindBrandPartnership  Kind = "brand_partnership"
	KindSiteContent       Kind = "site_content"
	KindContactSubmission Kind = "contact_submission"
)

var (
	// ErrInvalidInput 是所有 ValidationError 的哨兵值
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound 是所有 NotFoundError 的哨兵值
	ErrNotFound = errors.New("not found")
	// ErrStorage 是所有 StorageError 的哨兵值
	ErrStorage = errors.New("storage failure")
)

// FieldError 描述单个字段违反的约束
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError 在输入未通过校验时返回，此时不会访问存储
type ValidationError struct {
	Kind   Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Constraint))
	}
	return fmt.Sprintf("invalid %s input: %s", e.Kind, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NotFoundError 在更新目标不存在时返回
type NotFoundError struct {
	Kind Kind
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError 包装底层存储返回的错误
type StorageError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
