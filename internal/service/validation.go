package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creatorpage/internal/patch"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// 错误里使用 json 字段名，与请求体保持一致
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checker 累积一次输入校验中的全部字段错误
type checker struct {
	kind   Kind
	fields []FieldError
}

func newChecker(kind Kind) *checker {
	return &checker{kind: kind}
}

func (c *checker) add(field, constraint string) {
	c.fields = append(c.fields, FieldError{Field: field, Constraint: constraint})
}

// structTags 按 validate 标签校验整个结构体
func (c *checker) structTags(input interface{}) {
	c.collect("", validate.Struct(input))
}

func (c *checker) collect(field string, err error) {
	if err == nil {
		return
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.add(field, err.Error())
		return
	}
	for _, fe := range verrs {
		name := field
		if name == "" {
			name = fe.Field()
		}
		c.add(name, constraintOf(fe))
	}
}

func (c *checker) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Kind: c.kind, Fields: c.fields}
}

func constraintOf(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
}

// checkField 校验更新请求中的单个三态字段。
// 未传入的字段不校验；null 只允许出现在可空字段上。
func checkField[T any](c *checker, name string, f patch.Field[T], tag string, nullable bool) {
	if f.IsNull() {
		if !nullable {
			c.add(name, "not_null")
		}
		return
	}

	v, ok := f.Get()
	if !ok || tag == "" {
		return
	}
	c.collect(name, validate.Var(v, tag))
}

func checkID(c *checker, id uint) {
	if id == 0 {
		c.add("id", "required")
	}
}

func trimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
