// Package patch 提供局部更新请求使用的三态字段。
//
// 一个字段有三种状态：未传入（保持原值）、显式 null（清空）、具体值（覆盖）。
// 普通指针只能区分两种状态，因此更新请求统一使用 Field。
package patch

import (
	"bytes"
	"encoding/json"
)

type state uint8

const (
	unset state = iota
	null
	set
)

// Field 表示更新请求中的单个字段。零值即“未传入”。
type Field[T any] struct {
	state state
	value T
}

// Value 构造携带具体值的字段
func Value[T any](v T) Field[T] {
	return Field[T]{state: set, value: v}
}

// Null 构造显式清空的字段
func Null[T any]() Field[T] {
	return Field[T]{state: null}
}

// Present 报告请求中是否出现了该字段（包括 null）
func (f Field[T]) Present() bool {
	return f.state != unset
}

// IsNull 报告字段是否被显式置为 null
func (f Field[T]) IsNull() bool {
	return f.state == null
}

// Get 返回具体值；仅在字段携带值时 ok 为 true
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == set
}

// Map 在字段携带值时对其做变换，其余状态原样保留
func (f Field[T]) Map(fn func(T) T) Field[T] {
	if f.state != set {
		return f
	}
	return Value(fn(f.value))
}

// UnmarshalJSON 区分 null 与具体值；键不存在时该方法不会被调用，字段保持未传入。
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Null[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Value(v)
	return nil
}

// MarshalJSON 将未传入与 null 都编码为 null
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.state != set {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
