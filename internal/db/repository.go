package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound 在按 ID 更新的目标不存在时返回
var ErrNotFound = errors.New("record not found")

// Predicate 是一个列等值条件，多个条件之间为 AND
type Predicate struct {
	Column string
	Value  interface{}
}

// Order 描述一个排序列
type Order struct {
	Column string
	Desc   bool
}

// Repository 封装单张表的插入、条件查询和按 ID 更新
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository 构造 Repository
func NewRepository[T any](gdb *gorm.DB) *Repository[T] {
	return &Repository[T]{db: gdb}
}

// Insert 插入一行，写回存储分配的 ID
func (r *Repository[T]) Insert(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Find 返回满足全部条件的记录，按给定顺序排序。没有匹配时返回空切片。
func (r *Repository[T]) Find(ctx context.Context, where []Predicate, orderBy []Order) ([]T, error) {
	query := r.db.WithContext(ctx).Model(new(T))
	for _, p := range where {
		query = query.Where(clause.Eq{Column: clause.Column{Name: p.Column}, Value: p.Value})
	}
	for _, o := range orderBy {
		query = query.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}

	items := make([]T, 0)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateByID 在同一事务中锁定目标行、计算待写入字段并写回，返回更新后的记录。
// merge 收到当前持久化的记录，返回需要写入的列；目标不存在时返回 ErrNotFound 且不写入。
func (r *Repository[T]) UpdateByID(ctx context.Context, id uint, merge func(current *T) map[string]interface{}) (*T, error) {
	var updated T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		fields := merge(&current)
		if len(fields) > 0 {
			if err := tx.Model(&current).Updates(fields).Error; err != nil {
				return err
			}
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
