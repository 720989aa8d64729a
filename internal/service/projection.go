package service

import (
	"strings"

	"github.com/creatorpage/internal/db"
)

// ContentFilter 描述站点内容列表的可选过滤条件，两个条件同时给出时取交集
type ContentFilter struct {
	Section  *string `json:"section"`
	IsActive *bool   `json:"is_active"`
}

// predicates 将过滤条件转换为固定顺序的等值条件：section 在前，is_active 在后。
// 空白的 section 视为未提供。
func (f ContentFilter) predicates() []db.Predicate {
	where := make([]db.Predicate, 0, 2)
	if f.Section != nil {
		if section := strings.TrimSpace(*f.Section); section != "" {
			where = append(where, db.Predicate{Column: "section", Value: section})
		}
	}
	if f.IsActive != nil {
		where = append(where, db.Predicate{Column: "is_active", Value: *f.IsActive})
	}
	return where
}

var (
	activeOnly = []db.Predicate{{Column: "is_active", Value: true}}

	// 相同 display_order 的条目按插入顺序（自增 ID）排列
	byDisplayOrder = []db.Order{{Column: "display_order"}, {Column: "id"}}
	byInsertion    = []db.Order{{Column: "id"}}
	newestFirst    = []db.Order{{Column: "created_at", Desc: true}, {Column: "id", Desc: true}}
)

// groupBySection 按 section 分组，组内保持原有顺序
func groupBySection(items []db.SiteContent) map[string][]db.SiteContent {
	groups := make(map[string][]db.SiteContent)
	for _, item := range items {
		groups[item.Section] = append(groups[item.Section], item)
	}
	return groups
}
