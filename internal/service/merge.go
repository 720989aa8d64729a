package service

import (
	"time"

	"github.com/creatorpage/internal/patch"
)

// changeSet 是更新请求中出现过的列及其新值，nil 表示清空
type changeSet map[string]interface{}

// immutableColumns 永远不会被更新写入
var immutableColumns = map[string]struct{}{
	"id":         {},
	"created_at": {},
}

// putField 将三态字段并入 changeSet：未传入忽略，null 清空，具体值覆盖
func putField[T any](cs changeSet, column string, f patch.Field[T]) {
	if f.IsNull() {
		cs[column] = nil
		return
	}
	if v, ok := f.Get(); ok {
		cs[column] = v
	}
}

// merge 根据当前记录计算最终写入的列集合。
// updated_at 每次都会写入，且严格大于记录当前的 updated_at。
func merge(changes changeSet, lastUpdated, now time.Time) map[string]interface{} {
	fields := make(map[string]interface{}, len(changes)+1)
	for column, value := range changes {
		if _, ok := immutableColumns[column]; ok {
			continue
		}
		fields[column] = value
	}
	fields["updated_at"] = nextTimestamp(lastUpdated, now)
	return fields
}

// nextTimestamp 以微秒精度返回 now；时钟没有前进时在 prev 的基础上加一微秒
func nextTimestamp(prev, now time.Time) time.Time {
	next := now.UTC().Truncate(time.Microsecond)
	if !next.After(prev) {
		next = prev.UTC().Truncate(time.Microsecond).Add(time.Microsecond)
	}
	return next
}

func stamp(now time.Time) time.Time {
	return now.UTC().Truncate(time.Microsecond)
}
