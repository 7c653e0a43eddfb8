package repo

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

const (
	DefaultPerPage = 100
	MaxPerPage     = 100
)

type ListParams struct {
	Page    int `form:"page"`
	PerPage int `form:"perPage"`
}

// Normalize page ≥ 1，perPage ∈ [1,100]
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

func (p ListParams) Offset() int { return (p.Page - 1) * p.PerPage }

func TotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// Query 列表过滤条件。Exact 之间 AND；Fuzzy 之间 OR（LIKE %v%），
// 两组之间 AND。列名由各 repo 写死，不接受外部输入。
type Query struct {
	Exact map[string]any
	Fuzzy map[string]string
}

// Paginate 统一的分页查询：total 是过滤后的总数（不受分页影响），
// items 按 id 升序切片，保证翻页顺序稳定。软删行由 gorm 的删除作用域
// 在这里统一排除，调用方无需（也不能漏）带 deleted_at 条件。
func Paginate[T any](ctx context.Context, db *gorm.DB, q Query, p ListParams) ([]T, int64, error) {
	p = p.Normalize()

	tx := db.WithContext(ctx).Model(new(T))

	// map 遍历无序，固定 key 顺序让生成的 SQL 可复现
	keys := make([]string, 0, len(q.Exact))
	for k := range q.Exact {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tx = tx.Where(fmt.Sprintf("%s = ?", k), q.Exact[k])
	}

	if len(q.Fuzzy) > 0 {
		fkeys := make([]string, 0, len(q.Fuzzy))
		for k := range q.Fuzzy {
			fkeys = append(fkeys, k)
		}
		sort.Strings(fkeys)
		group := db.Session(&gorm.Session{NewDB: true})
		for i, k := range fkeys {
			like := "%" + q.Fuzzy[k] + "%"
			if i == 0 {
				group = group.Where(fmt.Sprintf("%s LIKE ?", k), like)
			} else {
				group = group.Or(fmt.Sprintf("%s LIKE ?", k), like)
			}
		}
		tx = tx.Where(group)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []T
	if err := tx.Order("id ASC").Offset(p.Offset()).Limit(p.PerPage).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
