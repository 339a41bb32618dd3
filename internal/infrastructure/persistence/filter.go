package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/quoteline/backend/internal/domain/shared"
)

// applyFilter applies search, ordering and pagination to a query.
// searchColumns are matched with ILIKE against filter.Search; defaultOrder
// is used when the filter carries no explicit ordering.
func applyFilter(query *gorm.DB, filter shared.Filter, searchColumns []string, defaultOrder string) *gorm.DB {
	if filter.Search != "" && len(searchColumns) > 0 {
		pattern := "%" + filter.Search + "%"
		clause := make([]string, len(searchColumns))
		args := make([]any, len(searchColumns))
		for i, col := range searchColumns {
			clause[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where(strings.Join(clause, " OR "), args...)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else if defaultOrder != "" {
		query = query.Order(defaultOrder)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}
