package services

import "github.com/wuyifannppp/poco-agent/pkg/models"

// defaultListLimit is the page size used when the caller passes none.
const defaultListLimit = 100

// pageWindow normalizes list params into a concrete limit and offset.
func pageWindow(p models.ListParams) (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset = p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
