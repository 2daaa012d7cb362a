package server

import (
	"net/url"
	"strconv"
	"wheelmarket/internal/database"
	"wheelmarket/internal/model"
)

func pageAndLimit(values url.Values) (page int64, limit int64) {
	page, limit = 1, 10
	if p, err := strconv.ParseInt(values.Get("page"), 10, 64); err == nil && p >= 1 {
		page = p
	}
	if l, err := strconv.ParseInt(values.Get("limit"), 10, 64); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}

// parseListingQuery turns the browsing query parameters into a store query.
// Unrecognized enum values and non-numeric numbers are dropped, not rejected,
// the browse surface is permissive by contract.
func parseListingQuery(kind model.VehicleKind, values url.Values) database.ListingQuery {
	q := database.ListingQuery{
		Kind:         kind,
		Availability: model.AvailabilityAvailable,
		Sort:         database.SortNewest,
		Page:         1,
		Limit:        10,
	}

	q.Page, q.Limit = pageAndLimit(values)
	if sort := values.Get("sort"); database.ValidListingSort(sort) {
		q.Sort = database.ListingSort(sort)
	}
	if t := values.Get("type"); model.ValidEngineType(t) {
		q.EngineType = t
	}
	if c := values.Get("condition"); model.ValidCondition(c) {
		q.Condition = c
	}
	if a := values.Get("availability"); model.ValidAvailability(a) {
		q.Availability = a
	}
	q.Brand = values.Get("brand")
	q.Search = values.Get("search")

	if v := values.Get("minPrice"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			q.MinPrice = &n
		}
	}
	if v := values.Get("maxPrice"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			q.MaxPrice = &n
		}
	}

	return q
}

type pagination struct {
	Page        int64 `json:"page"`
	Limit       int64 `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int64 `json:"total_pages"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

func newPagination(page int64, limit int64, total int64) pagination {
	totalPages := (total + limit - 1) / limit
	return pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
