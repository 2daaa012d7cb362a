package database

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"regexp"
	"wheelmarket/internal/model"
)

type ListingSort string

const (
	SortNewest     ListingSort = "newest"
	SortOldest     ListingSort = "oldest"
	SortPriceLow   ListingSort = "price-low"
	SortPriceHigh  ListingSort = "price-high"
	SortRating     ListingSort = "rating"
	SortMostViewed ListingSort = "most-viewed"
)

func ValidListingSort(s string) bool {
	switch ListingSort(s) {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh, SortRating, SortMostViewed:
		return true
	}
	return false
}

// ListingQuery is the parsed, already validated query surface for browsing
// listings. Zero-value string fields mean "no filter", nil price bounds mean
// an open interval on that side.
type ListingQuery struct {
	Kind         model.VehicleKind
	EngineType   string
	Condition    string
	Brand        string
	Search       string
	Availability string
	MinPrice     *int
	MaxPrice     *int
	Sort         ListingSort
	Page         int64
	Limit        int64
}

// filter always pins kind and is_active, inactive records never surface
// through browsing.
func (q ListingQuery) filter() bson.M {
	f := bson.M{
		"kind":      q.Kind,
		"is_active": true,
	}
	if q.Availability != "" {
		f["availability"] = q.Availability
	}
	if q.EngineType != "" {
		f["engine_type"] = q.EngineType
	}
	if q.Condition != "" {
		f["condition"] = q.Condition
	}
	if q.Brand != "" {
		f["brand"] = primitive.Regex{Pattern: regexp.QuoteMeta(q.Brand), Options: "i"}
	}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		f["$or"] = bson.A{
			bson.M{"name": re},
			bson.M{"brand": re},
			bson.M{"description": re},
		}
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		f["present_price"] = price
	}
	return f
}

func (q ListingQuery) sortDoc() bson.D {
	switch q.Sort {
	case SortOldest:
		return bson.D{{Key: "created_at", Value: 1}}
	case SortPriceLow:
		return bson.D{{Key: "present_price", Value: 1}}
	case SortPriceHigh:
		return bson.D{{Key: "present_price", Value: -1}}
	case SortRating:
		return bson.D{{Key: "rating", Value: -1}}
	case SortMostViewed:
		return bson.D{{Key: "view_count", Value: -1}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}
