package database

import (
	"context"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"wheelmarket/internal/model"
)

type ListingStats struct {
	Total        int64   `json:"total"`
	Available    int64   `json:"available"`
	Sold         int64   `json:"sold"`
	Petrol       int64   `json:"petrol"`
	Electric     int64   `json:"electric"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     int     `json:"min_price"`
	MaxPrice     int     `json:"max_price"`
}

// statsFilter is the base for every stats figure: active records of the kind,
// narrowed by extra criteria.
func statsFilter(kind model.VehicleKind, extra bson.M) bson.M {
	f := bson.M{"kind": kind, "is_active": true}
	for k, v := range extra {
		f[k] = v
	}
	return f
}

// statsPricePipeline aggregates avg/min/max present_price over available
// listings only.
func statsPricePipeline(kind model.VehicleKind) []bson.M {
	return []bson.M{
		{"$match": statsFilter(kind, bson.M{"availability": model.AvailabilityAvailable})},
		{"$group": bson.M{
			"_id": nil,
			"avg": bson.M{"$avg": "$present_price"},
			"min": bson.M{"$min": "$present_price"},
			"max": bson.M{"$max": "$present_price"},
		}},
	}
}

// ListingStatsCompute runs one count query per figure plus a single
// aggregation for the price summary. The counts are independent queries, a
// write landing between them can skew the totals slightly and that is
// accepted.
func (db Database) ListingStatsCompute(ctx context.Context, kind model.VehicleKind) (ListingStats, error) {
	var st ListingStats

	count := func(extra bson.M) (int64, error) {
		return db.Collection(CollectionListings).CountDocuments(ctx, statsFilter(kind, extra))
	}

	var err error
	if st.Total, err = count(nil); err != nil {
		return st, errors.Wrapf(err, "error counting total Listings of kind: %s", kind)
	}
	if st.Available, err = count(bson.M{"availability": model.AvailabilityAvailable}); err != nil {
		return st, errors.Wrapf(err, "error counting available Listings of kind: %s", kind)
	}
	if st.Sold, err = count(bson.M{"availability": model.AvailabilitySold}); err != nil {
		return st, errors.Wrapf(err, "error counting sold Listings of kind: %s", kind)
	}
	if st.Petrol, err = count(bson.M{"engine_type": model.EngineTypePetrol}); err != nil {
		return st, errors.Wrapf(err, "error counting Petrol Listings of kind: %s", kind)
	}
	if st.Electric, err = count(bson.M{"engine_type": model.EngineTypeElectric}); err != nil {
		return st, errors.Wrapf(err, "error counting Electric Listings of kind: %s", kind)
	}

	cur, err := db.Collection(CollectionListings).Aggregate(ctx, statsPricePipeline(kind))
	if err != nil {
		return st, errors.Wrapf(err, "error aggregating Listing prices of kind: %s", kind)
	}

	var prices []struct {
		Avg float64 `bson:"avg"`
		Min int     `bson:"min"`
		Max int     `bson:"max"`
	}
	if err = cur.All(ctx, &prices); err != nil {
		return st, errors.Wrapf(err, "error getting Listing price aggregates from cursor, kind: %s", kind)
	}
	if len(prices) > 0 {
		st.AveragePrice = prices[0].Avg
		st.MinPrice = prices[0].Min
		st.MaxPrice = prices[0].Max
	}
	return st, nil
}
