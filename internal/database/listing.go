package database

import (
	"context"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
	"wheelmarket/internal/model"
)

func (db Database) ListingInsert(ctx context.Context, l model.Listing) (id string, err error) {
	l.IsActive = true
	l.ViewCount = 0
	l.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	l.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	r, err := db.Collection(CollectionListings).InsertOne(ctx, l)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Listing with name: %s", l.Name)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) ListingFindOne(ctx context.Context, kind model.VehicleKind, listingID string) (model.Listing, error) {
	var l model.Listing
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return l, errors.Wrapf(err, "error creating ObjectID from hex: %s", listingID)
	}
	err = db.Collection(CollectionListings).FindOne(ctx, bson.M{"_id": objID, "kind": kind}).Decode(&l)
	if err != nil {
		return l, errors.Wrapf(err, "error finding Listing with ID: %s", listingID)
	}
	l.ComputeDerived()
	return l, nil
}

// ListingFindOneAndIncrementViewCount bumps view_count with an atomic $inc and
// returns the updated record in one round trip.
func (db Database) ListingFindOneAndIncrementViewCount(ctx context.Context, kind model.VehicleKind, listingID string) (model.Listing, error) {
	var l model.Listing
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return l, errors.Wrapf(err, "error creating ObjectID from hex: %s", listingID)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = db.Collection(CollectionListings).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID, "kind": kind},
		bson.M{"$inc": bson.M{"view_count": 1}},
		opts,
	).Decode(&l)
	if err != nil {
		return l, errors.Wrapf(err, "error finding Listing and incrementing view count, ID: %s", listingID)
	}
	l.ComputeDerived()
	return l, nil
}

func (db Database) ListingReplace(ctx context.Context, kind model.VehicleKind, listingID string, l model.Listing) (model.Listing, error) {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return l, errors.Wrapf(err, "error creating ObjectID from hex: %s", listingID)
	}

	l.ID = objID
	l.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	res, err := db.Collection(CollectionListings).ReplaceOne(ctx, bson.M{"_id": objID, "kind": kind}, l)
	if err != nil {
		return l, errors.Wrapf(err, "error replacing Listing with ID: %s", listingID)
	}
	if res.MatchedCount == 0 {
		return l, errors.Wrapf(mongo.ErrNoDocuments, "no Listing found to replace with ID: %s", listingID)
	}
	l.ComputeDerived()
	return l, nil
}

// ListingSoftDelete flags the record inactive. Deleting an already inactive
// Listing is a no-op success, the record is matched either way.
func (db Database) ListingSoftDelete(ctx context.Context, kind model.VehicleKind, listingID string) error {
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return errors.Wrapf(err, "error creating ObjectID from hex: %s", listingID)
	}

	res, err := db.Collection(CollectionListings).UpdateOne(
		ctx,
		bson.M{"_id": objID, "kind": kind},
		bson.M{"$set": bson.M{
			"is_active":  false,
			"updated_at": primitive.NewDateTimeFromTime(time.Now()),
		}},
	)
	if err != nil {
		return errors.Wrapf(err, "error soft deleting Listing with ID: %s", listingID)
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(mongo.ErrNoDocuments, "no Listing found to soft delete with ID: %s", listingID)
	}
	return nil
}

// ListingMarkSold sets availability to sold regardless of the current value.
func (db Database) ListingMarkSold(ctx context.Context, kind model.VehicleKind, listingID string) (model.Listing, error) {
	var l model.Listing
	objID, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return l, errors.Wrapf(err, "error creating ObjectID from hex: %s", listingID)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = db.Collection(CollectionListings).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID, "kind": kind},
		bson.M{"$set": bson.M{
			"availability": model.AvailabilitySold,
			"updated_at":   primitive.NewDateTimeFromTime(time.Now()),
		}},
		opts,
	).Decode(&l)
	if err != nil {
		return l, errors.Wrapf(err, "error marking Listing as sold, ID: %s", listingID)
	}
	l.ComputeDerived()
	return l, nil
}

// ListingFind runs the filtered, sorted, paginated query plus the matching
// count before pagination. The two are separate queries, read skew between
// them is accepted.
func (db Database) ListingFind(ctx context.Context, q ListingQuery) ([]model.Listing, int64, error) {
	filter := q.filter()

	total, err := db.Collection(CollectionListings).CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "error counting Listings with query: %+v", q)
	}

	opts := options.Find().
		SetSort(q.sortDoc()).
		SetSkip((q.Page - 1) * q.Limit).
		SetLimit(q.Limit)
	cur, err := db.Collection(CollectionListings).Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "error getting cursor to find Listings with query: %+v", q)
	}

	ls := []model.Listing{}
	if err = cur.All(ctx, &ls); err != nil {
		return nil, 0, errors.Wrapf(err, "error getting Listings from cursor with query: %+v", q)
	}
	for i := range ls {
		ls[i].ComputeDerived()
	}
	return ls, total, nil
}
