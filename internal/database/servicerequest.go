package database

import (
	"context"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"time"
	"wheelmarket/internal/model"
)

func (db Database) ServiceRequestInsert(ctx context.Context, sr model.ServiceRequest) (id string, err error) {
	sr.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	sr.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	r, err := db.Collection(CollectionServiceRequests).InsertOne(ctx, sr)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting ServiceRequest with reference: %s", sr.Reference)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) ServiceRequestFindOne(ctx context.Context, requestID string) (model.ServiceRequest, error) {
	var sr model.ServiceRequest
	objID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return sr, errors.Wrapf(err, "error creating ObjectID from hex: %s", requestID)
	}
	err = db.Collection(CollectionServiceRequests).FindOne(ctx, bson.M{"_id": objID}).Decode(&sr)
	return sr, errors.Wrapf(err, "error finding ServiceRequest with ID: %s", requestID)
}

func (db Database) ServiceRequestFind(
	ctx context.Context, serviceType string, status string, page int64, limit int64,
) ([]model.ServiceRequest, int64, error) {
	f := bson.M{}
	if serviceType != "" {
		f["type"] = serviceType
	}
	if status != "" {
		f["status"] = status
	}

	total, err := db.Collection(CollectionServiceRequests).CountDocuments(ctx, f)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "error counting ServiceRequests, type: %s, status: %s", serviceType, status)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cur, err := db.Collection(CollectionServiceRequests).Find(ctx, f, opts)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "error getting cursor to find ServiceRequests, type: %s, status: %s", serviceType, status)
	}

	srs := []model.ServiceRequest{}
	if err = cur.All(ctx, &srs); err != nil {
		return nil, 0, errors.Wrapf(err, "error getting ServiceRequests from cursor, type: %s, status: %s", serviceType, status)
	}
	return srs, total, nil
}
