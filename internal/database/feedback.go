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

func (db Database) FeedbackInsert(ctx context.Context, f model.Feedback) (id string, err error) {
	f.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionFeedback).InsertOne(ctx, f)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting Feedback from: %s", f.Email)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) FeedbackFind(ctx context.Context, page int64, limit int64) ([]model.Feedback, int64, error) {
	total, err := db.Collection(CollectionFeedback).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "error counting Feedback")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cur, err := db.Collection(CollectionFeedback).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "error getting cursor to find Feedback")
	}

	fs := []model.Feedback{}
	if err = cur.All(ctx, &fs); err != nil {
		return nil, 0, errors.Wrap(err, "error getting Feedback from cursor")
	}
	return fs, total, nil
}

func (db Database) ContactMessageInsert(ctx context.Context, cm model.ContactMessage) (id string, err error) {
	cm.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	r, err := db.Collection(CollectionContactMessages).InsertOne(ctx, cm)
	if err != nil {
		return "", errors.Wrapf(err, "error inserting ContactMessage from: %s", cm.Email)
	}
	return r.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (db Database) ContactMessageFind(ctx context.Context, page int64, limit int64) ([]model.ContactMessage, int64, error) {
	total, err := db.Collection(CollectionContactMessages).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "error counting ContactMessages")
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
	cur, err := db.Collection(CollectionContactMessages).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "error getting cursor to find ContactMessages")
	}

	cms := []model.ContactMessage{}
	if err = cur.All(ctx, &cms); err != nil {
		return nil, 0, errors.Wrap(err, "error getting ContactMessages from cursor")
	}
	return cms, total, nil
}
