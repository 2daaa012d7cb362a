package database

import (
	"context"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Name                      = "wheelmarket_db"
	CollectionListings        = "listings"
	CollectionServiceRequests = "service_requests"
	CollectionFeedback        = "feedback"
	CollectionContactMessages = "contact_messages"
)

type Database struct {
	*mongo.Database
}

func ConnectDB(ctx context.Context, dbURI string) (*mongo.Client, error) {
	c, err := mongo.Connect(ctx, options.Client().ApplyURI(dbURI))
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionListings).Indexes().CreateMany(
		ctx,
		[]mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "kind", Value: 1},
					{Key: "is_active", Value: 1},
					{Key: "availability", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "kind", Value: 1},
					{Key: "brand", Value: 1},
				},
			},
			{
				Keys: bson.D{{Key: "created_at", Value: -1}},
			},
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionServiceRequests).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "reference", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	)
	if err != nil {
		return nil, err
	}

	_, err = c.Database(Name).Collection(CollectionFeedback).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}
