package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/avdeev-m/finance-tracker/internal/model"
)

const database = "finance"

//go:generate mockery --name=Transactions

type Transactions interface {
	Insert(ctx context.Context, transaction *model.Transaction, kind model.Kind) error
	ListByOwner(ctx context.Context, ownerID int64, kind model.Kind) ([]model.Transaction, error)
	ListByOwnerSince(ctx context.Context, ownerID int64, kind model.Kind, since time.Time) ([]model.Transaction, error)
	ListRecentByOwner(ctx context.Context, ownerID int64, kind model.Kind, limit int64) ([]model.Transaction, error)
	SumByOwner(ctx context.Context, ownerID int64, kind model.Kind) (float64, error)
	DeleteByID(ctx context.Context, ownerID int64, kind model.Kind, id primitive.ObjectID) (bool, error)
}

type Mongo struct {
	cli *mongo.Client
}

func NewMongo(cli *mongo.Client) *Mongo {
	return &Mongo{
		cli: cli,
	}
}

func (m *Mongo) Insert(ctx context.Context, transaction *model.Transaction, kind model.Kind) error {
	now := time.Now().UTC()
	transaction.ID = primitive.NewObjectID()
	transaction.CreatedAt = now
	transaction.UpdatedAt = now

	_, err := m.collection(kind).InsertOne(ctx, transaction)
	if err != nil {
		return fmt.Errorf("mongo couldn't InsertOne in Insert method: %v", err)
	}
	return nil
}

func (m *Mongo) ListByOwner(ctx context.Context, ownerID int64, kind model.Kind) ([]model.Transaction, error) {
	cursor, err := m.collection(kind).Find(ctx,
		bson.D{{Key: "owner_id", Value: ownerID}},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in ListByOwner method: %v", err)
	}
	return m.decodeAll(ctx, cursor, "ListByOwner")
}

func (m *Mongo) ListByOwnerSince(ctx context.Context, ownerID int64, kind model.Kind, since time.Time) ([]model.Transaction, error) {
	cursor, err := m.collection(kind).Find(ctx,
		bson.D{
			{Key: "owner_id", Value: ownerID},
			{Key: "date", Value: bson.D{{Key: "$gte", Value: since}}},
		},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in ListByOwnerSince method: %v", err)
	}
	return m.decodeAll(ctx, cursor, "ListByOwnerSince")
}

func (m *Mongo) ListRecentByOwner(ctx context.Context, ownerID int64, kind model.Kind, limit int64) ([]model.Transaction, error) {
	cursor, err := m.collection(kind).Find(ctx,
		bson.D{{Key: "owner_id", Value: ownerID}},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongo couldn't Find in ListRecentByOwner method: %v", err)
	}
	return m.decodeAll(ctx, cursor, "ListRecentByOwner")
}

func (m *Mongo) SumByOwner(ctx context.Context, ownerID int64, kind model.Kind) (float64, error) {
	cursor, err := m.collection(kind).Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "owner_id", Value: ownerID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	})
	if err != nil {
		return 0, fmt.Errorf("mongo couldn't Aggregate in SumByOwner method: %v", err)
	}
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err = cursor.Close(ctx); err != nil {
			logrus.Errorf("mongo couldn't close cursor in SumByOwner method")
		}
	}(cursor, ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("mongo couldn't Decode in SumByOwner method: %v", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

func (m *Mongo) DeleteByID(ctx context.Context, ownerID int64, kind model.Kind, id primitive.ObjectID) (bool, error) {
	result, err := m.collection(kind).DeleteOne(ctx, bson.D{
		{Key: "_id", Value: id},
		{Key: "owner_id", Value: ownerID},
	})
	if err != nil {
		return false, fmt.Errorf("mongo couldn't DeleteOne in DeleteByID method: %v", err)
	}
	return result.DeletedCount == 1, nil
}

func (m *Mongo) collection(kind model.Kind) *mongo.Collection {
	return m.cli.Database(database).Collection(string(kind))
}

func (m *Mongo) decodeAll(ctx context.Context, cursor *mongo.Cursor, method string) ([]model.Transaction, error) {
	defer func(cursor *mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			logrus.Errorf("mongo couldn't close cursor in %s method", method)
		}
	}(cursor, ctx)

	transactions := make([]model.Transaction, 0)
	for cursor.Next(ctx) {
		var transaction model.Transaction
		if err := cursor.Decode(&transaction); err != nil {
			return nil, fmt.Errorf("mongo couldn't Decode in %s method: %v", method, err)
		}
		transactions = append(transactions, transaction)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor err in %s method: %v", method, err)
	}
	return transactions, nil
}
