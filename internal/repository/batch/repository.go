package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
	"github.com/MadScie254/Bordaless-SKU-Lab/platform/logger"
)

type repository struct {
	coll *mongo.Collection
}

func NewBatchRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// EnsureIndexes creates the listing-order index used by List.
func (r *repository) EnsureIndexes(ctx context.Context) error {
	const op = "repository.EnsureIndexes"

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "listed_at", Value: 1}, {Key: "_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*model.ProductBatch, error) {
	const op = "repository.List"

	opts := options.Find().SetSort(bson.D{{Key: "listed_at", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(cerr))
		}
	}()

	out := make([]*model.ProductBatch, 0)
	for cur.Next(ctx) {
		var ent BatchEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) Create(ctx context.Context, batch *model.ProductBatch) error {
	const op = "repository.Create"

	if batch.ID == "" {
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrValidation, errors.New("batch id is empty")))
	}
	if batch.ListedAt.IsZero() {
		batch.ListedAt = time.Now().UTC()
	}

	if _, err := r.coll.InsertOne(ctx, EntityFromModel(batch)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.ErrBatchAlreadyExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) CreateBatch(ctx context.Context, batches []*model.ProductBatch) error {
	const op = "repository.CreateBatch"

	docs := make([]any, 0, len(batches))
	for _, b := range batches {
		if b == nil {
			continue
		}
		if b.ID == "" {
			return fmt.Errorf("%s: batch ID is empty", op)
		}
		if b.ListedAt.IsZero() {
			b.ListedAt = time.Now().UTC()
		}

		docs = append(docs, EntityFromModel(b))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
