package recovery

import (
	"context"
	"time"

	"caesar_cipher/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type (
	RecoveryRepo struct {
		collection *mongo.Collection
	}
)

func NewRecoveryRepo(db *mongo.Database) *RecoveryRepo {
	return &RecoveryRepo{
		collection: db.Collection("recoveries"),
	}
}

// GetByFingerprint returns the latest stored recovery, or nil if none.
func (r *RecoveryRepo) GetByFingerprint(ctx context.Context, fingerprint string) (*model.Recovery, error) {
	filter := bson.M{
		"fingerprint": fingerprint,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var rec model.Recovery
	err := r.collection.FindOne(ctx, filter, opts).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *RecoveryRepo) Create(ctx context.Context, rec *model.Recovery) (primitive.ObjectID, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	res, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id := res.InsertedID.(primitive.ObjectID)
	rec.ID = id
	return id, nil
}
