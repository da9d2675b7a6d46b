package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type (
	// Recovery is a successful key search, as cached and stored.
	Recovery struct {
		ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
		Fingerprint string             `json:"fingerprint" bson:"fingerprint"`
		Ciphertext  string             `json:"ciphertext" bson:"ciphertext"`
		Marker      string             `json:"marker" bson:"marker"`
		Key         int                `json:"key" bson:"key"`
		Plaintext   string             `json:"plaintext" bson:"plaintext"`
		CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	}
)

func (r *Recovery) Candidate() Candidate {
	return Candidate{Key: r.Key, Text: r.Plaintext}
}
