package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

const collectionCVs = "cv_documents"

// CVRepository stores the free-text CV documents, one per owner.
type CVRepository struct {
	col *mongo.Collection
}

func NewCVRepository(db *mongo.Database) *CVRepository {
	return &CVRepository{col: db.Collection(collectionCVs)}
}

// Upsert replaces the owner's CV document and returns its id. A candidate
// keeps at most one CV; re-uploads overwrite in place.
func (r *CVRepository) Upsert(ctx context.Context, doc *domain.CVDocument) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc.UpdatedAt = time.Now().UTC()

	filter := bson.M{"owner_id": doc.OwnerID}
	update := bson.M{"$set": bson.M{
		"owner_id":   doc.OwnerID,
		"file_name":  doc.FileName,
		"text":       doc.Text,
		"updated_at": doc.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", err
	}

	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		doc.ID = oid.Hex()
		return doc.ID, nil
	}

	// Updated in place: read back the existing id.
	existing, err := r.FindByOwner(ctx, doc.OwnerID)
	if err != nil {
		return "", err
	}
	doc.ID = existing.ID
	return doc.ID, nil
}

func (r *CVRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.CVDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var raw struct {
		ID        primitive.ObjectID `bson:"_id"`
		OwnerID   string             `bson:"owner_id"`
		FileName  string             `bson:"file_name"`
		Text      string             `bson:"text"`
		UpdatedAt time.Time          `bson:"updated_at"`
	}
	err := r.col.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCVNotFound
		}
		return nil, err
	}

	return &domain.CVDocument{
		ID:        raw.ID.Hex(),
		OwnerID:   raw.OwnerID,
		FileName:  raw.FileName,
		Text:      raw.Text,
		UpdatedAt: raw.UpdatedAt,
	}, nil
}

// EnsureIndexes creates the unique owner index on the CV collection.
func (r *CVRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
