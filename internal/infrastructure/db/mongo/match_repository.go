package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

const collectionMatches = "match_assessments"

// MatchRepository stores LLM match assessments for later review.
type MatchRepository struct {
	col *mongo.Collection
}

func NewMatchRepository(db *mongo.Database) *MatchRepository {
	return &MatchRepository{col: db.Collection(collectionMatches)}
}

type matchDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	JobID       string             `bson:"job_id"`
	CandidateID string             `bson:"candidate_id"`
	Fit         bool               `bson:"fit"`
	Score       float64            `bson:"score"`
	Reason      string             `bson:"reason"`
	Model       string             `bson:"model"`
	Raw         string             `bson:"raw,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d matchDoc) toDomain() *domain.MatchAssessment {
	return &domain.MatchAssessment{
		ID:          d.ID.Hex(),
		JobID:       d.JobID,
		CandidateID: d.CandidateID,
		Fit:         d.Fit,
		Score:       d.Score,
		Reason:      d.Reason,
		Model:       d.Model,
		Raw:         d.Raw,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *MatchRepository) Insert(ctx context.Context, a *domain.MatchAssessment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := matchDoc{
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Fit:         a.Fit,
		Score:       a.Score,
		Reason:      a.Reason,
		Model:       a.Model,
		Raw:         a.Raw,
		CreatedAt:   a.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	a.ID = oid.Hex()
	return a.ID, nil
}

func (r *MatchRepository) ListForCandidate(ctx context.Context, candidateID string, limit int) ([]*domain.MatchAssessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{"candidate_id": candidateID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []*domain.MatchAssessment
	for cursor.Next(ctx) {
		var doc matchDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		assessments = append(assessments, doc.toDomain())
	}
	return assessments, cursor.Err()
}

// EnsureIndexes creates the lookup indexes on the match collection.
func (r *MatchRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "candidate_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "job_id", Value: 1}, {Key: "candidate_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
