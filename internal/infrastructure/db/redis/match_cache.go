package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

const matchTTL = 24 * time.Hour

// MatchCache keeps recent LLM match assessments hot so a repeated evaluation
// of the same (job, candidate) pair does not hit the provider again.
// Key format: match:<job_id>:<candidate_id>
type MatchCache struct {
	client *redis.Client
}

// NewMatchCache creates a MatchCache wrapping the given Redis client.
func NewMatchCache(client *redis.Client) *MatchCache {
	return &MatchCache{client: client}
}

// Get returns the cached assessment for the pair, or ok=false on a miss.
func (c *MatchCache) Get(ctx context.Context, jobID, candidateID string) (*domain.MatchAssessment, bool, error) {
	raw, err := c.client.Get(ctx, c.key(jobID, candidateID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("match cache get: %w", err)
	}

	var a domain.MatchAssessment
	if err := json.Unmarshal(raw, &a); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		return nil, false, nil
	}
	return &a, true, nil
}

// Set stores the assessment (expires after matchTTL).
func (c *MatchCache) Set(ctx context.Context, a *domain.MatchAssessment) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("match cache marshal: %w", err)
	}
	return c.client.Set(ctx, c.key(a.JobID, a.CandidateID), raw, matchTTL).Err()
}

func (c *MatchCache) key(jobID, candidateID string) string {
	return fmt.Sprintf("match:%s:%s", jobID, candidateID)
}
