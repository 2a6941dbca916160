package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	_ "embed"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Matcher implements ports.CVMatcher on top of a Gemini content generator.
// A minScore threshold above zero overrides the model's own fit verdict.
type Matcher struct {
	generator contentGenerator
	minScore  float64
	log       zerolog.Logger
}

//go:embed prompt.md
var promptTemplate string

func NewMatcher(generator contentGenerator, log zerolog.Logger, minScore float64) *Matcher {
	return &Matcher{
		generator: generator,
		minScore:  minScore,
		log:       log,
	}
}

func (m *Matcher) Model() string {
	return m.generator.Model()
}

func (m *Matcher) Evaluate(ctx context.Context, cv *domain.CVDocument, job *domain.Job) (*ports.FitAssessment, error) {
	if cv == nil {
		return nil, fmt.Errorf("cv document is required")
	}
	if job == nil {
		return nil, fmt.Errorf("job is required")
	}

	cvPayload := map[string]any{
		"file_name": cv.FileName,
		"text":      cv.Text,
	}
	cvJSON, err := json.MarshalIndent(cvPayload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal cv payload: %w", err)
	}

	jobPayload := map[string]any{
		"title":           job.Title,
		"description":     job.Description,
		"location":        job.Location,
		"employment_type": job.EmploymentType,
		"skills":          job.Skills,
	}
	jobJSON, err := json.MarshalIndent(jobPayload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal job payload: %w", err)
	}

	prompt := buildPrompt(string(cvJSON), string(jobJSON))

	m.log.Debug().
		Str("job_id", job.ID).
		Str("cv_owner", cv.OwnerID).
		Int("prompt_length", len(prompt)).
		Msg("gemini evaluate request")

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	assessment, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if m.minScore > 0 && !math.IsNaN(assessment.Score) && assessment.Score < m.minScore {
		m.log.Debug().
			Str("job_id", job.ID).
			Float64("score", assessment.Score).
			Float64("threshold", m.minScore).
			Msg("fit overridden by score threshold")
		assessment.Fit = false
	}

	assessment.Raw = raw
	return assessment, nil
}

func buildPrompt(cvJSON, jobJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "CV:\n{{CV_JSON}}\n\nJob posting:\n{{JOB_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{CV_JSON}}", cvJSON)
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", jobJSON)
	return prompt
}

func parseResponse(raw string) (*ports.FitAssessment, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		score = 0
	}

	return &ports.FitAssessment{
		Fit:    coerceBool(data["fit"]),
		Score:  score,
		Reason: coerceString(data["reason"]),
	}, nil
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
