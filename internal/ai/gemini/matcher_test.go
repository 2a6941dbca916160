package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func testCV() *domain.CVDocument {
	return &domain.CVDocument{
		OwnerID:  "cand-1",
		FileName: "cv.txt",
		Text:     "Ten years of Go and distributed systems.",
	}
}

func testJob() *domain.Job {
	return &domain.Job{
		ID:     "job-1",
		Title:  "Go Developer",
		Skills: []string{"go", "postgres"},
	}
}

func TestMatcherEvaluate(t *testing.T) {
	stub := &stubGenerator{response: `{"fit": true, "score": 85, "reason": "Strong overlap on Go"}`}
	matcher := NewMatcher(stub, zerolog.Nop(), 0)

	assessment, err := matcher.Evaluate(context.Background(), testCV(), testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.Fit {
		t.Fatalf("expected fit to be true")
	}
	if assessment.Score != 85 {
		t.Fatalf("expected score 85, got %v", assessment.Score)
	}
	if assessment.Reason == "" {
		t.Fatalf("expected reason to be populated")
	}
	if assessment.Raw == "" {
		t.Fatalf("expected raw response to be kept")
	}

	if !strings.Contains(stub.lastPrompt, "Go Developer") {
		t.Fatalf("expected job title in prompt, got: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "distributed systems") {
		t.Fatalf("expected cv text in prompt")
	}
}

func TestMatcherEvaluateAppliesThreshold(t *testing.T) {
	stub := &stubGenerator{response: `{"fit": true, "score": 30, "reason": "Too junior"}`}
	matcher := NewMatcher(stub, zerolog.Nop(), 50)

	assessment, err := matcher.Evaluate(context.Background(), testCV(), testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if assessment.Fit {
		t.Fatalf("expected fit to be false due to threshold")
	}
	if assessment.Score != 30 {
		t.Fatalf("threshold must not rewrite the score, got %v", assessment.Score)
	}
}

func TestMatcherEvaluatePropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	matcher := NewMatcher(stub, zerolog.Nop(), 0)

	if _, err := matcher.Evaluate(context.Background(), testCV(), testJob()); err == nil {
		t.Fatalf("expected error from generator")
	}
}

func TestMatcherEvaluateRequiresInputs(t *testing.T) {
	matcher := NewMatcher(&stubGenerator{}, zerolog.Nop(), 0)

	if _, err := matcher.Evaluate(context.Background(), nil, testJob()); err == nil {
		t.Fatalf("expected error for nil cv")
	}
	if _, err := matcher.Evaluate(context.Background(), testCV(), nil); err == nil {
		t.Fatalf("expected error for nil job")
	}
}

func TestParseResponseHandlesCodeBlock(t *testing.T) {
	raw := "```json\n{\"fit\": true, \"score\": \"72\", \"reason\": \"Looks good\"}\n```"

	assessment, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.Fit {
		t.Fatalf("expected fit true")
	}
	if assessment.Score != 72 {
		t.Fatalf("expected score 72, got %v", assessment.Score)
	}
}

func TestParseResponseCoercesLooseTypes(t *testing.T) {
	raw := `{"fit": "yes", "score": 60.5, "reason": "ok"}`

	assessment, err := parseResponse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !assessment.Fit {
		t.Fatalf("expected string yes coerced to true")
	}
	if assessment.Score != 60.5 {
		t.Fatalf("expected score 60.5, got %v", assessment.Score)
	}
}

func TestParseResponseRejectsNonJSON(t *testing.T) {
	if _, err := parseResponse("I cannot answer that."); err == nil {
		t.Fatalf("expected parse error")
	}
}
