package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/sanitize"
	gocache "github.com/patrickmn/go-cache"
)

const promptFile = "generation.json"

// ErrGenerationUnavailable is returned for any provider failure. Provider
// error details are logged server-side and never surfaced to callers.
var ErrGenerationUnavailable = errors.New("content generation is temporarily unavailable")

// Service wraps a Client with prompt construction and response caching.
// Identical requests within the cache window return the cached text
// without touching the provider.
type Service struct {
	client Client
	cache  *gocache.Cache
}

// NewService creates a Service around client with a 15 minute response
// cache.
func NewService(client Client) *Service {
	return &Service{
		client: client,
		cache:  gocache.New(15*time.Minute, 30*time.Minute),
	}
}

// SummaryInput describes the candidate background for summary generation.
type SummaryInput struct {
	Titles []string
	Skills []string
	Years  string
}

// GenerateSummary produces a professional summary paragraph.
func (s *Service) GenerateSummary(ctx context.Context, in SummaryInput) (string, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "professional_summary"), map[string]string{
		"Titles": strings.Join(in.Titles, ", "),
		"Skills": strings.Join(in.Skills, ", "),
		"Years":  in.Years,
	})
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return sanitize.Clean(text), nil
}

// SuggestSkills extracts a skill list for the given job description.
func (s *Service) SuggestSkills(ctx context.Context, jobDescription string) ([]string, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "skills_list"), map[string]string{
		"JobDescription": jobDescription,
	})
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseList(text), nil
}

// SuggestCourses proposes relevant coursework for a degree and target role.
func (s *Service) SuggestCourses(ctx context.Context, degree, jobDescription string) ([]string, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "relevant_courses"), map[string]string{
		"Degree":         degree,
		"JobDescription": jobDescription,
	})
	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return ParseList(text), nil
}

// EnhanceText rewrites resume text for impact, preserving line structure.
func (s *Service) EnhanceText(ctx context.Context, text string) (string, error) {
	prompt := prompts.Format(prompts.MustGet(promptFile, "enhance_text"), map[string]string{
		"Text": text,
	})
	out, err := s.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// generate runs one provider call through the cache.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	key := cacheKey(prompt)
	if cached, found := s.cache.Get(key); found {
		return cached.(string), nil
	}

	text, err := s.client.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("ai: generation failed: %v", err)
		return "", ErrGenerationUnavailable
	}

	s.cache.Set(key, text, gocache.DefaultExpiration)
	return text, nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
