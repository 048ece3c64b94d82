package services

import (
	"context"

	"talentmatch/job-matcher/internal/models"
)

// MatchResult pairs a score with its breakdown and feedback.
type MatchResult struct {
	Score    float64
	Details  models.MatchDetails
	Feedback models.Feedback
}

// MatchingService runs the full scoring pipeline for a resume/job pair.
type MatchingService interface {
	Match(ctx context.Context, resume models.ResumeAnalysis, job models.JobAnalysis) MatchResult
}

type matchingService struct {
	scorer   MatchScorer
	feedback FeedbackGenerator
}

func NewMatchingService(scorer MatchScorer, feedback FeedbackGenerator) MatchingService {
	return &matchingService{
		scorer:   scorer,
		feedback: feedback,
	}
}

// Match implements MatchingService.
func (m *matchingService) Match(ctx context.Context, resume models.ResumeAnalysis, job models.JobAnalysis) MatchResult {
	score, details := m.scorer.Score(ctx, resume, job)
	feedback := m.feedback.Feedback(ctx, details)

	return MatchResult{
		Score:    score,
		Details:  details,
		Feedback: feedback,
	}
}
