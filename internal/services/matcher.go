package services

import (
	"context"
	"encoding/json"
	"log"

	"talentmatch/job-matcher/internal/models"
)

// MatchScorer scores how well a resume record matches a job record. Score
// failures are score-zero, never an error surfaced to the caller: any
// gateway or parsing problem yields (0, DefaultMatchDetails).
//
// The overall score is the model's self-reported overall_match, stored as
// given. It is documented to be the weighted average of the section scores
// but is deliberately not recomputed here, so stored scores stay comparable
// with the system this replaces.
type MatchScorer interface {
	Score(ctx context.Context, resume models.ResumeAnalysis, job models.JobAnalysis) (float64, models.MatchDetails)
}

type matchScorer struct {
	gateway ModelGateway
	prompts *PromptBuilder
}

func NewMatchScorer(gateway ModelGateway) MatchScorer {
	return &matchScorer{
		gateway: gateway,
		prompts: NewPromptBuilder(),
	}
}

// Score implements MatchScorer.
func (m *matchScorer) Score(ctx context.Context, resume models.ResumeAnalysis, job models.JobAnalysis) (float64, models.MatchDetails) {
	resume.Normalize()
	job.Normalize()

	resumeJSON, err := json.Marshal(resume)
	if err != nil {
		log.Printf("⚠️  Failed to serialize resume record: %v\n", err)
		return 0, models.DefaultMatchDetails()
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		log.Printf("⚠️  Failed to serialize job record: %v\n", err)
		return 0, models.DefaultMatchDetails()
	}

	prompt := m.prompts.BuildMatchPrompt(string(resumeJSON), string(jobJSON))

	response, err := m.gateway.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  Match scoring degraded to zero: %v\n", err)
		return 0, models.DefaultMatchDetails()
	}

	var details models.MatchDetails
	if err := UnmarshalObject(response, &details); err != nil {
		log.Printf("⚠️  Match scoring response unusable: %v\n", err)
		return 0, models.DefaultMatchDetails()
	}

	details.Normalize()
	return details.OverallMatch, details
}
