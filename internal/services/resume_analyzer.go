package services

import (
	"context"
	"log"

	"talentmatch/job-matcher/internal/models"
)

// ResumeAnalyzer turns raw resume text into a normalized record. The record
// is always fully populated: when the model call or extraction fails, the
// default record is returned together with the causing error so callers can
// log the degradation without special-casing a missing result.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, text string) (models.ResumeAnalysis, error)
}

type resumeAnalyzer struct {
	gateway ModelGateway
	prompts *PromptBuilder
}

func NewResumeAnalyzer(gateway ModelGateway) ResumeAnalyzer {
	return &resumeAnalyzer{
		gateway: gateway,
		prompts: NewPromptBuilder(),
	}
}

// Analyze implements ResumeAnalyzer.
func (a *resumeAnalyzer) Analyze(ctx context.Context, text string) (models.ResumeAnalysis, error) {
	prompt := a.prompts.BuildResumeAnalysisPrompt(text)

	response, err := a.gateway.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  Resume analysis degraded to defaults: %v\n", err)
		return models.DefaultResumeAnalysis(), err
	}

	var analysis models.ResumeAnalysis
	if err := UnmarshalObject(response, &analysis); err != nil {
		log.Printf("⚠️  Resume analysis response unusable: %v\n", err)
		return models.DefaultResumeAnalysis(), err
	}

	analysis.Normalize()
	return analysis, nil
}
