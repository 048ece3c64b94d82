package services

import (
	"context"
	"log"

	"talentmatch/job-matcher/internal/models"
)

// JobAnalyzer turns a raw job description into a normalized record, with the
// same default-on-failure contract as ResumeAnalyzer.
type JobAnalyzer interface {
	Analyze(ctx context.Context, text string) (models.JobAnalysis, error)
}

type jobAnalyzer struct {
	gateway ModelGateway
	prompts *PromptBuilder
}

func NewJobAnalyzer(gateway ModelGateway) JobAnalyzer {
	return &jobAnalyzer{
		gateway: gateway,
		prompts: NewPromptBuilder(),
	}
}

// Analyze implements JobAnalyzer.
func (a *jobAnalyzer) Analyze(ctx context.Context, text string) (models.JobAnalysis, error) {
	prompt := a.prompts.BuildJobAnalysisPrompt(text)

	response, err := a.gateway.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  Job analysis degraded to defaults: %v\n", err)
		return models.DefaultJobAnalysis(), err
	}

	var analysis models.JobAnalysis
	if err := UnmarshalObject(response, &analysis); err != nil {
		log.Printf("⚠️  Job analysis response unusable: %v\n", err)
		return models.DefaultJobAnalysis(), err
	}

	analysis.Normalize()
	return analysis, nil
}
