package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"talentmatch/job-matcher/internal/models"
)

// InsightsService covers the analytics operations built on top of the stored
// records: job recommendations for a resume, aggregate skill demand across
// jobs, and model-drafted resume improvement suggestions.
type InsightsService interface {
	RecommendJobs(ctx context.Context, resume models.ResumeAnalysis, jobs []models.Job, limit int) []models.Job
	MarketAnalysis(jobs []models.Job) models.MarketAnalysis
	ImproveResume(ctx context.Context, resumeText string) (map[string]interface{}, error)
}

type insightsService struct {
	scorer  MatchScorer
	gateway ModelGateway
	prompts *PromptBuilder
}

func NewInsightsService(scorer MatchScorer, gateway ModelGateway) InsightsService {
	return &insightsService{
		scorer:  scorer,
		gateway: gateway,
		prompts: NewPromptBuilder(),
	}
}

// RecommendJobs scores the resume against every candidate job and returns
// the best matches, highest score first. Ties keep the incoming job order.
func (s *insightsService) RecommendJobs(ctx context.Context, resume models.ResumeAnalysis, jobs []models.Job, limit int) []models.Job {
	type scoredJob struct {
		job   models.Job
		score float64
	}

	scored := make([]scoredJob, 0, len(jobs))
	for _, job := range jobs {
		score, _ := s.scorer.Score(ctx, resume, job.MatchProfile())
		scored = append(scored, scoredJob{job: job, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if limit > len(scored) {
		limit = len(scored)
	}
	top := make([]models.Job, 0, limit)
	for _, entry := range scored[:limit] {
		top = append(top, entry.job)
	}
	return top
}

// MarketAnalysis aggregates skill demand over the given jobs. Skill names
// are lowercased before counting so casing variants collapse together.
func (s *insightsService) MarketAnalysis(jobs []models.Job) models.MarketAnalysis {
	var required, preferred []string
	for _, job := range jobs {
		for _, skill := range job.RequiredSkills {
			required = append(required, strings.ToLower(skill.Name))
		}
		for _, skill := range job.PreferredSkills {
			preferred = append(preferred, strings.ToLower(skill.Name))
		}
	}

	return models.MarketAnalysis{
		TotalJobsAnalyzed:  len(jobs),
		TopRequiredSkills:  topSkills(required, 10),
		TopPreferredSkills: topSkills(preferred, 10),
		AnalysisDate:       time.Now().UTC(),
	}
}

// topSkills counts occurrences and keeps the n most frequent. Ties rank by
// first appearance, keeping the output deterministic.
func topSkills(names []string, n int) []models.SkillFrequency {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := make([]string, 0)

	for i, name := range names {
		if _, ok := counts[name]; !ok {
			firstSeen[name] = i
			order = append(order, name)
		}
		counts[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if n > len(order) {
		n = len(order)
	}
	result := make([]models.SkillFrequency, 0, n)
	for _, name := range order[:n] {
		result = append(result, models.SkillFrequency{Name: name, Count: counts[name]})
	}
	return result
}

// ImproveResume asks the model for structural improvement suggestions over
// the raw resume text.
func (s *insightsService) ImproveResume(ctx context.Context, resumeText string) (map[string]interface{}, error) {
	prompt := s.prompts.BuildImprovementPrompt(resumeText)

	response, err := s.gateway.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate improvement suggestions: %w", err)
	}

	var suggestions map[string]interface{}
	if err := UnmarshalObject(response, &suggestions); err != nil {
		return nil, fmt.Errorf("improvement response unusable: %w", err)
	}
	return suggestions, nil
}
