package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"talentmatch/job-matcher/internal/models"
)

// FeedbackGenerator derives candidate feedback from a match breakdown in two
// phases: a deterministic draft computed from the breakdown itself, then a
// model pass that rephrases the draft into polished feedback. If the model
// call fails or returns something unusable, the draft is the result — the
// candidate always gets feedback grounded in the actual computed gaps.
type FeedbackGenerator interface {
	Feedback(ctx context.Context, details models.MatchDetails) models.Feedback
}

type feedbackGenerator struct {
	gateway ModelGateway
	prompts *PromptBuilder
}

func NewFeedbackGenerator(gateway ModelGateway) FeedbackGenerator {
	return &feedbackGenerator{
		gateway: gateway,
		prompts: NewPromptBuilder(),
	}
}

type feedbackDraft struct {
	strengths     []string
	improvements  []string
	missingSkills []string
	keywords      []string
}

// Feedback implements FeedbackGenerator.
func (f *feedbackGenerator) Feedback(ctx context.Context, details models.MatchDetails) models.Feedback {
	details.Normalize()
	draft := buildDraft(details)

	strengthsJSON, _ := json.Marshal(draft.strengths)
	improvementsJSON, _ := json.Marshal(draft.improvements)
	missingJSON, _ := json.Marshal(draft.missingSkills)
	keywordsJSON, _ := json.Marshal(draft.keywords)

	prompt := f.prompts.BuildFeedbackPrompt(
		details.OverallMatch,
		string(strengthsJSON),
		string(improvementsJSON),
		string(missingJSON),
		string(keywordsJSON),
	)

	response, err := f.gateway.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("⚠️  Feedback polish failed, using deterministic draft: %v\n", err)
		return draft.fallback()
	}

	var polished models.Feedback
	if err := UnmarshalObject(response, &polished); err != nil {
		log.Printf("⚠️  Feedback response unusable, using deterministic draft: %v\n", err)
		return draft.fallback()
	}

	polished.Normalize()
	return polished
}

// buildDraft walks the match breakdown and assembles the deterministic
// feedback sentences and keyword candidates.
func buildDraft(details models.MatchDetails) feedbackDraft {
	skills := details.Sections.Skills
	missingRequired := skills.Required.Missing
	missingPreferred := skills.Preferred.Missing
	missingAspects := details.Sections.Experience.MissingAspects
	educationGaps := details.Sections.Education.MissingAspects

	var strengths []string
	for _, skill := range skills.Required.Matched {
		strengths = append(strengths, "You have the required skill: "+skill)
	}
	for _, skill := range skills.Preferred.Matched {
		strengths = append(strengths, "You have the preferred skill: "+skill)
	}
	if details.Sections.Experience.Score > 50 {
		strengths = append(strengths, "Your experience aligns well with job responsibilities")
	}
	if details.Sections.Education.Score > 50 {
		strengths = append(strengths, "Your educational background matches the job requirements")
	}

	var improvements []string
	var keywords []string

	for _, skill := range missingRequired {
		improvements = append(improvements, "Add the required skill: "+skill)
		keywords = append(keywords, skill)
	}

	for _, skill := range firstN(missingPreferred, 3) {
		improvements = append(improvements, "Consider adding the preferred skill: "+skill)
		keywords = append(keywords, skill)
	}

	for _, aspect := range firstN(missingAspects, 3) {
		improvements = append(improvements, "Highlight experience related to: "+aspect)
		for _, word := range strings.Fields(aspect) {
			if len(word) > 4 {
				keywords = append(keywords, word)
			}
		}
	}

	for _, gap := range firstN(educationGaps, 2) {
		improvements = append(improvements, "Address this qualification: "+gap)
	}

	missingSkills := append([]string{}, missingRequired...)
	missingSkills = append(missingSkills, firstN(missingPreferred, 3)...)

	return feedbackDraft{
		strengths:     strengths,
		improvements:  improvements,
		missingSkills: missingSkills,
		keywords:      dedupe(keywords),
	}
}

// fallback truncates the draft into the final feedback shape.
func (d feedbackDraft) fallback() models.Feedback {
	fb := models.Feedback{
		Strengths:              firstN(d.strengths, 5),
		Improvements:           firstN(d.improvements, 5),
		MissingSkills:          d.missingSkills,
		KeywordRecommendations: firstN(d.keywords, 10),
	}
	fb.Normalize()
	return fb
}

// firstN copies up to n leading items.
func firstN(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	return append([]string{}, items...)
}

// dedupe removes duplicates, keeping first occurrences in order.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}
