package services

import "fmt"

// PromptBuilder produces the fixed prompt templates sent to the model. Each
// template embeds the exact target JSON schema the extractor expects back.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildPDFExtractionPrompt asks the model to transcribe an attached PDF.
func (pb *PromptBuilder) BuildPDFExtractionPrompt() string {
	return `Extract all text from this PDF resume, preserving its structure as much as possible.
Return only the extracted text, with no additional formatting or analysis.`
}

// BuildResumeAnalysisPrompt creates the resume parsing prompt.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(text string) string {
	return fmt.Sprintf(`Extract the following information from this resume in JSON format:

Resume:
%s

Return only a valid JSON object with the following structure:
{
    "parsed_sections": {
        "summary": "string",
        "contact": {
            "name": "string",
            "email": "string",
            "phone": "string",
            "location": "string"
        }
    },
    "skills": [
        {
            "name": "string",
            "proficiency": "string",
            "context": "string"
        }
    ],
    "experience": [
        {
            "role": "string",
            "company": "string",
            "start_date": "string",
            "end_date": "string",
            "description": "string",
            "achievements": [
                "string"
            ]
        }
    ],
    "education": [
        {
            "institution": "string",
            "degree": "string",
            "field_of_study": "string",
            "start_date": "string",
            "end_date": "string",
            "gpa": "string"
        }
    ],
    "projects": [
        {
            "name": "string",
            "description": "string",
            "technologies": [
                "string"
            ],
            "url": "string"
        }
    ],
    "certifications": [
        {
            "name": "string",
            "issuer": "string",
            "date": "string",
            "expires": "string"
        }
    ],
    "achievements": [
        {
            "description": "string"
        }
    ]
}

Use "Expert", "Intermediate" or "Beginner" for proficiency, YYYY-MM format for dates, and "Present" for open-ended end dates.
If a field isn't present in the resume, use empty strings for required text fields, empty arrays for lists, and null for optional fields.`, text)
}

// BuildJobAnalysisPrompt creates the job description parsing prompt.
func (pb *PromptBuilder) BuildJobAnalysisPrompt(text string) string {
	return fmt.Sprintf(`Extract the following information from this job description in JSON format:

Job Description:
%s

Return only a valid JSON object with the following structure:
{
    "title": "string",
    "required_skills": [
        {
            "name": "string",
            "importance": 1.0
        }
    ],
    "preferred_skills": [
        {
            "name": "string",
            "importance": 0.5
        }
    ],
    "responsibilities": [
        "string"
    ],
    "qualifications": [
        "string"
    ]
}

For importance values: assign 1.0 for critical skills, 0.8 for very important skills, 0.6 for important skills. For preferred skills, use 0.5 for nice-to-have skills, and 0.3 for bonus skills.

If a field isn't present, return an empty array. All specified fields must be present in the response.`, text)
}

// BuildMatchPrompt creates the resume/job match scoring prompt. Both records
// arrive already serialized as JSON. The numeric values in the schema below
// are demonstration values that pin down its shape, not real output.
func (pb *PromptBuilder) BuildMatchPrompt(resumeJSON, jobJSON string) string {
	return fmt.Sprintf(`Analyze how well this resume matches the job description.

Resume:
%s

Job Description:
%s

Return ONLY a JSON object with this exact structure, the values given are only for demonstration:
{
  "overall_match": 75.5,
  "sections": {
    "skills": {
      "score": 80.0,
      "required": {
        "matched": ["Python", "SQL"],
        "missing": ["Kubernetes"],
        "match_rate": 66.7
      },
      "preferred": {
        "matched": ["Docker"],
        "missing": ["AWS", "GraphQL"],
        "match_rate": 33.3
      }
    },
    "experience": {
      "score": 70.0,
      "matching_aspects": ["Backend development", "Team leadership"],
      "missing_aspects": ["Enterprise architecture", "CI/CD pipelines"],
      "experience_entries": [
        {
          "role": "Software Engineer",
          "company": "Tech Corp",
          "match_percentage": 75.0,
          "matching_terms": ["Python", "development", "leadership"]
        }
      ]
    },
    "education": {
      "score": 85.0,
      "matching_aspects": ["Bachelor's degree in Computer Science"],
      "missing_aspects": [],
      "highest_education": "bachelor"
    }
  },
  "weights_applied": {
    "skills": 0.6,
    "experience": 0.3,
    "education": 0.1
  }
}

Ensure all fields are present with default values if needed (empty arrays, 0.0 for numbers).
For highest_education, use one of: "high school", "associate", "bachelor", "master", "phd", or null if unknown.
Calculate overall_match as the weighted average of section scores.`, resumeJSON, jobJSON)
}

// BuildFeedbackPrompt asks the model to polish the deterministic draft into
// specific, actionable feedback. The draft doubles as grounding context so
// the phrasing stays faithful to the computed gaps.
func (pb *PromptBuilder) BuildFeedbackPrompt(matchScore float64, strengthsJSON, improvementsJSON, missingSkillsJSON, keywordsJSON string) string {
	return fmt.Sprintf(`Based on the job match analysis below, provide constructive feedback to improve the resume:

Match Score: %.1f%%

Initial Strengths:
%s

Initial Improvement Areas:
%s

Missing Skills:
%s

Important Keywords:
%s

Please provide personalized feedback in JSON format with these fields:
{
    "strengths": [
        "String describing a specific strength"
    ],
    "improvements": [
        "String describing a specific, actionable improvement"
    ],
    "missing_skills": [
        "Name of missing skill"
    ],
    "keyword_recommendations": [
        "Keyword to add to resume"
    ]
}

Provide 3-5 items in each list. Be specific and actionable in your recommendations.`,
		matchScore, strengthsJSON, improvementsJSON, missingSkillsJSON, keywordsJSON)
}

// BuildImprovementPrompt creates the standalone resume improvement prompt.
func (pb *PromptBuilder) BuildImprovementPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze this resume and provide specific improvements. Structure your response as a JSON object with the following fields:

1. "format": Array of suggestions for better formatting and structure
2. "bullet_points": Array of suggestions for creating more impactful bullet points
3. "keywords": Array of industry-specific keywords to add
4. "skills": Array of skills that should be highlighted more prominently

Resume:
%s`, resumeText)
}
