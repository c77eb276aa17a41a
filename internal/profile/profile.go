// Package profile holds the validated value objects consumed by the scoring
// engine: candidate resume profiles, job requirements and skill sets. Inputs
// arrive pre-extracted from upstream collaborators; this package only checks
// the documented invariants and never re-extracts anything from raw text.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidInput marks malformed or missing caller-supplied data. It is a
// caller error and is never retried.
var ErrInvalidInput = errors.New("invalid input")

// ResumeProfile is the structured form of a candidate resume.
type ResumeProfile struct {
	Name            string         `json:"name,omitempty"`
	Skills          SkillSet       `json:"skills"`
	ExperienceYears float64        `json:"experience_years"`
	Education       EducationLevel `json:"education,omitempty"`
	// Summary is the free-text resume content used for semantic comparison.
	Summary string `json:"summary,omitempty"`
}

// JobRequirement is the structured form of a job description.
type JobRequirement struct {
	Title              string         `json:"title,omitempty"`
	RequiredSkills     SkillSet       `json:"required_skills"`
	PreferredSkills    SkillSet       `json:"preferred_skills,omitempty"`
	MinExperienceYears float64        `json:"min_experience_years"`
	Education          EducationLevel `json:"education,omitempty"`
	// Description is the free-text job description used for semantic comparison.
	Description string `json:"description,omitempty"`
}

// Validate checks the invariants promised by the extraction collaborators.
func (r *ResumeProfile) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: resume profile is required", ErrInvalidInput)
	}
	if r.ExperienceYears < 0 {
		return fmt.Errorf("%w: experience years must be non-negative, got %v", ErrInvalidInput, r.ExperienceYears)
	}
	if !r.Education.Valid() {
		return fmt.Errorf("%w: unrecognized education level %q", ErrInvalidInput, string(r.Education))
	}
	return nil
}

// Validate checks the invariants promised by the extraction collaborators.
func (j *JobRequirement) Validate() error {
	if j == nil {
		return fmt.Errorf("%w: job requirement is required", ErrInvalidInput)
	}
	if j.MinExperienceYears < 0 {
		return fmt.Errorf("%w: minimum experience years must be non-negative, got %v", ErrInvalidInput, j.MinExperienceYears)
	}
	if !j.Education.Valid() {
		return fmt.Errorf("%w: unrecognized education level %q", ErrInvalidInput, string(j.Education))
	}
	return nil
}

// LoadResumeProfile reads and validates a resume profile from a JSON file.
func LoadResumeProfile(path string) (*ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume profile: %w", err)
	}

	var resume ResumeProfile
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("%w: parsing resume profile %q: %v", ErrInvalidInput, path, err)
	}

	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("resume profile %q: %w", path, err)
	}

	return &resume, nil
}

// LoadJobRequirement reads and validates a job requirement from a JSON file.
func LoadJobRequirement(path string) (*JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job requirement: %w", err)
	}

	var job JobRequirement
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("%w: parsing job requirement %q: %v", ErrInvalidInput, path, err)
	}

	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("job requirement %q: %w", path, err)
	}

	return &job, nil
}
