package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeProfileValidate(t *testing.T) {
	valid := &ResumeProfile{
		Skills:          NewSkillSet([]string{"go"}),
		ExperienceYears: 3,
		Education:       EducationBachelor,
	}
	require.NoError(t, valid.Validate())

	negative := &ResumeProfile{ExperienceYears: -1}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidInput)

	unknown := &ResumeProfile{Education: EducationLevel("bootcamp")}
	assert.ErrorIs(t, unknown.Validate(), ErrInvalidInput)
}

func TestJobRequirementValidate(t *testing.T) {
	valid := &JobRequirement{
		RequiredSkills:     NewSkillSet([]string{"go"}),
		MinExperienceYears: 5,
		Education:          EducationMaster,
	}
	require.NoError(t, valid.Validate())

	negative := &JobRequirement{MinExperienceYears: -2}
	assert.ErrorIs(t, negative.Validate(), ErrInvalidInput)
}

func TestParseEducationLevel(t *testing.T) {
	level, err := ParseEducationLevel("  Bachelor ")
	require.NoError(t, err)
	assert.Equal(t, EducationBachelor, level)

	level, err = ParseEducationLevel("")
	require.NoError(t, err)
	assert.Equal(t, EducationNone, level)

	_, err = ParseEducationLevel("bootcamp")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEducationLevelRankOrdering(t *testing.T) {
	ordered := []EducationLevel{EducationNone, EducationAssociate, EducationBachelor, EducationMaster, EducationDoctorate}

	previous := -1
	for _, level := range ordered {
		rank, err := level.Rank()
		require.NoError(t, err)
		assert.Greater(t, rank, previous, "rank of %s", level)
		previous = rank
	}
}

func TestLoadResumeProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	content := `{
		"name": "Alex",
		"skills": ["Python", "SQL", "golang"],
		"experience_years": 4.5,
		"education": "master",
		"summary": "Backend engineer."
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	resume, err := LoadResumeProfile(path)
	require.NoError(t, err)

	assert.Equal(t, "Alex", resume.Name)
	assert.Equal(t, []string{"python", "sql", "go"}, resume.Skills.Tokens())
	assert.Equal(t, 4.5, resume.ExperienceYears)
	assert.Equal(t, EducationMaster, resume.Education)
}

func TestLoadResumeProfileRejectsInvalidData(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{"), 0o644))
	_, err := LoadResumeProfile(malformed)
	assert.ErrorIs(t, err, ErrInvalidInput)

	negative := filepath.Join(dir, "negative.json")
	require.NoError(t, os.WriteFile(negative, []byte(`{"skills": [], "experience_years": -3}`), 0o644))
	_, err = LoadResumeProfile(negative)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoadJobRequirement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.json")
	content := `{
		"title": "Senior Backend Engineer",
		"required_skills": ["Go", "PostgreSQL"],
		"preferred_skills": ["Kubernetes"],
		"min_experience_years": 5,
		"education": "bachelor",
		"description": "Build and operate backend services."
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	job, err := LoadJobRequirement(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "postgresql"}, job.RequiredSkills.Tokens())
	assert.Equal(t, []string{"kubernetes"}, job.PreferredSkills.Tokens())
	assert.Equal(t, 5.0, job.MinExperienceYears)
	assert.Equal(t, EducationBachelor, job.Education)
}
