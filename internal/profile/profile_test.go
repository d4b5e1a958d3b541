package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjanusz/cv-dashboard/internal/profile"
)

func TestNewIsValid(t *testing.T) {
	ds := profile.New()
	require.NoError(t, ds.Validate())

	assert.Equal(t, "Clément JANUSZ", ds.Contact().Name)
	assert.Len(t, ds.Projects(), 4)
	assert.Len(t, ds.Languages(), 3)
}

func TestSkillsKeepDisplayOrder(t *testing.T) {
	skills := profile.New().Skills()

	names := make([]string, len(skills))
	levels := make([]int, len(skills))
	for i, s := range skills {
		names[i] = s.Name
		levels[i] = s.Level
	}

	assert.Equal(t, []string{"Python", "SQL/NoSQL", "Azure Cloud", "Power BI/Tableau", "Excel", "Databricks"}, names)
	assert.Equal(t, []int{5, 5, 5, 3, 5, 3}, levels)
}

func TestAccessorsReturnCopies(t *testing.T) {
	ds := profile.New()

	skills := ds.Skills()
	skills[0].Level = 0
	projects := ds.Projects()
	projects[0].Tags[0] = "changed"
	interests := ds.Interests()
	interests[0] = "changed"

	assert.Equal(t, 5, ds.Skills()[0].Level)
	assert.Equal(t, "BERT", ds.Projects()[0].Tags[0])
	assert.Equal(t, "Chess (ELO 1500)", ds.Interests()[0])
}

func TestEducationCategories(t *testing.T) {
	ds := profile.New()

	for _, c := range profile.Categories {
		assert.Len(t, ds.EducationIn(c), 1, "category %s", c)
	}
	assert.Equal(t, "Current Degree", profile.CategoryCurrent.TabLabel())
	assert.Equal(t, "International Exchange", profile.CategoryExchange.TabLabel())
}

func TestLanguageLabel(t *testing.T) {
	assert.Equal(t, "B2 (European Section)", profile.Language{Level: profile.ProficiencyB2, Note: "European Section"}.Label())
	assert.Equal(t, "Native", profile.Language{Level: profile.ProficiencyNative}.Label())
}

func TestValidateSkill(t *testing.T) {
	tests := []struct {
		name    string
		level   int
		wantErr bool
	}{
		{name: "lower bound", level: 0},
		{name: "upper bound", level: 5},
		{name: "negative", level: -1, wantErr: true},
		{name: "above max", level: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := profile.ValidateSkill(profile.Skill{Name: "Go", Level: tt.level})
			if tt.wantErr {
				assert.ErrorIs(t, err, profile.ErrInvalidSkillLevel)
				return
			}
			assert.NoError(t, err)
		})
	}
}
