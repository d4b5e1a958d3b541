// Package profile holds the compiled-in facts shown on the resume dashboard.
//
// A Dataset is rebuilt by New on every render and never mutated afterwards.
// Accessors hand out copies, so nothing downstream can change what the next
// caller sees.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinSkillLevel and MaxSkillLevel bound Skill.Level.
	MinSkillLevel = 0
	MaxSkillLevel = 5
)

var (
	ErrInvalidSkillLevel = errors.New("skill level out of range")
	ErrMissingField      = errors.New("required field is empty")
)

// Contact is the sidebar contact card.
type Contact struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	Location    string `json:"location" yaml:"location"`
	ProfileLink string `json:"profile_link" yaml:"profile_link"`
	AvatarURL   string `json:"avatar_url" yaml:"avatar_url"`
}

// Headline is the header section next to the skills chart.
type Headline struct {
	Title        string `json:"title" yaml:"title"`
	Availability string `json:"availability" yaml:"availability"`
	Summary      string `json:"summary" yaml:"summary"`
}

// Proficiency is a language level label such as Native or B2.
type Proficiency string

const (
	ProficiencyNative Proficiency = "Native"
	ProficiencyC1     Proficiency = "C1"
	ProficiencyB2     Proficiency = "B2"
	ProficiencyB1     Proficiency = "B1"
	ProficiencyA2     Proficiency = "A2"
)

// Language pairs a spoken language with its proficiency. Note is an optional
// qualifier printed after the level.
type Language struct {
	Name  string      `json:"name" yaml:"name"`
	Flag  string      `json:"flag" yaml:"flag"`
	Level Proficiency `json:"level" yaml:"level"`
	Note  string      `json:"note,omitempty" yaml:"note,omitempty"`
}

// Label renders the level with its qualifier, e.g. "B2 (European Section)".
func (l Language) Label() string {
	if l.Note == "" {
		return string(l.Level)
	}
	return fmt.Sprintf("%s (%s)", l.Level, l.Note)
}

// Skill is one axis of the proficiency chart.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// Metric is the headline number of a project card.
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Delta string `json:"delta,omitempty" yaml:"delta,omitempty"`
}

// Project is a project or experience card.
type Project struct {
	Icon        string   `json:"icon" yaml:"icon"`
	Title       string   `json:"title" yaml:"title"`
	Link        string   `json:"link,omitempty" yaml:"link,omitempty"`
	Period      string   `json:"period" yaml:"period"`
	Description string   `json:"description" yaml:"description"`
	TagsLabel   string   `json:"tags_label" yaml:"tags_label"`
	Tags        []string `json:"tags" yaml:"tags"`
	Metric      Metric   `json:"metric" yaml:"metric"`
}

// Category groups education entries under a tab.
type Category string

const (
	CategoryCurrent  Category = "Current"
	CategoryExchange Category = "Exchange"
)

// Categories lists the education tabs in display order.
var Categories = []Category{CategoryCurrent, CategoryExchange}

// TabLabel is the caption shown on the education tab.
func (c Category) TabLabel() string {
	switch c {
	case CategoryCurrent:
		return "Current Degree"
	case CategoryExchange:
		return "International Exchange"
	default:
		return string(c)
	}
}

// Education is a degree or exchange programme.
type Education struct {
	Category    Category `json:"category" yaml:"category"`
	Flag        string   `json:"flag" yaml:"flag"`
	Institution string   `json:"institution" yaml:"institution"`
	Dates       string   `json:"dates" yaml:"dates"`
	Description string   `json:"description" yaml:"description"`
}

// Dataset is the immutable set of resume facts.
type Dataset struct {
	contact    Contact
	headline   Headline
	languages  []Language
	interests  []string
	skills     []Skill
	projects   []Project
	education  []Education
	supervisor Supervisor
}

// Supervisor is credited in the page footer.
type Supervisor struct {
	Name        string `json:"name" yaml:"name"`
	ProfileLink string `json:"profile_link" yaml:"profile_link"`
}

func (d *Dataset) Contact() Contact { return d.contact }
func (d *Dataset) Headline() Headline { return d.headline }
func (d *Dataset) Supervisor() Supervisor { return d.supervisor }

func (d *Dataset) Languages() []Language {
	return append([]Language(nil), d.languages...)
}

func (d *Dataset) Interests() []string {
	return append([]string(nil), d.interests...)
}

func (d *Dataset) Skills() []Skill {
	return append([]Skill(nil), d.skills...)
}

// Projects returns the project cards in display order. Tags are copied too.
func (d *Dataset) Projects() []Project {
	out := make([]Project, len(d.projects))
	for i, p := range d.projects {
		p.Tags = append([]string(nil), p.Tags...)
		out[i] = p
	}
	return out
}

func (d *Dataset) Education() []Education {
	return append([]Education(nil), d.education...)
}

// EducationIn returns the entries filed under the given tab.
func (d *Dataset) EducationIn(c Category) []Education {
	var out []Education
	for _, e := range d.education {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks the construction invariants: every skill level lies in
// [MinSkillLevel, MaxSkillLevel] and the contact name and email are set.
func (d *Dataset) Validate() error {
	if strings.TrimSpace(d.contact.Name) == "" {
		return fmt.Errorf("%w: contact name", ErrMissingField)
	}
	if strings.TrimSpace(d.contact.Email) == "" {
		return fmt.Errorf("%w: contact email", ErrMissingField)
	}
	for _, s := range d.skills {
		if err := ValidateSkill(s); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSkill reports whether a single skill respects the level bounds.
func ValidateSkill(s Skill) error {
	if s.Level < MinSkillLevel || s.Level > MaxSkillLevel {
		return fmt.Errorf("%w: %s has level %d, expected %d..%d",
			ErrInvalidSkillLevel, s.Name, s.Level, MinSkillLevel, MaxSkillLevel)
	}
	return nil
}
