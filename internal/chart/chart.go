// Package chart turns skill levels into a closed radar (polar) chart.
package chart

import (
	"github.com/cjanusz/cv-dashboard/internal/profile"
)

// Range is the radial axis span. It is fixed and never derived from data, so
// a level of MaxSkillLevel always touches the outer ring.
var Range = [2]float64{profile.MinSkillLevel, profile.MaxSkillLevel}

// Spec describes a polar chart independent of any plotting library.
type Spec struct {
	Axes   []string   `json:"axes" yaml:"axes"`
	Radii  []float64  `json:"radii" yaml:"radii"`
	Closed bool       `json:"closed" yaml:"closed"`
	Fill   bool       `json:"fill" yaml:"fill"`
	Range  [2]float64 `json:"range" yaml:"range,flow"`
}

// Point is one vertex of the polygon.
type Point struct {
	Axis   string  `json:"axis" yaml:"axis"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// ComputeSkillChart maps each skill to an axis, in input order.
func ComputeSkillChart(skills []profile.Skill) Spec {
	spec := Spec{
		Axes:   make([]string, len(skills)),
		Radii:  make([]float64, len(skills)),
		Closed: true,
		Fill:   true,
		Range:  Range,
	}
	for i, s := range skills {
		spec.Axes[i] = s.Name
		spec.Radii[i] = float64(s.Level)
	}
	return spec
}

// Points returns the open polygon, one point per axis.
func (s Spec) Points() []Point {
	out := make([]Point, len(s.Axes))
	for i := range s.Axes {
		out[i] = Point{Axis: s.Axes[i], Radius: s.Radii[i]}
	}
	return out
}

// ClosedSeries returns the polygon with the first point repeated at the end
// when the spec is closed.
func (s Spec) ClosedSeries() []Point {
	pts := s.Points()
	if !s.Closed || len(pts) == 0 {
		return pts
	}
	return append(pts, pts[0])
}
