package chart

import (
	"encoding/json"
	"fmt"
)

const (
	DefaultLineColor = "#1E3A8A"
	DefaultHeight    = 250
	DefaultMargin    = 20
)

// FigureOptions controls the presentation of the rendered figure.
type FigureOptions struct {
	LineColor string
	Height    int
	Margin    int
}

// DefaultFigureOptions matches the dashboard header column.
func DefaultFigureOptions() FigureOptions {
	return FigureOptions{
		LineColor: DefaultLineColor,
		Height:    DefaultHeight,
		Margin:    DefaultMargin,
	}
}

type figure struct {
	Data   []trace `json:"data"`
	Layout layout  `json:"layout"`
}

type trace struct {
	Type  string    `json:"type"`
	Mode  string    `json:"mode"`
	R     []float64 `json:"r"`
	Theta []string  `json:"theta"`
	Fill  string    `json:"fill,omitempty"`
	Line  line      `json:"line"`
}

type line struct {
	Color string `json:"color"`
}

type layout struct {
	Polar      polar  `json:"polar"`
	Margin     margin `json:"margin"`
	Height     int    `json:"height"`
	ShowLegend bool   `json:"showlegend"`
}

type polar struct {
	RadialAxis radialAxis `json:"radialaxis"`
}

type radialAxis struct {
	Visible bool       `json:"visible"`
	Range   [2]float64 `json:"range"`
}

type margin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}

// Figure renders the spec as a plotly.js figure (data + layout). The output
// is embedded in the page and handed to Plotly.newPlot.
func Figure(s Spec, opts FigureOptions) ([]byte, error) {
	if len(s.Axes) != len(s.Radii) {
		return nil, fmt.Errorf("chart has %d axes but %d radii", len(s.Axes), len(s.Radii))
	}

	series := s.ClosedSeries()
	t := trace{
		Type:  "scatterpolar",
		Mode:  "lines",
		R:     make([]float64, len(series)),
		Theta: make([]string, len(series)),
		Line:  line{Color: opts.LineColor},
	}
	for i, p := range series {
		t.R[i] = p.Radius
		t.Theta[i] = p.Axis
	}
	if s.Fill {
		t.Fill = "toself"
	}

	fig := figure{
		Data: []trace{t},
		Layout: layout{
			Polar:  polar{RadialAxis: radialAxis{Visible: true, Range: s.Range}},
			Margin: margin{T: opts.Margin, B: opts.Margin, L: opts.Margin, R: opts.Margin},
			Height: opts.Height,
		},
	}

	b, err := json.Marshal(fig)
	if err != nil {
		return nil, fmt.Errorf("marshal figure: %w", err)
	}
	return b, nil
}
