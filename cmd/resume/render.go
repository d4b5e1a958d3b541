package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cjanusz/cv-dashboard/internal/chart"
	"github.com/cjanusz/cv-dashboard/internal/config"
	"github.com/cjanusz/cv-dashboard/internal/layout"
	"github.com/cjanusz/cv-dashboard/internal/pipeline"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

type renderOutput struct {
	Page       config.Page      `json:"page" yaml:"page"`
	Chart      chart.Spec       `json:"chart" yaml:"chart"`
	Attachment attachmentOutput `json:"attachment" yaml:"attachment"`
	Blocks     []layout.Block   `json:"blocks" yaml:"blocks"`
}

type attachmentOutput struct {
	Available bool   `json:"available" yaml:"available"`
	Filename  string `json:"filename" yaml:"filename"`
	MediaType string `json:"media_type,omitempty" yaml:"media_type,omitempty"`
	Size      int    `json:"size" yaml:"size"`
}

// writeRender prints one render result in the requested format.
func writeRender(w io.Writer, format string, page config.Page, res pipeline.Result) error {
	out := renderOutput{
		Page:  page,
		Chart: res.Chart,
		Attachment: attachmentOutput{
			Available: res.Attachment.Available,
			Filename:  res.Attachment.Filename,
			MediaType: res.Attachment.MediaType,
			Size:      res.Attachment.Size(),
		},
		Blocks: res.Blocks,
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q, must be json or yaml", format)
	}
	return nil
}
