// Package layout assembles the ordered blocks that make up the dashboard.
//
// Blocks are plain data. The web package paints them through html/template
// and the render command prints them; neither feeds anything back.
package layout

import (
	"net/url"

	"github.com/cjanusz/cv-dashboard/internal/chart"
	"github.com/cjanusz/cv-dashboard/internal/profile"
)

// Kind tells the rendering side how to paint a block.
type Kind string

const (
	KindAvatar   Kind = "avatar"
	KindHeading  Kind = "heading"
	KindList     Kind = "list"
	KindDivider  Kind = "divider"
	KindDownload Kind = "download"
	KindCaption  Kind = "caption"
	KindTitle    Kind = "title"
	KindSubtitle Kind = "subtitle"
	KindInfo     Kind = "info"
	KindText     Kind = "text"
	KindChart    Kind = "chart"
	KindCard     Kind = "card"
	KindTabs     Kind = "tabs"
	KindFooter   Kind = "footer"
	KindNote     Kind = "note"
)

// Region is the part of the page a block belongs to.
type Region string

const (
	RegionSidebar Region = "sidebar"
	RegionMain    Region = "main"
)

// Row identifiers for multi-column rows in the main region.
const (
	RowHeader    = "header"
	RowProjects1 = "projects-1"
	RowProjects2 = "projects-2"
)

// DownloadPrefix is the route under which the attachment is served.
const DownloadPrefix = "/download/"

// Block is one opaque layout instruction. Only the fields relevant to Kind
// are set.
type Block struct {
	Kind   Kind   `json:"kind" yaml:"kind"`
	Region Region `json:"region" yaml:"region"`
	// Row groups consecutive main-region blocks into columns. Empty means the
	// block spans the full width.
	Row    string `json:"row,omitempty" yaml:"row,omitempty"`
	Column int    `json:"column" yaml:"column"`

	Title    string      `json:"title,omitempty" yaml:"title,omitempty"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Link     string      `json:"link,omitempty" yaml:"link,omitempty"`
	Items    []Item      `json:"items,omitempty" yaml:"items,omitempty"`
	Card     *Card       `json:"card,omitempty" yaml:"card,omitempty"`
	Tabs     []Tab       `json:"tabs,omitempty" yaml:"tabs,omitempty"`
	Download *Download   `json:"download,omitempty" yaml:"download,omitempty"`
	Chart    *chart.Spec `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// Item is a line of a list block.
type Item struct {
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Value string `json:"value" yaml:"value"`
	Link  string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Card is a project card with its headline metric.
type Card struct {
	Icon        string         `json:"icon" yaml:"icon"`
	Title       string         `json:"title" yaml:"title"`
	Link        string         `json:"link,omitempty" yaml:"link,omitempty"`
	Period      string         `json:"period" yaml:"period"`
	Description string         `json:"description" yaml:"description"`
	TagsLabel   string         `json:"tags_label" yaml:"tags_label"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Metric      profile.Metric `json:"metric" yaml:"metric"`
}

// Tab is one education category.
type Tab struct {
	Category profile.Category    `json:"category" yaml:"category"`
	Label    string              `json:"label" yaml:"label"`
	Entries  []profile.Education `json:"entries" yaml:"entries"`
}

// Download describes the download action for a present attachment.
type Download struct {
	Label     string `json:"label" yaml:"label"`
	Filename  string `json:"filename" yaml:"filename"`
	MediaType string `json:"media_type" yaml:"media_type"`
	Size      string `json:"size" yaml:"size"`
	URL       string `json:"url" yaml:"url"`
}

// DownloadURL is the path that serves filename.
func DownloadURL(filename string) string {
	return DownloadPrefix + url.PathEscape(filename)
}
