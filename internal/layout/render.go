package layout

import (
	"fmt"
	"strings"

	"github.com/cjanusz/cv-dashboard/internal/attachment"
	"github.com/cjanusz/cv-dashboard/internal/chart"
	"github.com/cjanusz/cv-dashboard/internal/profile"
)

const (
	DownloadLabel        = "📄 Download Full CV (PDF)"
	DownloadLabelGeneric = "📄 Download Full CV"
	MissingCaption       = "📄 CV PDF non requis pour exécuter l'app (fichier absent)."
)

// downloadLabel only claims PDF when the content sniffed as one.
func downloadLabel(mediaType string) string {
	mt, _, _ := strings.Cut(mediaType, ";")
	if strings.TrimSpace(mt) == "application/pdf" {
		return DownloadLabel
	}
	return DownloadLabelGeneric
}

// Render lays out the dataset in a fixed order. The attachment outcome is the
// only input that changes which blocks appear.
func Render(ds *profile.Dataset, spec chart.Spec, att attachment.Outcome) []Block {
	var blocks []Block
	blocks = append(blocks, sidebar(ds, att)...)
	blocks = append(blocks, header(ds, spec)...)
	blocks = append(blocks, divider(RegionMain))
	blocks = append(blocks, projects(ds)...)
	blocks = append(blocks, divider(RegionMain))
	blocks = append(blocks, education(ds)...)
	blocks = append(blocks, divider(RegionMain))
	blocks = append(blocks, footer(ds)...)
	return blocks
}

func divider(r Region) Block {
	return Block{Kind: KindDivider, Region: r}
}

func heading(r Region, title string) Block {
	return Block{Kind: KindHeading, Region: r, Title: title}
}

func sidebar(ds *profile.Dataset, att attachment.Outcome) []Block {
	c := ds.Contact()

	langs := make([]Item, 0, len(ds.Languages()))
	for _, l := range ds.Languages() {
		langs = append(langs, Item{Icon: l.Flag, Label: l.Name, Value: l.Label()})
	}

	interests := make([]Item, 0, len(ds.Interests()))
	for _, i := range ds.Interests() {
		interests = append(interests, Item{Icon: "•", Value: i})
	}

	blocks := []Block{
		{Kind: KindAvatar, Region: RegionSidebar, Title: c.Name, Link: c.AvatarURL},
		heading(RegionSidebar, "Contact Info"),
		{Kind: KindList, Region: RegionSidebar, Items: []Item{
			{Icon: "📧", Value: c.Email},
			{Icon: "📍", Value: c.Location},
			{Icon: "🔗", Value: "LinkedIn Profile", Link: c.ProfileLink},
		}},
		divider(RegionSidebar),
		heading(RegionSidebar, "🗣️ Languages"),
		{Kind: KindList, Region: RegionSidebar, Items: langs},
		divider(RegionSidebar),
		heading(RegionSidebar, "♟️ Interests"),
		{Kind: KindList, Region: RegionSidebar, Items: interests},
		divider(RegionSidebar),
	}

	return append(blocks, attachmentBlock(att))
}

func attachmentBlock(att attachment.Outcome) Block {
	if !att.Available {
		return Block{Kind: KindCaption, Region: RegionSidebar, Text: MissingCaption}
	}
	return Block{
		Kind:   KindDownload,
		Region: RegionSidebar,
		Download: &Download{
			Label:     downloadLabel(att.MediaType),
			Filename:  att.Filename,
			MediaType: att.MediaType,
			Size:      att.SizeLabel(),
			URL:       DownloadURL(att.Filename),
		},
	}
}

func header(ds *profile.Dataset, spec chart.Spec) []Block {
	c := ds.Contact()
	h := ds.Headline()

	return []Block{
		{Kind: KindTitle, Region: RegionMain, Row: RowHeader, Text: c.Name},
		{Kind: KindSubtitle, Region: RegionMain, Row: RowHeader, Text: h.Title},
		{Kind: KindInfo, Region: RegionMain, Row: RowHeader, Text: "📅 " + h.Availability},
		{Kind: KindText, Region: RegionMain, Row: RowHeader, Text: h.Summary},
		{Kind: KindHeading, Region: RegionMain, Row: RowHeader, Column: 1, Title: "🛠️ Technical Arsenal"},
		{Kind: KindChart, Region: RegionMain, Row: RowHeader, Column: 1, Chart: &spec},
	}
}

// projects emits the cards two per row.
func projects(ds *profile.Dataset) []Block {
	blocks := []Block{heading(RegionMain, "🚀 Key Projects & Experience")}

	for i, p := range ds.Projects() {
		blocks = append(blocks, Block{
			Kind:   KindCard,
			Region: RegionMain,
			Row:    fmt.Sprintf("projects-%d", i/2+1),
			Column: i % 2,
			Card: &Card{
				Icon:        p.Icon,
				Title:       p.Title,
				Link:        p.Link,
				Period:      p.Period,
				Description: p.Description,
				TagsLabel:   p.TagsLabel,
				Tags:        p.Tags,
				Metric:      p.Metric,
			},
		})
	}
	return blocks
}

func education(ds *profile.Dataset) []Block {
	tabs := make([]Tab, 0, len(profile.Categories))
	for _, c := range profile.Categories {
		tabs = append(tabs, Tab{Category: c, Label: c.TabLabel(), Entries: ds.EducationIn(c)})
	}

	return []Block{
		heading(RegionMain, "🎓 Education"),
		{Kind: KindTabs, Region: RegionMain, Tabs: tabs},
	}
}

func footer(ds *profile.Dataset) []Block {
	s := ds.Supervisor()
	return []Block{
		{Kind: KindFooter, Region: RegionMain, Text: "Built with Go • Based on the CV of " + ds.Contact().Name},
		{
			Kind:   KindNote,
			Region: RegionMain,
			Title:  s.Name,
			Text:   "Dashboard interactif réalisé sous la supervision pédagogique de :",
			Link:   s.ProfileLink,
		},
	}
}
