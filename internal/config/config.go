package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultAttachment is the CV file looked up next to the executable.
	DefaultAttachment = "Clement_JANUSZ_CV.pdf"

	DefaultTitle = "Clément JANUSZ | Data Analyst BI"
	DefaultIcon  = "📊"
)

var ErrInvalidOption = errors.New("invalid page option")

// Layout is the page width mode.
type Layout string

const (
	LayoutNarrow Layout = "narrow"
	LayoutWide   Layout = "wide"
)

// SidebarState is the initial state of the sidebar panel.
type SidebarState string

const (
	SidebarExpanded  SidebarState = "expanded"
	SidebarCollapsed SidebarState = "collapsed"
)

// Page is handed to the templates once per request.
type Page struct {
	Title        string       `json:"title" yaml:"title"`
	Icon         string       `json:"icon" yaml:"icon"`
	Layout       Layout       `json:"layout" yaml:"layout"`
	SidebarState SidebarState `json:"initial_sidebar_state" yaml:"initial_sidebar_state"`
}

// DefaultPage mirrors the dashboard's published settings.
func DefaultPage() Page {
	return Page{
		Title:        DefaultTitle,
		Icon:         DefaultIcon,
		Layout:       LayoutWide,
		SidebarState: SidebarExpanded,
	}
}

// ParseLayout accepts "narrow" or "wide".
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(s); l {
	case LayoutNarrow, LayoutWide:
		return l, nil
	default:
		return "", fmt.Errorf("%w: layout %q, must be narrow or wide", ErrInvalidOption, s)
	}
}

// ParseSidebarState accepts "expanded" or "collapsed".
func ParseSidebarState(s string) (SidebarState, error) {
	switch st := SidebarState(s); st {
	case SidebarExpanded, SidebarCollapsed:
		return st, nil
	default:
		return "", fmt.Errorf("%w: sidebar state %q, must be expanded or collapsed", ErrInvalidOption, s)
	}
}

// ExecutableDir returns the directory of the running binary, falling back to
// the working directory when it cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
