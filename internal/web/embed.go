package web

import "embed"

// content holds the page templates and the stylesheet so the binary has no
// runtime file dependencies besides the optional CV.
//
//go:embed templates/*.html static/*
var content embed.FS
