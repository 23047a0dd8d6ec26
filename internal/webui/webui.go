package webui

import (
	"babel.openfisca.ca/internal/app"
)

// TableCounter reports row counts per storage table
type TableCounter interface {
	TableCounts() (map[string]int, error)
}

// WebUI serves debug pages for a running Application
type WebUI struct {
	*app.Application
	Storage TableCounter
}

func New(application *app.Application, storage TableCounter) *WebUI {
	return &WebUI{Application: application, Storage: storage}
}
