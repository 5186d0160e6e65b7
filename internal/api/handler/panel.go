package handler

import (
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/analytics"
	"github.com/red-jen/Mod-lisation-et-Analyse-de-Donn-es-Footballistiques/internal/chart"
)

// Page is the response of every page endpoint. Pages always answer 200;
// failures live in the panels.
type Page struct {
	Page   string  `json:"page"`
	Filter string  `json:"filter"`
	Notice string  `json:"notice,omitempty"`
	Panels []Panel `json:"panels"`
}

// Panel is one block of a page: a table, a chart, or headline metrics. A
// non-empty Diagnostic means the data behind it could not be loaded and the
// panel should render as a placeholder.
type Panel struct {
	Title      string            `json:"title"`
	Table      any               `json:"table,omitempty"`
	Metrics    any               `json:"metrics,omitempty"`
	Chart      *chart.Descriptor `json:"chart,omitempty"`
	Diagnostic string            `json:"diagnostic,omitempty"`
}

func tablePanel[T any](title string, res analytics.Result[T]) Panel {
	rows := res.Rows
	if rows == nil {
		rows = []T{}
	}
	return Panel{Title: title, Table: rows, Diagnostic: res.Diagnostic()}
}

// chartPanel swaps the chart for a placeholder carrying the diagnostic.
func chartPanel(d chart.Descriptor, diagnostic string) Panel {
	if diagnostic != "" {
		d = chart.Placeholder(d.Type, d.Title, diagnostic)
	}
	return Panel{Title: d.Title, Chart: &d, Diagnostic: diagnostic}
}

func metricsPanel(title string, metrics any, diagnostic string) Panel {
	p := Panel{Title: title, Diagnostic: diagnostic}
	if diagnostic == "" {
		p.Metrics = metrics
	}
	return p
}

// firstDiagnostic returns the first non-empty diagnostic.
func firstDiagnostic(diags ...string) string {
	for _, d := range diags {
		if d != "" {
			return d
		}
	}
	return ""
}
