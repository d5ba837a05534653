package handler

import (
	"fmt"
	"html/template"
	"time"
)

// TemplateFuncs are the helpers the page templates use to print the
// nullable columns (partial fee schedules, optional dates).
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"money": func(f *float64) string {
			if f == nil {
				return ""
			}
			return fmt.Sprintf("%.2f", *f)
		},
		"date": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"num": func(n *int) string {
			if n == nil {
				return ""
			}
			return fmt.Sprintf("%d", *n)
		},
	}
}
