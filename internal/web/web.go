// Package web serves the single embedded UI page: a goal textbox wired to
// the coach endpoint, with panes for the answer, the tool-call log and the
// reasoning summary.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed index.html
var files embed.FS

// Handler renders the UI page pointing at the coach endpoint under the
// given API prefix. The page is rendered once at startup.
func Handler(apiPrefix string) (http.HandlerFunc, error) {
	tmpl, err := template.ParseFS(files, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse ui template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string{"CoachURL": apiPrefix + "/coach"}); err != nil {
		return nil, fmt.Errorf("render ui template: %w", err)
	}
	page := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	}, nil
}
