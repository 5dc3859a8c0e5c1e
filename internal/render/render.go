// Package render turns a theme scheme into the text formats consumed by the
// status bar and the chat client.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/setanarut/m3theme/internal/material"
)

// ErrMissingRole means the scheme lacks a role of the role table.
var ErrMissingRole = errors.New("missing color role")

// Format describes one output syntax. Line is a fmt pattern receiving the
// role name and its "#RRGGBB" value. Header, when set, receives the source
// color.
type Format struct {
	Name   string
	Header string
	Open   string
	Line   string
	Close  string
}

var (
	// StyleSheet is a :root block of custom properties.
	StyleSheet = Format{
		Name:   "stylesheet",
		Header: "# Source: %s\n",
		Open:   ":root {\n",
		Line:   "  --%s: %s;\n",
		Close:  "}\n",
	}

	// StatusBar is a flat list of GTK @define-color statements.
	StatusBar = Format{
		Name: "statusbar",
		Line: "@define-color %s %s;\n",
	}
)

// Render writes the dark or light scheme of t in format f. Roles are emitted
// in role table order.
func Render(f Format, t material.Theme, isDark bool) (string, error) {
	scheme := t.Scheme(isDark)

	var b strings.Builder
	if f.Header != "" {
		fmt.Fprintf(&b, f.Header, t.Source.Hex())
	}
	b.WriteString(f.Open)
	for _, role := range material.Roles() {
		c, ok := scheme[role]
		if !ok {
			return "", fmt.Errorf("%w: %q not in %s scheme", ErrMissingRole, role, schemeName(isDark))
		}
		fmt.Fprintf(&b, f.Line, role, c.Hex())
	}
	b.WriteString(f.Close)
	return b.String(), nil
}

func schemeName(isDark bool) string {
	if isDark {
		return "dark"
	}
	return "light"
}
