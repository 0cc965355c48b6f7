package catalog

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-charstate/internal/game"
)

// templateFuncs provides utility functions for description templates.
var templateFuncs = sprig.TxtFuncMap()

// descriptionData is what a description template sees: the effect fields
// (.Kind, .Amount, .Stat) plus the item's name and quantity.
type descriptionData struct {
	game.Effect
	Name     string
	Quantity int
}

func parseDescription(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// expandDescription expands a description template for a single item.
func expandDescription(tmplStr string, data descriptionData) (string, error) {
	// Quick check: if no template markers, return as-is
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}

	tmpl, err := parseDescription(tmplStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
