// Package report renders a text summary of a recoloring with pongo2.
package report

import (
	"fmt"
	"github.com/flosch/pongo2"
	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/recolor/palette"
	"github.com/mmuldo/recolor/recolor"
	"io"
)

// Default is the template used when no custom template is configured.
const Default = `method: {{ method }}
{% for row in rows %}{{ row.Name }}: target {{ row.Target|default:"-" }} reference {{ row.Reference|default:"-" }}{% if row.Matched %} (matched){% endif %}
{% endfor %}factor: {{ factor.0|floatformat:4 }} {{ factor.1|floatformat:4 }} {{ factor.2|floatformat:4 }}
`

// Row is one palette name in the report.
type Row struct {
	Name      string
	Target    string
	Reference string
	Matched   bool
}

// Rows lines up the target and reference palettes by name.
func Rows(names []string, target, reference palette.Palette) []Row {
	rows := make([]Row, 0, len(names))
	for _, n := range names {
		row := Row{Name: n}
		t, inTarget := target[n]
		if inTarget {
			row.Target = t.Hex()
		}
		r, inReference := reference[n]
		if inReference {
			row.Reference = r.Hex()
		}
		row.Matched = inTarget && inReference
		rows = append(rows, row)
	}
	return rows
}

// Renderer executes a report template.
type Renderer struct {
	tpl *pongo2.Template
}

// New compiles the template in path, or Default if path is empty.
func New(path string) (*Renderer, error) {
	if path == "" {
		tpl, e := pongo2.FromString(Default)
		if e != nil {
			return nil, e
		}
		return &Renderer{tpl: tpl}, nil
	}

	path, e := homedir.Expand(path)
	if e != nil {
		return nil, e
	}
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return nil, fmt.Errorf("failed to load report template: %w", e)
	}
	return &Renderer{tpl: tpl}, nil
}

// Render writes the report for res to w.
func (r *Renderer) Render(w io.Writer, res *recolor.Result, names []string, target, reference palette.Palette) error {
	ctxt := pongo2.Context{
		"method": string(res.Method),
		"rows":   Rows(names, target, reference),
		"factor": []float64{res.Factor[0], res.Factor[1], res.Factor[2]},
	}
	return r.tpl.ExecuteWriter(ctxt, w)
}
