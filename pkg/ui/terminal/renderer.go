// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/resultmap/pkg/registry"
	"github.com/arthur-debert/resultmap/pkg/types"
	"github.com/arthur-debert/resultmap/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
// tables
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Resolution:
		return r.renderResolution(v)
	case *types.ResolutionBatch:
		for i := range v.Resolutions {
			if i > 0 {
				if _, err := fmt.Fprintln(r.output); err != nil {
					return err
				}
			}
			if err := r.renderResolution(&v.Resolutions[i]); err != nil {
				return err
			}
		}
		return nil
	case *types.Expansion:
		return r.line("value", styles.GetStyle("Muted").Render(v.Value),
			"expands", styles.GetStyle("Path").Render(v.Expanded))
	case *types.AliasListing:
		return r.renderAliases(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderResolution(res *types.Resolution) error {
	label := styles.GetStyle("Label")
	path := styles.GetStyle("Path")

	input := res.Input.Path
	if res.Input.Value != "" {
		input += "  " + styles.GetStyle("Value").Render(res.Input.Value)
	}

	value := styles.GetStyle("Absent").Render("(none)")
	if v, ok := res.Result.Value(); ok {
		value = styles.GetStyle("Value").Render(v)
	}

	lines := []string{
		label.Render("input") + styles.GetStyle("Muted").Render(input),
		label.Render("path") + path.Render(res.Result.Path()),
		label.Render("value") + value,
	}
	if res.Resolved != nil {
		lines = append(lines, label.Render("string")+path.Render(*res.Resolved))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(r.output, l); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) line(k1, v1, k2, v2 string) error {
	label := styles.GetStyle("Label")
	_, err := fmt.Fprintf(r.output, "%s%s\n%s%s\n", label.Render(k1), v1, label.Render(k2), v2)
	return err
}

func (r *Renderer) renderAliases(listing *types.AliasListing) error {
	if len(listing.Entries) == 0 {
		return r.RenderMessage("No aliases registered.")
	}

	data := pterm.TableData{{"Name", "Target", "Kind"}}
	for _, e := range listing.Entries {
		kind := string(e.Kind)
		if e.Kind == registry.KindAction {
			kind = styles.GetStyle("Muted").Render(kind)
		}
		data = append(data, []string{e.Name, styles.GetStyle("Path").Render(e.Target), kind})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render alias table: %w", err)
	}
	_, err = fmt.Fprintln(r.output, table)
	return err
}

// RenderError renders an error with the Error style
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
