// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/arthur-debert/resultmap/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.Resolution:
		return r.renderResolution(v)
	case *types.ResolutionBatch:
		for i := range v.Resolutions {
			if err := r.renderResolution(&v.Resolutions[i]); err != nil {
				return err
			}
		}
		return nil
	case *types.Expansion:
		_, err := fmt.Fprintln(r.output, v.Expanded)
		return err
	case *types.AliasListing:
		return r.renderAliases(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// renderResolution prints the single string when one was requested, even
// an empty one,
// otherwise path and value separated by a tab.
func (r *Renderer) renderResolution(res *types.Resolution) error {
	if res.Resolved != nil {
		_, err := fmt.Fprintln(r.output, *res.Resolved)
		return err
	}
	if value, ok := res.Result.Value(); ok {
		_, err := fmt.Fprintf(r.output, "%s\t%s\n", res.Result.Path(), value)
		return err
	}
	_, err := fmt.Fprintln(r.output, res.Result.Path())
	return err
}

func (r *Renderer) renderAliases(listing *types.AliasListing) error {
	tw := tabwriter.NewWriter(r.output, 0, 4, 2, ' ', 0)
	for _, e := range listing.Entries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Target, e.Kind); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
