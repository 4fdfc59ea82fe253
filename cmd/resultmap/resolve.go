package resultmap

import (
	"bufio"
	"io"
	"os"
	"strings"

	rmerrors "github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/registry"
	"github.com/arthur-debert/resultmap/pkg/resolver"
	"github.com/arthur-debert/resultmap/pkg/types"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	asString bool
	prefix   string
	aliases  []string
	batch    string
}

func newResolveCmd(g *globals) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:     "resolve PATH [VALUE]",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.batch != "" {
				if len(args) > 0 {
					return rmerrors.New(rmerrors.ErrInvalidInput, MsgErrBatchArgs)
				}
				return nil
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("prefix") {
				overrides["results.prefix"] = opts.prefix
			}

			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}
			res, reg, err := newResolver(cfg)
			if err != nil {
				return err
			}
			if err := registerFlagAliases(reg, opts.aliases); err != nil {
				return err
			}

			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}

			if opts.batch != "" {
				descriptors, err := readBatch(cmd, opts.batch)
				if err != nil {
					return err
				}
				return renderer.RenderResult(resolveBatch(res, descriptors, opts.asString))
			}

			d := resolver.Descriptor{Path: args[0]}
			if len(args) == 2 {
				d.Value = args[1]
			}
			resolution := resolveOne(res, d, opts.asString)
			return renderer.RenderResult(&resolution)
		},
	}

	cmd.Flags().BoolVarP(&opts.asString, "string", "s", false, MsgFlagString)
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", MsgFlagPrefix)
	cmd.Flags().StringArrayVarP(&opts.aliases, "alias", "a", nil, MsgFlagAlias)
	cmd.Flags().StringVarP(&opts.batch, "batch", "b", "", MsgFlagBatch)

	return cmd
}

func resolveOne(res *resolver.Resolver, d resolver.Descriptor, asString bool) types.Resolution {
	resolution := types.Resolution{
		Input:  d,
		Result: res.ResolveResultPath(d.Path, d.Value),
	}
	if asString {
		resolution.SetResolved(res.ResolveResultPathString(d.Path, d.Value))
	}
	return resolution
}

// resolveBatch resolves descriptors in order. The string form reuses each
// result and only adds the final alias pass.
func resolveBatch(res *resolver.Resolver, descriptors []resolver.Descriptor, asString bool) *types.ResolutionBatch {
	results := res.ResolveAll(descriptors)
	batch := &types.ResolutionBatch{Resolutions: make([]types.Resolution, len(results))}
	for i, result := range results {
		batch.Resolutions[i] = types.Resolution{Input: descriptors[i], Result: result}
		if asString {
			batch.Resolutions[i].SetResolved(res.ResolveAlias(result.PathValue()))
		}
	}
	return batch
}

// registerFlagAliases registers NAME=TARGET pairs given on the command line
func registerFlagAliases(reg *registry.Registry, pairs []string) error {
	for _, pair := range pairs {
		name, target, ok := strings.Cut(pair, "=")
		if !ok {
			return rmerrors.Newf(rmerrors.ErrInvalidInput, MsgErrAliasFlag, pair)
		}
		if err := reg.RegisterAlias(name, target); err != nil {
			return err
		}
	}
	return nil
}

// readBatch reads PATH<TAB>VALUE descriptors, one per line
func readBatch(cmd *cobra.Command, source string) ([]resolver.Descriptor, error) {
	var r io.Reader
	if source == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, rmerrors.Wrapf(err, rmerrors.ErrFileAccess, "cannot open batch file %s", source).
				WithDetail("path", source)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var descriptors []resolver.Descriptor
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		path, value, _ := strings.Cut(line, "\t")
		if path == "" {
			return nil, rmerrors.Newf(rmerrors.ErrInvalidInput, MsgErrBatchLine, source, lineNo).
				WithDetail("line", lineNo)
		}
		descriptors = append(descriptors, resolver.Descriptor{Path: path, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, rmerrors.Wrapf(err, rmerrors.ErrFileAccess, "failed to read batch file %s", source)
	}
	return descriptors, nil
}
