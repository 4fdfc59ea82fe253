package resultmap

import (
	"fmt"
	"os"

	"github.com/arthur-debert/resultmap/internal/version"
	"github.com/arthur-debert/resultmap/pkg/config"
	rmerrors "github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/paths"
	"github.com/arthur-debert/resultmap/pkg/types"
	"github.com/spf13/cobra"
)

func newExpandCmd(g *globals) *cobra.Command {
	var aliases []string

	cmd := &cobra.Command{
		Use:     "expand VALUE",
		Short:   MsgExpandShort,
		Long:    MsgExpandLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(nil)
			if err != nil {
				return err
			}
			res, reg, err := newResolver(cfg)
			if err != nil {
				return err
			}
			if err := registerFlagAliases(reg, aliases); err != nil {
				return err
			}

			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(&types.Expansion{
				Value:    args[0],
				Expanded: res.ResolveAlias(args[0]),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&aliases, "alias", "a", nil, MsgFlagAlias)
	return cmd
}

func newAliasesCmd(g *globals) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:     "aliases",
		Short:   MsgAliasesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(nil)
			if err != nil {
				return err
			}
			reg, err := cfg.BuildRegistry()
			if err != nil {
				return err
			}

			if export {
				data, err := reg.ExportTOML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			renderer, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			return renderer.RenderResult(&types.AliasListing{Entries: reg.Entries()})
		},
	}

	cmd.Flags().BoolVar(&export, "export", false, MsgFlagExport)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	var example, write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if example {
				content = config.GetExampleConfigContent()
			}

			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path, err := writeConfig(content, force)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&example, "example", "e", false, MsgFlagExample)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

// writeConfig saves content as $XDG_CONFIG_HOME/resultmap/config.toml
func writeConfig(content string, force bool) (string, error) {
	path, err := paths.UserConfigFile()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err == nil && !force {
		return "", rmerrors.Newf(rmerrors.ErrInvalidInput, MsgErrConfigExists, path).
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf(MsgErrWriteConfig, err)
	}
	return path, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
