package resultmap

import (
	_ "embed"
	"strings"
)

const (
	MsgRootShort       = "Resolve web action result paths"
	MsgResolveShort    = "Resolve a result value against an action path"
	MsgExpandShort     = "Expand <alias> references in a value"
	MsgExpandLong      = "Expand replaces every <name> reference in VALUE with its alias target.\nA VALUE without '<' is looked up as a whole alias name."
	MsgAliasesShort    = "List registered aliases and actions"
	MsgGenConfigShort  = "Print a commented starting config file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgVersionFormat = "resultmap %s (commit %s, built %s)\n"
	MsgConfigWritten = "Config written to %s\n"

	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrFormat       = "invalid --format: %w"
	MsgErrAliasFlag    = "invalid --alias %q, expected NAME=TARGET"
	MsgErrBatchLine    = "%s:%d: empty action path"
	MsgErrBatchArgs    = "--batch does not take PATH or VALUE arguments"
	MsgErrConfigExists = "config file %s already exists, use --force to overwrite"
	MsgErrWriteConfig  = "failed to write config: %w"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/resultmap/config.toml)"
	MsgFlagFormat  = "Output format: auto, term, text, json or yaml"
	MsgFlagString  = "Join path and value into one string and expand aliases again"
	MsgFlagPrefix  = "Prefix for relative result paths"
	MsgFlagAlias   = "Register an extra alias NAME=TARGET (repeatable)"
	MsgFlagBatch   = "Read PATH<TAB>VALUE lines from FILE, - for stdin"
	MsgFlagExample = "Print the example config without commenting it out"
	MsgFlagWrite   = "Write the config to the XDG config directory instead of stdout"
	MsgFlagForce   = "Overwrite an existing config file"
	MsgFlagExport  = "Print the merged alias tables as a TOML alias file"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
