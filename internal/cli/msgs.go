package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "List, copy and stage measure bundles"
	MsgListShort       = "List the entries of a directory"
	MsgCopyShort       = "Copy a directory tree into a new destination"
	MsgValidateShort   = "Check a bundle against the allow-list"
	MsgStageShort      = "Copy only the approved content of a bundle"
	MsgStageLong       = "Stage copies the entries of SOURCE the allow-list accepts into DESTINATION, which must not exist.\nEntries in stage.ignore and copy.ignore are left out as well."
	MsgInfoShort       = "Describe a bundle from its measure.xml"
	MsgInfoLong        = "Info reads ROOT/measure.xml and reports the files it lists that are absent."
	MsgVerifyShort     = "Compare two trees file by file"
	MsgVerifyLong      = "Verify compares the regular files of SOURCE and DESTINATION by relative entry and size.\nWith --content, files of equal size are also compared by SHA256 checksum."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Status messages
	MsgVersionFormat = "measurefs version %s\n  commit: %s\n  built:  %s\n"
	MsgManWritten    = "Man pages written to %s"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrOutputFormat = "invalid --output: %w"
	MsgErrList         = "failed to list %s: %w"
	MsgErrValidate     = "failed to validate %s: %w"
	MsgErrInfo         = "failed to read bundle %s: %w"
	MsgErrVerify       = "failed to verify %s against %s: %w"
	MsgErrRender       = "failed to render output: %w"
	MsgErrMan          = "failed to generate man pages: %w"
	MsgErrCopyFailed   = "copy of %s failed: %w"
	MsgErrInvalid      = "%s has %d disallowed entries"
	MsgErrDiffer       = "%s and %s differ"
	MsgErrMissing      = "%d files listed in %s are missing"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagOutput    = "Output format: auto, text, term, json, yaml or toml"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/measurefs/config.toml)"
	MsgFlagRecursive = "List regular files at any depth"
	MsgFlagExclude   = "Relative entry to leave out (repeatable)"
	MsgFlagSorted    = "Sort entries before printing"
	MsgFlagIgnore    = "Relative entry to leave out of the copy (repeatable)"
	MsgFlagParents   = "Create missing parents of DESTINATION"
	MsgFlagVerify    = "Compare DESTINATION with SOURCE after copying"
	MsgFlagContent   = "Compare file checksums as well as sizes"

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(measurefs completion bash)

Zsh:
  $ measurefs completion zsh > "${fpath[1]}/_measurefs"

Fish:
  $ measurefs completion fish > ~/.config/fish/completions/measurefs.fish

PowerShell:
  PS> measurefs completion powershell | Out-String | Invoke-Expression`
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/copy-long.txt
	msgCopyLongRaw string
	MsgCopyLong    = strings.TrimSpace(msgCopyLongRaw)

	//go:embed msgs/copy-example.txt
	msgCopyExampleRaw string
	MsgCopyExample    = strings.TrimRight(msgCopyExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)
)

var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
