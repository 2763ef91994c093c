package merge

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/gtfsmerge/internal/cmd/application"
	"github.com/agentstation/gtfsmerge/pkg/merge"
)

// Flags holds flags for the merge command.
type Flags struct {
	Header         string
	Archives       bool
	SkipHeaderless bool
	TempDir        string
}

// addMergeFlags adds merge-specific flags to the command.
func addMergeFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.Flags().StringVar(&flags.Header, "header", string(merge.HeaderDefault),
		"Reference header per table: long, short or default (first file)")
	cmd.Flags().BoolVar(&flags.Archives, "archives", false,
		"Treat the input folder as a folder of zip archives")
	cmd.Flags().BoolVar(&flags.SkipHeaderless, "skip-headerless", false,
		"Skip tables whose files have no header instead of failing")
	cmd.Flags().StringVar(&flags.TempDir, "temp-dir", "",
		"Where zip archives are expanded (default is the system temp dir)")

	return flags
}

// resolve fills flags the user did not set from configured defaults. An
// unrecognized header mode is reported and treated as default.
func (f *Flags) resolve(cmd *cobra.Command, defaults application.MergeDefaults, logger *zerolog.Logger) {
	if !cmd.Flags().Changed("header") && defaults.Header != "" {
		f.Header = defaults.Header
	}
	if !cmd.Flags().Changed("archives") {
		f.Archives = defaults.Archives
	}
	if !cmd.Flags().Changed("skip-headerless") {
		f.SkipHeaderless = defaults.SkipHeaderless
	}

	switch merge.HeaderMode(strings.ToLower(strings.TrimSpace(f.Header))) {
	case merge.HeaderLong, merge.HeaderShort, merge.HeaderDefault, "":
	default:
		logger.Warn().
			Str("header", f.Header).
			Msg("Unknown header mode, using default (expected long, short or default)")
		f.Header = string(merge.HeaderDefault)
	}
}

// mergeOptions converts flags to merge options.
func (f *Flags) mergeOptions() []merge.Option {
	return []merge.Option{
		merge.WithHeaderMode(merge.ParseHeaderMode(f.Header)),
		merge.WithSkipHeaderless(f.SkipHeaderless),
	}
}
