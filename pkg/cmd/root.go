package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/christmastree-hook/pkg/config"
	"github.com/siyuan-infoblox/christmastree-hook/pkg/errors"
	"github.com/siyuan-infoblox/christmastree-hook/pkg/formatter"
	"github.com/siyuan-infoblox/christmastree-hook/pkg/utils"
	"github.com/siyuan-infoblox/christmastree-hook/pkg/version"
)

const (
	UseDescription   = "christmastree [flags] [FILE...]"
	ShortDescription = "Check that Python import blocks are sorted by line length"
	LongDescription  = `christmastree is a pre-commit hook that keeps Python import blocks in shape.

Every contiguous run of lines starting with "import " or "from " must be:
1. free of blank lines, except one after every N-th import (--group-size)
2. ordered with "from __future__ import" lines first
3. ordered by line length, shortest first, keeping the original order on ties

Every file must also start with the marker line ` + "`" + formatter.Marker + "`" + `.

Without --fix the tool only reports. With --fix it rewrites the files and
still exits 1, so the edits have to be reviewed and staged.

Settings can be stored in ` + config.FileName + ` (group_size, extensions,
exclude), looked up from the working directory upwards.`
)

// ErrNotConforming is returned when at least one file needs changes
var ErrNotConforming = stderrors.New("files are not conforming")

type options struct {
	fix         bool
	groupSize   int
	configPath  string
	exclude     []string
	showVersion bool
}

func newRootCmd(moduleVersion string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   UseDescription,
		Short: ShortDescription,
		Long:  LongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, moduleVersion, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().BoolVar(&opts.fix, "fix", false, "Rewrite files to enforce ordering")
	rootCmd.Flags().IntVar(&opts.groupSize, "group-size", config.DefaultGroupSize, "Blank line after every N imports (0 or less disables blank lines)")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a config file (default: "+config.FileName+" found from the working directory upwards)")
	rootCmd.Flags().StringSliceVar(&opts.exclude, "exclude", []string{}, "Glob patterns of files to skip, added to the config file's exclude list")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, moduleVersion string, args []string) error {
	if opts.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get(moduleVersion))
		return nil
	}

	cfg, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("group-size") {
		cfg.GroupSize = opts.groupSize
	}
	cfg.Exclude = append(cfg.Exclude, opts.exclude...)
	if err := utils.ValidatePatterns(cfg.Exclude); err != nil {
		return err
	}

	g := formatter.New(formatter.FormatterConfig{
		Fix:        opts.fix,
		GroupSize:  cfg.GroupSize,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
		Out:        cmd.OutOrStdout(),
	})
	summary, err := g.ProcessFiles(args)
	if err != nil {
		return err
	}
	if !summary.OK() {
		return fmt.Errorf(errors.ErrMsgFilesNotConforming+": %w", summary.NonConforming, ErrNotConforming)
	}
	return nil
}

// Execute runs the root command. Any returned error means exit status 1;
// errors other than ErrNotConforming are printed to stderr.
func Execute(moduleVersion string) error {
	err := newRootCmd(moduleVersion).Execute()
	if err != nil && !stderrors.Is(err, ErrNotConforming) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
