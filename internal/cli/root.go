// Package cli provides the cobra command tree and the viper config layer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const rootLongDescription = `Ervin consolidates tblastn hit batches. Overlapping, contained and
adjacent hits on the same scaffold, frame and strand are merged into one
non-redundant set per scaffold.`

const consolidateLongDescription = `Fold the given hit batches left to right and write the consolidated hits.

Each batch is a tab-separated file of ten fields:
  source_id scaffold_id scaffold_length start end e_value align_len qseq hseq frame
Files ending in .gz are decompressed and "-" reads stdin. Globs are expanded.`

// ConsolidateFunc runs the consolidate command.
type ConsolidateFunc func(ctx context.Context, cmd *cobra.Command, o Options) error

// ExitError carries a process exit code out of a command.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// Hooks are called by the command tree.
type Hooks struct {
	Consolidate ConsolidateFunc
}

// NewRootCommand builds the ervin command tree on v.
func NewRootCommand(v *viper.Viper, hooks Hooks) *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "ervin",
		Short:         "Consolidate tblastn alignment hits",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := ReadConfig(v, configPath); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
			return nil
		},
	}
	configureRootFlags(root, v, &configPath)

	root.AddCommand(newConsolidateCmd(v, hooks.Consolidate))
	root.AddCommand(newInitCmd(v))
	root.AddCommand(newVersionCmd())
	return root
}

func newConsolidateCmd(v *viper.Viper, run ConsolidateFunc) *cobra.Command {
	var (
		manifest string
		noHeader bool
	)
	cmd := &cobra.Command{
		Use:   "consolidate [flags] <batch.tsv>...",
		Short: "Merge redundant hits across batches",
		Long:  consolidateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if run == nil {
				return errors.New("consolidate is not wired")
			}
			o, err := OptionsFromConfig(v, args, manifest)
			if err != nil {
				return err
			}
			if noHeader {
				o.Header = false
			}
			return run(cmd.Context(), cmd, o)
		},
	}
	configureConsolidateFlags(cmd, v, &manifest, &noHeader)
	return cmd
}

func newInitCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default " + configFileName + " configuration file",
		Long: `Create an ` + configFileName + ` in the current working directory populated with the
current defaults so it can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := filepath.Join(configFolderPath, configFileName)
			if err := v.SafeWriteConfigAs(target); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			cmd.Printf("wrote %s\n", target)
			return nil
		},
	}
}
