package cli

import (
	"fmt"

	"github.com/arthur-debert/measurefs/pkg/enumerate"
	"github.com/arthur-debert/measurefs/pkg/rules"
	"github.com/spf13/cobra"
)

func newListCmd(g *globals) *cobra.Command {
	var (
		recursive bool
		sorted    bool
		exclude   []string
	)

	cmd := &cobra.Command{
		Use:     "list ROOT",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			cfg, err := g.loadConfig(root, nil)
			if err != nil {
				return err
			}

			patterns := append(cfg.EnumerateExclusions().Patterns(), exclude...)
			opts := enumerate.Options{
				Recursive: recursive,
				Exclude:   rules.NewExclusionSet(patterns...).Predicate(),
			}

			var entries []string
			if sorted {
				entries, err = enumerate.Sorted(g.fsys, root, opts)
			} else {
				entries, err = enumerate.Collect(g.fsys, root, opts)
			}
			if err != nil {
				return fmt.Errorf(MsgErrList, root, err)
			}

			if err := g.renderer(cmd).RenderEntries(root, entries); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, MsgFlagRecursive)
	cmd.Flags().BoolVar(&sorted, "sorted", false, MsgFlagSorted)
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, MsgFlagExclude)
	return cmd
}
