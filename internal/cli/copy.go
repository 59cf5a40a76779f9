package cli

import (
	"fmt"

	"github.com/arthur-debert/measurefs/pkg/copier"
	"github.com/arthur-debert/measurefs/pkg/logging"
	"github.com/arthur-debert/measurefs/pkg/rules"
	"github.com/spf13/cobra"
)

func newCopyCmd(g *globals) *cobra.Command {
	var (
		ignore  []string
		parents bool
		verify  bool
		content bool
	)

	cmd := &cobra.Command{
		Use:     "copy SOURCE DESTINATION",
		Short:   MsgCopyShort,
		Long:    MsgCopyLong,
		Example: MsgCopyExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, destination := args[0], args[1]

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("parents") {
				overrides["copy.create_parents"] = parents
			}
			cfg, err := g.loadConfig(source, overrides)
			if err != nil {
				return err
			}

			exclusions := rules.NewExclusionSet(append(cfg.CopyExclusions().Patterns(), ignore...)...)
			c := copier.New(g.fsys,
				copier.WithLogger(logging.GetLogger("copier")),
				copier.WithCreateParents(cfg.Copy.CreateParents),
			)
			res := c.CopyTree(source, destination, copier.Options{Exclude: exclusions.Predicate()})

			r := g.renderer(cmd)
			if err := r.RenderCopy(res); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			if !res.Success {
				return fmt.Errorf(MsgErrCopyFailed, source, res.Err())
			}

			if verify {
				return runVerify(g, cmd, source, destination, exclusions, content)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, MsgFlagIgnore)
	cmd.Flags().BoolVar(&parents, "parents", false, MsgFlagParents)
	cmd.Flags().BoolVar(&verify, "verify", false, MsgFlagVerify)
	cmd.Flags().BoolVar(&content, "content", false, MsgFlagContent)
	return cmd
}

func newVerifyCmd(g *globals) *cobra.Command {
	var (
		ignore  []string
		content bool
	)

	cmd := &cobra.Command{
		Use:     "verify SOURCE DESTINATION",
		Short:   MsgVerifyShort,
		Long:    MsgVerifyLong,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(args[0], nil)
			if err != nil {
				return err
			}
			exclusions := rules.NewExclusionSet(append(cfg.CopyExclusions().Patterns(), ignore...)...)
			return runVerify(g, cmd, args[0], args[1], exclusions, content)
		},
	}

	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, MsgFlagIgnore)
	cmd.Flags().BoolVar(&content, "content", false, MsgFlagContent)
	return cmd
}

func runVerify(g *globals, cmd *cobra.Command, source, destination string, exclusions rules.ExclusionSet, content bool) error {
	verify := copier.Verify
	if content {
		verify = copier.VerifyContent
	}
	diff, err := verify(g.fsys, source, destination, exclusions.Predicate())
	if err != nil {
		return fmt.Errorf(MsgErrVerify, destination, source, err)
	}
	if err := g.renderer(cmd).RenderDiff(diff); err != nil {
		return fmt.Errorf(MsgErrRender, err)
	}
	if !diff.Equal() {
		return fmt.Errorf(MsgErrDiffer, source, destination)
	}
	return nil
}
