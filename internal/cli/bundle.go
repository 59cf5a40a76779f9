package cli

import (
	"fmt"

	"github.com/arthur-debert/measurefs/pkg/bundle"
	"github.com/arthur-debert/measurefs/pkg/copier"
	"github.com/arthur-debert/measurefs/pkg/logging"
	"github.com/spf13/cobra"
)

func newValidateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "validate ROOT",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			cfg, err := g.loadConfig(root, nil)
			if err != nil {
				return err
			}

			report, err := bundle.Validate(g.fsys, root, cfg.Policy())
			if err != nil {
				return fmt.Errorf(MsgErrValidate, root, err)
			}
			if err := g.renderer(cmd).RenderReport(report); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			if !report.Valid() {
				return fmt.Errorf(MsgErrInvalid, root, len(report.Disallowed))
			}
			return nil
		},
	}
}

func newStageCmd(g *globals) *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:     "stage SOURCE DESTINATION",
		Short:   MsgStageShort,
		Long:    MsgStageLong,
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

			c := copier.New(g.fsys,
				copier.WithLogger(logging.GetLogger("stage")),
				copier.WithCreateParents(cfg.Copy.CreateParents),
			)
			res := bundle.Stage(c, source, destination, cfg.Policy(), cfg.StageExclusions())
			if err := g.renderer(cmd).RenderCopy(res); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			if !res.Success {
				return fmt.Errorf(MsgErrCopyFailed, source, res.Err())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&parents, "parents", false, MsgFlagParents)
	return cmd
}

func newInfoCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "info ROOT",
		Short:   MsgInfoShort,
		Long:    MsgInfoLong,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			m, err := bundle.ReadManifest(g.fsys, root)
			if err != nil {
				return fmt.Errorf(MsgErrInfo, root, err)
			}
			missing := bundle.CheckManifest(g.fsys, root, m)
			if err := g.renderer(cmd).RenderInfo(m, missing); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}
			if len(missing) > 0 {
				return fmt.Errorf(MsgErrMissing, len(missing), bundle.ManifestName)
			}
			return nil
		},
	}
}
