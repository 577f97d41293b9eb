// Package list implements the standalone inspect-only command.
package list

import (
	"cnoiddev/cmd/cnoiddev/run"
	"cnoiddev/config"
	"cnoiddev/internal/docker"
	"cnoiddev/internal/session"

	"github.com/spf13/cobra"
)

// Cmd builds the list command, the same semantics as `run --list`.
func Cmd() *cobra.Command {
	var (
		imageName string
		imageTag  string
	)

	cmd := &cobra.Command{
		Use:     "list [distro] [version-tag]",
		Aliases: []string{"ls"},
		Short:   "List containers and images matching a selector",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			opts := session.Options{
				Repository: cfg.Repository,
				ImageName:  imageName,
				ImageTag:   imageTag,
				List:       true,
			}
			if len(args) > 0 {
				opts.Distro = args[0]
			}
			if len(args) > 1 {
				opts.Version = args[1]
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			eng, err := docker.NewClient()
			if err != nil {
				return err
			}
			defer eng.Close()

			ctrl := session.NewController(eng, docker.NewInvoker(false, cmd.OutOrStdout()))
			listing, err := ctrl.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			run.PrintListing(cmd, listing)
			return nil
		},
	}

	cmd.Flags().StringVar(&imageName, "image-name", "", "Image repo[:tag] to filter by")
	cmd.Flags().StringVar(&imageTag, "image-tag", "", "Image tag or glob to filter by")
	return cmd
}
