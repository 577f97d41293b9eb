// Package run implements the resolve-and-attach command.
package run

import (
	"fmt"

	"cnoiddev/cmd/cnoiddev/ui"
	"cnoiddev/config"
	"cnoiddev/internal/docker"
	"cnoiddev/internal/session"

	"github.com/spf13/cobra"
)

// Cmd builds the run command. Selector precedence: --container beats
// --image-name/--image-tag beats the positional distro/version pair.
func Cmd() *cobra.Command {
	var (
		containerSel string
		imageName    string
		imageTag     string
		pluginDir    string
		mountOn      bool
		notMount     bool
		forceNew     bool
		listMode     bool
		dryRun       bool
		publish      []string
		passArgs     []string
	)

	cmd := &cobra.Command{
		Use:   "run [distro] [version-tag]",
		Short: "Attach to a dev container, resuming existing work or creating one",
		Long: `Resolve which development container to attach to and get there.

An existing container built from the best-matching image is resumed
(started first when stopped); otherwise a fresh container is created with
the graspPlugin source mounted at ` + session.PluginMountTarget + `.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			opts := session.Options{
				Repository:      cfg.Repository,
				Container:       containerSel,
				ImageName:       imageName,
				ImageTag:        imageTag,
				ForceNew:        forceNew,
				Publish:         publish,
				PassthroughArgs: append(append([]string{}, cfg.RunArgs...), passArgs...),
				List:            listMode,
				DryRun:          dryRun,
				Mount: session.MountPolicy{
					Enabled: mountOn && !notMount,
					Source:  pluginDir,
				},
			}
			if opts.Mount.Source == "" {
				opts.Mount.Source = cfg.PluginDir
			}
			if len(args) > 0 {
				opts.Distro = args[0]
			} else {
				opts.Distro = cfg.Distro
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

			runner := docker.NewInvoker(dryRun, cmd.OutOrStdout())
			ctrl := session.NewController(eng, runner)

			if opts.List {
				listing, err := ctrl.List(cmd.Context(), opts)
				if err != nil {
					return err
				}
				PrintListing(cmd, listing)
				return nil
			}

			att, err := ctrl.ResolveAndAttach(cmd.Context(), opts)
			if err != nil {
				if dryRun {
					// Nothing was attempted; report and exit clean.
					fmt.Fprintln(cmd.OutOrStdout(), ui.WarnMsg("dry-run: %v", err))
					return nil
				}
				return err
			}

			if dryRun {
				return nil
			}
			if att.Created {
				fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("container from %s exited", ui.Accent(att.Image)))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("detached from %s", ui.Accent(att.ContainerName)))
			fmt.Fprint(cmd.OutOrStdout(), ui.KeyValues("  ",
				ui.KV("container", att.ContainerName),
				ui.KV("image", att.Image),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&containerSel, "container", "", "Attach to this container id or name directly")
	cmd.Flags().StringVar(&imageName, "image-name", "", "Image repo[:tag] to resolve against")
	cmd.Flags().StringVar(&imageTag, "image-tag", "", "Image tag or glob (e.g. 1.7-*)")
	cmd.Flags().BoolVar(&forceNew, "new", false, "Always create a fresh container, never resume")
	cmd.Flags().BoolVar(&mountOn, "mount", true, "Bind mount the graspPlugin source (use --mount=false to disable)")
	cmd.Flags().BoolVar(&notMount, "not-mount", false, "Disable the graspPlugin bind mount")
	cmd.Flags().StringVar(&pluginDir, "grasp-plugin", "", "Host graspPlugin directory to mount")
	cmd.Flags().StringArrayVar(&passArgs, "args", nil, "Extra arguments for the new container's entry command (repeatable)")
	cmd.Flags().StringArrayVarP(&publish, "publish", "p", nil, "Publish container ports of new containers (host:container)")
	cmd.Flags().BoolVar(&listMode, "list", false, "List matching containers and images instead of attaching")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print engine commands without executing them")

	return cmd
}

// PrintListing renders the inspect-only output: containers first, then
// images, matching the resolution filter.
func PrintListing(cmd *cobra.Command, l session.Listing) {
	out := cmd.OutOrStdout()

	if len(l.Containers) == 0 {
		fmt.Fprintln(out, ui.Muted("no matching containers"))
	} else {
		rows := make([][]string, len(l.Containers))
		for i, c := range l.Containers {
			rows[i] = []string{shortID(c.ID), c.Name, c.Image, c.RawState}
		}
		fmt.Fprintln(out, ui.Table([]string{"ID", "Name", "Image", "State"}, rows))
	}

	if len(l.Images) == 0 {
		fmt.Fprintln(out, ui.Muted("no matching images"))
		return
	}
	rows := make([][]string, len(l.Images))
	for i, img := range l.Images {
		rows[i] = []string{img.Repository, img.Tag, shortID(img.ID)}
	}
	fmt.Fprintln(out, ui.Table([]string{"Repository", "Tag", "ID"}, rows))
}

func shortID(id string) string {
	const trim = "sha256:"
	if len(id) > len(trim) && id[:len(trim)] == trim {
		id = id[len(trim):]
	}
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
