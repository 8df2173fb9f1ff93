package main

import (
	"errors"

	"github.com/spf13/cobra"

	"rvpack/builder"
	"rvpack/targets"
)

var (
	buildOpts = struct {
		manifest string
		target   string
		all      bool
		outDir   string
		archive  string
		flags    []string
		work     bool
	}{}

	buildCmd = &cobra.Command{
		Use:   "build [sources]",
		Short: "Assemble sources and pack them into a fresh static archive",
		Long: "Remove stale archives from the output directory, assemble each source\n" +
			"with the target's -march/-mabi profile, insert the objects into\n" +
			"<triple>.a with a symbol index, and delete the intermediate objects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, found, err := builder.LoadManifest(buildOpts.manifest)
			if err != nil {
				return err
			}
			if !found && cmd.Flags().Changed("manifest") {
				return errors.New("manifest not found: " + buildOpts.manifest)
			}

			opts := builder.Options{
				Sources:     builder.DefaultSources,
				OutputDir:   builder.DefaultOutputDir,
				Target:      targets.Default(),
				Environment: builder.Environment(),
				KeepObjects: buildOpts.work,
			}

			// Manifest over defaults, flags over the manifest.
			var requested []string
			if found {
				if len(manifest.Sources) != 0 {
					opts.Sources = manifest.Sources
				}
				if len(manifest.OutputDir) != 0 {
					opts.OutputDir = manifest.OutputDir
				}
				opts.Archive = manifest.Archive
				opts.ExtraFlags = manifest.Flags
				requested = manifest.Targets
			}
			if len(args) != 0 {
				opts.Sources = args
			}
			if cmd.Flags().Changed("out-dir") {
				opts.OutputDir = buildOpts.outDir
			}
			if cmd.Flags().Changed("output") {
				opts.Archive = buildOpts.archive
			}
			if len(buildOpts.flags) != 0 {
				opts.ExtraFlags = append(opts.ExtraFlags, buildOpts.flags...)
			}
			if cmd.Flags().Changed("target") {
				requested = []string{buildOpts.target}
			}

			if buildOpts.all {
				return builder.BuildAll(cmd.Context(), opts)
			}
			if len(requested) == 0 {
				return builder.Build(cmd.Context(), opts)
			}

			var list targets.Targets
			for _, name := range requested {
				target, err := targets.All().FindByName(name)
				if err != nil {
					return err
				}
				list = append(list, target)
			}
			return builder.BuildTargets(cmd.Context(), opts, list)
		},
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildOpts.manifest, "manifest", "f", builder.DefaultManifest, "build manifest file")
	buildCmd.Flags().StringVarP(&buildOpts.target, "target", "t", "", "target triple or alias (default "+targets.Default().Triple+")")
	buildCmd.Flags().BoolVar(&buildOpts.all, "all", false, "build an archive for every known target")
	buildCmd.Flags().StringVar(&buildOpts.outDir, "out-dir", builder.DefaultOutputDir, "output directory")
	buildCmd.Flags().StringVarP(&buildOpts.archive, "output", "o", "", "archive file name (default <triple>.a)")
	buildCmd.Flags().StringArrayVar(&buildOpts.flags, "asflag", nil, "extra assembler flag (repeatable)")
	buildCmd.Flags().BoolVar(&buildOpts.work, "work", false, "keep intermediate object files")

	rootCmd.AddCommand(buildCmd)
}
