package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/branched-services/go-unique/internal/config"
	"github.com/branched-services/go-unique/internal/manifest"
	"github.com/branched-services/go-unique/internal/registry"
	"github.com/branched-services/go-unique/internal/version"
)

var bumpFlags = []struct {
	name  string
	bump  version.Bump
	usage string
}{
	{"beta", version.BumpPrerelease, "write the next pre-release version"},
	{"patch", version.BumpPatch, "write the next patch version"},
	{"minor", version.BumpMinor, "write the next minor version"},
	{"major", version.BumpMajor, "write the next major version"},
}

func newBumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Compute the next package versions from the registry and optionally write one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := version.BumpNone
			for _, f := range bumpFlags {
				if on, _ := cmd.Flags().GetBool(f.name); on {
					selected = f.bump
				}
			}
			return runBump(cmd, a, selected)
		},
	}

	flags := cmd.Flags()
	for _, f := range bumpFlags {
		flags.Bool(f.name, false, f.usage)
	}
	cmd.MarkFlagsMutuallyExclusive("beta", "patch", "minor", "major")

	flags.String("manifest", "package.json", "path to the package manifest")
	flags.String("registry", registry.DefaultURL, "package registry URL")
	flags.String("preid", version.DefaultPreID, "pre-release label")
	bindFlags(a.v, flags, map[string]string{
		config.ManifestKey: "manifest",
		config.RegistryKey: "registry",
		config.PreIDKey:    "preid",
	})
	return cmd
}

func runBump(cmd *cobra.Command, a *app, selected version.Bump) error {
	cfg, err := config.GetBump(a.v)
	if err != nil {
		return err
	}

	m, err := manifest.Load(a.fs, cfg.Manifest)
	if err != nil {
		return err
	}

	client := registry.New(cfg.Registry, registry.WithHTTPClient(a.http), registry.WithLogger(a.log))
	published, err := client.Versions(cmd.Context(), m.Name())
	if err != nil {
		return err
	}

	plan := version.NewPlan(published, cfg.PreID)
	current := "none"
	if plan.CurrentPrerelease != nil {
		current = plan.CurrentPrerelease.String()
	}
	a.log.Info("versions",
		zap.String("package", m.Name()),
		zap.String("manifest", m.Version()),
		zap.String("release", plan.CurrentRelease.String()),
		zap.String("prerelease", current),
	)
	a.log.Info("next versions",
		zap.String("prerelease", plan.NextPrerelease.String()),
		zap.String("patch", plan.NextPatch.String()),
		zap.String("minor", plan.NextMinor.String()),
		zap.String("major", plan.NextMajor.String()),
	)

	if selected == version.BumpNone {
		return nil
	}

	next, err := plan.Select(selected)
	if err != nil {
		return err
	}
	m.SetVersion(next.String())
	if err := m.Save(a.fs, cfg.Manifest); err != nil {
		return err
	}

	a.log.Info("manifest updated",
		zap.String("path", cfg.Manifest),
		zap.Stringer("bump", selected),
		zap.String("version", next.String()),
	)
	return nil
}
