package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/branched-services/go-unique/internal/config"
	"github.com/branched-services/go-unique/internal/github"
	"github.com/branched-services/go-unique/internal/pipeline"
	"github.com/branched-services/go-unique/internal/solc"
)

func newInterfacesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interfaces",
		Short: "Download Solidity interfaces, compile them and generate Go bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetInterfaces(a.v)
			if err != nil {
				return err
			}

			downloader := a.downloader
			if downloader == nil {
				downloader = github.New(
					github.WithAPIURL(cfg.APIURL),
					github.WithRawURL(cfg.RawURL),
					github.WithUserAgent(cfg.UserAgent),
					github.WithHTTPClient(a.http),
					github.WithLogger(a.log),
				)
			}
			compiler := a.compiler
			if compiler == nil {
				exe := solc.NewExec(cfg.Compiler)
				if _, err := exe.LookPath(); err != nil {
					return err
				}
				compiler = exe
			}

			opts := []pipeline.Option{
				pipeline.WithFs(a.fs),
				pipeline.WithDownloader(downloader),
				pipeline.WithCompiler(compiler),
				pipeline.WithLogger(a.log),
			}
			if a.generator != nil {
				opts = append(opts, pipeline.WithGenerator(a.generator))
			}

			report, err := pipeline.New(cfg.Pipeline(), opts...).Run(cmd.Context())
			if err != nil {
				return err
			}
			a.log.Info("interfaces generated",
				zap.Int("stubs", len(report.Stubs)),
				zap.Strings("abis", report.ABIs),
				zap.Strings("bindings", report.Bindings),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("root", ".", "data root the working directories are created under")
	flags.String("owner", pipeline.DefaultRepo.Owner, "repository owner")
	flags.String("repo", pipeline.DefaultRepo.Name, "repository name")
	flags.String("branch", pipeline.DefaultRepo.Branch, "repository branch")
	flags.String("stubs-dir", pipeline.DefaultStubsDir, "repository directory holding the interface stubs")
	flags.String("compiler", solc.DefaultCompiler, "Solidity compiler executable")
	flags.Int("concurrency", 0, "maximum parallel downloads, 0 for unbounded")
	bindFlags(a.v, flags, map[string]string{
		config.RootKey:        "root",
		config.OwnerKey:       "owner",
		config.RepoKey:        "repo",
		config.BranchKey:      "branch",
		config.StubsDirKey:    "stubs-dir",
		config.CompilerKey:    "compiler",
		config.ConcurrencyKey: "concurrency",
	})
	return cmd
}
