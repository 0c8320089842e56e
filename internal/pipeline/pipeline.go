// Package pipeline downloads Solidity interface stubs, compiles them to ABI
// files, deduplicates the ABIs and generates Go bindings in two styles.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/branched-services/go-unique/internal/bindgen"
	"github.com/branched-services/go-unique/internal/github"
	"github.com/branched-services/go-unique/internal/solc"
)

// Stage names, in execution order.
const (
	StageDownload   = "download"
	StageCompile    = "compile"
	StageShrink     = "shrink"
	StageBindingsV1 = "bindings-v1"
	StageBindingsV2 = "bindings-v2"
)

// Defaults for Config fields left empty.
const (
	DefaultStubsDir = "tests/src/eth/api"
	DefaultV1Dir    = "ethers"
	DefaultV2Dir    = "web3"
)

// DefaultRepo is the repository the interface stubs are taken from.
var DefaultRepo = github.Repo{Owner: "UniqueNetwork", Name: "unique-chain", Branch: "master"}

// StageError wraps the failure of a single stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Downloader lists and fetches repository files.
type Downloader interface {
	Tree(ctx context.Context, repo github.Repo) ([]github.TreeEntry, error)
	Download(ctx context.Context, repo github.Repo, entries []github.TreeEntry, fs afero.Fs, dir string, limit int) ([]string, error)
}

// Config describes one pipeline run.
type Config struct {
	// Root is the data directory every working directory lives under.
	Root     string
	Repo     github.Repo
	StubsDir string
	// Concurrency caps parallel downloads; zero means unbounded.
	Concurrency int
	V1Dir       string
	V2Dir       string
}

func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Repo == (github.Repo{}) {
		c.Repo = DefaultRepo
	}
	if c.StubsDir == "" {
		c.StubsDir = DefaultStubsDir
	}
	if c.V1Dir == "" {
		c.V1Dir = DefaultV1Dir
	}
	if c.V2Dir == "" {
		c.V2Dir = DefaultV2Dir
	}
	return c
}

// Dirs are the working directories of a run.
type Dirs struct {
	Dist      string
	Contracts string
	ABI       string
	Factory   string
	V1        string
	V2        string
}

// All returns the directories in creation order.
func (d Dirs) All() []string {
	return []string{d.Dist, d.Contracts, d.ABI, d.Factory, d.V1, d.V2}
}

// Report summarises a successful run.
type Report struct {
	Stubs    []string
	ABIs     []string
	Bindings []string
}

// Pipeline runs the five stages in order.
type Pipeline struct {
	cfg  Config
	dirs Dirs

	fs         afero.Fs
	downloader Downloader
	compiler   solc.Compiler
	generator  bindgen.Generator
	log        *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithFs sets the filesystem working directories are created on.
func WithFs(fs afero.Fs) Option {
	return func(p *Pipeline) { p.fs = fs }
}

// WithDownloader overrides the stub source.
func WithDownloader(d Downloader) Option {
	return func(p *Pipeline) { p.downloader = d }
}

// WithCompiler overrides the Solidity compiler.
func WithCompiler(c solc.Compiler) Option {
	return func(p *Pipeline) { p.compiler = c }
}

// WithGenerator overrides the binding generator.
func WithGenerator(g bindgen.Generator) Option {
	return func(p *Pipeline) { p.generator = g }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.log = l
		}
	}
}

// New creates a pipeline. Without options it works on the OS filesystem,
// downloads from GitHub, compiles with solcjs and binds with abigen.
func New(cfg Config, opts ...Option) *Pipeline {
	cfg = cfg.withDefaults()
	p := &Pipeline{
		cfg:        cfg,
		fs:         afero.NewOsFs(),
		downloader: github.New(),
		compiler:   solc.NewExec(""),
		generator:  bindgen.Abigen{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	factory := filepath.Join(cfg.Root, "factory")
	p.dirs = Dirs{
		Dist:      filepath.Join(cfg.Root, "dist"),
		Contracts: filepath.Join(cfg.Root, "contracts"),
		ABI:       filepath.Join(cfg.Root, "abi"),
		Factory:   factory,
		V1:        filepath.Join(factory, cfg.V1Dir),
		V2:        filepath.Join(factory, cfg.V2Dir),
	}
	return p
}

// Dirs returns the working directories.
func (p *Pipeline) Dirs() Dirs {
	return p.dirs
}

// Run recreates the working directories and executes every stage. The
// first failing stage aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	p.log.Info("data root", zap.String("path", p.cfg.Root))

	if err := p.Prepare(); err != nil {
		return nil, err
	}

	report := &Report{}
	var err error

	if report.Stubs, err = p.DownloadStubs(ctx); err != nil {
		return nil, err
	}
	if err = p.Compile(ctx); err != nil {
		return nil, err
	}
	if report.ABIs, err = p.Shrink(); err != nil {
		return nil, err
	}
	for _, b := range []struct {
		stage string
		step  int
		style bindgen.Style
		dir   string
	}{
		{StageBindingsV1, 4, bindgen.StyleV1, p.dirs.V1},
		{StageBindingsV2, 5, bindgen.StyleV2, p.dirs.V2},
	} {
		out, err := p.GenerateBindings(b.stage, b.step, b.style, b.dir, report.ABIs)
		if err != nil {
			return nil, err
		}
		report.Bindings = append(report.Bindings, out)
	}
	return report, nil
}

// Prepare removes and recreates every working directory.
func (p *Pipeline) Prepare() error {
	for _, dir := range p.dirs.All() {
		if err := CleanDir(p.fs, dir); err != nil {
			return err
		}
	}
	return nil
}

// CleanDir removes dir if it exists and creates it empty.
func CleanDir(fs afero.Fs, dir string) error {
	if err := fs.RemoveAll(dir); err != nil {
		return fmt.Errorf("pipeline: remove %s: %w", dir, err)
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pipeline: create %s: %w", dir, err)
	}
	return nil
}

// banner logs the start of a stage and returns a func logging its duration.
func (p *Pipeline) banner(step int, stage, title string) func() {
	start := time.Now()
	p.log.Info(title, zap.Int("step", step), zap.String("stage", stage))
	return func() {
		p.log.Info("stage finished", zap.Int("step", step), zap.String("stage", stage), zap.Duration("elapsed", time.Since(start)))
	}
}
