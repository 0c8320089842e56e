package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/branched-services/go-unique/internal/bindgen"
	"github.com/branched-services/go-unique/internal/github"
)

// ErrInvalidABI is returned when a compiler output file is not valid JSON.
var ErrInvalidABI = errors.New("pipeline: invalid ABI JSON")

// DownloadStubs lists the remote tree and downloads every stub into the
// contracts directory.
func (p *Pipeline) DownloadStubs(ctx context.Context) ([]string, error) {
	defer p.banner(1, StageDownload, "STEP 1: DOWNLOADING SOLIDITY INTERFACES")()

	entries, err := p.downloader.Tree(ctx, p.cfg.Repo)
	if err != nil {
		return nil, &StageError{Stage: StageDownload, Err: err}
	}
	stubs := github.FilterStubs(entries, p.cfg.StubsDir)

	names, err := p.downloader.Download(ctx, p.cfg.Repo, stubs, p.fs, p.dirs.Contracts, p.cfg.Concurrency)
	if err != nil {
		return nil, &StageError{Stage: StageDownload, Err: err}
	}

	p.log.Info("smart contracts loaded", zap.Int("count", len(names)), zap.Strings("files", names))
	return names, nil
}

// Compile runs the compiler over every file in the contracts directory, in
// name order, one at a time.
func (p *Pipeline) Compile(ctx context.Context) error {
	defer p.banner(2, StageCompile, "STEP 2: COMPILING SOLIDITY INTERFACES")()

	infos, err := afero.ReadDir(p.fs, p.dirs.Contracts)
	if err != nil {
		return &StageError{Stage: StageCompile, Err: err}
	}

	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		file := filepath.Join(p.dirs.Contracts, info.Name())

		res, err := p.compiler.Compile(ctx, file, p.dirs.Contracts, p.dirs.ABI)
		if err != nil {
			return &StageError{Stage: StageCompile, Err: err}
		}

		p.log.Info("compiled",
			zap.String("file", info.Name()),
			zap.Duration("elapsed", res.Elapsed),
			zap.String("stdout", strings.TrimSpace(res.Stdout)),
		)
		if s := strings.TrimSpace(res.Stderr); s != "" {
			p.log.Warn("compiler stderr", zap.String("file", info.Name()), zap.String("stderr", s))
		}
	}
	return nil
}

// Shrink keeps only the compiler outputs whose source file and contract
// names agree, renames them to <Contract>.json and re-indents them. It
// returns the sorted survivor file names.
func (p *Pipeline) Shrink() ([]string, error) {
	defer p.banner(3, StageShrink, "STEP 3: SHRINKING EXTRA ABIS")()

	infos, err := afero.ReadDir(p.fs, p.dirs.ABI)
	if err != nil {
		return nil, &StageError{Stage: StageShrink, Err: err}
	}

	var kept []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || !strings.HasSuffix(name, ".abi") {
			continue
		}
		src := filepath.Join(p.dirs.ABI, name)

		contract, ok := ContractName(name)
		if !ok {
			if err := p.fs.Remove(src); err != nil {
				return nil, &StageError{Stage: StageShrink, Err: err}
			}
			p.log.Debug("removed abi", zap.String("file", name))
			continue
		}

		out := contract + ".json"
		if err := p.reindent(src, filepath.Join(p.dirs.ABI, out)); err != nil {
			return nil, &StageError{Stage: StageShrink, Err: err}
		}
		kept = append(kept, out)
	}

	sort.Strings(kept)
	p.log.Info("generated abis", zap.Int("count", len(kept)), zap.Strings("files", kept))
	return kept, nil
}

// ContractName extracts the contract name from a compiler output file
// named <Source>_sol_<Contract>.abi. ok is false when the source and
// contract names differ.
func ContractName(file string) (name string, ok bool) {
	parts := strings.Split(strings.TrimSuffix(filepath.Base(file), ".abi"), "_sol_")
	if len(parts) < 2 || parts[0] != parts[1] {
		return "", false
	}
	return parts[0], true
}

func (p *Pipeline) reindent(src, dst string) error {
	data, err := afero.ReadFile(p.fs, src)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: %s", ErrInvalidABI, filepath.Base(src))
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	if err := afero.WriteFile(p.fs, dst, bytes.TrimRight(buf.Bytes(), " \t\r\n"), 0o644); err != nil {
		return err
	}
	return p.fs.Remove(src)
}

// GenerateBindings binds every ABI in abis and writes the result to dir.
func (p *Pipeline) GenerateBindings(stage string, step int, style bindgen.Style, dir string, abis []string) (string, error) {
	defer p.banner(step, stage, fmt.Sprintf("STEP %d: GENERATING %s BINDINGS", step, strings.ToUpper(string(style))))()

	contracts := make([]bindgen.Contract, 0, len(abis))
	for _, name := range abis {
		data, err := afero.ReadFile(p.fs, filepath.Join(p.dirs.ABI, name))
		if err != nil {
			return "", &StageError{Stage: stage, Err: err}
		}
		contracts = append(contracts, bindgen.Contract{
			Name: strings.TrimSuffix(name, ".json"),
			ABI:  string(data),
		})
	}

	out, err := bindgen.Write(p.fs, p.generator, style, dir, contracts)
	if err != nil {
		return "", &StageError{Stage: stage, Err: err}
	}
	p.log.Info("generated bindings", zap.String("file", out), zap.Int("contracts", len(contracts)))
	return out, nil
}
