package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/branched-services/go-unique/internal/bindgen"
	"github.com/branched-services/go-unique/internal/config"
	"github.com/branched-services/go-unique/internal/github"
	"github.com/branched-services/go-unique/internal/solc"
)

func newTestApp(t *testing.T) *app {
	return &app{
		v:    config.New(),
		fs:   afero.NewMemMapFs(),
		http: http.DefaultClient,
		log:  zaptest.NewLogger(t),
	}
}

func execute(a *app, args ...string) (string, error) {
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newRegistry(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"versions":{"1.2.3":{},"1.2.4-beta.1":{},"1.0.0":{}}}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeManifest(t *testing.T, fs afero.Fs) {
	require.NoError(t, afero.WriteFile(fs, "package.json", []byte(`{"name":"sdk","version":"1.2.3","main":"dist/index.js"}`), 0o644))
}

func TestBump(t *testing.T) {
	tests := []struct {
		flag string
		want string
	}{
		{"--beta", "1.2.4-beta.2"},
		{"--patch", "1.2.4"},
		{"--minor", "1.3.0"},
		{"--major", "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			a := newTestApp(t)
			writeManifest(t, a.fs)

			_, err := execute(a, "bump", tt.flag, "--registry", newRegistry(t).URL)
			require.NoError(t, err)

			data, err := afero.ReadFile(a.fs, "package.json")
			require.NoError(t, err)
			require.Equal(t, "{\n  \"name\": \"sdk\",\n  \"version\": \""+tt.want+"\",\n  \"main\": \"dist/index.js\"\n}\n", string(data))
		})
	}
}

func TestBumpWithoutSelectorDoesNotWrite(t *testing.T) {
	a := newTestApp(t)
	writeManifest(t, a.fs)

	_, err := execute(a, "bump", "--registry", newRegistry(t).URL)
	require.NoError(t, err)

	data, err := afero.ReadFile(a.fs, "package.json")
	require.NoError(t, err)
	require.Contains(t, string(data), `"version":"1.2.3"`)
}

func TestBumpErrors(t *testing.T) {
	t.Run("exclusive selectors", func(t *testing.T) {
		a := newTestApp(t)
		writeManifest(t, a.fs)

		_, err := execute(a, "bump", "--patch", "--minor", "--registry", newRegistry(t).URL)
		require.ErrorContains(t, err, "none of the others can be")
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := execute(newTestApp(t), "bump", "--patch", "--manifest", "nope.json")
		require.ErrorContains(t, err, "manifest: read nope.json")
	})

	t.Run("registry failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		a := newTestApp(t)
		writeManifest(t, a.fs)

		_, err := execute(a, "bump", "--patch", "--registry", srv.URL)
		require.ErrorContains(t, err, "unexpected status 503")
	})
}

func TestBundles(t *testing.T) {
	out, err := execute(newTestApp(t), "bundles")
	require.NoError(t, err)

	var targets []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &targets))
	require.Len(t, targets, 4)
	require.Equal(t, "main", targets[0]["name"])
	require.Equal(t, "web3", targets[3]["name"])
}

type stubDownloader struct{}

func (stubDownloader) Tree(ctx context.Context, repo github.Repo) ([]github.TreeEntry, error) {
	return []github.TreeEntry{{Path: "tests/src/eth/api/Counter.sol"}}, nil
}

func (stubDownloader) Download(ctx context.Context, repo github.Repo, entries []github.TreeEntry, fs afero.Fs, dir string, limit int) ([]string, error) {
	var names []string
	for _, e := range entries {
		names = append(names, e.Base())
		if err := afero.WriteFile(fs, filepath.Join(dir, e.Base()), []byte("contract Counter {}"), 0o644); err != nil {
			return nil, err
		}
	}
	return names, nil
}

type stubCompiler struct {
	fs afero.Fs
}

func (c stubCompiler) Compile(ctx context.Context, file, baseDir, outDir string) (solc.Result, error) {
	abi := `[{"type":"function","name":"count","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]}]`
	return solc.Result{}, afero.WriteFile(c.fs, filepath.Join(outDir, "Counter_sol_Counter.abi"), []byte(abi), 0o644)
}

func TestInterfaces(t *testing.T) {
	a := newTestApp(t)
	a.downloader = stubDownloader{}
	a.compiler = stubCompiler{fs: a.fs}
	a.generator = bindgen.Abigen{}

	_, err := execute(a, "interfaces", "--root", "/data", "--branch", "develop")
	require.NoError(t, err)

	for _, p := range []string{
		"/data/contracts/Counter.sol",
		"/data/abi/Counter.json",
		"/data/factory/ethers/bindings.go",
		"/data/factory/web3/bindings.go",
	} {
		ok, err := afero.Exists(a.fs, p)
		require.NoError(t, err)
		require.True(t, ok, p)
	}

	code, err := afero.ReadFile(a.fs, "/data/factory/web3/bindings.go")
	require.NoError(t, err)
	require.Contains(t, string(code), "package web3")
}

func TestInterfacesInvalidConfig(t *testing.T) {
	_, err := execute(newTestApp(t), "interfaces", "--concurrency", "-1")
	require.ErrorIs(t, err, config.ErrNegativeValue)
}
