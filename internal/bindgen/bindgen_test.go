package bindgen

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const counterABI = `[
	{"type":"function","name":"count","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"increment","stateMutability":"nonpayable","inputs":[{"name":"by","type":"uint32"}],"outputs":[]}
]`

func TestAbigenGenerate(t *testing.T) {
	contracts := []Contract{{Name: "Counter", ABI: counterABI}}

	for _, style := range []Style{StyleV1, StyleV2} {
		t.Run(string(style), func(t *testing.T) {
			code, err := Abigen{}.Generate(style, "ethers", contracts)
			require.NoError(t, err)
			require.Contains(t, code, "package ethers")
			require.Contains(t, code, "type Counter struct")
		})
	}
}

func TestAbigenErrors(t *testing.T) {
	_, err := Abigen{}.Generate(StyleV1, "x", nil)
	require.ErrorIs(t, err, ErrNoContracts)

	_, err = Abigen{}.Generate("v3", "x", []Contract{{Name: "A", ABI: counterABI}})
	require.ErrorIs(t, err, ErrUnknownStyle)

	_, err = Abigen{}.Generate(StyleV1, "x", []Contract{{Name: "A", ABI: "not json"}})
	require.ErrorContains(t, err, "bindgen: v1")
}

type fakeGenerator struct {
	pkg string
	err error
}

func (f *fakeGenerator) Generate(style Style, pkg string, contracts []Contract) (string, error) {
	f.pkg = pkg
	if f.err != nil {
		return "", f.err
	}
	return "package " + pkg + "\n", nil
}

func TestWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	gen := &fakeGenerator{}

	out, err := Write(fs, gen, StyleV2, "factory/web3", []Contract{{Name: "A"}})
	require.NoError(t, err)
	require.Equal(t, "factory/web3/bindings.go", out)
	require.Equal(t, "web3", gen.pkg)

	data, err := afero.ReadFile(fs, out)
	require.NoError(t, err)
	require.Equal(t, "package web3\n", string(data))

	gen.err = errors.New("boom")
	_, err = Write(fs, gen, StyleV2, "factory/web3", nil)
	require.EqualError(t, err, "boom")
}

func TestPackageName(t *testing.T) {
	tests := map[string]string{
		"factory/ethers":  "ethers",
		"factory/Web-3":   "web3",
		"factory/2fa":     "bindings2fa",
		"factory/---":     "bindings",
		"out/typed_calls": "typed_calls",
	}
	for dir, want := range tests {
		require.Equal(t, want, PackageName(dir), dir)
	}
}
