// Package bindgen generates typed Go contract bindings from ABI JSON.
package bindgen

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi/abigen"
	"github.com/spf13/afero"
)

// OutputFile is the name of the generated source inside the target directory.
const OutputFile = "bindings.go"

// Style selects the binding flavour.
type Style string

const (
	// StyleV1 emits classic bindings around bind.BoundContract.
	StyleV1 Style = "v1"
	// StyleV2 emits v2 bindings that pack and unpack calls without a backend.
	StyleV2 Style = "v2"
)

var (
	ErrNoContracts  = errors.New("bindgen: no contracts")
	ErrUnknownStyle = errors.New("bindgen: unknown style")
)

// Contract is one ABI to bind.
type Contract struct {
	Name string
	ABI  string
}

// Generator renders Go source for a set of contracts.
type Generator interface {
	Generate(style Style, pkg string, contracts []Contract) (string, error)
}

// Abigen generates bindings in-process with go-ethereum's abigen.
type Abigen struct{}

// Generate renders bindings for contracts in package pkg.
func (Abigen) Generate(style Style, pkg string, contracts []Contract) (string, error) {
	if len(contracts) == 0 {
		return "", ErrNoContracts
	}

	types := make([]string, len(contracts))
	abis := make([]string, len(contracts))
	bytecodes := make([]string, len(contracts))
	for i, c := range contracts {
		types[i] = c.Name
		abis[i] = c.ABI
	}

	var (
		code string
		err  error
	)
	switch style {
	case StyleV1:
		code, err = abigen.Bind(types, abis, bytecodes, nil, pkg, nil, nil)
	case StyleV2:
		code, err = abigen.BindV2(types, abis, bytecodes, pkg, map[string]string{}, map[string]string{})
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	if err != nil {
		return "", fmt.Errorf("bindgen: %s: %w", style, err)
	}
	return code, nil
}

// Write generates bindings and stores them as dir/bindings.go on fs. The
// package name is derived from the directory name.
func Write(fs afero.Fs, gen Generator, style Style, dir string, contracts []Contract) (string, error) {
	code, err := gen.Generate(style, PackageName(dir), contracts)
	if err != nil {
		return "", err
	}

	out := filepath.Join(dir, OutputFile)
	if err := afero.WriteFile(fs, out, []byte(code), 0o644); err != nil {
		return "", fmt.Errorf("bindgen: write %s: %w", out, err)
	}
	return out, nil
}

// PackageName turns a directory into a Go package identifier.
func PackageName(dir string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(filepath.Base(dir)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "bindings" + name
	}
	return name
}
