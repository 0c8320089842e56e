// Package bundle declares the distributable bundle targets of the SDK.
package bundle

import (
	"errors"
	"fmt"
	"regexp"
)

// Format is a JavaScript module format.
type Format string

const (
	FormatESM  Format = "esm"
	FormatCJS  Format = "cjs"
	FormatIIFE Format = "iife"
)

// Platform is the runtime a bundle targets.
type Platform string

const (
	PlatformNeutral Platform = "neutral"
	PlatformBrowser Platform = "browser"
)

// LanguageTarget is the ECMAScript level every bundle is compiled to.
const LanguageTarget = "es2020"

var (
	ErrDuplicateName = errors.New("bundle: duplicate target name")
	ErrEmptyEntry    = errors.New("bundle: target has no entry points")
	ErrEmptyFormats  = errors.New("bundle: target has no formats")
	ErrBadPattern    = errors.New("bundle: invalid dependency pattern")
)

// OutDir is where every bundle is written.
const OutDir = "dist"

// Target is one bundler invocation. Entry maps an output name to its source
// file, so "ethers" -> "factory/ethers/index.ts" emits dist/ethers.*.
type Target struct {
	Name       string            `json:"name"`
	Entry      map[string]string `json:"entry"`
	Formats    []Format          `json:"format"`
	Platform   Platform          `json:"platform"`
	Target     string            `json:"target"`
	External   []string          `json:"external,omitempty"`
	NoExternal []string          `json:"noExternal,omitempty"`
	DTS        bool              `json:"dts"`
	Sourcemap  bool              `json:"sourcemap"`
	Metafile   bool              `json:"metafile"`
	OutDir     string            `json:"outDir"`
}

// Targets returns the four SDK bundles.
func Targets() []Target {
	base := func(name, output, entry string) Target {
		return Target{
			Name:      name,
			Entry:     map[string]string{output: entry},
			Formats:   []Format{FormatESM, FormatCJS},
			Platform:  PlatformNeutral,
			Target:    LanguageTarget,
			DTS:       true,
			Sourcemap: true,
			Metafile:  true,
			OutDir:    OutDir,
		}
	}

	main := base("main", "index", "src/index.ts")
	main.External = []string{"^ethers"}

	iife := base("main-iife", "index", "src/index.ts")
	iife.Formats = []Format{FormatIIFE}
	iife.Platform = PlatformBrowser
	iife.NoExternal = []string{".*"}

	ethers := base("ethers", "ethers", "factory/ethers/index.ts")
	ethers.External = []string{"^ethers"}
	ethers.Metafile = false

	web3 := base("web3", "web3", "factory/web3/index.ts")
	web3.External = []string{"^web3"}
	web3.Metafile = false

	return []Target{main, iife, ethers, web3}
}

// Validate checks that names are unique, that every target has entries
// and formats, and that dependency patterns are valid regular expressions.
func Validate(targets []Target) error {
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		if seen[t.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, t.Name)
		}
		seen[t.Name] = true

		if len(t.Entry) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyEntry, t.Name)
		}
		if len(t.Formats) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyFormats, t.Name)
		}
		for _, patterns := range [][]string{t.External, t.NoExternal} {
			for _, p := range patterns {
				if _, err := regexp.Compile(p); err != nil {
					return fmt.Errorf("%w: %s: %q: %v", ErrBadPattern, t.Name, p, err)
				}
			}
		}
	}
	return nil
}
