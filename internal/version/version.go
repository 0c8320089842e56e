// Package version computes candidate next versions of a package from the
// versions already published to a registry.
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
)

// DefaultPreID is the pre-release label used when none is configured.
const DefaultPreID = "beta"

// ErrUnknownBump is returned by Plan.Select for an unrecognised selector.
var ErrUnknownBump = errors.New("version: unknown bump")

// Bump selects one of the computed candidate versions.
type Bump int

const (
	BumpNone Bump = iota
	BumpPrerelease
	BumpPatch
	BumpMinor
	BumpMajor
)

func (b Bump) String() string {
	switch b {
	case BumpNone:
		return "none"
	case BumpPrerelease:
		return "prerelease"
	case BumpPatch:
		return "patch"
	case BumpMinor:
		return "minor"
	case BumpMajor:
		return "major"
	default:
		return fmt.Sprintf("Bump(%d)", int(b))
	}
}

// Plan holds the current state of both release tracks and the four
// candidate next versions derived from them.
type Plan struct {
	CurrentRelease    semver.Version
	CurrentPrerelease *semver.Version

	NextPatch      semver.Version
	NextMinor      semver.Version
	NextMajor      semver.Version
	NextPrerelease semver.Version
}

// NewPlan parses published, discarding entries that are not strict semantic
// versions, and derives the candidate next versions. An empty preid falls
// back to DefaultPreID.
func NewPlan(published []string, preid string) Plan {
	if preid == "" {
		preid = DefaultPreID
	}

	releases, prereleases := Partition(published)

	var p Plan
	if n := len(releases); n > 0 {
		p.CurrentRelease = releases[n-1]
	}
	if n := len(prereleases); n > 0 {
		pre := prereleases[n-1]
		p.CurrentPrerelease = &pre
	}

	r := p.CurrentRelease
	p.NextPatch = semver.Version{Major: r.Major, Minor: r.Minor, Patch: r.Patch + 1}
	p.NextMinor = semver.Version{Major: r.Major, Minor: r.Minor + 1}
	p.NextMajor = semver.Version{Major: r.Major + 1}

	if p.CurrentPrerelease != nil && p.CurrentPrerelease.GT(r) {
		p.NextPrerelease = incPrerelease(*p.CurrentPrerelease, preid)
	} else {
		p.NextPrerelease = semver.Version{
			Major: r.Major,
			Minor: r.Minor,
			Patch: r.Patch + 1,
			Pre:   []semver.PRVersion{preLabel(preid), {IsNum: true}},
		}
	}
	return p
}

// Select returns the candidate version for b.
func (p Plan) Select(b Bump) (semver.Version, error) {
	switch b {
	case BumpPrerelease:
		return p.NextPrerelease, nil
	case BumpPatch:
		return p.NextPatch, nil
	case BumpMinor:
		return p.NextMinor, nil
	case BumpMajor:
		return p.NextMajor, nil
	default:
		return semver.Version{}, fmt.Errorf("%w: %s", ErrUnknownBump, b)
	}
}

// Partition parses versions strictly and splits them into ascending release
// and pre-release slices. Build metadata is ignored for ordering.
func Partition(versions []string) (releases, prereleases []semver.Version) {
	for _, s := range versions {
		v, err := semver.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		if len(v.Pre) == 0 {
			releases = append(releases, v)
		} else {
			prereleases = append(prereleases, v)
		}
	}
	semver.Sort(releases)
	semver.Sort(prereleases)
	return releases, prereleases
}

// incPrerelease follows the npm prerelease increment: a different label
// restarts the counter, otherwise the last numeric identifier is bumped
// or ".0" appended when there is none.
func incPrerelease(v semver.Version, preid string) semver.Version {
	next := semver.Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}

	if v.Pre[0].IsNum || v.Pre[0].VersionStr != preid {
		next.Pre = []semver.PRVersion{preLabel(preid), {IsNum: true}}
		return next
	}

	next.Pre = make([]semver.PRVersion, len(v.Pre))
	copy(next.Pre, v.Pre)
	for i := len(next.Pre) - 1; i >= 0; i-- {
		if next.Pre[i].IsNum {
			next.Pre[i].VersionNum++
			return next
		}
	}
	next.Pre = append(next.Pre, semver.PRVersion{IsNum: true})
	return next
}

func preLabel(preid string) semver.PRVersion {
	return semver.PRVersion{VersionStr: preid}
}
