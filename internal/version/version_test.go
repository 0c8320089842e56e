package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name      string
		published []string
		preid     string

		release    string
		prerelease string
		patch      string
		minor      string
		major      string
		next       string
	}{
		{
			name:    "nothing published",
			release: "0.0.0", patch: "0.0.1", minor: "0.1.0", major: "1.0.0",
			next: "0.0.1-beta.0",
		},
		{
			name:       "active prerelease track",
			published:  []string{"1.0.0", "1.2.3", "garbage", "1.2.4-beta.2", "1.2.4-beta.10"},
			release:    "1.2.3",
			prerelease: "1.2.4-beta.10",
			patch:      "1.2.4", minor: "1.3.0", major: "2.0.0",
			next: "1.2.4-beta.11",
		},
		{
			name:       "stale prerelease",
			published:  []string{"2.0.0", "1.5.0-beta.3"},
			release:    "2.0.0",
			prerelease: "1.5.0-beta.3",
			patch:      "2.0.1", minor: "2.1.0", major: "3.0.0",
			next: "2.0.1-beta.0",
		},
		{
			name:       "label change restarts counter",
			published:  []string{"1.0.0", "1.0.1-alpha.3"},
			preid:      "beta",
			release:    "1.0.0",
			prerelease: "1.0.1-alpha.3",
			patch:      "1.0.1", minor: "1.1.0", major: "2.0.0",
			next: "1.0.1-beta.0",
		},
		{
			name:       "prerelease without counter",
			published:  []string{"1.0.0", "1.0.1-beta"},
			release:    "1.0.0",
			prerelease: "1.0.1-beta",
			patch:      "1.0.1", minor: "1.1.0", major: "2.0.0",
			next: "1.0.1-beta.0",
		},
		{
			name:      "custom preid and non strict entries",
			published: []string{"v3.0.0", "1.4.0", "1.4"},
			preid:     "rc",
			release:   "1.4.0",
			patch:     "1.4.1", minor: "1.5.0", major: "2.0.0",
			next: "1.4.1-rc.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlan(tt.published, tt.preid)

			require.Equal(t, tt.release, p.CurrentRelease.String())
			if tt.prerelease == "" {
				require.Nil(t, p.CurrentPrerelease)
			} else {
				require.NotNil(t, p.CurrentPrerelease)
				require.Equal(t, tt.prerelease, p.CurrentPrerelease.String())
			}
			require.Equal(t, tt.patch, p.NextPatch.String())
			require.Equal(t, tt.minor, p.NextMinor.String())
			require.Equal(t, tt.major, p.NextMajor.String())
			require.Equal(t, tt.next, p.NextPrerelease.String())
		})
	}
}

func TestNewPlanDoesNotAliasCurrent(t *testing.T) {
	p := NewPlan([]string{"1.0.0", "1.0.1-beta.1"}, "")

	require.Equal(t, "1.0.1-beta.2", p.NextPrerelease.String())
	require.Equal(t, "1.0.1-beta.1", p.CurrentPrerelease.String())
}

func TestPlanSelect(t *testing.T) {
	p := NewPlan([]string{"0.4.2"}, "")

	for bump, want := range map[Bump]string{
		BumpPrerelease: "0.4.3-beta.0",
		BumpPatch:      "0.4.3",
		BumpMinor:      "0.5.0",
		BumpMajor:      "1.0.0",
	} {
		got, err := p.Select(bump)
		require.NoError(t, err, bump.String())
		require.Equal(t, want, got.String(), bump.String())
	}

	_, err := p.Select(BumpNone)
	require.ErrorIs(t, err, ErrUnknownBump)
}

func TestPartition(t *testing.T) {
	releases, prereleases := Partition([]string{"1.10.0", "1.2.0", " 1.9.0 ", "1.0.0-rc.1", "nope"})

	require.Len(t, releases, 3)
	require.Equal(t, "1.2.0", releases[0].String())
	require.Equal(t, "1.10.0", releases[2].String())
	require.Len(t, prereleases, 1)
}
