package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withVersion swaps the build variables for the duration of a test.
func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestDefaultVersionIsValid(t *testing.T) {
	_, err := GetInfo()
	assert.NoError(t, err)
}

func TestGetInfo(t *testing.T) {
	withVersion(t, "1.2.3+5.abc", "deadbeefcafe", "2025-01-01")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "1.2.3+5.abc", info.Version)
	assert.Equal(t, uint64(1), info.SemVer.Major())
	assert.Contains(t, info.Platform, "/")
	assert.True(t, strings.HasPrefix(info.GoVersion, "go"))
}

func TestGetInfo_Invalid(t *testing.T) {
	withVersion(t, "not-a-version", "unknown", "unknown")

	_, err := GetInfo()
	assert.Error(t, err)
	assert.Equal(t, "kvshell vnot-a-version (invalid version)", GetFormattedVersion())
}

func TestGetFormattedVersion(t *testing.T) {
	tests := []struct {
		name     string
		commit   string
		date     string
		expected string
	}{
		{"bare", "unknown", "unknown", "kvshell v0.3.0"},
		{"commit", "0123456789", "unknown", "kvshell v0.3.0, commit 0123456"},
		{"commit and date", "abc", "2025-06-01", "kvshell v0.3.0, commit abc, built 2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, "0.3.0", tt.commit, tt.date)
			assert.Equal(t, tt.expected, GetFormattedVersion())
		})
	}
}

func TestGetDetailedVersion(t *testing.T) {
	withVersion(t, "0.3.0+12.g1a2b", "1a2b", "today")

	detailed := GetDetailedVersion()
	assert.Contains(t, detailed, "kvshell v0.3.0+12.g1a2b")
	assert.Contains(t, detailed, "Git Commit: 1a2b")
	assert.Contains(t, detailed, "Build Metadata: 12.g1a2b")
	assert.Contains(t, detailed, "Release: development")
	assert.Contains(t, detailed, "Go Version: go")
}

func TestReleaseFlags(t *testing.T) {
	withVersion(t, "1.0.0-rc.1", "unknown", "unknown")
	assert.True(t, IsPrerelease())
	assert.False(t, IsDevelopment())
	assert.Equal(t, "prerelease", Channel())
	assert.Contains(t, GetDetailedVersion(), "Release: prerelease")

	withVersion(t, "0.9.0", "unknown", "unknown")
	assert.False(t, IsPrerelease())
	assert.True(t, IsDevelopment())
	assert.Equal(t, "development", Channel())

	withVersion(t, "1.2.0", "unknown", "unknown")
	assert.Equal(t, "stable", Channel())
	assert.Contains(t, GetDetailedVersion(), "Release: stable")
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"0.1.0", "", true, false},
		{"0.1.0", ">= 0.1.0", true, false},
		{"0.1.0", "> 0.1.0", false, false},
		{"1.4.2", "^1.2", true, false},
		{"1.4.2", "~1.3", false, false},
		{"1.4.2", "nonsense constraint", false, true},
		{"bad", ">= 1.0", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.version+" "+tt.constraint, func(t *testing.T) {
			got, err := satisfies(tt.version, tt.constraint)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
