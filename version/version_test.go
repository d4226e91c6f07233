package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	vi := GetVersion()
	assert.Equal(t, version, vi.Version)
	assert.Equal(t, prerelease, vi.Prerelease)
}

func TestSemanticVersion(t *testing.T) {
	testCases := []struct {
		name   string
		vi     Version
		expect string
	}{
		{
			name:   "Test only Version",
			vi:     Version{Version: "0.0.0"},
			expect: "0.0.0",
		},
		{
			name:   "Test Prerelease",
			vi:     Version{Version: "0.0.0", Prerelease: "test"},
			expect: "0.0.0-test",
		},
		{
			name:   "Test Metadata",
			vi:     Version{Version: "0.0.0", Metadata: "buildinfo"},
			expect: "0.0.0+buildinfo",
		},
		{
			name:   "Test All",
			vi:     Version{Version: "0.0.0", Prerelease: "test", Metadata: "buildinfo"},
			expect: "0.0.0-test+buildinfo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.vi.SemanticVersion())
		})
	}
}

func TestFullVersionNumber(t *testing.T) {
	testCases := []struct {
		name   string
		vi     Version
		rev    bool
		expect string
	}{
		{
			name:   "Version only",
			vi:     Version{Version: "1.2.3"},
			expect: "webdiag v1.2.3",
		},
		{
			name:   "Revision included when requested",
			vi:     Version{Version: "1.2.3", Revision: "abc1234"},
			rev:    true,
			expect: "webdiag v1.2.3 (abc1234)",
		},
		{
			name:   "Revision omitted when not requested",
			vi:     Version{Version: "1.2.3", Revision: "abc1234"},
			expect: "webdiag v1.2.3",
		},
		{
			name:   "Build date appended",
			vi:     Version{Version: "1.2.3", BuildDate: "2026-01-02"},
			expect: "webdiag v1.2.3, built 2026-01-02",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.vi.FullVersionNumber(tc.rev))
		})
	}
}

func TestSlugPrefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(GetVersion().FullVersionNumber(false), "webdiag v"))
}
