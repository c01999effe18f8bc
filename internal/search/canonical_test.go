package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizer_Canonicalize(t *testing.T) {
	canon := NewCanonicalizer("/home/user/project")

	tests := []struct {
		name            string
		path            string
		expectedKind    CanonicalPathKind
		expectedDisplay string
	}{
		{
			name:            "path under workspace root",
			path:            "/home/user/project/lib/foo.dart",
			expectedKind:    PathWorkspaceRelative,
			expectedDisplay: "lib/foo.dart",
		},
		{
			name:            "nested path under workspace root",
			path:            "/home/user/project/lib/src/widgets/button.dart",
			expectedKind:    PathWorkspaceRelative,
			expectedDisplay: "lib/src/widgets/button.dart",
		},
		{
			name:            "hosted package cache path",
			path:            "/cache/hosted/pub.dev/collection-1.15.0/lib/src/a.dart",
			expectedKind:    PathPackageReference,
			expectedDisplay: "package:collection/src/a.dart",
		},
		{
			name:            "git package cache path",
			path:            "/cache/git/my_dep-0abc123/lib/my_dep.dart",
			expectedKind:    PathPackageReference,
			expectedDisplay: "package:my_dep/my_dep.dart",
		},
		{
			name:            "package path outside lib keeps its prefix",
			path:            "/cache/hosted/pub.dev/collection-1.15.0/test/a_test.dart",
			expectedKind:    PathPackageReference,
			expectedDisplay: "package:collection/test/a_test.dart",
		},
		{
			name:            "windows separators are normalized",
			path:            `C:\cache\hosted\pub.dev\collection-1.15.0\lib\src\a.dart`,
			expectedKind:    PathPackageReference,
			expectedDisplay: "package:collection/src/a.dart",
		},
		{
			name:         "unrelated absolute path",
			path:         "/usr/lib/dart/sdk/core.dart",
			expectedKind: PathUnknown,
		},
		{
			name:         "package cache directory without a version suffix",
			path:         "/cache/hosted/pub.dev/collection/lib/a.dart",
			expectedKind: PathUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := canon.Canonicalize(tt.path)
			assert.Equal(t, tt.expectedKind, result.Kind())

			display, ok := result.Display()
			if tt.expectedKind == PathUnknown {
				assert.False(t, ok)
				assert.Empty(t, display)
			} else {
				assert.True(t, ok)
				assert.Equal(t, tt.expectedDisplay, display)
			}
		})
	}
}

func TestCanonicalizer_WorkspaceWinsOverPackageCache(t *testing.T) {
	canon := NewCanonicalizer("/home/user/cache/hosted/pub.dev/collection-1.15.0")

	result := canon.Canonicalize("/home/user/cache/hosted/pub.dev/collection-1.15.0/lib/a.dart")
	assert.Equal(t, PathWorkspaceRelative, result.Kind())

	display, ok := result.Display()
	assert.True(t, ok)
	assert.Equal(t, "lib/a.dart", display)
}
