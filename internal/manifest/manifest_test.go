package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParseValidIndex(t *testing.T) {
	idx, err := Parse(readTestdata(t, "valid.json"))
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", idx.Version)
	require.Len(t, idx.Components, 3)
	assert.Equal(t, Component{
		Name:         "button",
		Description:  "Pressable button with variants",
		Dependencies: []string{"react-native"},
	}, idx.Components[0])
	assert.Empty(t, idx.Components[1].Dependencies)
	assert.Equal(t, "switch", idx.Components[2].Name)
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		file string
		path string
	}{
		{"invalid-bad-name.json", "/components/0/name"},
		{"invalid-missing-components.json", ""},
		{"invalid-dependency-type.json", "/components/0/dependencies/1"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Parse(readTestdata(t, tt.file))
			var invalid *InvalidError
			require.True(t, errors.As(err, &invalid), "got %v", err)
			require.NotEmpty(t, invalid.Issues)

			var paths []string
			for _, issue := range invalid.Issues {
				paths = append(paths, issue.Path)
			}
			assert.Contains(t, paths, tt.path)
		})
	}
}

func TestParseRejectsDuplicateNames(t *testing.T) {
	_, err := Parse(readTestdata(t, "invalid-duplicate.json"))
	var invalid *InvalidError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "/components/1/name", invalid.Issues[0].Path)
	assert.Contains(t, err.Error(), `duplicate component name "card"`)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse(readTestdata(t, "invalid-not-json.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	_, err := Parse(readTestdata(t, "unsupported-version.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"1.0.0", false},
		{"v1.4.2", false},
		{"1", false},
		{"0.9.0", true},
		{"2.0.0", true},
		{"not-a-version", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := CheckVersion(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateIssueFields(t *testing.T) {
	result, err := Validate(readTestdata(t, "invalid-bad-name.json"))
	require.NoError(t, err)
	require.False(t, result.Valid)

	issue := result.Issues[0]
	assert.Equal(t, "/components/0/name", issue.Path)
	assert.Equal(t, "pattern", issue.Keyword)
	assert.NotEmpty(t, issue.Message)
}
