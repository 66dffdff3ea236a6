package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/snapshot"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParse(t *testing.T) {
	data := []byte(`
configurations:
  compile:
    - org.slf4j:slf4j-api:2.0.9
    - module: com.google.guava:guava:33.0.0-jre
      dependents: [org.example:app, org.example:lib]
  test: []
`)

	s, err := snapshot.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"compile", "test"}, s.Names())

	compile, ok := s.Modules("compile")
	require.True(t, ok)
	require.Len(t, compile, 2)
	assert.Equal(t, "org.slf4j:slf4j-api:2.0.9", compile[0].String())
	assert.Empty(t, compile[0].Dependents)
	assert.Equal(t, "com.google.guava:guava:33.0.0-jre", compile[1].String())
	require.Len(t, compile[1].Dependents, 2)
	assert.Equal(t, "org.example:lib", compile[1].Dependents[1].String())

	test, ok := s.Modules("test")
	require.True(t, ok)
	assert.Empty(t, test)

	_, ok = s.Modules("runtime")
	assert.False(t, ok)
}

func TestParse_KeepsDuplicates(t *testing.T) {
	s, err := snapshot.Parse([]byte("configurations:\n  compile: [g:a:1, g:a:2]\n"))
	require.NoError(t, err)

	modules, _ := s.Modules("compile")
	assert.Len(t, modules, 2, "duplicates are left for the lock record to reject")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantLine int
	}{
		{"missing version", "configurations:\n  compile:\n    - g:a\n", 3},
		{"invalid dependent", "configurations:\n  compile:\n    - g:a:1\n    - module: g:b:1\n      dependents: [nope]\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := snapshot.Parse([]byte(tt.data))
			require.ErrorIs(t, err, domain.ErrSnapshotParseFailed)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.wantLine, zErr.Metadata()["line"])
			assert.Equal(t, "compile", zErr.Metadata()["configuration"])
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := snapshot.Parse([]byte("configurations: [unclosed"))
	require.ErrorIs(t, err, domain.ErrSnapshotParseFailed)
}

func TestParse_InvalidConfigurationName(t *testing.T) {
	_, err := snapshot.Parse([]byte("configurations:\n  a/b: []\n"))
	require.ErrorIs(t, err, domain.ErrInvalidConfigurationName)
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.DefaultSnapshotFileName)
	require.NoError(t, os.WriteFile(path, []byte("configurations:\n  compile: [g:a:1.0]\n"), 0o600))

	s, err := snapshot.NewLoader().Load(path)
	require.NoError(t, err)
	modules, ok := s.Modules("compile")
	require.True(t, ok)
	assert.Equal(t, "g:a:1.0", modules[0].String())
}

func TestLoader_LoadMissing(t *testing.T) {
	_, err := snapshot.NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSnapshotReadFailed.Error())
}
