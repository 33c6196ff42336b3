package envcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertti/mobile-preflight/pkg/testutil"
)

func TestFileEnvGetter_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "ANDROID_HOME=/from/file\nJAVA_HOME=/jdk/from/file\n# comment\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	base := testutil.MapEnv{"ANDROID_HOME": "/from/process"}
	g, err := NewFileEnvGetter(base, path)
	require.NoError(t, err)

	v, ok := g.LookupEnv("ANDROID_HOME")
	assert.True(t, ok)
	assert.Equal(t, "/from/process", v, "process environment wins")

	v, ok = g.LookupEnv("JAVA_HOME")
	assert.True(t, ok)
	assert.Equal(t, "/jdk/from/file", v, "file fills gaps")

	_, ok = g.LookupEnv("ANDROID_SDK_ROOT")
	assert.False(t, ok)
}

func TestNewFileEnvGetter_MissingFile(t *testing.T) {
	_, err := NewFileEnvGetter(&RealEnvGetter{}, filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestRealEnvGetter(t *testing.T) {
	t.Setenv("MOBILE_PREFLIGHT_TEST_VAR", "value")
	v, ok := (&RealEnvGetter{}).LookupEnv("MOBILE_PREFLIGHT_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestRealFileStater(t *testing.T) {
	info, err := (&RealFileStater{}).Stat(t.TempDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
