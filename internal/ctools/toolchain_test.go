package ctools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calctool/internal/config"
)

func TestNewUsesConfiguredPaths(t *testing.T) {
	tc := New(&config.Config{GCCPath: "/usr/bin/gcc-14", ObjdumpPath: "/usr/bin/objdump"})
	assert.Equal(t, "/usr/bin/gcc-14", tc.GCC)
	assert.Equal(t, "/usr/bin/objdump", tc.Objdump)
}

func TestCompileArgs(t *testing.T) {
	args := compileArgs(DefaultCompileOptions, "output.o")
	assert.Equal(t, []string{"-O0", "-std=c17", "-xc", "-c", "-", "-o", "output.o"}, args)
}

func TestCompileArgsCustomOptions(t *testing.T) {
	args := compileArgs("-O2 -Wall", "calc.o")
	assert.Equal(t, []string{"-O2", "-Wall", "-xc", "-c", "-", "-o", "calc.o"}, args)
}

func TestDisassembleArgs(t *testing.T) {
	args := disassembleArgs(DefaultDisassembleOptions, "calc.o")
	assert.Equal(t, []string{"-d", "-M", "intel", "-S", "calc.o"}, args)
}

func TestLoadSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	content := `[{"code":"int main() { return 0; }","assembly":"xor eax, eax\nret"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	samples, err := LoadSamples(path)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Contains(t, samples[0].Code, "int main")
	assert.Contains(t, samples[0].Assembly, "ret")
}

func TestLoadSamplesMissingFile(t *testing.T) {
	samples, err := LoadSamples(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, samples)
}

func TestLoadSamplesInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := LoadSamples(path)
	assert.Error(t, err)
}
