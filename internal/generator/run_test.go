package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeModule lays out a throwaway module holding a single package.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	files["go.mod"] = "module example.com/elements\n\ngo 1.24\n"
	for name, src := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	return dir
}

func readOutput(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(b)
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("writes builders for the requested types", func(t *testing.T) {
		dir := writeModule(t, map[string]string{"models.go": dataModels})
		err := Run(ctx, Config{Dir: dir, Types: []string{"Data"}, Output: "buco_gen.go", Command: "bucogen -type=Data", Version: "test"})
		require.NoError(t, err)
		out := readOutput(t, dir, "buco_gen.go")
		require.Contains(t, out, "// Command: bucogen -type=Data")
		require.Contains(t, out, "func BuildData(b dataBuilder[dataV1Set, dataV2Set, dataV3Set]) Data {")
	})

	t.Run("stale output file is replaced", func(t *testing.T) {
		dir := writeModule(t, map[string]string{
			"models.go":   dataModels,
			"buco_gen.go": "package elements\n\nfunc NewDataBuilder() {}\n\nvar broken int = \"stale\"\n",
		})
		err := Run(ctx, Config{Dir: dir, Types: []string{"Data"}, Output: "buco_gen.go"})
		require.NoError(t, err)
		require.Contains(t, readOutput(t, dir, "buco_gen.go"), "func NewDataBuilder() dataBuilder[")
	})

	t.Run("config file selects records and output", func(t *testing.T) {
		dir := writeModule(t, map[string]string{
			"option.go": optionSrc,
			"models.go": elementsModels,
			"buco.hcl":  "output = \"${package}_builders_gen.go\"\n\nrecord \"Elements\" {\n  strict = true\n}\n",
		})
		err := Run(ctx, Config{Dir: dir, Output: "buco_gen.go", ConfigFile: filepath.Join(dir, "buco.hcl")})
		require.NoError(t, err)
		out := readOutput(t, dir, "elements_builders_gen.go")
		require.Equal(t, []string{"BuildElements"}, finalizerNames(out))
	})

	t.Run("callers of builders not generated yet", func(t *testing.T) {
		dir := writeModule(t, map[string]string{
			"models.go": dataModels,
			"usage.go":  "package elements\n\nvar data = BuildData(NewDataBuilder().SetV1(1).SetV2(\"hello\").SetV3(1.414))\n",
		})
		err := Run(ctx, Config{Dir: dir, Types: []string{"Data"}, Output: "buco_gen.go"})
		require.NoError(t, err)
		require.Contains(t, readOutput(t, dir, "buco_gen.go"), "func NewDataBuilder() dataBuilder[")
	})

	t.Run("undefined names generation does not declare", func(t *testing.T) {
		dir := writeModule(t, map[string]string{
			"models.go": dataModels,
			"usage.go":  "package elements\n\nvar data = BuildData(NewDataBuilder())\n\nvar missing = Missing\n",
		})
		err := Run(ctx, Config{Dir: dir, Types: []string{"Data"}, Output: "buco_gen.go"})
		require.ErrorContains(t, err, "undefined: Missing")
		require.NotContains(t, err.Error(), "undefined: BuildData")
		_, statErr := os.Stat(filepath.Join(dir, "buco_gen.go"))
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("no types", func(t *testing.T) {
		dir := writeModule(t, map[string]string{"models.go": dataModels})
		err := Run(ctx, Config{Dir: dir, Output: "buco_gen.go"})
		require.EqualError(t, err, "no types provided")
	})

	t.Run("diagnostics leave no output", func(t *testing.T) {
		dir := writeModule(t, map[string]string{"models.go": "package elements\n\ntype Elements interface{}\n"})
		err := Run(ctx, Config{Dir: dir, Types: []string{"Elements"}, Output: "buco_gen.go"})
		require.ErrorContains(t, err, "Elements is an interface")
		_, statErr := os.Stat(filepath.Join(dir, "buco_gen.go"))
		require.True(t, os.IsNotExist(statErr))
	})
}

func TestMergeTypes(t *testing.T) {
	require.Equal(t, []string{"Data", "Elements", "Pair"}, mergeTypes([]string{"Data", " Elements", ""}, []string{"Elements", "Pair"}))
	require.Empty(t, mergeTypes(nil, nil))
}
