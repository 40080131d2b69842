package gen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesseract/internal/analyze"
	"tesseract/internal/element"
	"tesseract/internal/gen"
)

const sitePkg = "tesseract/examples/site"

func loadSite(t *testing.T) *analyze.TypeGraph {
	t.Helper()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	analyzer := analyze.NewAnalyzer()
	analyzer.SetDir(repoRoot)
	analyzer.IgnoreFiles("html_gen.go")

	graph, err := analyzer.LoadPackages(sitePkg)
	require.NoError(t, err)

	return graph
}

// The committed html_gen.go of the example site must be exactly what the
// generator produces for it.
func TestSynthesize_ExampleSiteIsUpToDate(t *testing.T) {
	graph := loadSite(t)

	plan, err := gen.Synthesize(graph, element.DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, plan.Diagnostics.Warnings)
	assert.Len(t, plan.Definitions, 9)

	files, err := gen.NewGenerator(gen.DefaultGeneratorConfig(), nil).Generate(plan)
	require.NoError(t, err)
	require.Len(t, files, 1)

	committed, err := os.ReadFile(filepath.Join(files[0].Dir, files[0].Filename))
	require.NoError(t, err)

	assert.Equal(t, string(committed), string(files[0].Content),
		"examples/site/html_gen.go is stale; run go generate ./examples/site")
}

func TestSynthesize_ExampleSiteDefinitions(t *testing.T) {
	graph := loadSite(t)

	plan, err := gen.Synthesize(graph, element.DefaultOptions())
	require.NoError(t, err)

	byName := make(map[string]*element.Definition)
	for _, d := range plan.Definitions {
		byName[d.TypeName] = d
	}

	require.Contains(t, byName, "Meta")
	meta := byName["Meta"]
	assert.True(t, meta.Void)
	assert.True(t, meta.Select)
	assert.Empty(t, meta.Attributes)
	require.Len(t, meta.Variants, 2)
	assert.Equal(t, "charset", meta.Variants[0].Attr.Key)
	assert.Equal(t, "color-scheme", meta.Variants[1].Attr.Key)

	require.Contains(t, byName, "Stylesheet")
	link := byName["Stylesheet"]
	assert.False(t, link.Select)
	assert.Empty(t, link.Variants)
	require.Len(t, link.Attributes, 2)
	assert.Equal(t, "rel", link.Attributes[0].Key)
	assert.Equal(t, "href", link.Attributes[1].Key)

	require.Contains(t, byName, "Site")
	site := byName["Site"]
	assert.Equal(t, "html", site.Tag)
	require.Len(t, site.Attributes, 1)
	assert.Equal(t, element.FormatConvert, site.Attributes[0].Value.Format)

	assert.NotContains(t, byName, "Lang", "unannotated types are skipped")
}
