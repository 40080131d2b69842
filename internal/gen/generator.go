package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"sort"
	"text/template"

	"tesseract/internal/analyze"
	"tesseract/internal/config"
	"tesseract/internal/element"
)

// MarkupImport is the import path of the runtime the generated code uses.
const MarkupImport = "tesseract/markup"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputFile is the name of the generated file in each package.
	OutputFile string
	// Receiver is the receiver name of generated methods.
	Receiver string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
	// DebugDir, when set, receives the unformatted source of files that
	// go/format rejects.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		OutputFile:       "html_gen.go",
		Receiver:         "e",
		GenerateComments: true,
	}
}

// ConfigFrom builds the generator configuration from a loaded config file.
func ConfigFrom(cfg *config.Config) GeneratorConfig {
	return GeneratorConfig{
		OutputFile:       cfg.Output,
		Receiver:         cfg.Receiver,
		GenerateComments: cfg.EmitComments(),
	}
}

// Generator generates Go code from a synthesized Plan.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator. A nil logger discards output.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// PkgPath is the import path of the package the file belongs to.
	PkgPath string
	// Dir is the package directory the file is written to.
	Dir string
	// Filename is the name of the file (e.g., "html_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one file per package holding definitions. The plan must
// have no errors; Synthesize guarantees that.
func (g *Generator) Generate(p *Plan) ([]GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("refusing to generate: %w", p.Diagnostics.Error())
	}

	byPkg := make(map[string][]*element.Definition)
	for _, def := range p.Definitions {
		byPkg[def.Package()] = append(byPkg[def.Package()], def)
	}

	pkgPaths := make([]string, 0, len(byPkg))
	for path := range byPkg {
		pkgPaths = append(pkgPaths, path)
	}

	sort.Strings(pkgPaths)

	files := make([]GeneratedFile, 0, len(pkgPaths))

	for _, path := range pkgPaths {
		pkg := p.Package(path)

		file, err := g.generatePackage(pkg, byPkg[path])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", path, err)
		}

		g.logger.Debug("generated package",
			slog.String("package", path),
			slog.Int("types", len(byPkg[path])),
			slog.Int("bytes", len(file.Content)))

		files = append(files, *file)
	}

	return files, nil
}

// generatePackage renders the file for one package.
func (g *Generator) generatePackage(pkg *analyze.PackageInfo, defs []*element.Definition) (*GeneratedFile, error) {
	sorted := append([]*element.Definition(nil), defs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TypeName < sorted[j].TypeName })

	data := g.buildTemplateData(pkg, sorted)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		PkgPath:  pkg.Path,
		Dir:      pkg.Dir,
		Filename: g.config.OutputFile,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted code around for debugging.
		if g.config.DebugDir != "" {
			if derr := writeDebugUnformatted(g.config.DebugDir, pkg.Name, file.Filename, buf.Bytes()); derr != nil {
				g.logger.Warn("could not write unformatted output", slog.Any("error", derr))
			}
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

var fileTemplate = template.Must(template.New("html").Parse(`// Code generated by tesseract-gen. DO NOT EDIT.

package {{.PackageName}}

import "{{.MarkupImport}}"
{{range .Types}}
{{if $.Comments}}// Node builds the <{{.Tag}}> element for {{.Recv}}.
{{end}}func ({{.Recv}} {{.Name}}) Node() *markup.Node {
{{range .Body}}	{{.}}
{{end}}}
{{if $.Comments}}
// Render returns the markup of {{.Recv}}.
{{else}}
{{end}}func ({{.Recv}} {{.Name}}) Render() string {
	return {{.Recv}}.Node().Render()
}
{{end}}`))
