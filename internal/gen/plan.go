package gen

import (
	"fmt"
	"sort"

	"tesseract/internal/analyze"
	"tesseract/internal/common"
	"tesseract/internal/diagnostic"
	"tesseract/internal/element"
)

// Plan is the outcome of extraction over a set of types: the definitions to
// generate and everything noticed on the way.
type Plan struct {
	Graph       *analyze.TypeGraph
	Definitions []*element.Definition
	Diagnostics diagnostic.Diagnostics
}

// Package returns the package info for path, falling back to a minimal one
// when the graph does not know it.
func (p *Plan) Package(pkgPath string) *analyze.PackageInfo {
	if p.Graph != nil {
		if pkg, ok := p.Graph.Packages[pkgPath]; ok {
			return pkg
		}
	}

	return &analyze.PackageInfo{Path: pkgPath, Name: common.PkgAlias(pkgPath)}
}

// AnnotatedTypes lists the annotated types of the graph, sorted by package
// path and then name.
func AnnotatedTypes(graph *analyze.TypeGraph) []analyze.TypeID {
	var ids []analyze.TypeID

	for id, info := range graph.Types {
		if element.IsAnnotated(info) {
			ids = append(ids, id)
		}
	}

	sortIDs(ids)

	return ids
}

// Synthesize extracts every annotated type of the graph.
func Synthesize(graph *analyze.TypeGraph, opts element.Options) (*Plan, error) {
	return SynthesizeTypes(graph, AnnotatedTypes(graph), opts)
}

// SynthesizeTypes extracts the given types. Every failing type is reported in
// the plan's diagnostics; if any fails the plan holds no definitions and the
// combined error is returned, so nothing can be generated from it.
func SynthesizeTypes(graph *analyze.TypeGraph, ids []analyze.TypeID, opts element.Options) (*Plan, error) {
	p := &Plan{Graph: graph}

	ids = append([]analyze.TypeID(nil), ids...)
	sortIDs(ids)

	for _, id := range ids {
		name := element.QualifiedName(id)

		info := graph.GetType(id)
		if info == nil {
			p.Diagnostics.AddError(diagnostic.CodeFailed, "type not found", name, "")
			continue
		}

		def, err := element.Extract(info, opts)
		if err != nil {
			p.Diagnostics.AddErr(name, err)
			continue
		}

		for _, f := range element.UntaggedFields(info) {
			p.Diagnostics.AddWarning(diagnostic.CodeUntaggedField,
				"exported field has no html tag and is not rendered", name, f)
		}

		p.Diagnostics.AddInfo(diagnostic.CodeExtracted,
			fmt.Sprintf("<%s> with %d attributes, %d children, %d variants",
				def.Tag, len(def.Attributes), len(def.Children), len(def.Variants)),
			name, "")

		p.Definitions = append(p.Definitions, def)
	}

	if p.Diagnostics.HasErrors() {
		p.Definitions = nil
		return p, p.Diagnostics.Error()
	}

	return p, nil
}

func sortIDs(ids []analyze.TypeID) {
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].PkgPath != ids[j].PkgPath {
			return ids[i].PkgPath < ids[j].PkgPath
		}

		return ids[i].Name < ids[j].Name
	})
}
