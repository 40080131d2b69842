package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	dir       string
	ignored   map[string]bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// SetDir sets the working directory patterns are resolved against.
// The default is the current directory.
func (a *Analyzer) SetDir(dir string) {
	a.dir = dir
}

// IgnoreFiles makes the loader see only the package clause of files with the
// given base names. Previously generated files are ignored this way so that a
// stale copy cannot break type checking. Type errors in a package holding such
// a file are skipped and counted in PackageInfo.TypeErrors: code calling the
// methods the file declared cannot resolve them.
func (a *Analyzer) IgnoreFiles(names ...string) {
	if a.ignored == nil {
		a.ignored = make(map[string]bool)
	}

	for _, n := range names {
		a.ignored[n] = true
	}
}

func (a *Analyzer) parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	mode := parser.AllErrors | parser.ParseComments
	if a.ignored[filepath.Base(filename)] {
		mode = parser.PackageClauseOnly
	}

	return parser.ParseFile(fset, filename, src, mode)
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/site", "tesseract/markup").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}
	if len(a.ignored) > 0 {
		cfg.ParseFile = a.parseFile
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	tolerated := make(map[string]int)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			// Code calling methods declared in an ignored file no longer
			// type-checks; the declarations themselves are still complete.
			if e.Kind == packages.TypeError && a.hasIgnoredFile(pkg) {
				tolerated[pkg.PkgPath]++
				continue
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register every package first so that named types declared in any of
	// them are not mistaken for external ones.
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path:       pkg.PkgPath,
			Name:       pkg.Name,
			Dir:        packageDir(pkg),
			TypeErrors: tolerated[pkg.PkgPath],
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// hasIgnoredFile reports whether one of pkg's files was read as a package
// clause only.
func (a *Analyzer) hasIgnoredFile(pkg *packages.Package) bool {
	if len(a.ignored) == 0 {
		return false
	}

	for _, f := range pkg.GoFiles {
		if a.ignored[filepath.Base(f)] {
			return true
		}
	}

	return false
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(pkg.GoFiles[0])
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	pkgInfo := a.graph.Packages[pkg.PkgPath]
	comments := collectComments(pkg.Syntax)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions)
		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		// Only process exported types
		if !typeName.Exported() {
			continue
		}

		typeID := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = typeID
		typeInfo.Doc = comments.types[name]

		a.graph.Types[typeID] = typeInfo
		pkgInfo.Types = append(pkgInfo.Types, typeID)
	}

	a.collectConstants(pkg, comments)

	return nil
}

// collectConstants attaches each package-level constant to the named type it
// is declared with, in source order.
func (a *Analyzer) collectConstants(pkg *packages.Package, comments *commentIndex) {
	type positioned struct {
		info ConstInfo
		pos  token.Pos
	}

	byType := make(map[TypeID][]positioned)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: named.Obj().Name()}
		if a.graph.Types[id] == nil {
			continue
		}

		byType[id] = append(byType[id], positioned{
			info: ConstInfo{
				Name:  name,
				Value: c.Val().ExactString(),
				Doc:   comments.consts[name],
			},
			pos: c.Pos(),
		})
	}

	for id, consts := range byType {
		sort.Slice(consts, func(i, j int) bool { return consts[i].pos < consts[j].pos })

		info := a.graph.Types[id]
		for _, c := range consts {
			info.Constants = append(info.Constants, c.info)
		}
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType:    t,
		HasRender: hasRenderMethod(t),
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic
		info.ID = TypeID{Name: tt.Name()}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		// Maps, channels, arrays, etc. are marked as unknown (unsupported)
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()

	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	info.ID = TypeID{
		PkgPath: pkgPath,
		Name:    obj.Name(),
	}
	info.TypeParams = named.TypeParams().Len()

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Basic:
		// Named basic type (e.g., type Lang string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)

	case *types.Interface:
		info.Kind = TypeKindInterface

	default:
		// Universe types such as error have no package.
		if pkgPath == "" || a.isExternalPackage(pkgPath) {
			info.Kind = TypeKindExternal
		} else {
			// Named type wrapping something else in our packages
			info.Kind = TypeKindAlias
			info.Underlying = a.analyzeType(ut)
		}
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		// Unexported fields are kept: generated code lives in the same package.
		fieldInfo := FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		}

		info.Fields = append(info.Fields, fieldInfo)
	}
}

// hasRenderMethod reports whether the value method set of t contains
// Render() string.
func hasRenderMethod(t types.Type) bool {
	sel := types.NewMethodSet(t).Lookup(nil, "Render")
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Typ[types.String])
}

// GetType returns the TypeInfo for a named type declared in pkgPath.
func (a *Analyzer) GetType(pkgPath, typeName string) (*TypeInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}
	info := a.graph.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	return info, nil
}

// commentIndex maps declared names to their raw comment lines.
type commentIndex struct {
	types  map[string][]string
	consts map[string][]string
}

func collectComments(files []*ast.File) *commentIndex {
	idx := &commentIndex{
		types:  make(map[string][]string),
		consts: make(map[string][]string),
	}

	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			// An unparenthesized declaration carries its doc on the GenDecl.
			var declDoc *ast.CommentGroup
			if !gd.Lparen.IsValid() {
				declDoc = gd.Doc
			}

			switch gd.Tok {
			case token.TYPE:
				for _, spec := range gd.Specs {
					ts := spec.(*ast.TypeSpec)
					idx.types[ts.Name.Name] = rawLines(firstNonNil(ts.Doc, declDoc), ts.Comment)
				}

			case token.CONST:
				for _, spec := range gd.Specs {
					vs := spec.(*ast.ValueSpec)
					lines := rawLines(firstNonNil(vs.Doc, declDoc), vs.Comment)
					for _, n := range vs.Names {
						idx.consts[n.Name] = lines
					}
				}
			}
		}
	}

	return idx
}

func firstNonNil(groups ...*ast.CommentGroup) *ast.CommentGroup {
	for _, g := range groups {
		if g != nil {
			return g
		}
	}

	return nil
}

// rawLines returns the comment text of every group with the markers kept.
// CommentGroup.Text is not used because it drops //name: directives.
func rawLines(groups ...*ast.CommentGroup) []string {
	var lines []string

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			lines = append(lines, c.Text)
		}
	}

	return lines
}
