package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"fieldname-generator/schema"
)

// Record extracts the schema of the named struct type declared in the package.
func (p *PackageInfo) Record(typeName string) (*schema.Record, error) {
	id := TypeID{PkgPath: p.Path, Name: typeName}

	obj := p.pkg.Types.Scope().Lookup(typeName)
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrTypeNotFound)
	}

	if _, ok := tn.Type().Underlying().(*types.Struct); !ok || tn.IsAlias() {
		return nil, &schema.ShapeError{Record: typeName, Err: schema.ErrNotStruct}
	}

	gd, ts := p.findTypeSpec(typeName)
	if ts == nil {
		return nil, fmt.Errorf("%s: declaration: %w", id, ErrTypeNotFound)
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		// e.g. "type A B" where B is a struct; the fields are not declared here.
		return nil, &schema.ShapeError{Record: typeName, Err: schema.ErrNotStruct}
	}

	rec := &schema.Record{
		Name:     typeName,
		PkgPath:  p.Path,
		Exported: token.IsExported(typeName),
	}

	if ts.TypeParams != nil {
		for _, f := range ts.TypeParams.List {
			constraint := types.ExprString(f.Type)
			imports := p.exprImports(f.Type)
			for _, n := range f.Names {
				rec.TypeParams = append(rec.TypeParams, schema.TypeParam{
					Name:       n.Name,
					Constraint: constraint,
					Imports:    imports,
				})
			}
		}
	}

	opts, err := directiveOptions(docFor(gd, ts))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	rec.Options = opts

	index := 0
	for _, f := range st.Fields.List {
		if len(f.Names) == 0 {
			return nil, &schema.ShapeError{Record: typeName, Field: types.ExprString(f.Type), Err: schema.ErrUnnamedField}
		}

		sig := types.ExprString(f.Type)
		imports := p.exprImports(f.Type)

		tag, err := fieldTag(f)
		if err != nil {
			return nil, &schema.ShapeError{Record: typeName, Field: f.Names[0].Name, Err: err}
		}

		for _, n := range f.Names {
			i := index
			index++

			if n.Name == "_" {
				continue
			}

			rec.Fields = append(rec.Fields, schema.FieldDescriptor{
				Name:        n.Name,
				Signature:   sig,
				ExplicitTag: tag,
				Index:       i,
				Imports:     imports,
			})
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return rec, nil
}

// Annotated returns the names of struct types carrying a //fieldname:
// directive, sorted.
func (p *PackageInfo) Annotated() []string {
	var names []string

	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				if _, ok := ts.Type.(*ast.StructType); !ok {
					continue
				}

				if hasDirective(docFor(gd, ts)) {
					names = append(names, ts.Name.Name)
				}
			}
		}
	}

	sort.Strings(names)

	return names
}

// Structs returns the names of all struct types declared at package scope,
// sorted.
func (p *PackageInfo) Structs() []string {
	var names []string

	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		if _, ok := tn.Type().Underlying().(*types.Struct); ok {
			names = append(names, name)
		}
	}

	return names
}

func (p *PackageInfo) findTypeSpec(name string) (*ast.GenDecl, *ast.TypeSpec) {
	for _, file := range p.pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				if ts := spec.(*ast.TypeSpec); ts.Name.Name == name {
					return gd, ts
				}
			}
		}
	}

	return nil, nil
}

// docFor returns the doc comment of a type spec, falling back to the
// declaration's for ungrouped "type X struct" declarations.
func docFor(gd *ast.GenDecl, ts *ast.TypeSpec) *ast.CommentGroup {
	if ts.Doc != nil {
		return ts.Doc
	}

	if len(gd.Specs) == 1 {
		return gd.Doc
	}

	return nil
}

// exprImports resolves the package qualifiers used in a field type or a type
// parameter constraint.
func (p *PackageInfo) exprImports(expr ast.Expr) []schema.Import {
	var out []schema.Import

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		pn, ok := p.pkg.TypesInfo.Uses[id].(*types.PkgName)
		if !ok {
			return true
		}

		imp := schema.Import{Name: id.Name, Path: pn.Imported().Path()}
		if !slices.Contains(out, imp) {
			out = append(out, imp)
		}

		return true
	})

	return out
}

func fieldTag(f *ast.Field) (string, error) {
	if f.Tag == nil {
		return "", nil
	}

	raw, err := strconv.Unquote(f.Tag.Value)
	if err != nil {
		return "", fmt.Errorf("%w: %s", schema.ErrInvalidTag, f.Tag.Value)
	}

	return strings.TrimSpace(reflect.StructTag(raw).Get(schema.TagKey)), nil
}
