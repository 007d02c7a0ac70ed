package generator

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/tools/go/packages"
)

// sourcePackage is the subset of a loaded package the generator works on.
type sourcePackage struct {
	Name  string
	Path  string
	Fset  *token.FileSet
	Files []*ast.File
	Types *types.Package
	Info  *types.Info
	// Output is the path of the generated file. Declarations in it belong to
	// a previous run and are ignored.
	Output string
	// Undefined holds type errors naming identifiers the package does not
	// declare yet. They are only fatal if generation does not declare them.
	Undefined []undefinedRef
}

// undefinedRef is a type error of the form "undefined: Name".
type undefinedRef struct {
	Name string
	Err  packages.Error
}

var undefinedRe = regexp.MustCompile(`^undefined: (\w+)$`)

// loadDir loads the Go package for a directory. Errors reported against the
// output file are tolerated since a stale generated file is about to be
// replaced. References to undefined identifiers are set aside: code calling
// builders that were never generated, or that a rename is about to replace,
// must not prevent generating them.
func loadDir(ctx context.Context, dir, output string) (*sourcePackage, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedFiles | packages.NeedCompiledGoFiles,
		Dir:     dir,
	}
	pkgs, err := packages.Load(cfg, "./")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	p := pkgs[0]
	var (
		errs      []error
		undefined []undefinedRef
	)
	for _, e := range p.Errors {
		if strings.HasPrefix(e.Pos, output+":") {
			continue
		}
		if m := undefinedRe.FindStringSubmatch(e.Msg); e.Kind == packages.TypeError && m != nil {
			undefined = append(undefined, undefinedRef{Name: m[1], Err: e})
			continue
		}
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if p.Types == nil || p.TypesInfo == nil {
		return nil, fmt.Errorf("package in %s has no type information", dir)
	}
	return &sourcePackage{
		Name:      p.Name,
		Path:      p.PkgPath,
		Fset:      p.Fset,
		Files:     p.Syntax,
		Types:     p.Types,
		Info:      p.TypesInfo,
		Output:    output,
		Undefined: undefined,
	}, nil
}

// inOutput reports whether pos lies in the generated output file.
func (p *sourcePackage) inOutput(pos token.Pos) bool {
	if p.Output == "" || !pos.IsValid() {
		return false
	}
	return filepath.Clean(p.Fset.Position(pos).Filename) == filepath.Clean(p.Output)
}

// typeDecl is a type declaration located in the package syntax.
type typeDecl struct {
	Gen  *ast.GenDecl
	Spec *ast.TypeSpec
}

// findTypeDecl locates the declaration of a package-level type by name,
// skipping the output file.
func (p *sourcePackage) findTypeDecl(name string) (typeDecl, bool) {
	for _, f := range p.Files {
		if p.inOutput(f.Pos()) {
			continue
		}
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, s := range gd.Specs {
				if ts, ok := s.(*ast.TypeSpec); ok && ts.Name.Name == name {
					return typeDecl{Gen: gd, Spec: ts}, true
				}
			}
		}
	}
	return typeDecl{}, false
}

// reservedNames returns the package-level identifiers declared outside the
// output file, keyed by name.
func (p *sourcePackage) reservedNames() map[string]token.Position {
	res := map[string]token.Position{}
	scope := p.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if p.inOutput(obj.Pos()) {
			continue
		}
		res[name] = p.Fset.Position(obj.Pos())
	}
	return res
}
