package generator

import (
	"fmt"
	"go/ast"
	"go/types"
)

// optionTypeName is the generic wrapper whose instantiations mark a field as
// optional. The check is syntactic: aliases of Option are not recognised.
const optionTypeName = "Option"

// extractRecord turns the named struct type into a record, or returns a
// diagnostic explaining why no builder can be generated for it.
func (p *sourcePackage) extractRecord(name string) (*record, error) {
	obj := p.Types.Scope().Lookup(name)
	if obj == nil || p.inOutput(obj.Pos()) {
		return nil, fmt.Errorf("type %s not found in package %s", name, p.Name)
	}
	pos := p.Fset.Position(obj.Pos())
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, diagf(pos, "%s is not a type", name)
	}
	if tn.IsAlias() {
		return nil, diagf(pos, "%s is a type alias; declare the struct type directly", name)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return nil, diagf(pos, "%s is not a named type", name)
	}
	if named.TypeParams().Len() > 0 {
		return nil, diagf(pos, "%s is generic; builders are only generated for non-generic structs", name)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, diagf(pos, "builder can only be generated for struct types, %s is %s", name, shapeOf(named.Underlying()))
	}

	decl, ok := p.findTypeDecl(name)
	if !ok {
		return nil, diagf(pos, "declaration of %s not found", name)
	}
	astStruct, ok := decl.Spec.Type.(*ast.StructType)
	if !ok {
		return nil, diagf(pos, "%s is defined from another type; declare its fields with a struct literal", name)
	}
	strict, err := p.typeDirectives(decl)
	if err != nil {
		return nil, err
	}

	rec := &record{Name: name, Strict: strict, Pos: pos}
	caps := map[string]string{}
	idx := 0
	for _, af := range astStruct.Fields.List {
		n := len(af.Names)
		if n == 0 {
			n = 1 // embedded
		}
		optional := isOptionExpr(af.Type)
		for range n {
			v := st.Field(idx)
			idx++
			if v.Name() == "_" {
				continue
			}
			f := field{
				Name:     v.Name(),
				Cap:      upperFirst(v.Name()),
				Type:     v.Type(),
				Optional: optional,
				Pos:      p.Fset.Position(v.Pos()),
			}
			if prev, dup := caps[f.Cap]; dup {
				return nil, diagf(f.Pos, "field %s collides with field %s: both are set with Set%s", f.Name, prev, f.Cap)
			}
			caps[f.Cap] = f.Name
			rec.Fields = append(rec.Fields, f)
		}
	}
	return rec, nil
}

// isOptionExpr reports whether e is Option[X] or pkg.Option[X].
func isOptionExpr(e ast.Expr) bool {
	idx, ok := e.(*ast.IndexExpr)
	if !ok {
		return false
	}
	switch x := idx.X.(type) {
	case *ast.Ident:
		return x.Name == optionTypeName
	case *ast.SelectorExpr:
		return x.Sel.Name == optionTypeName
	}
	return false
}

// shapeOf names the kind of a non-struct underlying type for diagnostics.
func shapeOf(t types.Type) string {
	switch t.(type) {
	case *types.Interface:
		return "an interface"
	case *types.Array:
		return "a fixed-size array"
	case *types.Basic:
		return "a basic type"
	case *types.Slice:
		return "a slice"
	case *types.Map:
		return "a map"
	case *types.Pointer:
		return "a pointer"
	case *types.Signature:
		return "a function type"
	case *types.Chan:
		return "a channel"
	}
	return t.String()
}
