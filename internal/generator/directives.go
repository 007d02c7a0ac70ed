package generator

import (
	"go/ast"
	"strings"
)

const (
	directivePrefix = "//buco:"
	directiveStrict = "strict"
)

// typeDirectives reads //buco: directives from the doc comments of a type
// declaration. The doc of an ungrouped "type" keyword belongs to its single
// spec; a grouped declaration's doc applies to none of its specs.
func (p *sourcePackage) typeDirectives(decl typeDecl) (strict bool, err error) {
	var groups []*ast.CommentGroup
	if !decl.Gen.Lparen.IsValid() {
		groups = append(groups, decl.Gen.Doc)
	}
	groups = append(groups, decl.Spec.Doc)
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			s, err := p.parseDirective(c)
			if err != nil {
				return false, err
			}
			if s {
				strict = true
			}
		}
	}
	return strict, nil
}

// parseDirective reports whether c is the strict directive. Any other
// directive in the buco namespace is an error.
func (p *sourcePackage) parseDirective(c *ast.Comment) (bool, error) {
	if !strings.HasPrefix(c.Text, directivePrefix) {
		return false, nil
	}
	pos := p.Fset.Position(c.Slash)
	args := strings.Fields(strings.TrimPrefix(c.Text, directivePrefix))
	if len(args) == 0 {
		return false, diagf(pos, "empty buco directive")
	}
	switch args[0] {
	case directiveStrict:
		if len(args) > 1 {
			return false, diagf(pos, "buco:%s takes no arguments", directiveStrict)
		}
		return true, nil
	default:
		return false, diagf(pos, "unrecognized directive buco:%s", args[0])
	}
}
