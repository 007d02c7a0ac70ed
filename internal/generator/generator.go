package generator

import (
	"context"
	"go/token"
)

// generator holds transient state while building models for one output file.
type generator struct {
	resolver *importResolver
	declared map[string]token.Position // package-level names outside the output file
	claimed  map[string]string         // generated name -> record that claimed it
	taken    map[string]bool           // union of declared and claimed, shared with resolver
}

// Run loads the package in cfg.Dir and writes the builders for the requested
// struct types to cfg.Output.
func Run(ctx context.Context, cfg Config) error { return run(ctx, cfg) }

func newGenerator(pkg *sourcePackage) *generator {
	g := &generator{
		declared: pkg.reservedNames(),
		claimed:  map[string]string{},
		taken:    map[string]bool{},
	}
	for name := range g.declared {
		g.taken[name] = true
	}
	g.resolver = newImportResolver(pkg.Types, g.taken)
	return g
}

// claim registers a generated package-level name for rec.
func (g *generator) claim(rec *record, name string) error {
	if pos, ok := g.declared[name]; ok {
		return diagf(rec.Pos, "generated identifier %s for %s collides with declaration at %s", name, rec.Name, pos)
	}
	if owner, ok := g.claimed[name]; ok {
		return diagf(rec.Pos, "generated identifier %s for %s collides with the builder of %s", name, rec.Name, owner)
	}
	if path, ok := g.resolver.byName[name]; ok {
		return diagf(rec.Pos, "generated identifier %s for %s collides with import of %q", name, rec.Name, path)
	}
	g.claimed[name] = rec.Name
	g.taken[name] = true
	return nil
}
