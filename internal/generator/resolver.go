package generator

import (
	"go/types"
	"sort"
	"strconv"
)

// importResolver spells field types for the generated file and records the
// imports those spellings need. Each imported path gets one local name; a
// name already taken by another path or by a package-level declaration is
// suffixed with a number.
type importResolver struct {
	self     *types.Package
	reserved map[string]bool
	byPath   map[string]string // path -> local name
	byName   map[string]string // local name -> path
	pkgNames map[string]string // path -> declared package name
}

func newImportResolver(self *types.Package, reserved map[string]bool) *importResolver {
	return &importResolver{
		self:     self,
		reserved: reserved,
		byPath:   map[string]string{},
		byName:   map[string]string{},
		pkgNames: map[string]string{},
	}
}

func (r *importResolver) qualifier(p *types.Package) string {
	if p == nil || (r.self != nil && p.Path() == r.self.Path()) {
		return ""
	}
	if name, ok := r.byPath[p.Path()]; ok {
		return name
	}
	name := p.Name()
	for i := 2; r.taken(name); i++ {
		name = p.Name() + strconv.Itoa(i)
	}
	r.byPath[p.Path()] = name
	r.byName[name] = p.Path()
	r.pkgNames[p.Path()] = p.Name()
	return name
}

func (r *importResolver) taken(name string) bool {
	if _, ok := r.byName[name]; ok {
		return true
	}
	return r.reserved[name]
}

// typeString spells t as it must appear in the generated file.
func (r *importResolver) typeString(t types.Type) string {
	return types.TypeString(t, r.qualifier)
}

// imports returns the recorded imports sorted by path.
func (r *importResolver) imports() []importModel {
	var out []importModel
	for path, name := range r.byPath {
		im := importModel{Path: path}
		if name != r.pkgNames[path] {
			im.Name = name
		}
		out = append(out, im)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
