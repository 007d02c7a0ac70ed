package generator

import "strings"

// buildFinalizers models the Build functions of a record. The base variant
// accepts only the all-set builder. Unless the record is strict, every
// non-empty subset of optional fields adds a variant accepting those slots
// unset; the fields of the subset keep their zero value.
func buildFinalizers(rec *record, m *recordModel) ([]finalizeModel, error) {
	base := exportAs(rec.Name, "Build"+upperFirst(rec.Name))
	fins := []finalizeModel{finalizer(base, m, nil)}
	if rec.Strict {
		return fins, nil
	}
	subsets := optionalSubsets(rec.optionalIndexes())
	suffixes, err := withoutSuffixes(rec, subsets)
	if err != nil {
		return nil, err
	}
	for i, subset := range subsets {
		fins = append(fins, finalizer(base+"Without"+suffixes[i], m, subset))
	}
	return fins, nil
}

// withoutSuffixes names each subset by the capitalised names of its fields.
// The names are concatenated unless two subsets would read the same, as
// with fields A, B and AB; then they are joined with an underscore.
func withoutSuffixes(rec *record, subsets [][]int) ([]string, error) {
	var clash [2][]int
	for _, sep := range []string{"", "_"} {
		suffixes := make([]string, len(subsets))
		seen := make(map[string]int, len(subsets))
		unique := true
		for i, subset := range subsets {
			suffixes[i] = joinCaps(rec, subset, sep)
			if prev, ok := seen[suffixes[i]]; ok {
				clash = [2][]int{subsets[prev], subset}
				unique = false
				break
			}
			seen[suffixes[i]] = i
		}
		if unique {
			return suffixes, nil
		}
	}
	return nil, diagf(rec.Pos, "optional fields of %s cannot be told apart in finalizer names: leaving %s unset and leaving %s unset are both spelled Without%s",
		rec.Name, fieldList(rec, clash[0]), fieldList(rec, clash[1]), joinCaps(rec, clash[1], "_"))
}

func fieldList(rec *record, subset []int) string {
	names := make([]string, len(subset))
	for i, f := range subset {
		names[i] = rec.Fields[f].Name
	}
	return strings.Join(names, ", ")
}

func joinCaps(rec *record, subset []int, sep string) string {
	caps := make([]string, len(subset))
	for i, f := range subset {
		caps[i] = rec.Fields[f].Cap
	}
	return strings.Join(caps, sep)
}

// finalizer models one Build function keyed by the slots in unset being
// unset and all others set.
func finalizer(name string, m *recordModel, unset []int) finalizeModel {
	skip := make(map[int]bool, len(unset))
	for _, i := range unset {
		skip[i] = true
	}
	fin := finalizeModel{Record: m.Name, Builder: m.Builder, Recv: m.Recv, Name: name}
	for i, f := range m.Fields {
		if skip[i] {
			fin.Key = append(fin.Key, m.Unset)
			fin.Defaulted = append(fin.Defaulted, f.Name)
			continue
		}
		fin.Key = append(fin.Key, f.Marker)
		fin.Members = append(fin.Members, memberInit{Name: f.Name, Expr: m.Recv + "." + f.Name + ".value"})
	}
	return fin
}

// optionalSubsets enumerates the non-empty subsets of idx: all combinations
// of size 1, then size 2, up to len(idx), each in lexicographic order.
func optionalSubsets(idx []int) [][]int {
	var out [][]int
	for size := 1; size <= len(idx); size++ {
		out = append(out, combinations(idx, size)...)
	}
	return out
}

func combinations(idx []int, size int) [][]int {
	var out [][]int
	pick := make([]int, size) // positions into idx
	for i := range pick {
		pick[i] = i
	}
	for {
		c := make([]int, size)
		for i, p := range pick {
			c[i] = idx[p]
		}
		out = append(out, c)

		// advance the rightmost position that still has room
		i := size - 1
		for i >= 0 && pick[i] == len(idx)-size+i {
			i--
		}
		if i < 0 {
			return out
		}
		pick[i]++
		for j := i + 1; j < size; j++ {
			pick[j] = pick[j-1] + 1
		}
	}
}
