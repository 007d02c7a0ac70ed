package generator

// checkShadowing rejects records whose generated code would not mean what it
// says: a slot type parameter named like an identifier used in a field type
// would capture that identifier inside the setter signatures, and a builder
// member named like a setter would clash with the method.
func checkShadowing(rec *record, m *recordModel) error {
	slots := map[string]int{}
	for i, f := range m.Fields {
		slots[f.Slot] = i
	}
	for i, f := range m.Fields {
		for _, id := range identifiers(f.Type) {
			if j, ok := slots[id]; ok {
				return diagf(rec.Fields[j].Pos, "type parameter %s for field %s would shadow %s in the type of field %s", id, rec.Fields[j].Name, id, rec.Fields[i].Name)
			}
		}
	}

	members := map[string]bool{}
	for _, f := range m.Fields {
		members[f.Name] = true
	}
	for i, s := range m.Setters {
		if members[s.Name] {
			return diagf(rec.Fields[i].Pos, "setter %s for field %s clashes with a field of the same name", s.Name, s.Field)
		}
	}
	return nil
}
