package generator

// synthesize builds the complete builder model for one record: marker
// vocabulary, builder type, constructor, setters and the finalize family.
func (g *generator) synthesize(rec *record) (*recordModel, error) {
	prefix := lowerFirst(rec.Name)
	m := &recordModel{
		Name:        rec.Name,
		Builder:     prefix + "Builder",
		Unset:       prefix + "Unset",
		Constructor: exportAs(rec.Name, "New"+upperFirst(rec.Name)+"Builder"),
		Recv:        "b",
		Constraint:  "any",
		Strict:      rec.Strict,
	}
	if rec.Name == m.Recv {
		// the finalizers name the record type inside their body
		m.Recv = "builder"
	}
	if _, ok := g.declared["any"]; ok {
		m.Constraint = "interface{}"
	}
	for _, f := range rec.Fields {
		m.Fields = append(m.Fields, fieldModel{
			Name:     f.Name,
			Slot:     f.Cap + "Slot",
			Marker:   prefix + f.Cap + "Set",
			Optional: f.Optional,
		})
	}
	m.Initial = repeat(m.Unset, len(m.Fields))
	m.Setters = buildSetters(m)
	fins, err := buildFinalizers(rec, m)
	if err != nil {
		return nil, err
	}
	m.Finalizers = fins

	// package-level names are claimed before field types are spelled so the
	// import resolver never picks one of them as a local package name
	names := []string{m.Builder, m.Unset, m.Constructor}
	for _, f := range m.Fields {
		names = append(names, f.Marker)
	}
	for _, fin := range m.Finalizers {
		names = append(names, fin.Name)
	}
	for _, name := range names {
		if err := g.claim(rec, name); err != nil {
			return nil, err
		}
	}

	for i, f := range rec.Fields {
		m.Fields[i].Type = g.resolver.typeString(f.Type)
		m.Setters[i].Type = m.Fields[i].Type
	}
	if err := checkShadowing(rec, m); err != nil {
		return nil, err
	}
	return m, nil
}
