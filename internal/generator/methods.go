package generator

// buildSetters models one Set method per field. The receiver leaves the
// target slot as the blank type parameter, so a set field may be set again;
// every other slot is carried through unchanged.
func buildSetters(m *recordModel) []setterModel {
	setters := make([]setterModel, 0, len(m.Fields))
	for i, target := range m.Fields {
		s := setterModel{
			Builder: m.Builder,
			Recv:    m.Recv,
			Name:    "Set" + upperFirst(target.Name),
			Field:   target.Name,
			Marker:  target.Marker,
			Type:    target.Type,
		}
		for j, f := range m.Fields {
			if j == i {
				s.Receiver = append(s.Receiver, "_")
				s.Result = append(s.Result, target.Marker)
				s.Members = append(s.Members, memberInit{Name: f.Name, Expr: target.Marker + "{value: value}"})
				continue
			}
			s.Receiver = append(s.Receiver, f.Slot)
			s.Result = append(s.Result, f.Slot)
			s.Members = append(s.Members, memberInit{Name: f.Name, Expr: m.Recv + "." + f.Name})
		}
		setters = append(setters, s)
	}
	return setters
}
