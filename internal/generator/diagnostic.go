package generator

import (
	"fmt"
	"go/token"
)

// Diagnostic is a generation error tied to a source position.
type Diagnostic struct {
	Pos token.Position
	Msg string
}

func (d *Diagnostic) Error() string {
	if d.Pos.IsValid() {
		return d.Pos.String() + ": " + d.Msg
	}
	return d.Msg
}

func diagf(pos token.Position, format string, args ...any) *Diagnostic {
	return &Diagnostic{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
