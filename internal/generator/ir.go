package generator

import (
	"go/token"
	"go/types"
)

// This file houses the structures shared across generator phases
// (discovery -> extraction -> synthesis -> render).

// Config holds generation settings for the builder generator.
type Config struct {
	Dir        string   // directory to load ("." relative to where command invoked)
	Types      []string // struct type names to generate builders for
	Output     string   // output filename
	ConfigFile string   // optional HCL config file
	Strict     bool     // force strict mode for every record
	Command    string   // canonical invocation command line
	Version    string   // bucogen build version
}

// record is the shape of one struct type as seen by the synthesizer.
type record struct {
	Name   string
	Fields []field
	Strict bool
	Pos    token.Position
}

// field is a single named struct field.
type field struct {
	Name     string
	Cap      string // Name with its first rune upper-cased
	Type     types.Type
	Optional bool // declared type is syntactically Option[X]
	Pos      token.Position
}

func (r *record) optionalIndexes() []int {
	var idx []int
	for i, f := range r.Fields {
		if f.Optional {
			idx = append(idx, i)
		}
	}
	return idx
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Package string
	Source  string
	Command string
	Version string
	Imports []importModel
	Records []recordModel
}

type importModel struct {
	Name string // local name; empty when it matches the package name
	Path string
}

// recordModel is the complete builder surface for one struct.
type recordModel struct {
	Name        string // struct type
	Builder     string // generic builder type
	Unset       string // shared unset marker
	Constructor string
	Recv        string   // builder parameter name in setters and finalizers
	Constraint  string   // spelling of the slot constraint
	Initial     []string // builder type arguments with every slot unset
	Strict      bool
	Fields      []fieldModel
	Setters     []setterModel
	Finalizers  []finalizeModel
}

// fieldModel carries the per-field names used across templates.
type fieldModel struct {
	Name     string // struct field and builder member
	Slot     string // builder type parameter
	Marker   string // set marker type
	Type     string // field type as spelled in the generated file
	Optional bool
}

// setterModel is one Set<Field> method.
type setterModel struct {
	Builder  string
	Recv     string
	Name     string
	Field    string
	Marker   string
	Type     string
	Receiver []string // receiver type parameters, "_" at the target slot
	Result   []string // result type arguments
	Members  []memberInit
}

// finalizeModel is one Build function, keyed by the exact slot states it accepts.
type finalizeModel struct {
	Record    string
	Builder   string
	Recv      string
	Name      string
	Key       []string // builder type arguments accepted
	Defaulted []string // optional fields left at their zero value
	Members   []memberInit
}

type memberInit struct {
	Name string
	Expr string
}
