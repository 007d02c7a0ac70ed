// Package config decodes the optional HCL file that drives bucogen.
//
// A config file lists the struct types to generate builders for and the
// options that would otherwise be passed as flags:
//
//	output = "${package}_builders_gen.go"
//	strict = false
//
//	record "Elements" {
//	  strict = true
//	}
//
// The variables ${package} and ${dir} hold the Go package name and the base
// name of the directory being generated.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// File is the decoded form of a bucogen config file.
type File struct {
	Output  string    `hcl:"output,optional"`
	Strict  bool      `hcl:"strict,optional"`
	Records []*Record `hcl:"record,block"`
}

// Record configures generation for one struct type.
type Record struct {
	Name   string `hcl:"name,label"`
	Strict bool   `hcl:"strict,optional"`
}

// Vars are the values available for interpolation inside a config file.
type Vars struct {
	Package string
	Dir     string
}

func (v Vars) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"package": cty.StringVal(v.Package),
			"dir":     cty.StringVal(v.Dir),
		},
	}
}

// Load reads and decodes the config file at path.
func Load(path string, vars Vars) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(src, path, vars)
}

// Parse decodes config source. filename is only used in diagnostics.
func Parse(src []byte, filename string, vars Vars) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, vars.evalContext(), &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	seen := make(map[string]bool, len(file.Records))
	for _, r := range file.Records {
		if seen[r.Name] {
			return nil, fmt.Errorf("config file %s: record %q declared more than once", filename, r.Name)
		}
		seen[r.Name] = true
	}
	return &file, nil
}

// RecordNames returns the configured record names in declaration order.
func (f *File) RecordNames() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Records))
	for _, r := range f.Records {
		names = append(names, r.Name)
	}
	return names
}

// StrictFor reports whether the config forces strict mode for the named record.
func (f *File) StrictFor(name string) bool {
	if f == nil {
		return false
	}
	if f.Strict {
		return true
	}
	for _, r := range f.Records {
		if r.Name == name {
			return r.Strict
		}
	}
	return false
}
