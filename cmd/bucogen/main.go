package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/calumari/buco/internal/ctxlog"
	"github.com/calumari/buco/internal/generator"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func main() {
	var typesCSV string
	var output string
	var dir string
	var configFile string
	var strict bool
	var verbose bool
	flag.StringVar(&typesCSV, "type", "", "Comma-separated list of struct type names to generate builders for")
	flag.StringVar(&output, "output", "buco_gen.go", "Output filename for generated code (a config file output takes precedence)")
	flag.StringVar(&dir, "dir", ".", "Directory of the package to scan (relative to current directory)")
	flag.StringVar(&configFile, "config", "", "Optional HCL config file listing records and options")
	flag.BoolVar(&strict, "strict", false, "Require every field, optional ones included, before Build for all types")
	flag.BoolVar(&verbose, "v", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBucogen generates compile-time checked builders for struct types.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -type=Elements,Data -output=builders_gen.go\n", os.Args[0])
	}
	flag.Parse()

	if typesCSV == "" && configFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -type or -config is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	var typeNames []string
	for p := range strings.SplitSeq(typesCSV, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			typeNames = append(typeNames, p)
		}
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	// build a simplified canonical command representation instead of raw argv (which may include build cache paths)
	cmdParts := []string{"bucogen"}
	if len(typeNames) > 0 {
		cmdParts = append(cmdParts, "-type="+strings.Join(typeNames, ","))
	}
	cmdParts = append(cmdParts, "-output="+output)
	if dir != "." {
		cmdParts = append(cmdParts, "-dir="+dir)
	}
	if configFile != "" {
		cmdParts = append(cmdParts, "-config="+configFile)
	}
	if strict {
		cmdParts = append(cmdParts, "-strict")
	}
	cfg := generator.Config{
		Dir:        dir,
		Types:      typeNames,
		Output:     output,
		ConfigFile: configFile,
		Strict:     strict,
		Command:    strings.Join(cmdParts, " "),
		Version:    deriveVersion(),
	}
	if err := generator.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bucogen: %v\n", err)
		os.Exit(1)
	}
}
