// hvtool is a CLI utility for inspecting HillVacuum map files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloudcalvin/HillVacuum/internal/config"
	"github.com/cloudcalvin/HillVacuum/internal/logger"
	"github.com/cloudcalvin/HillVacuum/internal/watch"
	"github.com/cloudcalvin/HillVacuum/pkg/document"
	"github.com/cloudcalvin/HillVacuum/pkg/formats"
	"github.com/cloudcalvin/HillVacuum/pkg/properties"
	"github.com/cloudcalvin/HillVacuum/pkg/thing"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "export":
		cmdExport(args)
	case "validate":
		cmdValidate(args)
	case "things":
		cmdThings(args)
	case "watch":
		cmdWatch(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`hvtool - HillVacuum map file utility

Usage:
  hvtool <command> [options]

Commands:
  info <file.hv|.anms|.prps>   Show file contents summary
  export <file.hv> [out.yaml]  Export brushes and things as YAML
  validate <file.hv>           Check a map file for errors
  things <dir> [dir...]        List thing definitions from .ini files
  watch <dir> [dir...]         Reload thing definitions on change

Examples:
  hvtool info level1.hv
  hvtool export level1.hv level1.yaml
  hvtool things ./things
  hvtool watch ./things ./extra_things`)
}

// loadMap parses a map and materializes it under the file's own schemas, the
// right choice for tooling with no application schema of its own.
func loadMap(path string) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	reg, err := properties.NewRegistry(nil, nil)
	if err != nil {
		return nil, err
	}
	doc, pending, err := document.Load(data, reg)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		doc = pending.Resolve(properties.AdoptMap)
	}
	return doc, nil
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hvtool info <file>")
		os.Exit(1)
	}
	path := args[0]

	switch strings.ToLower(filepath.Ext(path)) {
	case ".anms":
		animations, err := formats.ParseANMSFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Animations file: %s\n", path)
		fmt.Printf("Animations:      %d\n", len(animations))
		for _, ta := range animations {
			fmt.Printf("  %s\n", ta.Texture)
		}
	case ".prps":
		ps, err := formats.ParsePRPSFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Props file: %s\n", path)
		fmt.Printf("Props:      %d\n", len(ps))
		for i, p := range ps {
			fmt.Printf("  prop %d: %d brushes, %d things\n", i, p.BrushCount(), p.ThingCount())
		}
	default:
		doc, err := loadMap(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Map file:   %s\n", path)
		fmt.Printf("Brushes:    %d\n", len(doc.Brushes()))
		fmt.Printf("Things:     %d\n", len(doc.Things()))
		fmt.Printf("Animations: %d\n", doc.Animations().Len())
		fmt.Printf("Props:      %d\n", len(doc.Props()))
		if names := doc.BrushSchema().Names(); len(names) > 0 {
			fmt.Printf("Brush properties: %s\n", strings.Join(names, ", "))
		}
		if names := doc.ThingSchema().Names(); len(names) > 0 {
			fmt.Printf("Thing properties: %s\n", strings.Join(names, ", "))
		}
	}
}

func cmdExport(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hvtool export <file.hv> [out.yaml]")
		os.Exit(1)
	}

	doc, err := loadMap(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := yaml.Marshal(doc.Export())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 1 {
		if err := os.WriteFile(args[1], out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s\n", args[1])
		return
	}
	os.Stdout.Write(out)
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hvtool validate <file.hv>")
		os.Exit(1)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := formats.ParseHV(data); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: OK\n", args[0])
}

func loadCatalog(dirs []string) (*thing.Catalog, error) {
	var defs []thing.Definition
	for _, dir := range dirs {
		loaded, err := thing.LoadDefinitionsDir(dir)
		if err != nil {
			return nil, err
		}
		defs = append(defs, loaded...)
	}
	catalog := thing.NewCatalog()
	for _, c := range catalog.Reload(defs) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", c.Err())
	}
	return catalog, nil
}

func cmdThings(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hvtool things <dir> [dir...]")
		os.Exit(1)
	}

	catalog, err := loadCatalog(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Things: %d\n", catalog.Len())
	for _, id := range catalog.IDs() {
		def, _ := catalog.Lookup(id)
		fmt.Printf("  %5d  %-20s %gx%g  %s\n", def.ID, def.Name, def.Width, def.Height, def.Preview)
	}
}

func cmdWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	debounce := fs.Duration("debounce", 0, "Coalesce changes within this window")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: hvtool watch <dir> [dir...]")
		os.Exit(1)
	}
	dirs := fs.Args()

	cfg := config.Default()
	if *debounce > 0 {
		cfg.Watch.Debounce = *debounce
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	catalog, err := loadCatalog(dirs)
	if err != nil {
		logger.Log.Fatal("initial load failed", zap.Error(err))
	}
	logger.Log.Info("catalog loaded", zap.Int("things", catalog.Len()))

	w, err := watch.New(cfg.Watch.Debounce, dirs...)
	if err != nil {
		logger.Log.Fatal("watcher failed", zap.Error(err))
	}
	defer w.Close()

	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			logger.Log.Info("definitions changed", zap.String("file", path))
			reloaded, err := loadCatalog(dirs)
			if err != nil {
				logger.Log.Error("reload failed, keeping previous catalog", zap.Error(err))
				continue
			}
			catalog = reloaded
			logger.Log.Info("catalog reloaded", zap.Int("things", catalog.Len()))
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Log.Error("watch error", zap.Error(err))
		}
	}
}
