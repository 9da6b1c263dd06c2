package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardfile/cardfile/internal/config"
	"github.com/cardfile/cardfile/internal/store"
	"github.com/cardfile/cardfile/internal/ui"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "list":
			runList(os.Args[2:])
			return
		case "import":
			runImport(os.Args[2:])
			return
		case "export":
			runExport(os.Args[2:])
			return
		}
	}
	runTUI(os.Args[1:])
}

// openStore loads the configuration and opens the store. The returned
// warning is non-empty when the store file existed but could not be
// read; the session starts empty and the next save overwrites it.
func openStore(dataDir string) (*store.Store, string) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	st, err := store.Open(cfg.StorePath())
	warning := ""
	var corrupt *store.CorruptFileError
	if errors.As(err, &corrupt) {
		warning = corrupt.Error()
	} else if err != nil {
		warning = err.Error()
	}
	return st, warning
}

func runTUI(args []string) {
	fs := flag.NewFlagSet("cardfile", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "override data directory")
	fs.Parse(args)

	st, warning := openStore(*dataDir)
	p := tea.NewProgram(ui.NewApp(st, warning), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "override data directory")
	query := fs.String("q", "", "filter by name or phone substring")
	fs.Parse(args)

	st, warning := openStore(*dataDir)
	if warning != "" {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
	for _, c := range store.Filter(st.Contacts(), *query) {
		fmt.Printf("%s\t%s\t%s\n", c.Name, c.Phone, c.Email)
	}
}

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "override data directory")
	file := fs.String("file", "", "JSON file to merge into the store")
	fs.Parse(args)
	if *file == "" {
		fmt.Fprintln(os.Stderr, "import: -file is required")
		os.Exit(2)
	}

	st, warning := openStore(*dataDir)
	if warning != "" {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
	n, err := st.ImportMerge(*file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("Imported %d contact(s)\n", n)
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataDir := fs.String("data-dir", "", "override data directory")
	file := fs.String("file", "", "destination JSON file")
	fs.Parse(args)
	if *file == "" {
		fmt.Fprintln(os.Stderr, "export: -file is required")
		os.Exit(2)
	}

	st, warning := openStore(*dataDir)
	if warning != "" {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
	if err := st.Export(*file); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d contact(s) to %s\n", st.Len(), *file)
}
