package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"

	"github.com/karupanerura/collection-cache/roster"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useJSON resolves the --output flag against the stdout of the process.
func useJSON(mode string, stdout io.Writer) bool {
	switch mode {
	case "json":
		return true
	case "text":
		return false
	}
	f, ok := stdout.(*os.File)
	return !ok || !isTerminal(f)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStudents(w io.Writer, students []roster.Student, programs map[string]roster.Program) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tPROGRAM\tPHONE\tSTATUS\tDOCUMENTS")
	for _, s := range students {
		program := s.ProgramID
		if p, ok := programs[s.ProgramID]; ok && p.Abbreviation != "" {
			program = p.Abbreviation
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.FullName(), program, s.DisplayPhone(), s.Status, strings.Join(s.DocumentNames(), ", "))
	}
	return tw.Flush()
}

func writePrograms(w io.Writer, programs []roster.Program) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tABBR\tDAYS")
	for _, p := range programs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Abbreviation, strings.Join(p.Days, ","))
	}
	return tw.Flush()
}
