// gettext — PO catalog parser, validator and statistics tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/epilgrim/gettext/config"
	"github.com/epilgrim/gettext/i18n"
	"github.com/epilgrim/gettext/langmeta"
	po "github.com/epilgrim/gettext/pofile"
	"github.com/spf13/cobra"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gettext",
		Short: "PO catalog parser, validator and statistics tool",
		Long: `gettext — PO catalog parser, validator and statistics tool.

Parses gettext .po/.pot files and reports precise syntax errors with
line numbers, in editor-friendly "file:line: message" form.

Commands:
  check       Validate PO files and report syntax errors
  stat        Show translation statistics per catalog
  cat         Dump the parsed entries of a catalog

Catalogs are given as file arguments; with no arguments, check and stat
read the .gettext.yaml manifest from the project root.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newCheckCmd(),
		newStatCmd(),
		newCatCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	i18n.Init("")
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gettext version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// target resolution (file args or .gettext.yaml manifest)
// ---------------------------------------------------------------------------

func resolveTargets(args []string) ([]string, *config.File, error) {
	if len(args) > 0 {
		return args, nil, nil
	}

	manifest, err := config.Load(rootDir)
	if err != nil {
		return nil, nil, err
	}
	if manifest == nil {
		return nil, nil, fmt.Errorf("no files given and no %s found in %s", config.FileName, rootDir)
	}

	paths, err := manifest.Resolve()
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("%s matched no catalogs", config.FileName)
	}
	return paths, manifest, nil
}

// ---------------------------------------------------------------------------
// check (validate catalogs, report syntax errors)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate PO files and report syntax errors",
		Long: `Parse each catalog and report syntax errors with line numbers.

Diagnostics are printed to stdout as "file:line: message" so editors and
CI logs can link them to the source. The exit code is 1 if any catalog
fails to parse.

With --strict, fuzzy entries are also counted as problems.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, manifest, err := resolveTargets(args)
			if err != nil {
				return err
			}
			if manifest != nil && manifest.Strict {
				strict = true
			}
			return runCheck(paths, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat fuzzy entries as problems")

	return cmd
}

func runCheck(paths []string, strict bool) error {
	problems := 0

	for _, path := range paths {
		entries, err := po.ParseFile(path)
		if err != nil {
			fmt.Println(diagnostic(path, err))
			problems++
			continue
		}

		if strict {
			for _, e := range entries {
				if !e.IsObsolete() && e.IsFuzzy() {
					fmt.Printf("%s: fuzzy entry %q\n", path, e.ID())
					problems++
				}
			}
		}
	}

	if problems > 0 {
		logError(i18n.N("%d problem found", "%d problems found", problems), problems)
		os.Exit(1)
	}
	logSuccess("%s", i18n.T("no problems found"))
	return nil
}

// diagnostic renders a parse failure in "file:line: message" form.
// Read errors have no line to point at and keep their own text.
func diagnostic(path string, err error) string {
	var serr *po.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Sprintf("%s:%d: %s", path, serr.Line, serr.Reason)
	}
	return fmt.Sprintf("%s: %v", path, err)
}

// ---------------------------------------------------------------------------
// stat (translation statistics)
// ---------------------------------------------------------------------------

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat [files...]",
		Short: "Show translation statistics per catalog",
		Long: `Show per-catalog translation statistics.

Counts translated, fuzzy, and untranslated entries, and labels each
catalog with the language declared in its header.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, _, err := resolveTargets(args)
			if err != nil {
				return err
			}
			runStat(paths)
			return nil
		},
	}

	return cmd
}

func runStat(paths []string) {
	fmt.Fprintf(os.Stderr, "\n%sTranslation Statistics%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))
	fmt.Fprintf(os.Stderr, "%-24s %-14s %-11s %-7s %-9s %s\n", "File", "Language", "Translated", "Fuzzy", "Untrans.", "Progress")
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))

	grandTotal := 0
	for _, path := range paths {
		entries, err := po.ParseFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%-24s %s%s%s\n", displayName(path), colorRed, diagnostic(path, err), colorReset)
			continue
		}

		total, translated, fuzzy, untranslated := po.Stats(entries)
		grandTotal += total

		percent := 0
		if total > 0 {
			percent = translated * 100 / total
		}

		fmt.Fprintf(os.Stderr, "%-24s %-14s %-11d %-7d %-9d %s\n",
			displayName(path), catalogLanguage(entries), translated, fuzzy, untranslated, progressBar(percent, 10))
	}

	fmt.Fprintln(os.Stderr, strings.Repeat("─", 72))
	fmt.Fprintf(os.Stderr, i18n.T("Total strings: %d")+"\n", grandTotal)
	fmt.Fprintln(os.Stderr)
}

// catalogLanguage labels a catalog from its header's Language field.
func catalogLanguage(entries []po.Entry) string {
	lang := po.HeaderField(po.Header(entries), "Language")
	if lang == "" {
		return "-"
	}
	meta := langmeta.Resolve(lang)
	if meta.Flag != "" {
		return lang + " " + meta.Flag
	}
	return lang
}

// displayName shortens a path for table display.
func displayName(path string) string {
	if len(path) <= 24 {
		return path
	}
	return "…" + path[len(path)-23:]
}

// progressBar renders a colored bar of the given width for a percentage.
func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := percent * width / 100
	color := colorGreen
	switch {
	case percent < 50:
		color = colorRed
	case percent < 100:
		color = colorYellow
	}

	return color + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + colorReset +
		fmt.Sprintf(" %3d%%", percent)
}

// ---------------------------------------------------------------------------
// cat (dump parsed entries)
// ---------------------------------------------------------------------------

func newCatCmd() *cobra.Command {
	var obsolete bool

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Dump the parsed entries of a catalog",
		Long: `Parse a catalog and print its entries in a readable listing.

Shows each entry's context, msgid, translation(s), flags, and source
references. Obsolete entries are skipped unless --obsolete is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := po.ParseFile(args[0])
			if err != nil {
				return errors.New(diagnostic(args[0], err))
			}
			runCat(entries, obsolete)
			return nil
		},
	}

	cmd.Flags().BoolVar(&obsolete, "obsolete", false, "Include obsolete (#~) entries")

	return cmd
}

func runCat(entries []po.Entry, includeObsolete bool) {
	shown := 0
	for _, e := range entries {
		if e.ID() == "" {
			continue // header
		}
		if e.IsObsolete() && !includeObsolete {
			continue
		}
		if shown > 0 {
			fmt.Println()
		}
		fmt.Print(formatEntry(e))
		shown++
	}
}

// formatEntry renders one entry as a readable block.
func formatEntry(e po.Entry) string {
	var b strings.Builder

	var marks []string
	if e.IsObsolete() {
		marks = append(marks, "obsolete")
	}
	if e.IsFuzzy() {
		marks = append(marks, "fuzzy")
	}

	switch t := e.(type) {
	case *po.Translation:
		if t.HasContext {
			fmt.Fprintf(&b, "msgctxt %q\n", t.Context)
		}
		fmt.Fprintf(&b, "msgid   %q\n", t.MsgID)
		fmt.Fprintf(&b, "msgstr  %q\n", t.MsgStr)
		writeEntryMeta(&b, &t.Meta, marks)
	case *po.PluralTranslation:
		if t.HasContext {
			fmt.Fprintf(&b, "msgctxt %q\n", t.Context)
		}
		fmt.Fprintf(&b, "msgid   %q\n", t.MsgID)
		fmt.Fprintf(&b, "plural  %q\n", t.MsgIDPlural)
		for i := 0; i < len(t.MsgStr); i++ {
			fmt.Fprintf(&b, "msgstr[%d] %q\n", i, t.MsgStr[i])
		}
		writeEntryMeta(&b, &t.Meta, marks)
	}

	return b.String()
}

func writeEntryMeta(b *strings.Builder, meta *po.Meta, marks []string) {
	if len(marks) > 0 {
		fmt.Fprintf(b, "  (%s)\n", strings.Join(marks, ", "))
	}
	if len(meta.References) > 0 {
		fmt.Fprintf(b, "  refs: %s\n", strings.Join(meta.References, " "))
	}
	if len(meta.Flags) > 0 {
		fmt.Fprintf(b, "  flags: %s\n", strings.Join(meta.Flags, ", "))
	}
}
