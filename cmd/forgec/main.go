// forgec is the Forge front-end driver: it compiles source files through the
// full pipeline and renders the collected diagnostics.
//
// Exit codes: 0 when every file compiled with at most warnings, 1 when any
// file produced errors, 2 on usage errors.
package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/forge-lang/forge/internal/ast"
	"github.com/forge-lang/forge/internal/compiler"
	"github.com/forge-lang/forge/internal/config"
	"github.com/forge-lang/forge/internal/diagnostics"
	"github.com/forge-lang/forge/internal/history"
	"github.com/forge-lang/forge/internal/source"
)

var (
	emitTokens bool
	emitAST    bool
	noColor    bool
	debug      bool
	useHistory bool
)

// errCompileFailed marks a run that produced error diagnostics, as opposed
// to a usage error.
var errCompileFailed = errors.New("compilation failed")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if errors.Is(err, errCompileFailed) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "forgec <file>...",
		Short:         "Compile Forge source files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCompile,
	}

	root.Flags().BoolVar(&emitTokens, "emit-tokens", false, "print the token stream")
	root.Flags().BoolVar(&emitAST, "emit-ast", false, "print the parsed tree in debug format")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging for the history store")
	root.Flags().BoolVar(&useHistory, "history", false, "record this run in the compile-history store")

	root.AddCommand(newHistoryCommand())

	return root
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if noColor {
		cfg.NoColor = true
	}
	if debug {
		cfg.Debug = true
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}

	var store *history.Store
	if useHistory && cfg.HistoryDB != "" {
		store, err = history.Open(cfg.HistoryDB, cfg.Debug)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			defer store.Close()
		}
	}

	renderer := diagnostics.NewRenderer(os.Stderr, cfg.NoColor)
	failed := false

	for _, file := range files {
		text, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", file, err)
		}
		src := source.New(file, string(text))

		startedAt := time.Now()
		ctx := compiler.CompileContext(src)
		duration := time.Since(startedAt)

		if emitTokens {
			for _, tok := range ctx.Tokens {
				fmt.Printf("%s\n", tok)
			}
		}
		if emitAST && ctx.Unit != nil {
			fmt.Println(ast.Format(ctx.Unit))
		}

		renderer.RenderAll(ctx.Messages)
		if ctx.Messages.HasErrors() {
			failed = true
		}

		if store != nil {
			if _, err := store.RecordRun(src, ctx.Messages, startedAt, duration); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
	}

	if failed {
		return errCompileFailed
	}
	return nil
}

// expandArgs resolves glob patterns in file arguments. Plain paths pass
// through untouched so missing-file errors stay precise.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}

func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent compile runs from the history store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.HistoryDB == "" {
				return fmt.Errorf("FORGE_HISTORY_DB is not set")
			}

			store, err := history.Open(cfg.HistoryDB, cfg.Debug || debug)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(limit)
			if err != nil {
				return err
			}

			for _, run := range runs {
				status := "ok"
				if !run.Succeeded {
					status = "failed"
				}
				fmt.Printf("%s  %-6s  %-10s  %3d message(s)  %dms  %s\n",
					run.StartedAt.Format(time.RFC3339), status, run.MaxSeverity,
					run.MessageCount, run.DurationMS, run.SourceName)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}
