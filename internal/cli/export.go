package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"quizil/internal/export"
	"quizil/internal/quiz"
)

// runExport builds the handler for the export command.
func runExport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		out := flags.String("out", "", "output HTML file (default: quiz file with .html extension)")
		answers := flags.Bool("answers", false, "include stored answers")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() != 1 {
			fmt.Fprintln(stderr, "expected exactly one quiz file")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		path := flags.Arg(0)
		file, err := quiz.Load(path)
		if err != nil {
			fmt.Fprintf(stderr, "load quiz: %v\n", err)
			return ExitError
		}

		html, err := export.RenderHTML(context.Background(), file, *answers)
		if err != nil {
			fmt.Fprintf(stderr, "render html: %v\n", err)
			return ExitError
		}

		target := *out
		if target == "" {
			target = htmlPath(path)
		}
		if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "write html: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Exported %s\n", target)
		return ExitOK
	}
}

// htmlPath swaps a quiz file's extension for .html.
func htmlPath(path string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		return path[:i] + ".html"
	}
	return path + ".html"
}
