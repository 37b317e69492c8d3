package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"quizil/internal/quiz"
	"quizil/internal/render"
)

// runShow builds the handler for the show command.
func runShow(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		answers := flags.Bool("answers", false, "reveal stored answers")
		delay := flags.Duration("delay", 0, "pause between questions")
		noColor := flags.Bool("no-color", false, "disable styled output")
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

		file, err := quiz.Load(flags.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "load quiz: %v\n", err)
			return ExitError
		}

		opts := render.Options{Mode: render.ModeQuiz, NoColor: *noColor}
		if *answers {
			opts.Mode = render.ModeAnswerKey
		}

		if file.Title != "" {
			fmt.Fprintf(stdout, "%s\n\n", file.Title)
		}
		for i, q := range file.Questions {
			if i > 0 {
				fmt.Fprintln(stdout)
				if *delay > 0 {
					time.Sleep(*delay)
				}
			}
			fmt.Fprintf(stdout, "%d. %s\n", i+1, render.Render(q, opts))
		}
		return ExitOK
	}
}
