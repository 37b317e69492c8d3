package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizil/internal/cli"

	"github.com/cucumber/godog"
)

type featureState struct {
	quizDir     string
	quizPath    string
	previousWD  string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
	initialized bool
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a quiz file with one multiple choice question$`, state.aQuizFileWithOneMultipleChoiceQuestion)
	ctx.Step(`^a quiz file with an unsupported version$`, state.aQuizFileWithUnsupportedVersion)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the output does not contain "([^"]+)"$`, state.theOutputDoesNotContain)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the exit code is zero$`, state.theExitCodeIsZero)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^a file named "([^"]+)" exists$`, state.aFileNamedExists)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.initialized = false
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
		s.previousWD = ""
	}
	if s.quizDir != "" {
		_ = os.RemoveAll(s.quizDir)
		s.quizDir = ""
	}
}

func (s *featureState) aQuizFileWithOneMultipleChoiceQuestion() error {
	return s.writeQuiz(validQuizYAML())
}

func (s *featureState) aQuizFileWithUnsupportedVersion() error {
	return s.writeQuiz(unsupportedVersionQuizYAML())
}

func (s *featureState) writeQuiz(body string) error {
	if !s.initialized {
		dir, err := os.MkdirTemp("", "quizil-feature-*")
		if err != nil {
			return fmt.Errorf("create temp dir: %w", err)
		}
		s.quizDir = dir
		s.quizPath = filepath.Join(dir, "quiz.yaml")
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working dir: %w", err)
		}
		s.previousWD = wd
		if err := os.Chdir(dir); err != nil {
			return fmt.Errorf("chdir: %w", err)
		}
		s.initialized = true
	}
	if err := os.WriteFile(s.quizPath, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write quiz: %w", err)
	}
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "quizil" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theOutputDoesNotContain(text string) error {
	if strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q to be absent from output %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsZero() error {
	if s.exitCode != 0 {
		return fmt.Errorf("expected zero exit code, got %d (%s)", s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) aFileNamedExists(name string) error {
	if _, err := os.Stat(filepath.Join(s.quizDir, name)); err != nil {
		return fmt.Errorf("expected file %q: %w", name, err)
	}
	return nil
}

func validQuizYAML() string {
	return `version: 1
title: Arithmetic
questions:
  - type: multiple_choice
    object_id: q-mc
    prompt: "What is 2+2?"
    choices: ["3", "4", "5"]
    answer: "4"
`
}

func unsupportedVersionQuizYAML() string {
	return `version: 2
title: Arithmetic
questions:
  - type: multiple_choice
    prompt: "What is 2+2?"
    choices: ["3", "4"]
    answer: "4"
`
}
