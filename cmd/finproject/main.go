package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/finplan/finproject/internal/calculation"
	"github.com/finplan/finproject/internal/config"
	"github.com/finplan/finproject/internal/output"
)

var (
	flagMonths  int
	flagFormat  string
	flagSave    bool
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "finproject",
		Short:         "Deterministic personal-finance projection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	projectCmd := &cobra.Command{
		Use:   "project <plan.yaml>",
		Short: "Run a projection from a plan file",
		Args:  cobra.ExactArgs(1),
		RunE:  runProject,
	}
	projectCmd.Flags().IntVar(&flagMonths, "months", 0, "override the plan's projection horizon in months")
	projectCmd.Flags().StringVar(&flagFormat, "format", "console", fmt.Sprintf("output format, one of %v", output.AvailableFormatterNames()))
	projectCmd.Flags().BoolVar(&flagSave, "save", false, "write the report to a timestamped file instead of stdout")
	projectCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log engine detail to stderr")

	exampleCmd := &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example plan file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExample,
	}

	root.AddCommand(projectCmd, exampleCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runProject(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(args[0])
	if err != nil {
		return err
	}

	months := plan.MonthsToProject
	if flagMonths > 0 {
		months = flagMonths
	}

	engine := calculation.NewProjectionEngine()
	if flagVerbose {
		engine.SetLogger(stderrLogger{})
	}
	result := engine.Project(plan.Accounts, plan.Cashflows, plan.Scenario, months)

	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", flagFormat, output.AvailableFormatterNames())
	}

	if flagSave {
		filename, err := output.WriteFormatted(formatter, result, formatter.Name())
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", filename)
		return nil
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runExample(cmd *cobra.Command, args []string) error {
	path := "plan.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	plan := config.NewInputParser().CreateExamplePlan()
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	return nil
}

// stderrLogger routes engine logging to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }
