package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/richedit/internal/core/config"
	"github.com/hay-kot/richedit/internal/core/styles"
	"github.com/hay-kot/richedit/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "richedit config validate [options]",
				Description: "Validates the configuration file, checking keybindings, media directories and manifests.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ValidationError is one failed check in the validation report.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationReport is the JSON output of config validate.
type ValidationReport struct {
	Valid    bool                       `json:"valid"`
	Errors   []ValidationError          `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	report := buildReport(cmd.flags.Config, cmd.flags.ConfigPath)

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); err != nil {
			return err
		}
		if !report.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	return cmd.outputText(c, report)
}

func buildReport(cfg *config.Config, configPath string) ValidationReport {
	report := ValidationReport{Valid: true, Warnings: cfg.Warnings()}

	err := cfg.ValidateDeep(configPath)
	if err == nil {
		return report
	}

	report.Valid = false

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			report.Errors = append(report.Errors, ValidationError{Field: fe.Field, Message: fe.Err.Error()})
		}
		return report
	}

	report.Errors = append(report.Errors, ValidationError{Message: err.Error()})
	return report
}

func (cmd *ConfigValidateCmd) outputText(c *cli.Command, report ValidationReport) error {
	w := c.Root().Writer

	for _, warn := range report.Warnings {
		line := fmt.Sprintf("%s: %s", warn.Category, warn.Message)
		if warn.Item != "" {
			line += fmt.Sprintf(" (%s)", warn.Item)
		}
		_, _ = fmt.Fprintln(w, styles.TextWarningStyle.Render("● ")+line)
	}

	for _, e := range report.Errors {
		line := e.Message
		if e.Field != "" {
			line = fmt.Sprintf("%s: %s", e.Field, e.Message)
		}
		_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render("✘ ")+line)
	}

	_, _ = fmt.Fprintln(w)
	if report.Valid {
		_, _ = fmt.Fprintln(w, styles.TextSuccessStyle.Render("✔ Configuration is valid"))
		return nil
	}

	_, _ = fmt.Fprintln(w, styles.TextErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(report.Errors))))
	return cli.Exit("", 1)
}
