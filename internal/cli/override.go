package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/trainsafe/internal/cli/formatter"
	"github.com/alexanderramin/trainsafe/internal/domain"
	"github.com/alexanderramin/trainsafe/internal/importer"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

const noOverride = "none"

// overrideFlags are the supervisor override flags shared by classify and check.
type overrideFlags struct {
	status      string
	reason      string
	interactive bool
}

func (o *overrideFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.status, "override", "", "Supervisor override status (GREEN, YELLOW, RED)")
	fs.StringVar(&o.reason, "reason", "", "Reason recorded with the override")
	fs.BoolVarP(&o.interactive, "interactive", "i", false, "Prompt for the supervisor override")
}

// resolve returns the override to apply. Flags replace an override read
// from the player file; the interactive form replaces both.
func (o *overrideFlags) resolve(app *App, fromFile *domain.Override) (*domain.Override, error) {
	if o.interactive {
		if !app.interactive() {
			return nil, errors.New("--interactive requires a terminal")
		}
		status, reason := o.status, o.reason
		if status == "" {
			status = noOverride
		}
		if err := overrideForm(&status, &reason).Run(); err != nil {
			return nil, err
		}
		if status == noOverride {
			return fromFile, nil
		}
		return importer.ConvertOverride(&importer.OverrideImport{Status: status, Reason: reason}), nil
	}

	if o.status == "" {
		if o.reason != "" {
			return nil, errors.New("--reason requires --override")
		}
		return fromFile, nil
	}
	if strings.TrimSpace(o.reason) == "" {
		return nil, errors.New("--override requires --reason")
	}
	return importer.ConvertOverride(&importer.OverrideImport{Status: o.status, Reason: o.reason}), nil
}

// overrideForm collects a supervisor override. Only stricter overrides
// change the outcome; the form says so up front.
func overrideForm(status, reason *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Supervisor Override").
				Description("An override can only tighten the computed status.").
				Options(
					huh.NewOption("No override", noOverride),
					huh.NewOption("GREEN", string(domain.StatusGreen)),
					huh.NewOption("YELLOW", string(domain.StatusYellow)),
					huh.NewOption("RED", string(domain.StatusRed)),
				).
				Value(status),
			huh.NewInput().
				Title("Reason").
				Placeholder("e.g. reported calf tightness").
				Value(reason).
				Validate(func(s string) error {
					if *status != noOverride && strings.TrimSpace(s) == "" {
						return errors.New("a reason is required")
					}
					return nil
				}),
		),
	).WithTheme(trainsafeHuhTheme()).WithShowHelp(false)
}

// trainsafeHuhTheme returns a huh theme using the formatter palette.
func trainsafeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
