package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arifmahmud/nishwash/internal/models"
	"github.com/arifmahmud/nishwash/internal/privacy"
	"github.com/arifmahmud/nishwash/internal/progress"
	"github.com/arifmahmud/nishwash/internal/storage"
)

type Context struct {
	Gateway  *storage.Gateway
	Calc     *progress.Calculator
	Locker   *privacy.Locker
	DataPath string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle    = lipgloss.NewStyle().Bold(true)
	achievedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// loadUser loads storage and requires a completed onboarding.
func loadUser(ctx *Context) (*models.User, error) {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return nil, err
	}
	user, err := ctx.Gateway.GetUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("no profile found, run 'nishwash init' first")
	}
	return user, nil
}

// parseTriggers splits a comma-separated trigger list; validity of each
// trigger is checked by the entity's validate.
func parseTriggers(s string) []models.Trigger {
	var triggers []models.Trigger
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		triggers = append(triggers, models.Trigger(part))
	}
	return triggers
}

func formatValidationErrors(res models.ValidationResult) string {
	return strings.Join(res.Errors, "; ")
}

func printKV(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}
