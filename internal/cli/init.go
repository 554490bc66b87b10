package cli

import (
	"fmt"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
)

type InitCmd struct {
	QuitDate          string  `short:"q" help:"Quit instant (RFC3339). Defaults to now."`
	CigarettesPerDay  int     `short:"c" help:"Cigarettes smoked per day before quitting." required:""`
	PricePerPack      float64 `short:"p" help:"Price of one pack." required:""`
	CigarettesPerPack int     `short:"n" help:"Cigarettes per pack." default:"20"`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Init(); err != nil {
		return err
	}

	now := time.Now()
	quitDate := now
	if c.QuitDate != "" {
		parsed, err := time.Parse(time.RFC3339, c.QuitDate)
		if err != nil {
			return fmt.Errorf("invalid quit date (want RFC3339, e.g. 2026-08-01T00:00:00Z): %w", err)
		}
		quitDate = parsed
	}

	user := models.NewUser(quitDate, c.CigarettesPerDay, c.PricePerPack, c.CigarettesPerPack, now)
	res, err := ctx.Gateway.SaveUser(user)
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("profile rejected: %s", formatValidationErrors(res))
	}

	if res, err := ctx.Gateway.SaveSettings(models.DefaultSettings(now)); err != nil {
		return err
	} else if !res.Valid {
		return fmt.Errorf("default settings rejected: %s", formatValidationErrors(res))
	}

	fmt.Printf("Initialized nishwash at %s\n", ctx.DataPath)
	fmt.Printf("Quit date: %s\n", user.QuitDate.Format(time.RFC3339))
	return nil
}
