package cli

import (
	"fmt"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
)

type JournalAddCmd struct {
	Content   string `arg:"" help:"Entry text."`
	Mood      string `short:"m" help:"Mood (excellent|good|neutral|bad|terrible)." default:"neutral"`
	Triggers  string `short:"t" help:"Comma-separated triggers."`
	Intensity int    `short:"i" help:"Craving intensity (1-10), 0 to omit." default:"0"`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	triggers := parseTriggers(c.Triggers)

	var intensity *int
	if c.Intensity != 0 {
		intensity = &c.Intensity
	}

	entry := models.NewJournalEntry(c.Content, models.Mood(c.Mood), triggers, intensity, time.Now())
	res, err := ctx.Gateway.SaveJournalEntry(entry)
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("entry rejected: %s", formatValidationErrors(res))
	}

	fmt.Printf("Added journal entry (ID: %s)\n", entry.ID)
	return nil
}

type JournalListCmd struct {
	From      string `help:"Start date (YYYY-MM-DD), inclusive."`
	To        string `help:"End date (YYYY-MM-DD), inclusive."`
	Ascending bool   `short:"a" help:"Oldest first."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	entries, err := ctx.Gateway.GetJournalEntries()
	if err != nil {
		return err
	}

	if c.From != "" || c.To != "" {
		start, end, err := parseDateRange(c.From, c.To)
		if err != nil {
			return err
		}
		entries = models.FilterEntriesByDateRange(entries, start, end)
	}

	entries = models.SortEntriesByDate(entries, c.Ascending)
	if len(entries) == 0 {
		fmt.Println("No journal entries.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  [%s]  %s\n", e.Date.Format("2006-01-02 15:04"), e.Mood, e.Content)
		if e.CravingIntensity != nil {
			fmt.Printf("    intensity: %d\n", *e.CravingIntensity)
		}
		fmt.Printf("    id: %s\n", e.ID)
	}
	return nil
}

type JournalDeleteCmd struct {
	ID string `arg:"" help:"Entry id to delete."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}
	if err := ctx.Gateway.DeleteJournalEntry(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted journal entry %s\n", c.ID)
	return nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start := time.Time{}
	end := time.Now().UTC()
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return start, end, fmt.Errorf("invalid --from date: %w", err)
		}
		start = parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return start, end, fmt.Errorf("invalid --to date: %w", err)
		}
		// End of day, inclusive.
		end = parsed.Add(24*time.Hour - time.Second)
	}
	return start, end, nil
}
