package cli

import (
	"fmt"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
)

type CravingAddCmd struct {
	Intensity int    `short:"i" help:"Intensity (1-10)." required:""`
	Triggers  string `short:"t" help:"Comma-separated triggers (at least one)." required:""`
	Duration  int    `short:"d" help:"How long the craving lasted, minutes. 0 to omit." default:"0"`
	Coping    string `short:"c" help:"Coping strategy used."`
	Smoked    bool   `help:"Set if the craving was not overcome."`
	Notes     string `help:"Free-form notes."`
}

func (c *CravingAddCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	triggers := parseTriggers(c.Triggers)

	log := models.NewCravingLog(c.Intensity, triggers, !c.Smoked, time.Now())
	if c.Duration != 0 {
		log.DurationMin = &c.Duration
	}
	log.CopingStrategy = c.Coping
	log.Notes = c.Notes

	res, err := ctx.Gateway.SaveCravingLog(log)
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("craving log rejected: %s", formatValidationErrors(res))
	}

	if log.Overcome {
		fmt.Println(achievedStyle.Render("সাবাশ! আরেকটি তীব্র ইচ্ছা জয় করলেন।"))
	}
	fmt.Printf("Logged craving (ID: %s)\n", log.ID)
	return nil
}

type CravingListCmd struct {
	Ascending bool `short:"a" help:"Oldest first."`
}

func (c *CravingListCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	logs, err := ctx.Gateway.GetCravingLogs()
	if err != nil {
		return err
	}

	logs = models.SortLogsByTimestamp(logs, c.Ascending)
	if len(logs) == 0 {
		fmt.Println("No craving logs.")
		return nil
	}

	for _, l := range logs {
		outcome := achievedStyle.Render("overcome")
		if !l.Overcome {
			outcome = pendingStyle.Render("smoked")
		}
		fmt.Printf("%s  intensity %2d  %s", l.Timestamp.Format("2006-01-02 15:04"), l.Intensity, outcome)
		if l.CopingStrategy != "" {
			fmt.Printf("  (%s)", l.CopingStrategy)
		}
		fmt.Println()
	}
	return nil
}

type CravingStatsCmd struct{}

func (c *CravingStatsCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	logs, err := ctx.Gateway.GetCravingLogs()
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Println("No craving logs yet.")
		return nil
	}

	overcome := 0
	for _, l := range logs {
		if l.Overcome {
			overcome++
		}
	}

	fmt.Println(titleStyle.Render("ক্রেভিং পরিসংখ্যান"))
	printKV("Total cravings", fmt.Sprintf("%d", len(logs)))
	printKV("Overcome", fmt.Sprintf("%d (%.0f%%)", overcome, float64(overcome)/float64(len(logs))*100))
	printKV("Average intensity", fmt.Sprintf("%.1f", models.AverageIntensity(logs)))

	top := models.MostCommonTriggers(logs)
	if len(top) > 3 {
		top = top[:3]
	}
	for i, tc := range top {
		printKV(fmt.Sprintf("Trigger #%d", i+1), fmt.Sprintf("%s (%d)", tc.Trigger, tc.Count))
	}
	return nil
}
