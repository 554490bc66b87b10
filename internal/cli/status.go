package cli

import (
	"fmt"
)

type StatusCmd struct{}

// Run prints the current metrics and refreshes the cached progress snapshot.
// The snapshot is display cache only; every figure shown here is recomputed
// from the quit date.
func (c *StatusCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	sft := ctx.Calc.SmokeFreeTime(user.QuitDate)
	money := ctx.Calc.MoneySaved(*user)
	avoided := ctx.Calc.CigarettesNotSmoked(*user)
	day := ctx.Calc.CurrentDay(user.QuitDate)

	fmt.Println(titleStyle.Render("ধূমপানমুক্ত যাত্রা"))
	printKV("Smoke-free", fmt.Sprintf("%dd %dh %dm %ds", sft.Days, sft.Hours, sft.Minutes, sft.Seconds))
	printKV("Program day", fmt.Sprintf("%d / 41", day))
	printKV("Money saved", fmt.Sprintf("৳%d (at this rate: ৳%d/week, ৳%d/month, ৳%d/year)",
		money.Total, money.Weekly, money.Monthly, money.Yearly))
	printKV("Cigarettes avoided", fmt.Sprintf("%d", avoided))

	if next := ctx.Calc.NextMilestone(user.QuitDate); next != nil {
		printKV("Next benefit", fmt.Sprintf("%s — %d%%, %dd %dh %dm remaining",
			next.Entry.Title, next.Percent, next.RemainingDays, next.RemainingHours, next.RemainingMinutes))
	} else {
		printKV("Next benefit", "সব স্বাস্থ্য মাইলফলক অর্জিত!")
	}

	// Refresh the cached snapshot while we are here.
	if res, err := ctx.Gateway.SaveProgress(ctx.Calc.Snapshot(*user)); err != nil {
		return err
	} else if !res.Valid {
		return fmt.Errorf("progress snapshot rejected: %s", formatValidationErrors(res))
	}
	return nil
}

type MilestonesCmd struct{}

func (c *MilestonesCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("মাইলফলক"))
	for _, m := range ctx.Calc.Milestones(user.QuitDate) {
		mark := pendingStyle.Render("○")
		suffix := ""
		if m.Achieved {
			mark = achievedStyle.Render("●")
			suffix = " — " + m.AchievedDate.Format("2006-01-02")
		}
		fmt.Printf("  %s দিন %2d  %s (%s)%s\n", mark, m.Day, m.Title, m.Badge, suffix)
	}
	return nil
}

type BenefitsCmd struct{}

func (c *BenefitsCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	hb := ctx.Calc.HealthBenefits(user.QuitDate)

	fmt.Println(titleStyle.Render("অর্জিত স্বাস্থ্য উপকারিতা"))
	if len(hb.Achieved) == 0 {
		fmt.Println(pendingStyle.Render("  এখনও কিছু অর্জিত হয়নি — লেগে থাকুন!"))
	}
	for _, b := range hb.Achieved {
		fmt.Printf("  %s %s — %s\n", achievedStyle.Render("●"), b.Title, b.Description)
	}

	if len(hb.Upcoming) > 0 {
		fmt.Println(titleStyle.Render("আসন্ন"))
		for _, e := range hb.Upcoming {
			fmt.Printf("  %s %s — %s\n", pendingStyle.Render("○"), e.Title, e.Description)
		}
	}
	return nil
}
