package cli

import (
	"fmt"

	"github.com/arifmahmud/nishwash/internal/models"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	settings, err := ctx.Gateway.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("সেটিংস"))
	printKV("Notifications", fmt.Sprintf("%v", settings.Notifications.Enabled))
	printKV("Daily reminder", fmt.Sprintf("%v at %s", settings.Notifications.DailyReminder, settings.Notifications.ReminderTime))
	printKV("Milestone alerts", fmt.Sprintf("%v", settings.Notifications.MilestoneAlerts))
	printKV("Font size", string(settings.Appearance.FontSize))
	printKV("Dark mode", fmt.Sprintf("%v", settings.Appearance.DarkMode))
	printKV("PIN lock", fmt.Sprintf("%v", settings.Privacy.PinEnabled))
	for _, contact := range settings.EmergencyContacts {
		printKV("Emergency contact", fmt.Sprintf("%s (%s)", contact.Name, contact.Phone))
	}
	return nil
}

type SettingsSetCmd struct {
	FontSize     string `help:"Font size (small|medium|large)."`
	ReminderTime string `help:"Daily reminder time (HH:MM)."`
	DarkMode     *bool  `help:"Enable or disable dark mode."`
	Reminders    *bool  `help:"Enable or disable the daily reminder."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	settings, err := ctx.Gateway.GetSettings()
	if err != nil {
		return err
	}

	appearance := settings.Appearance
	if c.FontSize != "" {
		appearance.FontSize = models.FontSize(c.FontSize)
	}
	if c.DarkMode != nil {
		appearance.DarkMode = *c.DarkMode
	}

	notifications := settings.Notifications
	if c.ReminderTime != "" {
		notifications.ReminderTime = c.ReminderTime
	}
	if c.Reminders != nil {
		notifications.DailyReminder = *c.Reminders
	}

	res, err := ctx.Gateway.UpdateSettings(models.SettingsPatch{
		Appearance:    &appearance,
		Notifications: &notifications,
	})
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("settings rejected: %s", formatValidationErrors(res))
	}

	fmt.Println("Settings updated.")
	return nil
}

type PinSetCmd struct {
	PIN string `arg:"" help:"4-6 digit PIN."`
}

func (c *PinSetCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	if err := ctx.Locker.SetPIN(c.PIN); err != nil {
		return err
	}

	privacy := models.PrivacySettings{PinEnabled: true}
	if res, err := ctx.Gateway.UpdateSettings(models.SettingsPatch{Privacy: &privacy}); err != nil {
		return err
	} else if !res.Valid {
		return fmt.Errorf("settings rejected: %s", formatValidationErrors(res))
	}

	fmt.Println("PIN enabled.")
	return nil
}

type PinClearCmd struct{}

func (c *PinClearCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	if err := ctx.Locker.ClearPIN(); err != nil {
		return err
	}

	privacy := models.PrivacySettings{PinEnabled: false}
	if res, err := ctx.Gateway.UpdateSettings(models.SettingsPatch{Privacy: &privacy}); err != nil {
		return err
	} else if !res.Valid {
		return fmt.Errorf("settings rejected: %s", formatValidationErrors(res))
	}

	fmt.Println("PIN disabled.")
	return nil
}
