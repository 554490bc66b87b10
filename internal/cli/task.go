package cli

import (
	"fmt"
	"time"

	"github.com/arifmahmud/nishwash/internal/models"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Day         int    `short:"d" help:"Program day (1-41). Defaults to the current day." default:"0"`
	Description string `help:"Longer description."`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	day := c.Day
	if day == 0 {
		day = ctx.Calc.CurrentDay(user.QuitDate)
	}

	task := models.NewDailyTask(day, c.Title, c.Description, time.Now())
	res, err := ctx.Gateway.SaveTaskCompletion(task)
	if err != nil {
		return err
	}
	if !res.Valid {
		return fmt.Errorf("task rejected: %s", formatValidationErrors(res))
	}

	fmt.Printf("Added task for day %d (ID: %s)\n", day, task.ID)
	return nil
}

type TaskListCmd struct {
	Day int `short:"d" help:"Program day to list. Defaults to the current day." default:"0"`
	All bool `help:"List every recorded day."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	user, err := loadUser(ctx)
	if err != nil {
		return err
	}

	var tasks []models.DailyTask
	if c.All {
		tasks, err = ctx.Gateway.GetAllTaskCompletions()
	} else {
		day := c.Day
		if day == 0 {
			day = ctx.Calc.CurrentDay(user.QuitDate)
		}
		tasks, err = ctx.Gateway.GetTaskCompletions(day)
	}
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks recorded.")
		return nil
	}

	for _, t := range tasks {
		mark := pendingStyle.Render("○")
		if t.Completed {
			mark = achievedStyle.Render("●")
		}
		fmt.Printf("  %s day %2d  %s", mark, t.Day, t.Title)
		if t.Description != "" {
			fmt.Printf(" — %s", t.Description)
		}
		fmt.Printf("  (id: %s)\n", t.ID)
	}
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task id to toggle."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	if err := ctx.Gateway.Store().Load(); err != nil {
		return err
	}

	tasks, err := ctx.Gateway.GetAllTaskCompletions()
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if t.ID != c.ID {
			continue
		}
		toggled := models.ToggleTask(t, time.Now())
		res, err := ctx.Gateway.SaveTaskCompletion(toggled)
		if err != nil {
			return err
		}
		if !res.Valid {
			return fmt.Errorf("task rejected: %s", formatValidationErrors(res))
		}
		if toggled.Completed {
			fmt.Printf("Completed: %s\n", toggled.Title)
		} else {
			fmt.Printf("Reopened: %s\n", toggled.Title)
		}
		return nil
	}
	return fmt.Errorf("task not found: %s", c.ID)
}
