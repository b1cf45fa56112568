package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/moderk/internal/model"
)

func init() {
	reminderCmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"reminders"},
		Short:   "Manage reminders",
	}

	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a reminder",
		Args:  cobra.ExactArgs(1),
		Run:   runReminderAdd,
	}
	addReminderFlags(addCmd)
	addCmd.MarkFlagRequired("date")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		Run:   runReminderList,
	}
	listCmd.Flags().String("filter", "all", "Filter: all, upcoming, completed")
	listCmd.Flags().StringP("query", "q", "", "Search title and description")

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "Show the greeting and today's outstanding reminders",
		Run:   runReminderToday,
	}

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle a reminder's completion",
		Args:  cobra.ExactArgs(1),
		Run:   runReminderDone,
	}

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a reminder",
		Args:  cobra.ExactArgs(1),
		Run:   runReminderRm,
	}

	editCmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change fields of a reminder",
		Args:  cobra.ExactArgs(1),
		Run:   runReminderEdit,
	}
	addReminderFlags(editCmd)
	editCmd.Flags().String("title", "", "New title")

	reminderCmd.AddCommand(addCmd, listCmd, todayCmd, doneCmd, rmCmd, editCmd)
	RootCmd.AddCommand(reminderCmd)
}

func addReminderFlags(cmd *cobra.Command) {
	cmd.Flags().String("date", "", "When (YYYY-MM-DD HH:MM or RFC 3339)")
	cmd.Flags().String("desc", "", "Description")
	cmd.Flags().StringP("priority", "p", "medium", "Priority: low, medium, high")
	cmd.Flags().String("repeat", "", "Recurrence: daily, weekly, monthly")
	cmd.Flags().String("color", "", "Category color token")
}

func runReminderAdd(cmd *cobra.Command, args []string) {
	dateStr, _ := cmd.Flags().GetString("date")
	desc, _ := cmd.Flags().GetString("desc")
	priority, _ := cmd.Flags().GetString("priority")
	repeat, _ := cmd.Flags().GetString("repeat")
	color, _ := cmd.Flags().GetString("color")

	date, err := parseDate(dateStr)
	if err != nil {
		exitErr("reminder add", err)
	}

	a := mustOpenApp(cmd)
	defer a.Close()

	r, err := a.CreateReminder(cmd.Context(), model.Reminder{
		Title:             args[0],
		Description:       desc,
		Date:              date,
		IsRecurring:       repeat != "",
		RecurrencePattern: model.Recurrence(repeat),
		CategoryColor:     color,
		Priority:          model.Priority(priority),
	})
	if err != nil {
		exitErr("reminder add", err)
	}
	render(r, func(w io.Writer) { printReminders(w, []model.Reminder{r}) })
}

func runReminderList(cmd *cobra.Command, args []string) {
	filter, _ := cmd.Flags().GetString("filter")
	query, _ := cmd.Flags().GetString("query")

	a := mustOpenApp(cmd)
	defer a.Close()

	var rs []model.Reminder
	switch {
	case query != "":
		rs = a.SearchReminders(query)
	case filter == "upcoming":
		rs = a.UpcomingReminders(time.Now())
	case filter == "completed":
		rs = a.CompletedReminders()
	case filter == "all" || filter == "":
		rs = a.Reminders()
	default:
		exitErr("reminder list", fmt.Errorf("unknown filter %q (valid: all, upcoming, completed)", filter))
	}
	render(rs, func(w io.Writer) { printReminders(w, rs) })
}

func runReminderToday(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	greeting, today := a.TodaySummary()
	render(map[string]any{"greeting": greeting, "reminders": today}, func(w io.Writer) {
		fmt.Fprintln(w, greeting)
		printReminders(w, today)
	})
}

func runReminderDone(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	r, ok, err := a.ToggleReminder(cmd.Context(), args[0])
	if err != nil {
		exitErr("reminder done", err)
	}
	if !ok {
		exitErr("reminder done", fmt.Errorf("no reminder %s", args[0]))
	}
	render(r, func(w io.Writer) { printReminders(w, []model.Reminder{r}) })
}

func runReminderRm(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	_, existed := a.Reminder(args[0])
	if err := a.RemoveReminder(cmd.Context(), args[0]); err != nil {
		exitErr("reminder rm", err)
	}
	fmt.Printf(`{"ok":true,"deleted":%t}`+"\n", existed)
}

func runReminderEdit(cmd *cobra.Command, args []string) {
	var p model.ReminderPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		p.Title = &v
	}
	if flags.Changed("desc") {
		v, _ := flags.GetString("desc")
		p.Description = &v
	}
	if flags.Changed("date") {
		s, _ := flags.GetString("date")
		d, err := parseDate(s)
		if err != nil {
			exitErr("reminder edit", err)
		}
		p.Date = &d
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		pr := model.Priority(v)
		p.Priority = &pr
	}
	if flags.Changed("repeat") {
		v, _ := flags.GetString("repeat")
		rec := model.Recurrence(v)
		recurring := v != ""
		p.RecurrencePattern = &rec
		p.IsRecurring = &recurring
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		p.CategoryColor = &v
	}

	a := mustOpenApp(cmd)
	defer a.Close()

	r, err := a.EditReminder(cmd.Context(), args[0], p)
	if err != nil {
		exitErr("reminder edit", err)
	}
	render(r, func(w io.Writer) { printReminders(w, []model.Reminder{r}) })
}
