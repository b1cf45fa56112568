package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/moderk/internal/model"
)

func init() {
	memoryCmd := &cobra.Command{
		Use:     "memory",
		Aliases: []string{"memories"},
		Short:   "Manage the memory journal",
	}

	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Record a memory",
		Args:  cobra.ExactArgs(1),
		Run:   runMemoryAdd,
	}
	addCmd.Flags().String("date", "", "When it happened (default: now)")
	addCmd.Flags().String("desc", "", "Description")
	addCmd.Flags().StringP("tags", "t", "", "Comma-separated tags")
	addCmd.Flags().String("people", "", "Comma-separated people")
	addCmd.Flags().String("location", "", "Location")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List memories",
		Run:   runMemoryList,
	}
	listCmd.Flags().StringP("query", "q", "", "Search title, description, tags and people")

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a memory",
		Args:  cobra.ExactArgs(1),
		Run:   runMemoryRm,
	}

	tagCmd := &cobra.Command{
		Use:   "tag [id] [tag]",
		Short: "Add a tag to a memory",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runMemoryAppend(cmd, args, "memory tag", (*app).AddMemoryTag)
		},
	}

	personCmd := &cobra.Command{
		Use:   "person [id] [name]",
		Short: "Add a person to a memory",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runMemoryAppend(cmd, args, "memory person", (*app).AddMemoryPerson)
		},
	}

	memoryCmd.AddCommand(addCmd, listCmd, rmCmd, tagCmd, personCmd)
	RootCmd.AddCommand(memoryCmd)
}

func runMemoryAdd(cmd *cobra.Command, args []string) {
	dateStr, _ := cmd.Flags().GetString("date")
	desc, _ := cmd.Flags().GetString("desc")
	tags, _ := cmd.Flags().GetString("tags")
	people, _ := cmd.Flags().GetString("people")
	location, _ := cmd.Flags().GetString("location")

	date := time.Now()
	if dateStr != "" {
		d, err := parseDate(dateStr)
		if err != nil {
			exitErr("memory add", err)
		}
		date = d
	}

	a := mustOpenApp(cmd)
	defer a.Close()

	m, err := a.CreateMemory(cmd.Context(), model.Memory{
		Title:       args[0],
		Description: desc,
		Date:        date,
		Tags:        splitList(tags),
		People:      splitList(people),
		Location:    location,
	})
	if err != nil {
		exitErr("memory add", err)
	}
	render(m, func(w io.Writer) { printMemories(w, []model.Memory{m}) })
}

func runMemoryList(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")

	a := mustOpenApp(cmd)
	defer a.Close()

	ms := a.Memories()
	if query != "" {
		ms = a.SearchMemories(query)
	}
	render(ms, func(w io.Writer) { printMemories(w, ms) })
}

func runMemoryRm(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	_, existed := a.Memory(args[0])
	if err := a.RemoveMemory(cmd.Context(), args[0]); err != nil {
		exitErr("memory rm", err)
	}
	fmt.Printf(`{"ok":true,"deleted":%t}`+"\n", existed)
}

func runMemoryAppend(cmd *cobra.Command, args []string, op string, add func(*app, context.Context, string, string) error) {
	a := mustOpenApp(cmd)
	defer a.Close()

	if _, ok := a.Memory(args[0]); !ok {
		exitErr(op, fmt.Errorf("no memory %s", args[0]))
	}
	if err := add(a, cmd.Context(), args[0], args[1]); err != nil {
		exitErr(op, err)
	}
	m, _ := a.Memory(args[0])
	render(m, func(w io.Writer) { printMemories(w, []model.Memory{m}) })
}
