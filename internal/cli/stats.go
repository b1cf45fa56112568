package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/moderk/internal/dateutil"
	"github.com/rcliao/moderk/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show snapshot sizes and the database file size",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}
	render(stats, func(w io.Writer) { printStats(w, stats) })
}

func printStats(w io.Writer, st *store.Stats) {
	fmt.Fprintf(w, "%s (%s بايت)\n", st.DBPath, dateutil.Digits(fmt.Sprint(st.DBSizeBytes)))
	if len(st.Keys) == 0 {
		fmt.Fprintln(w, "لا توجد بيانات محفوظة")
		return
	}
	for _, k := range st.Keys {
		fmt.Fprintf(w, "%-10s %8d  %s\n", k.Key, k.PayloadBytes, k.UpdatedAt)
	}
}
