package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rcliao/moderk/internal/web"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Run:   runServe,
	}
	cmd.Flags().String("addr", "", "Listen address (default: $MODERK_HTTP_ADDR or 127.0.0.1:8787)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := mustOpenApp(cmd)
	defer a.Close()

	if addr == "" {
		addr = a.cfg.HTTP.Addr
	}
	srv := web.NewServer(a.Assistant, a.log)
	if err := srv.Run(ctx, addr, a.cfg.HTTP.ShutdownTimeout); err != nil {
		exitErr("serve", err)
	}
}
