package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	speakCmd := &cobra.Command{
		Use:   "speak [text]",
		Short: "Speak text with the profile's voice settings",
		Long:  "Speak text aloud. Without text, speaks the home-screen greeting.",
		Run:   runSpeak,
	}

	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "Capture speech until interrupted",
		Long:  "Capture speech until Ctrl-C or --duration elapses, then print the transcript. With --reply the transcript is sent to the assistant and the reply spoken.",
		Run:   runListen,
	}
	listenCmd.Flags().Duration("duration", 0, "Stop after this long (default: until interrupted)")
	listenCmd.Flags().Bool("reply", false, "Chat with the transcript and speak the reply")

	RootCmd.AddCommand(speakCmd, listenCmd)
}

func runSpeak(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		text = a.Greeting()
	}
	if err := a.StartSpeaking(text); err != nil {
		exitErr("speak", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.WaitSpeaking(ctx); err != nil {
		a.StopSpeaking()
	}
}

func runListen(cmd *cobra.Command, args []string) {
	duration, _ := cmd.Flags().GetDuration("duration")
	reply, _ := cmd.Flags().GetBool("reply")

	a := mustOpenApp(cmd)
	defer a.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.StartListening(ctx); err != nil {
		exitErr("listen", err)
	}
	fmt.Fprintln(os.Stderr, "listening... press Ctrl-C to stop")

	var timeout <-chan time.Time
	if duration > 0 {
		timeout = time.After(duration)
	}
	select {
	case <-ctx.Done():
	case <-timeout:
	}

	if !reply {
		transcript := a.StopListening()
		render(map[string]string{"transcript": transcript}, func(w io.Writer) { fmt.Fprintln(w, transcript) })
		return
	}

	// The interrupt ended capture; the reply still needs a live context.
	turnCtx := cmd.Context()
	transcript, msg, err := a.VoiceTurn(turnCtx)
	if err != nil {
		exitErr("listen", err)
	}
	render(map[string]any{"transcript": transcript, "reply": msg}, func(w io.Writer) {
		fmt.Fprintln(w, transcript)
		fmt.Fprintln(w, msg.Content)
	})
	if err := a.WaitSpeaking(turnCtx); err != nil {
		a.StopSpeaking()
	}
}
