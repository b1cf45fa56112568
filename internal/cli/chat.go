package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	chatCmd := &cobra.Command{
		Use:   "chat [text]",
		Short: "Send a message to the assistant",
		Long:  "Send a message and print the reply. Text can be a positional arg or piped via stdin.",
		Run:   runChat,
	}
	chatCmd.Flags().Bool("speak", false, "Speak the reply aloud")

	messagesCmd := &cobra.Command{
		Use:   "messages",
		Short: "Show the conversation history",
		Run:   runMessages,
	}
	messagesCmd.Flags().Bool("mark-read", false, "Mark every assistant message as read")

	RootCmd.AddCommand(chatCmd, messagesCmd)
}

func runChat(cmd *cobra.Command, args []string) {
	speak, _ := cmd.Flags().GetBool("speak")

	// Get text: positional arg first, then check stdin
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = string(b)
		}
	}
	if strings.TrimSpace(text) == "" {
		exitErr("chat", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	a := mustOpenApp(cmd)
	defer a.Close()

	reply, err := a.Chat(cmd.Context(), text)
	if err != nil {
		exitErr("chat", err)
	}
	render(reply, func(w io.Writer) { fmt.Fprintln(w, reply.Content) })

	if speak {
		if err := a.StartSpeaking(reply.Content); err != nil {
			exitErr("speak", err)
		}
		if err := a.WaitSpeaking(cmd.Context()); err != nil {
			exitErr("speak", err)
		}
	}
}

func runMessages(cmd *cobra.Command, args []string) {
	markRead, _ := cmd.Flags().GetBool("mark-read")

	a := mustOpenApp(cmd)
	defer a.Close()

	msgs := a.Messages()
	if markRead {
		for _, m := range msgs {
			if !m.IsRead {
				if err := a.MarkMessageRead(cmd.Context(), m.ID); err != nil {
					exitErr("mark read", err)
				}
			}
		}
	}
	render(msgs, func(w io.Writer) { printMessages(w, msgs, time.Now()) })
}
