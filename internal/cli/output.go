package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rcliao/moderk/internal/dateutil"
	"github.com/rcliao/moderk/internal/model"
)

// render prints v as JSON, or through text when --format=text.
func render(v any, text func(w io.Writer)) {
	if strings.EqualFold(formatFlag, "text") && text != nil {
		text(os.Stdout)
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func printReminders(w io.Writer, rs []model.Reminder) {
	if len(rs) == 0 {
		fmt.Fprintln(w, "لا توجد تذكيرات")
		return
	}
	for _, r := range rs {
		mark := " "
		if r.IsCompleted {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s  %s %s  (%s)  %s\n", mark, r.Title,
			dateutil.FormatDate(r.Date), dateutil.FormatTime(r.Date), r.Priority, r.ID)
	}
}

func printMemories(w io.Writer, ms []model.Memory) {
	if len(ms) == 0 {
		fmt.Fprintln(w, "لا توجد ذكريات")
		return
	}
	for _, m := range ms {
		fmt.Fprintf(w, "%s  %s  %s\n", m.Title, dateutil.FormatDate(m.Date), m.ID)
		if len(m.Tags) > 0 {
			fmt.Fprintf(w, "  #%s\n", strings.Join(m.Tags, " #"))
		}
		if len(m.People) > 0 {
			fmt.Fprintf(w, "  %s\n", strings.Join(m.People, "، "))
		}
	}
}

func printMessages(w io.Writer, msgs []model.Message, now time.Time) {
	for _, m := range msgs {
		who := "أنت"
		if m.Sender == model.SenderAssistant {
			who = "مُدرك"
		}
		fmt.Fprintf(w, "%s (%s): %s\n", who, dateutil.FormatRelative(m.Timestamp, now), m.Content)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDate accepts RFC 3339 or a local "YYYY-MM-DD[ HH:MM]" value.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q (want YYYY-MM-DD HH:MM or RFC 3339)", s)
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
