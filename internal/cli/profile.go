package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rcliao/moderk/internal/model"
)

func init() {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the user profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the profile",
		Run:   runProfileShow,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change profile fields",
		Long:  "Change profile fields. Only the flags given are updated.",
		Run:   runProfileSet,
	}
	setCmd.Flags().String("name", "", "Display name")
	setCmd.Flags().Int("age", 0, "Age")
	setCmd.Flags().String("contact-name", "", "Emergency contact name")
	setCmd.Flags().String("contact-relation", "", "Emergency contact relationship")
	setCmd.Flags().String("contact-phone", "", "Emergency contact phone")
	setCmd.Flags().Int("volume", 0, "Voice volume 0-100")
	setCmd.Flags().Float64("speed", 0, "Voice speed 0.5-2.0")
	setCmd.Flags().String("text-size", "", "Text size: صغير, متوسط, كبير")
	setCmd.Flags().String("theme", "", "Theme: فاتح, داكن")

	profileCmd.AddCommand(showCmd, setCmd)
	RootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) {
	a := mustOpenApp(cmd)
	defer a.Close()

	p := a.Profile()
	render(p, func(w io.Writer) { printProfile(w, p) })
}

func runProfileSet(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()
	var p model.ProfilePatch
	var prefs model.PreferencesPatch
	prefsSet := false

	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		p.Name = &v
	}
	if flags.Changed("age") {
		v, _ := flags.GetInt("age")
		p.Age = &v
	}
	if flags.Changed("volume") {
		v, _ := flags.GetInt("volume")
		prefs.VoiceVolume = &v
		prefsSet = true
	}
	if flags.Changed("speed") {
		v, _ := flags.GetFloat64("speed")
		prefs.VoiceSpeed = &v
		prefsSet = true
	}
	if flags.Changed("text-size") {
		v, _ := flags.GetString("text-size")
		ts := model.TextSize(v)
		prefs.TextSize = &ts
		prefsSet = true
	}
	if flags.Changed("theme") {
		v, _ := flags.GetString("theme")
		th := model.Theme(v)
		prefs.Theme = &th
		prefsSet = true
	}
	if prefsSet {
		p.Preferences = &prefs
	}

	a := mustOpenApp(cmd)
	defer a.Close()

	if flags.Changed("contact-name") || flags.Changed("contact-relation") || flags.Changed("contact-phone") {
		ec := a.Profile().EmergencyContact
		if flags.Changed("contact-name") {
			ec.Name, _ = flags.GetString("contact-name")
		}
		if flags.Changed("contact-relation") {
			ec.Relation, _ = flags.GetString("contact-relation")
		}
		if flags.Changed("contact-phone") {
			ec.Phone, _ = flags.GetString("contact-phone")
		}
		p.EmergencyContact = &ec
	}

	updated, err := a.EditProfile(cmd.Context(), p)
	if err != nil {
		exitErr("profile set", err)
	}
	render(updated, func(w io.Writer) { printProfile(w, updated) })
}

func printProfile(w io.Writer, p model.Profile) {
	fmt.Fprintf(w, "%s (%d)\n", p.Name, p.Age)
	fmt.Fprintf(w, "جهة الاتصال: %s، %s، %s\n", p.EmergencyContact.Name, p.EmergencyContact.Relation, p.EmergencyContact.Phone)
	for _, info := range p.ImportantInfo {
		fmt.Fprintf(w, "%s: %s\n", info.Label, info.Detail)
	}
	fmt.Fprintf(w, "الصوت %d%%، السرعة %.2g، النص %s، المظهر %s\n",
		p.Preferences.VoiceVolume, p.Preferences.VoiceSpeed, p.Preferences.TextSize, p.Preferences.Theme)
}
