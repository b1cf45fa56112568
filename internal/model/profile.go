package model

// TextSize is the UI text size preference.
type TextSize string

const (
	TextSmall  TextSize = "صغير"
	TextMedium TextSize = "متوسط"
	TextLarge  TextSize = "كبير"
)

// Theme is the UI color theme preference.
type Theme string

const (
	ThemeLight Theme = "فاتح"
	ThemeDark  Theme = "داكن"
)

// EmergencyContact is the person to call when the user needs help.
type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

// ImportantInfo is a labelled fact about the user (conditions, allergies).
type ImportantInfo struct {
	Label  string `json:"label"`
	Detail string `json:"detail"`
}

// Preferences holds voice and display settings.
// VoiceVolume is 0-100, VoiceSpeed is 0.5-2.0.
type Preferences struct {
	VoiceVolume int      `json:"voiceVolume"`
	VoiceSpeed  float64  `json:"voiceSpeed"`
	TextSize    TextSize `json:"textSize"`
	Theme       Theme    `json:"theme"`
}

// Profile is the single user profile.
type Profile struct {
	Name             string           `json:"name"`
	Age              int              `json:"age"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	ImportantInfo    []ImportantInfo  `json:"importantInfo"`
	Preferences      Preferences      `json:"preferences"`
}

// Clone returns a deep copy.
func (p Profile) Clone() Profile {
	if p.ImportantInfo != nil {
		p.ImportantInfo = append([]ImportantInfo(nil), p.ImportantInfo...)
	}
	return p
}

// DefaultProfile returns the profile used when none has been saved.
func DefaultProfile() Profile {
	return Profile{
		Name: "المستخدم",
		Age:  65,
		EmergencyContact: EmergencyContact{
			Name:     "أحمد",
			Relation: "ابن",
			Phone:    "0555555555",
		},
		ImportantInfo: []ImportantInfo{
			{Label: "مرض السكري", Detail: "النوع الثاني"},
			{Label: "الحساسية", Detail: "البنسلين"},
		},
		Preferences: Preferences{
			VoiceVolume: 80,
			VoiceSpeed:  1,
			TextSize:    TextLarge,
			Theme:       ThemeLight,
		},
	}
}
