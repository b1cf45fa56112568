package model

import "time"

// ReminderPatch is a partial reminder update. Nil fields are left untouched.
type ReminderPatch struct {
	Title             *string     `json:"title,omitempty"`
	Description       *string     `json:"description,omitempty"`
	Date              *time.Time  `json:"date,omitempty"`
	IsCompleted       *bool       `json:"isCompleted,omitempty"`
	IsRecurring       *bool       `json:"isRecurring,omitempty"`
	RecurrencePattern *Recurrence `json:"recurrencePattern,omitempty"`
	CategoryColor     *string     `json:"categoryColor,omitempty"`
	Priority          *Priority   `json:"priority,omitempty"`
}

// Apply merges the set fields into r.
func (p ReminderPatch) Apply(r *Reminder) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.IsCompleted != nil {
		r.IsCompleted = *p.IsCompleted
	}
	if p.IsRecurring != nil {
		r.IsRecurring = *p.IsRecurring
	}
	if p.RecurrencePattern != nil {
		r.RecurrencePattern = *p.RecurrencePattern
	}
	if p.CategoryColor != nil {
		r.CategoryColor = *p.CategoryColor
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
}

// MemoryPatch is a partial memory update. Nil fields are left untouched.
type MemoryPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	People      *[]string  `json:"people,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Images      *[]string  `json:"images,omitempty"`
}

// Apply merges the set fields into m.
func (p MemoryPatch) Apply(m *Memory) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Tags != nil {
		m.Tags = cloneStrings(*p.Tags)
	}
	if p.People != nil {
		m.People = cloneStrings(*p.People)
	}
	if p.Location != nil {
		m.Location = *p.Location
	}
	if p.Images != nil {
		m.Images = cloneStrings(*p.Images)
	}
}

// PreferencesPatch is a partial preferences update.
type PreferencesPatch struct {
	VoiceVolume *int      `json:"voiceVolume,omitempty"`
	VoiceSpeed  *float64  `json:"voiceSpeed,omitempty"`
	TextSize    *TextSize `json:"textSize,omitempty"`
	Theme       *Theme    `json:"theme,omitempty"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name             *string           `json:"name,omitempty"`
	Age              *int              `json:"age,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	ImportantInfo    *[]ImportantInfo  `json:"importantInfo,omitempty"`
	Preferences      *PreferencesPatch `json:"preferences,omitempty"`
}

// Apply merges the set fields into p.
func (pp ProfilePatch) Apply(p *Profile) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Age != nil {
		p.Age = *pp.Age
	}
	if pp.EmergencyContact != nil {
		p.EmergencyContact = *pp.EmergencyContact
	}
	if pp.ImportantInfo != nil {
		p.ImportantInfo = append([]ImportantInfo(nil), (*pp.ImportantInfo)...)
	}
	if pr := pp.Preferences; pr != nil {
		if pr.VoiceVolume != nil {
			p.Preferences.VoiceVolume = *pr.VoiceVolume
		}
		if pr.VoiceSpeed != nil {
			p.Preferences.VoiceSpeed = *pr.VoiceSpeed
		}
		if pr.TextSize != nil {
			p.Preferences.TextSize = *pr.TextSize
		}
		if pr.Theme != nil {
			p.Preferences.Theme = *pr.Theme
		}
	}
}
