package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Reminder)
		field  string
	}{
		{"valid", func(*Reminder) {}, ""},
		{"missing title", func(r *Reminder) { r.Title = " " }, "title"},
		{"bad priority", func(r *Reminder) { r.Priority = "urgent" }, "priority"},
		{"recurring without pattern", func(r *Reminder) { r.IsRecurring = true }, "recurrencePattern"},
		{"pattern without recurring", func(r *Reminder) { r.RecurrencePattern = RecurDaily }, "recurrencePattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := sampleReminder("a")
			tt.mutate(&r)
			err := r.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Errors[0].Field)
		})
	}
}

func TestProfileValidate(t *testing.T) {
	p := DefaultProfile()
	assert.NoError(t, p.Validate())

	p.Preferences.VoiceVolume = 120
	p.Preferences.VoiceSpeed = 3
	err := p.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors, 2)
}

func TestProfilePatch_MergesPreferencesFieldByField(t *testing.T) {
	p := DefaultProfile()
	vol := 40
	name := "فاطمة"

	ProfilePatch{Name: &name, Preferences: &PreferencesPatch{VoiceVolume: &vol}}.Apply(&p)

	assert.Equal(t, "فاطمة", p.Name)
	assert.Equal(t, 40, p.Preferences.VoiceVolume)
	assert.Equal(t, 1.0, p.Preferences.VoiceSpeed)
	assert.Equal(t, TextLarge, p.Preferences.TextSize)
	assert.Equal(t, 65, p.Age)
}
