package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReminder(id string) Reminder {
	return Reminder{
		ID:            id,
		Title:         "موعد الطبيب",
		Date:          time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		CategoryColor: "primary-500",
		Priority:      PriorityMedium,
	}
}

func TestCollection_AddKeepsInsertionOrder(t *testing.T) {
	c := NewCollection[Reminder](nil)
	require.True(t, c.Add(sampleReminder("a")))
	require.True(t, c.Add(sampleReminder("b")))
	require.True(t, c.Add(sampleReminder("c")))

	ids := []string{}
	for _, r := range c.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestCollection_AddDuplicateIDIgnored(t *testing.T) {
	c := NewCollection[Reminder](nil)
	c.Add(sampleReminder("a"))

	dup := sampleReminder("a")
	dup.Title = "other"
	assert.False(t, c.Add(dup))
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "موعد الطبيب", got.Title)
}

func TestCollection_RemoveIdempotent(t *testing.T) {
	c := NewCollection([]Reminder{sampleReminder("a"), sampleReminder("b")})

	assert.True(t, c.Remove("a"))
	once := c.All()
	assert.False(t, c.Remove("a"))
	assert.Equal(t, once, c.All())
	assert.False(t, c.Remove("missing"))
}

func TestCollection_UpdateEmptyPatchLeavesEntity(t *testing.T) {
	c := NewCollection([]Reminder{sampleReminder("a")})
	before, _ := c.Get("a")

	assert.True(t, c.Update("a", ReminderPatch{}.Apply))
	after, _ := c.Get("a")
	assert.Equal(t, before, after)

	assert.False(t, c.Update("missing", ReminderPatch{}.Apply))
}

func TestCollection_UpdateMergesSetFields(t *testing.T) {
	c := NewCollection([]Reminder{sampleReminder("a")})
	done := true
	high := PriorityHigh

	c.Update("a", ReminderPatch{IsCompleted: &done, Priority: &high}.Apply)

	got, _ := c.Get("a")
	assert.True(t, got.IsCompleted)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.Equal(t, "موعد الطبيب", got.Title)
}

func TestCollection_AllReturnsIndependentCopies(t *testing.T) {
	c := NewCollection([]Memory{{ID: "m", Title: "رحلة", Tags: []string{"family"}}})

	snap := c.All()
	snap[0].Tags[0] = "changed"

	got, _ := c.Get("m")
	assert.Equal(t, []string{"family"}, got.Tags)
}

func TestAppendUnique(t *testing.T) {
	tags := []string{"family"}

	tags, added := AppendUnique(tags, "family")
	assert.False(t, added)
	assert.Equal(t, []string{"family"}, tags)

	tags, added = AppendUnique(tags, "travel")
	assert.True(t, added)
	assert.Equal(t, []string{"family", "travel"}, tags)

	_, added = AppendUnique(tags, "   ")
	assert.False(t, added)
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"family", "travel"}, UniqueStrings([]string{"family", " family", "", "travel", "family"}))
	assert.Equal(t, []string{}, UniqueStrings(nil))
}

func TestNewID_Ordered(t *testing.T) {
	a := NewID()
	time.Sleep(2 * time.Millisecond)
	b := NewID()
	assert.Len(t, a, 26)
	assert.Less(t, a, b)
}
