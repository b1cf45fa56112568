// Package model defines the assistant's entity types and their collections.
package model

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Priority is a reminder's importance.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recurrence is how often a recurring reminder repeats.
type Recurrence string

const (
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// ValidPriorities are the allowed reminder priorities.
var ValidPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ValidRecurrences are the allowed recurrence patterns.
var ValidRecurrences = map[Recurrence]bool{
	RecurDaily:   true,
	RecurWeekly:  true,
	RecurMonthly: true,
}

// Message is one chat turn. Only IsRead changes after creation.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}

func (m Message) EntityID() string { return m.ID }
func (m Message) Clone() Message   { return m }

// Reminder is a dated task the user wants to be reminded of.
// RecurrencePattern is only meaningful when IsRecurring is set.
type Reminder struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description,omitempty"`
	Date              time.Time  `json:"date"`
	IsCompleted       bool       `json:"isCompleted"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurrencePattern Recurrence `json:"recurrencePattern,omitempty"`
	CategoryColor     string     `json:"categoryColor"`
	Priority          Priority   `json:"priority"`
}

func (r Reminder) EntityID() string { return r.ID }
func (r Reminder) Clone() Reminder  { return r }

// Memory is a journal entry the user wants to keep.
type Memory struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Tags        []string  `json:"tags"`
	People      []string  `json:"people"`
	Location    string    `json:"location,omitempty"`
	Images      []string  `json:"images,omitempty"`
}

func (m Memory) EntityID() string { return m.ID }

func (m Memory) Clone() Memory {
	m.Tags = cloneStrings(m.Tags)
	m.People = cloneStrings(m.People)
	m.Images = cloneStrings(m.Images)
	return m
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

var (
	entropyMu sync.Mutex
	entropy   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewID returns a fresh ULID. IDs sort in creation order.
func NewID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
