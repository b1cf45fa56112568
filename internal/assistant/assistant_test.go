package assistant

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/moderk/internal/logging"
	"github.com/rcliao/moderk/internal/model"
	"github.com/rcliao/moderk/internal/speech"
	"github.com/rcliao/moderk/internal/state"
	"github.com/rcliao/moderk/internal/store"
)

type echoReplier struct {
	mu   sync.Mutex
	seen []string
}

func (e *echoReplier) GenerateReply(_ context.Context, text string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.seen = append(e.seen, text)
	return "رد: " + text
}

type recordingSynth struct {
	mu     sync.Mutex
	texts  []string
	voices []speech.Voice
}

func (r *recordingSynth) Speak(_ context.Context, text string, v speech.Voice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	r.voices = append(r.voices, v)
	return nil
}

func (r *recordingSynth) spoken() ([]string, []speech.Voice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...), append([]speech.Voice(nil), r.voices...)
}

// scriptedRecognizer emits its fragments and then stays open until cancelled.
type scriptedRecognizer struct {
	frags []string
}

func (s scriptedRecognizer) Listen(ctx context.Context, _ string) (<-chan string, error) {
	out := make(chan string)
	go func() {
		defer close(out)
		for _, f := range s.frags {
			select {
			case out <- f:
			case <-ctx.Done():
				return
			}
		}
		<-ctx.Done()
	}()
	return out, nil
}

var fixedNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newAssistant(t *testing.T, synth speech.Synthesizer, rec speech.Recognizer) (*Assistant, *echoReplier) {
	t.Helper()
	st, err := state.Open(context.Background(), store.NewMemoryStore(), state.WithLogger(logging.Discard()))
	require.NoError(t, err)
	sp := speech.NewCoordinator(synth, rec, speech.WithLogger(logging.Discard()))
	r := &echoReplier{}
	a := New(st, sp, r, WithClock(func() time.Time { return fixedNow }), WithLogger(logging.Discard()))
	return a, r
}

func TestChat_RecordsBothSides(t *testing.T) {
	a, r := newAssistant(t, nil, nil)

	reply, err := a.Chat(context.Background(), "  كيف حالك؟ ")
	require.NoError(t, err)

	assert.Equal(t, []string{"كيف حالك؟"}, r.seen)
	assert.Equal(t, model.SenderAssistant, reply.Sender)
	assert.Equal(t, "رد: كيف حالك؟", reply.Content)

	msgs := a.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, model.SenderUser, msgs[0].Sender)
	assert.Equal(t, "كيف حالك؟", msgs[0].Content)
	assert.True(t, msgs[0].IsRead)
	assert.Equal(t, reply.ID, msgs[1].ID)
	assert.False(t, msgs[1].IsRead)
	assert.NotEqual(t, msgs[0].ID, msgs[1].ID)
	assert.Equal(t, fixedNow, msgs[1].Timestamp)
	assert.Equal(t, 1, a.UnreadCount())
}

func TestChat_EmptyTextRejected(t *testing.T) {
	a, r := newAssistant(t, nil, nil)

	_, err := a.Chat(context.Background(), "   ")
	require.Error(t, err)
	assert.Empty(t, r.seen)
	assert.Empty(t, a.Messages())
}

func TestStartSpeaking_UsesCurrentPreferences(t *testing.T) {
	synth := &recordingSynth{}
	a, _ := newAssistant(t, synth, nil)
	ctx := context.Background()

	vol, speed := 40, 1.5
	require.NoError(t, a.UpdateProfile(ctx, model.ProfilePatch{
		Preferences: &model.PreferencesPatch{VoiceVolume: &vol, VoiceSpeed: &speed},
	}))

	require.NoError(t, a.StartSpeaking("صباح الخير"))
	require.NoError(t, a.WaitSpeaking(ctx))

	texts, voices := synth.spoken()
	assert.Equal(t, []string{"صباح الخير"}, texts)
	require.Len(t, voices, 1)
	assert.InDelta(t, 0.4, voices[0].Volume, 1e-9)
	assert.Equal(t, 1.5, voices[0].Rate)
	assert.False(t, a.IsSpeaking())
}

func TestStartSpeaking_UnsupportedHost(t *testing.T) {
	a, _ := newAssistant(t, nil, nil)
	assert.ErrorIs(t, a.StartSpeaking("مرحباً"), speech.ErrUnsupported)
	assert.ErrorIs(t, a.StartListening(context.Background()), speech.ErrUnsupported)
	assert.False(t, a.CanListen())
}

func TestVoiceTurn_ChatsAndSpeaksTranscript(t *testing.T) {
	synth := &recordingSynth{}
	a, r := newAssistant(t, synth, scriptedRecognizer{frags: []string{"ذكرني", "بالدواء"}})
	ctx := context.Background()

	require.NoError(t, a.StartListening(ctx))
	assert.True(t, a.IsListening())
	assert.Eventually(t, func() bool { return a.Transcript() == "ذكرني بالدواء" }, time.Second, 5*time.Millisecond)

	transcript, reply, err := a.VoiceTurn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ذكرني بالدواء", transcript)
	assert.Equal(t, "رد: ذكرني بالدواء", reply.Content)
	assert.False(t, a.IsListening())
	assert.Equal(t, []string{"ذكرني بالدواء"}, r.seen)

	require.NoError(t, a.WaitSpeaking(ctx))
	texts, _ := synth.spoken()
	assert.Equal(t, []string{reply.Content}, texts)
}

func TestVoiceTurn_EmptyTranscriptIsNoop(t *testing.T) {
	a, r := newAssistant(t, &recordingSynth{}, scriptedRecognizer{})
	ctx := context.Background()

	require.NoError(t, a.StartListening(ctx))
	transcript, _, err := a.VoiceTurn(ctx)
	require.NoError(t, err)
	assert.Empty(t, transcript)
	assert.Empty(t, r.seen)
	assert.Empty(t, a.Messages())
}

func TestGreeting_UsesProfileName(t *testing.T) {
	a, _ := newAssistant(t, nil, nil)
	assert.Equal(t, "مرحباً المستخدم، كيف يمكنني مساعدتك اليوم؟", a.Greeting())

	name := "فاطمة"
	require.NoError(t, a.UpdateProfile(context.Background(), model.ProfilePatch{Name: &name}))
	assert.Equal(t, "مرحباً فاطمة، كيف يمكنني مساعدتك اليوم؟", a.Greeting())
}

func TestTodaySummary_ListsOutstandingReminders(t *testing.T) {
	a, _ := newAssistant(t, nil, nil)
	ctx := context.Background()

	require.NoError(t, a.AddReminder(ctx, model.Reminder{ID: "r1", Title: "الدواء", Date: fixedNow.Add(2 * time.Hour), Priority: model.PriorityHigh}))
	require.NoError(t, a.AddReminder(ctx, model.Reminder{ID: "r2", Title: "الطبيب", Date: fixedNow.Add(48 * time.Hour), Priority: model.PriorityLow}))

	greeting, today := a.TodaySummary()
	assert.Contains(t, greeting, "المستخدم")
	require.Len(t, today, 1)
	assert.Equal(t, "r1", today[0].ID)
}
