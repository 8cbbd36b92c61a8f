package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rawdago/pkg/llm"
	"rawdago/pkg/model"
	"rawdago/pkg/tts"
)

// mockGenerator implements llm.Provider with canned responses.
type mockGenerator struct {
	mu      sync.Mutex
	result  *model.BilingualText
	err     error
	calls   int
	prompts []string
	names   []string
}

func (m *mockGenerator) GenerateBilingual(ctx context.Context, name, prompt string) (*model.BilingualText, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.names = append(m.names, name)
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockGenerator) HealthCheck(ctx context.Context) error { return nil }

// mockSynth implements tts.Provider with per-voice outcomes.
type mockSynth struct {
	mu     sync.Mutex
	uris   map[string]string
	errs   map[string]error
	voices []string
}

func (m *mockSynth) Synthesize(ctx context.Context, text, voice string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = append(m.voices, voice)
	if err := m.errs[voice]; err != nil {
		return "", err
	}
	return m.uris[voice], nil
}

func newService(t *testing.T, gen llm.Provider, synth tts.Provider) *Service {
	t.Helper()
	svc, err := New(gen, synth, "Algenib", "Odeya")
	require.NoError(t, err)
	return svc
}

func TestGenerateStorySuccess(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "قصة...", French: "Histoire..."}}
	svc := newService(t, gen, &mockSynth{})

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "story",
		Input:  "صداقة بين قطة وفأر",
		Age:    model.AgeFourYears,
	})

	require.Nil(t, res.Error)
	require.NotNil(t, res.Arabic)
	require.NotNil(t, res.French)
	assert.Equal(t, "قصة...", *res.Arabic)
	assert.Equal(t, "Histoire...", *res.French)
	assert.Nil(t, res.ArabicAudio)
	assert.Nil(t, res.FrenchAudio)
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateTransportError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("connection reset")}
	svc := newService(t, gen, &mockSynth{})

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "lesson",
		Input:  "الفضاء",
		Age:    model.AgeFiveYears,
	})

	require.NotNil(t, res.Error)
	assert.Nil(t, res.Arabic)
	assert.Nil(t, res.French)
	assert.Contains(t, *res.Error, "connection reset")
}

func TestGenerateEmptyResult(t *testing.T) {
	gen := &mockGenerator{err: llm.ErrEmptyResult}
	svc := newService(t, gen, &mockSynth{})

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "flashcard",
		Input:  "حيوانات المزرعة",
		Age:    model.AgeFourYears,
	})

	require.NotNil(t, res.Error)
	assert.Nil(t, res.Arabic)
	assert.Nil(t, res.French)
}

func TestGenerateEmptyInputRejectedBeforeProviderCall(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "أ", French: "a"}}
	svc := newService(t, gen, &mockSynth{})

	for _, input := range []string{"", "   ", "\n\t"} {
		res := svc.Generate(context.Background(), model.Request{
			ToolID: "story",
			Input:  input,
			Age:    model.AgeFourYears,
		})
		require.NotNil(t, res.Error)
		assert.Nil(t, res.Arabic)
		assert.Nil(t, res.French)
	}
	assert.Equal(t, 0, gen.calls, "provider must not be called for empty input")
}

func TestGenerateUnknownTool(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "أ", French: "a"}}
	svc := newService(t, gen, &mockSynth{})

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "telepathy",
		Input:  "anything",
		Age:    model.AgeFourYears,
	})

	require.NotNil(t, res.Error)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateAliasesShareHandler(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "خطة", French: "plan"}}
	svc := newService(t, gen, &mockSynth{})

	for _, id := range []string{"lesson", "objectives", "unit"} {
		res := svc.Generate(context.Background(), model.Request{
			ToolID: id,
			Input:  "وحدة عن الفضاء",
			Age:    model.AgeFourYears,
		})
		require.Nil(t, res.Error, "tool %q", id)
	}

	require.Len(t, gen.prompts, 3)
	assert.Equal(t, gen.prompts[0], gen.prompts[1], "objectives must use the lesson prompt")
	assert.Equal(t, gen.prompts[0], gen.prompts[2], "unit must use the lesson prompt")
	assert.Equal(t, []string{"lesson", "lesson", "lesson"}, gen.names)
}

func TestGenerateSongSuccess(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "كلمات", French: "paroles"}}
	synth := &mockSynth{uris: map[string]string{
		"Algenib": "data:audio/wav;base64,QVJBQklD",
		"Odeya":   "data:audio/wav;base64,RlJFTkNI",
	}}
	svc := newService(t, gen, synth)

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "song",
		Input:  "الألوان",
		Age:    model.AgeFourYears,
	})

	require.Nil(t, res.Error)
	require.NotNil(t, res.ArabicAudio)
	require.NotNil(t, res.FrenchAudio)
	assert.Equal(t, "data:audio/wav;base64,QVJBQklD", *res.ArabicAudio)
	assert.Equal(t, "data:audio/wav;base64,RlJFTkNI", *res.FrenchAudio)
	assert.ElementsMatch(t, []string{"Algenib", "Odeya"}, synth.voices,
		"one synthesis call per language")
}

func TestGenerateSongBothVoicesFail(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "كلمات", French: "paroles"}}
	synth := &mockSynth{errs: map[string]error{
		"Algenib": tts.ErrNoAudio,
		"Odeya":   tts.ErrNoAudio,
	}}
	svc := newService(t, gen, synth)

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "song",
		Input:  "الألوان",
		Age:    model.AgeFourYears,
	})

	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "الصوت")
	require.NotNil(t, res.Arabic)
	require.NotNil(t, res.French)
	assert.Equal(t, "كلمات", *res.Arabic)
	assert.Equal(t, "paroles", *res.French)
	assert.Nil(t, res.ArabicAudio)
	assert.Nil(t, res.FrenchAudio)
}

func TestGenerateSongPartialFailureDropsBothAudios(t *testing.T) {
	gen := &mockGenerator{result: &model.BilingualText{Arabic: "كلمات", French: "paroles"}}
	synth := &mockSynth{
		uris: map[string]string{"Algenib": "data:audio/wav;base64,QVJBQklD"},
		errs: map[string]error{"Odeya": errors.New("quota exceeded")},
	}
	svc := newService(t, gen, synth)

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "song",
		Input:  "الألوان",
		Age:    model.AgeFiveYears,
	})

	require.NotNil(t, res.Error)
	require.NotNil(t, res.Arabic)
	require.NotNil(t, res.French)
	assert.Nil(t, res.ArabicAudio)
	assert.Nil(t, res.FrenchAudio)
	assert.Len(t, synth.voices, 2, "both synthesis calls must still be issued")
}

func TestGenerateSongGenerationFailureSkipsSynthesis(t *testing.T) {
	gen := &mockGenerator{err: errors.New("boom")}
	synth := &mockSynth{}
	svc := newService(t, gen, synth)

	res := svc.Generate(context.Background(), model.Request{
		ToolID: "song",
		Input:  "الألوان",
		Age:    model.AgeFourYears,
	})

	require.NotNil(t, res.Error)
	assert.Nil(t, res.Arabic)
	assert.Nil(t, res.French)
	assert.Empty(t, synth.voices, "synthesis must not run when lyrics failed")
}
