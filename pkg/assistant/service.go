// Package assistant routes tool invocations to their prompt pipeline
// and merges generation and synthesis results into a single response.
package assistant

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"text/template"

	"rawdago/pkg/catalog"
	"rawdago/pkg/llm"
	"rawdago/pkg/model"
	"rawdago/pkg/tts"
)

// User-facing messages are in the interface language (Arabic); the
// underlying technical error goes to the server log.
const (
	msgEmptyInput      = "الرجاء إدخال نص يصف ما تريد إنشاءه."
	msgUnknownTool     = "عذرًا، الأداة المطلوبة غير موجودة."
	msgGenerationError = "عذرًا، حدث خطأ أثناء إنشاء المحتوى. "
	msgSongAudioError  = "تم إنشاء كلمات الأغنية بنجاح، ولكن حدث خطأ أثناء توليد الصوت."
)

// Service dispatches tool requests. Stateless; every request carries
// all of its own working data.
type Service struct {
	gen         llm.Provider
	synth       tts.Provider
	templates   *template.Template
	arabicVoice string
	frenchVoice string
}

// New creates the assistant service. The two voices are the prebuilt
// speech-model voices used for Arabic and French song audio.
func New(gen llm.Provider, synth tts.Provider, arabicVoice, frenchVoice string) (*Service, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Service{
		gen:         gen,
		synth:       synth,
		templates:   tmpl,
		arabicVoice: arabicVoice,
		frenchVoice: frenchVoice,
	}, nil
}

// Generate runs one tool invocation end to end. Failures are folded
// into the result's Error field; no error escapes to the caller.
func (s *Service) Generate(ctx context.Context, req model.Request) model.Result {
	kind, ok := catalog.Resolve(req.ToolID)
	if !ok {
		slog.Warn("Assistant: unknown tool requested", "tool", req.ToolID)
		return model.ErrorResult(msgUnknownTool)
	}

	// Reject empty input before any provider call is made.
	if strings.TrimSpace(req.Input) == "" {
		return model.ErrorResult(msgEmptyInput)
	}

	prompt, err := buildPrompt(s.templates, kind, req.Input, req.Age)
	if err != nil {
		slog.Error("Assistant: prompt construction failed", "tool", req.ToolID, "error", err)
		return model.ErrorResult(msgGenerationError + err.Error())
	}

	text, err := s.gen.GenerateBilingual(ctx, string(kind), prompt)
	if err != nil {
		slog.Error("Assistant: generation failed", "tool", req.ToolID, "handler", kind, "error", err)
		return model.ErrorResult(msgGenerationError + err.Error())
	}

	if kind == catalog.KindSong {
		return s.songResult(ctx, *text)
	}
	return model.TextResult(*text)
}

// songResult synthesizes song audio for both languages in parallel and
// merges the outcome with the already-generated lyrics.
func (s *Service) songResult(ctx context.Context, lyrics model.BilingualText) model.Result {
	var (
		wg                   sync.WaitGroup
		arabicURI, frenchURI string
		arabicErr, frenchErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		arabicURI, arabicErr = s.synth.Synthesize(ctx, lyrics.Arabic, s.arabicVoice)
	}()
	go func() {
		defer wg.Done()
		frenchURI, frenchErr = s.synth.Synthesize(ctx, lyrics.French, s.frenchVoice)
	}()
	wg.Wait()

	result := model.TextResult(lyrics)

	if arabicErr != nil || frenchErr != nil {
		// Lyrics survive a synthesis failure. Audio from the surviving
		// branch is dropped too, so the client never receives a song
		// playable in only one language.
		slog.Error("Assistant: song audio failed",
			"arabic_error", arabicErr, "french_error", frenchErr)
		msg := msgSongAudioError
		result.Error = &msg
		return result
	}

	result.ArabicAudio = &arabicURI
	result.FrenchAudio = &frenchURI
	return result
}
