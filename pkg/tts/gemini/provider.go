// Package gemini implements speech synthesis via the Gemini TTS models.
package gemini

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"rawdago/pkg/audio"
	"rawdago/pkg/config"
	"rawdago/pkg/tracker"
	"rawdago/pkg/tts"
)

const providerName = "gemini-tts"

// Provider implements tts.Provider for the Gemini speech models.
// The model returns raw 16-bit mono PCM at 24kHz which is wrapped into
// a WAV container before being handed back as a data URI.
type Provider struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	tracker *tracker.Tracker
}

// NewProvider creates a new Gemini TTS provider.
func NewProvider(ctx context.Context, cfg config.TTSConfig, apiKey string, t *tracker.Tracker) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("no API key configured for speech synthesis")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	p := &Provider{
		client:  client,
		model:   cfg.Model,
		tracker: t,
	}
	if p.model == "" {
		p.model = "gemini-2.5-flash-preview-tts"
	}
	if cfg.RateLimit > 0 {
		p.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.RateLimit)), cfg.RateLimit)
	}

	return p, nil
}

// Synthesize generates speech for the text using the given prebuilt
// voice and returns a playable WAV data URI.
func (p *Provider) Synthesize(ctx context.Context, text, voice string) (string, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(text), cfg)
	if err != nil {
		tts.Log(providerName, voice, text, err)
		if p.tracker != nil {
			p.tracker.TrackAPIFailure(providerName)
		}
		return "", fmt.Errorf("speech generation failed: %w", err)
	}

	pcm, err := extractAudio(resp)
	if err != nil {
		tts.Log(providerName, voice, text, err)
		if p.tracker != nil {
			p.tracker.TrackAPIZero(providerName)
		}
		return "", err
	}

	tts.Log(providerName, voice, text, nil)
	if p.tracker != nil {
		p.tracker.TrackAPISuccess(providerName)
	}

	wav := audio.EncodeWAV(pcm, audio.DefaultChannels, audio.DefaultSampleRate, audio.DefaultBitsPerSample)
	return audio.WAVDataURI(wav), nil
}

// extractAudio finds the inline audio payload in the response and
// returns its raw PCM bytes. Some transports deliver the payload as a
// base64 data URI instead of raw bytes; both forms are handled.
func extractAudio(resp *genai.GenerateContentResponse) ([]byte, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}
			data := part.InlineData.Data
			if bytes.HasPrefix(data, []byte("data:")) {
				return tts.ExtractPCM(string(data))
			}
			return data, nil
		}
	}
	return nil, tts.ErrNoAudio
}
