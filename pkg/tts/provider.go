package tts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// ErrNoAudio indicates the speech model responded without a usable
// audio payload.
var ErrNoAudio = errors.New("no audio returned")

// Provider defines the interface for speech-synthesis engines.
// One call produces audio for exactly one language; the caller maps
// languages to voices and issues one call per language.
type Provider interface {
	// Synthesize generates speech for the text using the given prebuilt
	// voice and returns the audio as a WAV data URI.
	Synthesize(ctx context.Context, text, voice string) (string, error)
}

// ExtractPCM pulls the raw PCM bytes out of an inline media payload.
// The payload is a data URI (data:<mime>;base64,<data>); everything
// after the comma is base64-encoded PCM.
func ExtractPCM(dataURI string) ([]byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, fmt.Errorf("not a data URI")
	}
	idx := strings.IndexByte(dataURI, ',')
	if idx < 0 {
		return nil, fmt.Errorf("data URI has no payload")
	}
	pcm, err := base64.StdEncoding.DecodeString(dataURI[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}
	return pcm, nil
}
