package llm

import (
	"context"
	"errors"

	"rawdago/pkg/model"
)

// ErrEmptyResult indicates the model call succeeded at the transport
// level but returned no usable structured output.
var ErrEmptyResult = errors.New("empty result")

// Provider defines the interface for the structured generation model.
// One call, no retries; transport errors surface unchanged.
type Provider interface {
	// GenerateBilingual sends a prompt and returns the parallel
	// Arabic/French response mandated by the output schema. The name
	// tags the call in prompt-history logs and stats.
	GenerateBilingual(ctx context.Context, name, prompt string) (*model.BilingualText, error)

	// HealthCheck verifies that the provider is configured and reachable.
	HealthCheck(ctx context.Context) error
}
