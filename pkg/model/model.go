package model

// AgeLevel selects the preschool cohort a tool generates content for.
// It only affects prompt wording, never control flow.
type AgeLevel string

const (
	// AgeFourYears is the younger cohort (Moyenne Section).
	AgeFourYears AgeLevel = "4 years"
	// AgeFiveYears is the older cohort (Grande Section).
	AgeFiveYears AgeLevel = "5 years"
)

// Request is a single tool invocation from the UI. Requests are
// stateless; nothing is kept once the Result has been delivered.
type Request struct {
	ToolID string   `json:"tool_id"`
	Input  string   `json:"input"`
	Age    AgeLevel `json:"age"`
}

// BilingualText holds the parallel Arabic and French renderings of one
// generated piece of content. Both fields are always populated on a
// successful generation; the output schema requires them together.
type BilingualText struct {
	Arabic string `json:"arabic"`
	French string `json:"french"`
}

// Result is the unit of output for every tool.
//
// Error == nil implies both text fields are set. The only partial state
// is the song tool: lyrics generated but synthesis failed, in which case
// the text fields survive, the audio fields are nil and Error is set.
type Result struct {
	Arabic      *string `json:"arabic"`
	French      *string `json:"french"`
	ArabicAudio *string `json:"arabic_audio,omitempty"`
	FrenchAudio *string `json:"french_audio,omitempty"`
	Error       *string `json:"error"`
}

// ErrorResult builds a total-failure Result carrying only the
// user-facing message.
func ErrorResult(msg string) Result {
	return Result{Error: &msg}
}

// TextResult builds a success Result from a bilingual text pair.
func TextResult(text BilingualText) Result {
	return Result{Arabic: &text.Arabic, French: &text.French}
}
