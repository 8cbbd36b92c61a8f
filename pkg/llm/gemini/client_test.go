package gemini

import (
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json",
			input: `{"arabic": "أ", "french": "a"}`,
			want:  `{"arabic": "أ", "french": "a"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"arabic\": \"أ\"}\n```",
			want:  `{"arabic": "أ"}`,
		},
		{
			name:  "bare fence",
			input: "```\n{}\n```",
			want:  `{}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  {}\n",
			want:  `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONBlock(tt.input); got != tt.want {
				t.Errorf("cleanJSONBlock(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr bool
	}{
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: true,
		},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			wantErr: true,
		},
		{
			name: "empty parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{}},
				},
			},
			wantErr: true,
		},
		{
			name: "concatenates text parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{
						{Text: `{"arabic": "أغنية",`},
						{Text: ` "french": "chanson"}`},
					}}},
				},
			},
			want: `{"arabic": "أغنية", "french": "chanson"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getResponseText(tt.resp)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWordWrap(t *testing.T) {
	in := strings.Repeat("word ", 30)
	out := wordWrap(strings.TrimSpace(in), 20)
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 25 {
			t.Errorf("line too long after wrap: %q", line)
		}
	}

	if got := wordWrap("short", 0); got != "short" {
		t.Errorf("zero width should be a no-op, got %q", got)
	}
}

func TestBilingualSchemaShape(t *testing.T) {
	if bilingualSchema.Type != genai.TypeObject {
		t.Errorf("schema type = %v, want object", bilingualSchema.Type)
	}
	for _, field := range []string{"arabic", "french"} {
		p, ok := bilingualSchema.Properties[field]
		if !ok {
			t.Fatalf("schema missing %q property", field)
		}
		if p.Type != genai.TypeString {
			t.Errorf("%q type = %v, want string", field, p.Type)
		}
	}
	if len(bilingualSchema.Required) != 2 {
		t.Errorf("required = %v, want both fields", bilingualSchema.Required)
	}
}
