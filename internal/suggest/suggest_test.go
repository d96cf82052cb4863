package suggest

import (
	"strings"
	"testing"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "clean array",
			input: `["buy balloons","send invites"]`,
			want:  []string{"buy balloons", "send invites"},
		},
		{
			name:  "claude wrapper",
			input: `{"type":"result","result":"[\"one\",\"two\"]","is_error":false}`,
			want:  []string{"one", "two"},
		},
		{
			name:  "markdown fenced",
			input: "```json\n[\"fenced\"]\n```",
			want:  []string{"fenced"},
		},
		{
			name:  "leading prose",
			input: `Sure, here you go: ["a","b"] hope that helps`,
			want:  []string{"a", "b"},
		},
		{
			name:  "blank titles dropped",
			input: `["keep","  ",""]`,
			want:  []string{"keep"},
		},
		{
			name:    "wrapper error flag",
			input:   `{"type":"result","result":"rate limited","is_error":true}`,
			wantErr: true,
		},
		{
			name:    "not an array",
			input:   `{"title":"x"}`,
			wantErr: true,
		},
		{
			name:    "plain text",
			input:   `no json here`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestions([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSuggestions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseSuggestions() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("parseSuggestions()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildPrompt_ContainsDescription(t *testing.T) {
	p := buildPrompt("plan a birthday party")
	if len(p) == 0 {
		t.Fatal("empty prompt")
	}
	if !strings.Contains(p, "plan a birthday party") {
		t.Fatalf("prompt missing description: %s", p)
	}
	if !strings.Contains(p, "JSON array") {
		t.Fatalf("prompt missing output contract: %s", p)
	}
}
