package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Provider produces subtask title suggestions for a task description.
// Implementations are external collaborators: a failure here never
// touches task state.
type Provider interface {
	Suggest(ctx context.Context, description string) ([]string, error)
}

// CommandContext is the function used to create exec.Cmd instances.
// It can be replaced in tests to mock command execution.
var CommandContext = exec.CommandContext

// DefaultTimeout bounds a single suggestion call.
const DefaultTimeout = 60 * time.Second

// claudeResponse is the wrapper the Claude Code CLI emits with
// --output-format json.
type claudeResponse struct {
	Type    string `json:"type"`
	Result  string `json:"result"`
	IsError bool   `json:"is_error"`
}

// ClaudeCLI suggests subtasks by shelling out to the claude CLI.
type ClaudeCLI struct {
	Timeout time.Duration
}

// Available checks if the claude command exists in PATH.
func (c *ClaudeCLI) Available() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

func (c *ClaudeCLI) Suggest(ctx context.Context, description string) ([]string, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("description must not be empty")
	}
	if !c.Available() {
		return nil, errors.New("claude CLI not found in PATH")
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := CommandContext(ctx, "claude", "-p", buildPrompt(description), "--output-format", "json", "--dangerously-skip-permissions")
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.New("suggestion request timed out")
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("claude command failed: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("run claude command: %w", err)
	}

	titles, err := parseSuggestions(output)
	if err != nil {
		return nil, err
	}
	if len(titles) == 0 {
		return nil, errors.New("no usable suggestions returned")
	}
	return titles, nil
}

func buildPrompt(description string) string {
	return fmt.Sprintf(`Break the following task into 3 to 6 short actionable subtasks.

TASK:
%s

Return ONLY a JSON array of subtask title strings, nothing else.`, description)
}

// parseSuggestions extracts a JSON string array from potentially noisy
// CLI output: the claude response wrapper and markdown fences are both
// tolerated.
func parseSuggestions(output []byte) ([]string, error) {
	data := output
	var wrapper claudeResponse
	if err := json.Unmarshal(output, &wrapper); err == nil && wrapper.Type == "result" {
		if wrapper.IsError {
			return nil, errors.New("claude returned an error: " + wrapper.Result)
		}
		data = []byte(wrapper.Result)
	}

	str := strings.TrimSpace(string(data))
	if strings.HasPrefix(str, "```") {
		str = strings.TrimPrefix(str, "```json")
		str = strings.TrimPrefix(str, "```")
		if i := strings.LastIndex(str, "```"); i >= 0 {
			str = str[:i]
		}
		str = strings.TrimSpace(str)
	}
	if start := strings.Index(str, "["); start > 0 {
		if end := strings.LastIndex(str, "]"); end > start {
			str = str[start : end+1]
		}
	}

	var titles []string
	if err := json.Unmarshal([]byte(str), &titles); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	out := make([]string, 0, len(titles))
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
