package utils

import (
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text without markdown",
			input:    "저소득층 아동의 급식을 지원합니다",
			expected: "저소득층 아동의 급식을 지원합니다",
		},
		{
			name:     "bold text",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "italic text",
			input:    "This is *italic* text",
			expected: "This is italic text",
		},
		{
			name:     "link",
			input:    "Visit [gov24](https://www.gov.kr) for details",
			expected: "Visit gov24 for details",
		},
		{
			name:     "heading",
			input:    "# 지원 대상\n\n저소득 가구",
			expected: "지원 대상\n\n저소득 가구",
		},
		{
			name:     "code inline",
			input:    "Use the `StripMarkdown` function",
			expected: "Use the StripMarkdown function",
		},
		{
			name:     "code block",
			input:    "```go\nfunc main() {}\n```",
			expected: "func main() {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
