package nbprep

import "testing"

func TestPostProcess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "code tags become backticks",
			input:    "use <code>ls -la</code> here",
			expected: "use `ls -la` here",
		},
		{
			name:     "multiple occurrences",
			input:    "<code>a</code> and <code>b</code>",
			expected: "`a` and `b`",
		},
		{
			name:     "no markers unchanged",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PostProcess(tt.input); got != tt.expected {
				t.Errorf("PostProcess() = %q, want %q", got, tt.expected)
			}
		})
	}
}
