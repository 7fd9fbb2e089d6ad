package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execCompletion(shell string) (string, error) {
	stdout := new(bytes.Buffer)
	completionCmd.SetOut(stdout)
	defer completionCmd.SetOut(nil)
	err := runCompletion(completionCmd, shell)
	return stdout.String(), err
}

func TestCompletionShells(t *testing.T) {
	for _, shell := range validShells {
		t.Run(shell, func(t *testing.T) {
			stdout, err := execCompletion(shell)
			require.NoError(t, err)
			assert.NotEmpty(t, stdout)
			assert.Contains(t, stdout, "trainplan")
		})
	}
}

func TestCompletionInvalidShell(t *testing.T) {
	_, err := execCompletion("invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell: invalid")
}

func TestDetectShell(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"/bin/zsh", "zsh"},
		{"/usr/local/bin/bash", "bash"},
		{"/usr/bin/fish", "fish"},
		{"/usr/bin/pwsh", "powershell"},
		{"/bin/csh", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("SHELL", tt.env)
			assert.Equal(t, tt.want, detectShell())
		})
	}
}

func TestCompletionAutoDetect(t *testing.T) {
	t.Setenv("SHELL", "/bin/zsh")
	stdout := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetArgs([]string{"completion"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "zsh")
}

func TestCompletionAutoDetectUnknown(t *testing.T) {
	t.Setenv("SHELL", "/bin/csh")
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"completion"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not detect shell")
}
