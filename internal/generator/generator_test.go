package generator

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestEmptyCommand(t *testing.T) {
	for _, command := range []string{"", "   "} {
		suggestions, err := Suggest(command)
		require.NoError(t, err)
		assert.Nil(t, suggestions)
	}
}

func TestSuggestSplitsOutput(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	suggestions, err := Suggest(`echo "one two"   three`)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, suggestions)
}

func TestSuggestQuotedProgram(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	suggestions, err := Suggest(`sh -c 'printf "a\nb\tc\n"'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, suggestions)
}

func TestSuggestFailures(t *testing.T) {
	_, err := Suggest(`pwgen "unterminated`)
	assert.Error(t, err)

	_, err = Suggest("/nonexistent/sala-password-generator 12")
	assert.Error(t, err)
}
