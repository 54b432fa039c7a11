package cmd

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func hasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func TestHelpTextIsChinese(t *testing.T) {
	assert.True(t, hasHan(rootCmd.Short), "root: %q", rootCmd.Short)
	for _, sub := range rootCmd.Commands() {
		if sub.Name() == "help" || sub.Name() == "completion" {
			continue
		}
		assert.True(t, hasHan(sub.Short), "%s: %q", sub.Name(), sub.Short)
	}
}
