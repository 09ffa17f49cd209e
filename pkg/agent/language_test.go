package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english question", "What time do you open tomorrow?", languageEnglish},
		{"swahili greeting", "Habari! Mnauza nini leo?", languageSwahili},
		{"short swahili", "sawa asante", languageSwahili},
		{"mixed mostly english", "Hello, I want to know the bei of the blue dress please if possible", languageEnglish},
		{"bare number", "2", languageEnglish},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectLanguage(tt.text))
		})
	}
}
