package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrompt_Text(t *testing.T) {
	for _, p := range []Prompt{POI, POIVisual, OCR, Compact} {
		t.Run(p.String(), func(t *testing.T) {
			assert.NotEmpty(t, p.Text())
		})
	}
}

func TestPrompt_TextIsStable(t *testing.T) {
	assert.Equal(t, POI.Text(), POI.Text())
	assert.NotEqual(t, POI.Text(), POIVisual.Text())
}

func TestPrompt_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { _ = Prompt(42).Text() })
}
