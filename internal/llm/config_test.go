package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotEmpty(t, cfg.Models[TierLite])
	assert.NotEmpty(t, cfg.Models[TierStandard])
	assert.NotEmpty(t, cfg.Models[TierAdvanced])
}

func TestGetModelFallback(t *testing.T) {
	tests := []struct {
		name     string
		models   map[ModelTier]string
		tier     ModelTier
		expected string
	}{
		{"Configured tier", map[ModelTier]string{TierLite: "lite-model"}, TierLite, "lite-model"},
		{"Falls back to standard", map[ModelTier]string{TierStandard: "std-model"}, TierAdvanced, "std-model"},
		{"Falls back to lite", map[ModelTier]string{TierLite: "lite-model"}, TierStandard, "lite-model"},
		{"Nothing configured", map[ModelTier]string{}, TierStandard, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Models: tt.models}
			assert.Equal(t, tt.expected, cfg.GetModel(tt.tier))
		})
	}
}
