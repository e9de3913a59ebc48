package transcription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepgramSettings_EffectiveModel(t *testing.T) {
	tests := []struct {
		name     string
		settings DeepgramSettings
		want     string
	}{
		{"default", DeepgramSettings{}, DeepgramDefaultModel},
		{"english", DeepgramSettings{Language: "en"}, DeepgramDefaultModel},
		{"explicit model wins", DeepgramSettings{Model: "whisper-large", Language: "zh"}, "whisper-large"},
		{"chinese falls back", DeepgramSettings{Language: "zh"}, DeepgramFallbackModel},
		{"chinese variant falls back", DeepgramSettings{Language: "zh-TW"}, DeepgramFallbackModel},
		{"thai falls back", DeepgramSettings{Language: "th"}, DeepgramFallbackModel},
		{"thai variant falls back", DeepgramSettings{Language: "th-TH"}, DeepgramFallbackModel},
		{"uppercase normalized", DeepgramSettings{Language: "ZH"}, DeepgramFallbackModel},
		{"zhx is not chinese", DeepgramSettings{Language: "zhx"}, DeepgramDefaultModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.settings.EffectiveModel())
		})
	}
}
