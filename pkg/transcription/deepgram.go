package transcription

import (
	"encoding/json"
	"strings"
)

// Deepgram model selection. nova-3 is the default, but it does not cover
// Chinese and Thai; those languages fall back to nova-2.
const (
	DeepgramDefaultModel  = "nova-3"
	DeepgramFallbackModel = "nova-2"
)

// DeepgramSettings configures Deepgram transcription.
type DeepgramSettings struct {
	Language       string   `json:"language,omitempty"`
	DetectLanguage bool     `json:"detect_language,omitempty"`
	Callback       string   `json:"callback,omitempty"`
	Keyterms       []string `json:"keyterms,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
	Model          string   `json:"model,omitempty"`
	Redact         []string `json:"redact,omitempty"`
	Replace        []string `json:"replace,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var deepgramKeys = []string{
	"language", "detect_language", "callback", "keyterms", "keywords",
	"model", "redact", "replace",
}

func (s *DeepgramSettings) UnmarshalJSON(data []byte) error {
	type alias DeepgramSettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = DeepgramSettings(a)
	extra, err := splitExtra(data, deepgramKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s DeepgramSettings) MarshalJSON() ([]byte, error) {
	type alias DeepgramSettings
	return mergeExtra(alias(s), s.Extra)
}

// EffectiveModel resolves the model to request: an explicit model wins,
// otherwise nova-3, downgraded to nova-2 for languages nova-3 cannot handle.
func (s DeepgramSettings) EffectiveModel() string {
	if s.Model != "" {
		return s.Model
	}
	if languageNeedsNova2(s.Language) {
		return DeepgramFallbackModel
	}
	return DeepgramDefaultModel
}

// languageNeedsNova2 reports whether the language is a Chinese or Thai
// variant unsupported by nova-3.
func languageNeedsNova2(language string) bool {
	lang := strings.ToLower(language)
	return lang == "zh" || strings.HasPrefix(lang, "zh-") ||
		lang == "th" || strings.HasPrefix(lang, "th-")
}
