// Package transcription defines the recognized per-provider transcription
// settings. Settings arrive as JSON on bot creation; recognized options are
// typed, and unrecognized keys are preserved verbatim so newer producer
// options survive a round trip through an older engine.
package transcription

import (
	"encoding/json"
	"fmt"
)

// Provider names accepted in settings payloads.
const (
	ProviderOpenAI        = "openai"
	ProviderAssemblyAI    = "assembly_ai"
	ProviderDeepgram      = "deepgram"
	ProviderGladia        = "gladia"
	ProviderSarvam        = "sarvam"
	ProviderElevenLabs    = "eleven_labs"
	ProviderKyutai        = "kyutai"
	ProviderClosedCaption = "meeting_closed_captions"
)

// Settings selects and configures exactly one transcription provider.
type Settings struct {
	OpenAI        *OpenAISettings        `json:"openai,omitempty"`
	AssemblyAI    *AssemblyAISettings    `json:"assembly_ai,omitempty"`
	Deepgram      *DeepgramSettings      `json:"deepgram,omitempty"`
	Gladia        *GladiaSettings        `json:"gladia,omitempty"`
	Sarvam        *SarvamSettings        `json:"sarvam,omitempty"`
	ElevenLabs    *ElevenLabsSettings    `json:"eleven_labs,omitempty"`
	Kyutai        *KyutaiSettings        `json:"kyutai,omitempty"`
	ClosedCaption *ClosedCaptionSettings `json:"meeting_closed_captions,omitempty"`
}

// Provider returns the configured provider name, or "" when none is set.
func (s Settings) Provider() string {
	switch {
	case s.OpenAI != nil:
		return ProviderOpenAI
	case s.AssemblyAI != nil:
		return ProviderAssemblyAI
	case s.Deepgram != nil:
		return ProviderDeepgram
	case s.Gladia != nil:
		return ProviderGladia
	case s.Sarvam != nil:
		return ProviderSarvam
	case s.ElevenLabs != nil:
		return ProviderElevenLabs
	case s.Kyutai != nil:
		return ProviderKyutai
	case s.ClosedCaption != nil:
		return ProviderClosedCaption
	}
	return ""
}

// Validate rejects settings configuring more than one provider.
func (s Settings) Validate() error {
	count := 0
	for _, set := range []bool{
		s.OpenAI != nil, s.AssemblyAI != nil, s.Deepgram != nil, s.Gladia != nil,
		s.Sarvam != nil, s.ElevenLabs != nil, s.Kyutai != nil, s.ClosedCaption != nil,
	} {
		if set {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("transcription settings configure %d providers, want at most one", count)
	}
	return nil
}

// OpenAISettings configures OpenAI speech-to-text.
type OpenAISettings struct {
	Prompt           string `json:"prompt,omitempty"`
	Model            string `json:"model,omitempty"`
	Language         string `json:"language,omitempty"`
	ResponseFormat   string `json:"response_format,omitempty"`
	ChunkingStrategy string `json:"chunking_strategy,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var openAIKeys = []string{"prompt", "model", "language", "response_format", "chunking_strategy"}

func (s *OpenAISettings) UnmarshalJSON(data []byte) error {
	type alias OpenAISettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = OpenAISettings(a)
	extra, err := splitExtra(data, openAIKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s OpenAISettings) MarshalJSON() ([]byte, error) {
	type alias OpenAISettings
	return mergeExtra(alias(s), s.Extra)
}

// LanguageDetectionOptions narrows AssemblyAI automatic language detection.
type LanguageDetectionOptions struct {
	ExpectedLanguages []string `json:"expected_languages,omitempty"`
	FallbackLanguage  string   `json:"fallback_language,omitempty"`
}

// AssemblyAISettings configures AssemblyAI transcription.
type AssemblyAISettings struct {
	LanguageCode             string                    `json:"language_code,omitempty"`
	LanguageDetection        bool                      `json:"language_detection,omitempty"`
	KeytermsPrompt           []string                  `json:"keyterms_prompt,omitempty"`
	SpeechModel              string                    `json:"speech_model,omitempty"`
	SpeakerLabels            bool                      `json:"speaker_labels,omitempty"`
	UseEUServer              bool                      `json:"use_eu_server,omitempty"`
	LanguageDetectionOptions *LanguageDetectionOptions `json:"language_detection_options,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var assemblyAIKeys = []string{
	"language_code", "language_detection", "keyterms_prompt", "speech_model",
	"speaker_labels", "use_eu_server", "language_detection_options",
}

func (s *AssemblyAISettings) UnmarshalJSON(data []byte) error {
	type alias AssemblyAISettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = AssemblyAISettings(a)
	extra, err := splitExtra(data, assemblyAIKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s AssemblyAISettings) MarshalJSON() ([]byte, error) {
	type alias AssemblyAISettings
	return mergeExtra(alias(s), s.Extra)
}

// GladiaSettings configures Gladia transcription.
type GladiaSettings struct {
	Language             string   `json:"language,omitempty"`
	LanguageBehaviour    string   `json:"language_behaviour,omitempty"`
	TranscriptionHint    string   `json:"transcription_hint,omitempty"`
	CodeSwitchingLanguages []string `json:"code_switching_languages,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var gladiaKeys = []string{"language", "language_behaviour", "transcription_hint", "code_switching_languages"}

func (s *GladiaSettings) UnmarshalJSON(data []byte) error {
	type alias GladiaSettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = GladiaSettings(a)
	extra, err := splitExtra(data, gladiaKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s GladiaSettings) MarshalJSON() ([]byte, error) {
	type alias GladiaSettings
	return mergeExtra(alias(s), s.Extra)
}

// SarvamSettings configures Sarvam transcription.
type SarvamSettings struct {
	Model        string `json:"model,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var sarvamKeys = []string{"model", "language_code"}

func (s *SarvamSettings) UnmarshalJSON(data []byte) error {
	type alias SarvamSettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = SarvamSettings(a)
	extra, err := splitExtra(data, sarvamKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s SarvamSettings) MarshalJSON() ([]byte, error) {
	type alias SarvamSettings
	return mergeExtra(alias(s), s.Extra)
}

// ElevenLabsSettings configures ElevenLabs transcription.
type ElevenLabsSettings struct {
	ModelID      string `json:"model_id,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
	Diarize      bool   `json:"diarize,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var elevenLabsKeys = []string{"model_id", "language_code", "diarize"}

func (s *ElevenLabsSettings) UnmarshalJSON(data []byte) error {
	type alias ElevenLabsSettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = ElevenLabsSettings(a)
	extra, err := splitExtra(data, elevenLabsKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s ElevenLabsSettings) MarshalJSON() ([]byte, error) {
	type alias ElevenLabsSettings
	return mergeExtra(alias(s), s.Extra)
}

// KyutaiSettings configures Kyutai transcription.
type KyutaiSettings struct {
	Model string `json:"model,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var kyutaiKeys = []string{"model"}

func (s *KyutaiSettings) UnmarshalJSON(data []byte) error {
	type alias KyutaiSettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = KyutaiSettings(a)
	extra, err := splitExtra(data, kyutaiKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s KyutaiSettings) MarshalJSON() ([]byte, error) {
	type alias KyutaiSettings
	return mergeExtra(alias(s), s.Extra)
}

// ClosedCaptionSettings uses the meeting platform's own captions, with a
// per-platform spoken language selection.
type ClosedCaptionSettings struct {
	GoogleMeetLanguage    string `json:"google_meet_language,omitempty"`
	ZoomLanguage          string `json:"zoom_language,omitempty"`
	MicrosoftTeamsLanguage string `json:"microsoft_teams_language,omitempty"`

	Extra map[string]json.RawMessage `json:"-"`
}

var closedCaptionKeys = []string{"google_meet_language", "zoom_language", "microsoft_teams_language"}

func (s *ClosedCaptionSettings) UnmarshalJSON(data []byte) error {
	type alias ClosedCaptionSettings
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = ClosedCaptionSettings(a)
	extra, err := splitExtra(data, closedCaptionKeys)
	if err != nil {
		return err
	}
	s.Extra = extra
	return nil
}

func (s ClosedCaptionSettings) MarshalJSON() ([]byte, error) {
	type alias ClosedCaptionSettings
	return mergeExtra(alias(s), s.Extra)
}

// splitExtra returns the keys of data not in known, preserved raw.
func splitExtra(data []byte, known []string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// mergeExtra marshals v and overlays the preserved unknown keys.
func mergeExtra(v interface{}, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(base, &all); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := all[k]; !exists {
			all[k] = v
		}
	}
	return json.Marshal(all)
}
