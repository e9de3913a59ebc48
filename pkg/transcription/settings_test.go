package transcription

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Provider(t *testing.T) {
	assert.Equal(t, "", Settings{}.Provider())
	assert.Equal(t, ProviderDeepgram, Settings{Deepgram: &DeepgramSettings{}}.Provider())
	assert.Equal(t, ProviderClosedCaption, Settings{ClosedCaption: &ClosedCaptionSettings{}}.Provider())
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, Settings{}.Validate())
	assert.NoError(t, Settings{OpenAI: &OpenAISettings{Model: "whisper-1"}}.Validate())

	err := Settings{
		OpenAI:   &OpenAISettings{},
		Deepgram: &DeepgramSettings{},
	}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 providers")
}

func TestSettings_ParseTypedFields(t *testing.T) {
	raw := `{
		"assembly_ai": {
			"language_code": "en_us",
			"speaker_labels": true,
			"keyterms_prompt": ["stenobot", "centicredit"],
			"language_detection_options": {
				"expected_languages": ["en", "de"],
				"fallback_language": "en"
			}
		}
	}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	require.NotNil(t, s.AssemblyAI)
	assert.Equal(t, "en_us", s.AssemblyAI.LanguageCode)
	assert.True(t, s.AssemblyAI.SpeakerLabels)
	assert.Equal(t, []string{"stenobot", "centicredit"}, s.AssemblyAI.KeytermsPrompt)
	require.NotNil(t, s.AssemblyAI.LanguageDetectionOptions)
	assert.Equal(t, "en", s.AssemblyAI.LanguageDetectionOptions.FallbackLanguage)
	assert.Nil(t, s.AssemblyAI.Extra)
}

func TestSettings_UnknownKeysSurviveRoundTrip(t *testing.T) {
	raw := `{"deepgram":{"language":"en","smart_format":true,"numerals":false}}`

	var s Settings
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	require.NotNil(t, s.Deepgram)
	assert.Equal(t, "en", s.Deepgram.Language)

	// Unrecognized provider options are preserved raw.
	require.Contains(t, s.Deepgram.Extra, "smart_format")
	require.Contains(t, s.Deepgram.Extra, "numerals")

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestSettings_ExtraNeverShadowsTypedFields(t *testing.T) {
	// A typed field set after parse wins over a stale raw copy.
	s := DeepgramSettings{
		Language: "de",
		Extra:    map[string]json.RawMessage{"language": json.RawMessage(`"en"`)},
	}
	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"de"}`, string(out))
}

func TestClosedCaptionSettings_RoundTrip(t *testing.T) {
	raw := `{"google_meet_language":"en-US","zoom_language":"German","custom_flag":1}`

	var s ClosedCaptionSettings
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, "en-US", s.GoogleMeetLanguage)
	assert.Equal(t, "German", s.ZoomLanguage)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
