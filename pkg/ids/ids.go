// Package ids generates the public object identifiers carried by every
// domain object: a type prefix, an underscore, and 16 base62 characters
// drawn uniformly from a cryptographic source.
package ids

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Object id prefixes. The prefix is part of the public API contract.
const (
	PrefixBot                  = "bot"
	PrefixAppSession           = "app"
	PrefixRecording            = "rec"
	PrefixProject              = "proj"
	PrefixAPIKey               = "key"
	PrefixBotEvent             = "evt"
	PrefixCalendar             = "cal"
	PrefixTranscription        = "tran"
	PrefixChatMessage          = "msg"
	PrefixCreditTransaction    = "ct"
	PrefixParticipant          = "par"
	PrefixParticipantEvent     = "pe"
	PrefixBotLog               = "log"
	PrefixScreenshot           = "shot"
	PrefixBlob                 = "blob"
	PrefixWebhook              = "webhook"
	PrefixZoomOAuthApp         = "zoa"
	PrefixZoomOAuthConnection  = "zoc"
	PrefixZoomMeeting          = "zm"
	PrefixGalleryViewBotGroup  = "gbg"
	PrefixGalleryViewBotLayout = "gbl"
)

const (
	alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	suffixLen = 16
)

var objectIDPattern = regexp.MustCompile(`^[a-z]+_[A-Za-z0-9]{16}$`)

// New returns a fresh object id with the given prefix, e.g. "bot_a1B2c3D4e5F6g7H8".
func New(prefix string) string {
	out := make([]byte, 0, suffixLen)
	buf := make([]byte, suffixLen*2)
	for len(out) < suffixLen {
		if _, err := rand.Read(buf); err != nil {
			// crypto/rand failure means the process has no entropy source;
			// nothing sensible can continue.
			panic(fmt.Sprintf("ids: crypto/rand unavailable: %v", err))
		}
		for _, b := range buf {
			// Rejection sampling keeps the distribution uniform over the
			// 62-character alphabet (248 = 4*62).
			if b >= 248 {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == suffixLen {
				break
			}
		}
	}
	return prefix + "_" + string(out)
}

// Valid reports whether id is a well-formed object id.
func Valid(id string) bool {
	return objectIDPattern.MatchString(id)
}

// HasPrefix reports whether id carries the given prefix.
func HasPrefix(id, prefix string) bool {
	return Valid(id) && len(id) == len(prefix)+1+suffixLen && id[:len(prefix)+1] == prefix+"_"
}
