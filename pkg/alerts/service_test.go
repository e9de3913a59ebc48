package alerts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_RequiresTokenAndChannel(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{}))
	assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-test"}))
	assert.Nil(t, NewService(ServiceConfig{Channel: "C0123"}))
	assert.NotNil(t, NewService(ServiceConfig{Token: "xoxb-test", Channel: "C0123"}))
}

func TestService_NilIsNoOp(t *testing.T) {
	var s *Service
	// Must not panic; alerting is optional everywhere it is called.
	s.BotFatalError(context.Background(), "bot_abc", "https://meet.example.com/x", "crash")
}

func TestBuildFatalErrorMessage(t *testing.T) {
	t.Run("with reason and meeting", func(t *testing.T) {
		blocks := BuildFatalErrorMessage("bot_abc", "https://meet.example.com/x", "removed_by_host")
		require.Len(t, blocks, 1)

		section, ok := blocks[0].(*goslack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, section.Text.Text, "bot_abc")
		assert.Contains(t, section.Text.Text, "removed_by_host")
		assert.Contains(t, section.Text.Text, "https://meet.example.com/x")
	})

	t.Run("empty reason", func(t *testing.T) {
		blocks := BuildFatalErrorMessage("bot_abc", "", "")
		require.Len(t, blocks, 1)

		section, ok := blocks[0].(*goslack.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, section.Text.Text, "unspecified")
		assert.NotContains(t, section.Text.Text, "Meeting")
	})
}

// mockSlackServer returns an httptest server that answers chat.postMessage
// and records the posted form values.
func mockSlackServer(t *testing.T) (*httptest.Server, chan map[string][]string) {
	t.Helper()
	posted := make(chan map[string][]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat.postMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		posted <- r.PostForm
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C0123","ts":"1234.5678"}`))
	}))
	return server, posted
}

func TestClient_PostMessage(t *testing.T) {
	server, posted := mockSlackServer(t)
	defer server.Close()

	client := NewClientWithAPIURL("xoxb-test", "C0123", server.URL+"/")
	blocks := BuildFatalErrorMessage("bot_abc", "https://meet.example.com/x", "crash")

	err := client.PostMessage(context.Background(), blocks, postTimeout)
	require.NoError(t, err)

	form := <-posted
	assert.Equal(t, []string{"C0123"}, form["channel"])
	require.NotEmpty(t, form["blocks"])
	assert.Contains(t, form["blocks"][0], "bot_abc")
	assert.Contains(t, form["blocks"][0], "crash")
	assert.Contains(t, form["blocks"][0], "https://meet.example.com/x")
}

func TestService_BotFatalError(t *testing.T) {
	server, posted := mockSlackServer(t)
	defer server.Close()

	svc := NewServiceWithClient(NewClientWithAPIURL("xoxb-test", "C0123", server.URL+"/"))
	svc.BotFatalError(context.Background(), "bot_abc", "", "")

	form := <-posted
	require.NotEmpty(t, form["blocks"])
	// An empty sub kind renders as unspecified, never as an empty string.
	assert.Contains(t, form["blocks"][0], "unspecified")
	assert.NotContains(t, form["blocks"][0], "Meeting")
}

func TestService_PostFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer server.Close()

	svc := NewServiceWithClient(NewClientWithAPIURL("xoxb-test", "C_missing", server.URL+"/"))
	// Fail-open: the error is logged, never returned or panicked.
	svc.BotFatalError(context.Background(), "bot_abc", "", "crash")
}
