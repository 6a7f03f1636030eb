package discord

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/striker-satyam/gatewaychk/internal/common/errorwrapper"
	"github.com/striker-satyam/gatewaychk/internal/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T) *WebhookNotifier {
	t.Helper()
	client, err := httpclient.NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)
	return NewWebhookNotifier(client, zerolog.Nop())
}

func TestEmbedBuilder_Build(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithTitle("Test").
		WithDescription("Description").
		WithURL("https://example.com").
		WithTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)).
		WithColor(0x00FF00).
		WithFooter("footer", "").
		AddField("Name", "Value", true).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "Test", embed.Title)
	assert.Equal(t, "Description", embed.Description)
	assert.Equal(t, "2024-01-02T03:04:05Z", embed.Timestamp)
	assert.Equal(t, 0x00FF00, embed.Color)
	require.Len(t, embed.Fields, 1)
	assert.True(t, embed.Fields[0].Inline)
	assert.Equal(t, "footer", embed.Footer.Text)
}

func TestValidator_ValidateEmbed(t *testing.T) {
	tests := []struct {
		name  string
		embed Embed
	}{
		{name: "long title", embed: Embed{Title: strings.Repeat("a", MaxTitleLength+1)}},
		{name: "long description", embed: Embed{Description: strings.Repeat("a", MaxDescriptionLength+1)}},
		{name: "empty field name", embed: Embed{Fields: []EmbedField{{Name: "", Value: "v"}}}},
		{name: "empty field value", embed: Embed{Fields: []EmbedField{{Name: "n", Value: ""}}}},
		{name: "long field value", embed: Embed{Fields: []EmbedField{{Name: "n", Value: strings.Repeat("a", MaxFieldValueLength+1)}}}},
		{name: "too many fields", embed: Embed{Fields: make([]EmbedField, MaxFields+1)}},
		{name: "long footer", embed: Embed{Footer: &EmbedFooter{Text: strings.Repeat("a", MaxFooterTextLength+1)}}},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEmbed(tt.embed)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
		})
	}

	assert.NoError(t, v.ValidateEmbed(Embed{Title: strings.Repeat("é", MaxTitleLength)}))
}

func TestMessagePayloadBuilder_Build(t *testing.T) {
	payload, err := NewMessagePayloadBuilder().
		WithUsername("gatechk").
		WithContent("hello").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "gatechk", payload.Username)

	_, err = NewMessagePayloadBuilder().WithUsername("gatechk").Build()
	assert.Error(t, err)

	_, err = NewMessagePayloadBuilder().WithContent(strings.Repeat("x", MaxContentLength+1)).Build()
	assert.Error(t, err)
}

func TestWebhookNotifier_Send(t *testing.T) {
	var received MessagePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	payload := MessagePayload{
		Username: "gatechk",
		Embeds:   []Embed{{Title: "Website Analysis Result", Fields: []EmbedField{{Name: "Platform", Value: "Shopify"}}}},
	}

	err := newTestNotifier(t).Send(context.Background(), server.URL+"/api/webhooks/1/abc", payload)
	require.NoError(t, err)

	assert.Equal(t, "gatechk", received.Username)
	require.Len(t, received.Embeds, 1)
	assert.Equal(t, "Shopify", received.Embeds[0].Fields[0].Value)
}

func TestWebhookNotifier_SendNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid Form Body"}`))
	}))
	defer server.Close()

	err := newTestNotifier(t).Send(context.Background(), server.URL, MessagePayload{Content: "x"})

	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "Invalid Form Body")
}

func TestWebhookNotifier_SendSkipsAndRejects(t *testing.T) {
	n := newTestNotifier(t)

	assert.NoError(t, n.Send(context.Background(), "", MessagePayload{Content: "x"}))
	assert.Error(t, n.Send(context.Background(), "not a url", MessagePayload{Content: "x"}))
	assert.Error(t, n.Send(context.Background(), "https://discord.example/api/webhooks/1", MessagePayload{}))
}
