package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/render"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/site"
)

func testSummary() site.Summary {
	return site.Summary{
		Group: "ПКБО-01-24",
		Path:  "index.html",
		Weeks: []site.WeekSummary{
			{Index: 1, Parity: render.Odd, Days: 3, Lessons: 7},
			{Index: 2, Parity: render.Even, Days: 0, Lessons: 0},
		},
	}
}

func TestFormatSummary(t *testing.T) {
	content := formatSummary(testSummary())

	expected := "Schedule for ПКБО-01-24 updated\n\n" +
		"Week 1 (odd): 7 lessons over 3 days\n" +
		"Week 2 (even): no lessons\n"

	if content != expected {
		t.Errorf("expected %q, got %q", expected, content)
	}
}

func TestNewDiscord_RequiresWebhook(t *testing.T) {
	if _, err := NewDiscord("123", ""); err == nil {
		t.Errorf("expected error without webhook token")
	}
}

func TestNotify(t *testing.T) {
	var (
		path   string
		params discordgo.WebhookParams
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&params)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	endpoint := discordgo.EndpointWebhookToken
	discordgo.EndpointWebhookToken = func(webhookID, token string) string {
		return srv.URL + "/webhooks/" + webhookID + "/" + token
	}
	defer func() { discordgo.EndpointWebhookToken = endpoint }()

	discord, err := NewDiscord("123", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := discord.Notify(context.Background(), testSummary()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/webhooks/123/secret" {
		t.Errorf("unexpected webhook path %q", path)
	}
	if !strings.HasPrefix(params.Content, "Schedule for ПКБО-01-24 updated") {
		t.Errorf("unexpected content %q", params.Content)
	}
}
