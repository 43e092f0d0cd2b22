package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/site"
)

func formatWeek(week site.WeekSummary) string {
	if week.Lessons == 0 {
		return fmt.Sprintf("Week %d (%s): no lessons", week.Index, week.Parity)
	}
	return fmt.Sprintf("Week %d (%s): %d lessons over %d days", week.Index, week.Parity, week.Lessons, week.Days)
}

func formatSummary(summary site.Summary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Schedule for %s updated\n\n", summary.Group))

	for _, week := range summary.Weeks {
		sb.WriteString(formatWeek(week))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Discord posts build summaries to a channel webhook.
type Discord struct {
	Session      *discordgo.Session
	WebhookID    string
	WebhookToken string
}

func NewDiscord(webhookID, webhookToken string) (*Discord, error) {
	if webhookID == "" || webhookToken == "" {
		return nil, errors.New("discord webhook id and token are required")
	}

	// webhooks authenticate with their own token, the session needs none
	dg, err := discordgo.New("")
	if err != nil {
		return nil, err
	}

	return &Discord{
		Session:      dg,
		WebhookID:    webhookID,
		WebhookToken: webhookToken,
	}, nil
}

func (d *Discord) Notify(ctx context.Context, summary site.Summary) error {
	_, err := d.Session.WebhookExecute(d.WebhookID, d.WebhookToken, false, &discordgo.WebhookParams{
		Content: formatSummary(summary),
	}, discordgo.WithContext(ctx))
	return err
}
