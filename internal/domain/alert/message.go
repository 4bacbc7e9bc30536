package alert

import (
	"fmt"
	"strconv"
	"strings"

	"fleetalert/internal/domain/entity"
)

const (
	// DefaultMessageTitle is used when no title is configured.
	DefaultMessageTitle = "Fleet compliance alert"
	// MessageTag lets clients collapse repeated run notifications into one.
	MessageTag = "fleet-compliance"
)

// ComposeMessage renders the single notification of a run. One alert yields a
// specific sentence; several alerts yield a count-based summary. Returns nil when
// there is nothing to send.
func ComposeMessage(events []entity.AlertEvent, title string) *entity.PushMessage {
	if len(events) == 0 {
		return nil
	}
	if title == "" {
		title = DefaultMessageTitle
	}

	var body string
	if len(events) == 1 {
		body = Describe(events[0])
	} else {
		body = summarizeBody(Summarize(events))
	}

	return &entity.PushMessage{
		Title: title,
		Body:  body,
		Tag:   MessageTag,
		Data: map[string]string{
			"alerts_count": strconv.Itoa(len(events)),
			"url":          "/alerts",
		},
	}
}

// Describe renders one alert as a sentence.
func Describe(event entity.AlertEvent) string {
	vehicle := event.VehicleLabel()

	if event.IsAppointment() {
		if event.DayOffset == 0 {
			return fmt.Sprintf("%s renewal appointment for %s is today", event.Kind.Label(), vehicle)
		}

		return fmt.Sprintf("%s renewal appointment for %s is in %s", event.Kind.Label(), vehicle, days(event.DayOffset))
	}

	switch Classify(event.DayOffset) {
	case entity.UrgencyExpired:
		return fmt.Sprintf("%s for %s expired %s ago", event.Kind.Label(), vehicle, days(-event.DayOffset))
	case entity.UrgencyDueToday:
		return fmt.Sprintf("%s for %s expires today", event.Kind.Label(), vehicle)
	default:
		return fmt.Sprintf("%s for %s expires in %s", event.Kind.Label(), vehicle, days(event.DayOffset))
	}
}

func summarizeBody(summary entity.AlertSummary) string {
	parts := make([]string, 0, 4)
	if summary.Expired > 0 {
		parts = append(parts, fmt.Sprintf("%d expired", summary.Expired))
	}
	if summary.DueToday > 0 {
		parts = append(parts, fmt.Sprintf("%d due today", summary.DueToday))
	}
	if summary.Upcoming > 0 {
		parts = append(parts, fmt.Sprintf("%d upcoming", summary.Upcoming))
	}
	if summary.Scheduled > 0 {
		parts = append(parts, fmt.Sprintf("%d appointments", summary.Scheduled))
	}

	return fmt.Sprintf("%d vehicle documents need attention: %s", summary.Total, strings.Join(parts, ", "))
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}
