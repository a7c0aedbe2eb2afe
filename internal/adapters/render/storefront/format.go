package storefront

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/wvwvw5/neuro-store/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

// FormatCardNumber strips non-digits and regroups the remainder in
// blocks of four for display: "4111111111111111" -> "4111 1111 1111 1111".
func FormatCardNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if cleaned == "" {
		return ""
	}

	parts := make([]string, 0, (len(cleaned)+3)/4)
	for i := 0; i < len(cleaned); i += 4 {
		end := i + 4
		if end > len(cleaned) {
			end = len(cleaned)
		}
		parts = append(parts, cleaned[i:end])
	}

	return strings.Join(parts, " ")
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + " ₽"
}

func durationLabel(days int) string {
	switch days {
	case 30:
		return "1 month"
	case 90:
		return "3 months"
	case 180:
		return "6 months"
	case 365:
		return "1 year"
	default:
		return fmt.Sprintf("%d days", days)
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}

	return t.Format("02 Jan 2006")
}

func statusLabel(status domain.SubscriptionStatus) string {
	switch status {
	case domain.SubscriptionActive:
		return "active"
	case domain.SubscriptionExpired:
		return "expired"
	case domain.SubscriptionCancelled:
		return "cancelled"
	case domain.SubscriptionSuspended:
		return "suspended"
	default:
		return string(status)
	}
}

func (s styles) statusBadge(status domain.SubscriptionStatus) string {
	label := statusLabel(status)

	switch status {
	case domain.SubscriptionActive:
		return s.badgeOK.Render(label)
	case domain.SubscriptionExpired, domain.SubscriptionCancelled:
		return s.badgeOff.Render(label)
	default:
		return s.badgeWarn.Render(label)
	}
}

func (s styles) activeBadge(active bool) string {
	if active {
		return s.badgeOK.Render("active")
	}

	return s.badgeOff.Render("inactive")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}
