package storefront

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wvwvw5/neuro-store/internal/application"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

func RenderDashboard(view application.DashboardView, opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render(fmt.Sprintf("Hello, %s!", view.User.FirstName)),
		s.section.Render(renderProfile(view.User, s)),
	}

	lines = append(lines, s.section.Render(s.title.Render("My subscriptions")))

	if len(view.Subscriptions) == 0 {
		lines = append(lines,
			s.empty.Render("No subscriptions yet."),
			s.faint.Render("Browse the catalog with `neuro catalog` to get started."),
		)
	} else {
		for _, subscription := range view.Subscriptions {
			lines = append(lines, s.section.Render(renderSubscriptionCard(subscription, s)))
		}
	}

	if !opts.Now.IsZero() {
		lines = append(lines, s.faint.Render("as of "+opts.Now.Format("15:04 on 02 Jan")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfile(user domain.User, s styles) string {
	parts := []string{
		s.detail.Render("email: " + user.Email),
		s.detail.Render("name:  " + strings.TrimSpace(user.FirstName+" "+user.LastName)),
	}

	if user.Phone != "" {
		parts = append(parts, s.detail.Render("phone: "+user.Phone))
	}

	parts = append(parts, s.faint.Render("registered "+formatDate(user.CreatedAt)))

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderSubscriptionCard(subscription domain.Subscription, s styles) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.cardTitle.Render(fmt.Sprintf("Subscription #%d", subscription.ID)),
			"  ",
			s.statusBadge(subscription.Status),
		),
		s.faint.Render(fmt.Sprintf("product #%d, plan #%d", subscription.ProductID, subscription.PlanID)),
		s.detail.Render(fmt.Sprintf("period:     %s to %s", formatDate(subscription.StartDate), formatDate(subscription.EndDate))),
		s.detail.Render(fmt.Sprintf("requests:   %d used", subscription.RequestsUsed)),
		s.detail.Render("auto-renew: "+yesNo(subscription.AutoRenew)),
	)

	return s.card.Render(body)
}
