package storefront

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/wvwvw5/neuro-store/internal/application"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

// AdminTab picks which of the two admin views to draw; both render off
// the same fetched dataset, mirroring the original tab toggle that
// never refetched.
type AdminTab string

const (
	AdminTabStatistics AdminTab = "statistics"
	AdminTabUsers      AdminTab = "users"
	AdminTabAll        AdminTab = "all"
)

func RenderAdmin(view application.AdminView, tab AdminTab, opts RenderOptions) string {
	s := newStyles()

	lines := []string{s.title.Render("Admin panel")}

	if tab == AdminTabStatistics || tab == AdminTabAll {
		lines = append(lines, s.section.Render(renderStatistics(view.Statistics, s)))
	}
	if tab == AdminTabUsers || tab == AdminTabAll {
		lines = append(lines, s.section.Render(renderUserTable(view.Users, s)))
	}

	if !opts.Now.IsZero() {
		lines = append(lines, s.faint.Render("as of "+opts.Now.Format("15:04 on 02 Jan")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStatistics(statistics domain.Statistics, s styles) string {
	cards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statGroupCard("Users", statistics.Users, s),
		" ",
		statGroupCard("Subscriptions", statistics.Subscriptions, s),
		" ",
		orderStatsCard(statistics.Orders, s),
	)

	return lipgloss.JoinVertical(lipgloss.Left, s.header.Render("Statistics"), cards)
}

func statGroupCard(name string, group domain.StatisticsGroup, s styles) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		s.cardTitle.Render(name),
		s.detail.Render(fmt.Sprintf("total:    %d", group.Total)),
		s.badgeOK.Render(fmt.Sprintf("active:   %d", group.Active)),
		s.badgeOff.Render(fmt.Sprintf("inactive: %d", group.Inactive)),
	)

	return s.card.Render(body)
}

func orderStatsCard(orders domain.OrderStatistics, s styles) string {
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		s.cardTitle.Render("Orders"),
		s.detail.Render(fmt.Sprintf("total:     %d", orders.Total)),
		s.badgeOK.Render(fmt.Sprintf("completed: %d", orders.Completed)),
		s.badgeWarn.Render(fmt.Sprintf("pending:   %d", orders.Pending)),
	)

	return s.card.Render(body)
}

func renderUserTable(users []domain.User, s styles) string {
	lines := []string{s.header.Render(fmt.Sprintf("Users: %d", len(users)))}

	if len(users) == 0 {
		lines = append(lines, s.empty.Render("No users."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.tableHeader.Render(fmt.Sprintf("%-5s %-30s %-25s %-8s %s", "ID", "EMAIL", "NAME", "STATUS", "REGISTERED")))

	for _, user := range users {
		status := "active"
		if !user.Active {
			status = "inactive"
		}
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"%-5d %-30s %-25s %-8s %s",
			user.ID,
			user.Email,
			user.FirstName+" "+user.LastName,
			status,
			formatDate(user.CreatedAt),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
