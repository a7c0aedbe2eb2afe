// Package storefront renders fetched store records for the terminal.
// Every function is a pure mapping from data to styled text: no state,
// no fetching.
package storefront

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

func RenderProducts(products []domain.Product) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Neuro Store"),
		s.header.Render(fmt.Sprintf("products: %d", len(products))),
	}

	if len(products) == 0 {
		lines = append(lines, s.empty.Render("No products available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, product := range products {
		lines = append(lines, s.section.Render(renderProductCard(product, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProductCard(product domain.Product, s styles) string {
	description := product.Description
	if description == "" {
		description = "No description available."
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		s.cardTitle.Render(fmt.Sprintf("%s  #%d", product.Name, product.ID)),
		s.faint.Render(product.Category),
		s.detail.Render(description),
		s.activeBadge(product.Active),
	)

	return s.card.Render(body)
}

func RenderPlans(product domain.Product, plans []domain.Plan, selected *domain.Plan) string {
	s := newStyles()

	lines := []string{
		s.title.Render(fmt.Sprintf("Plans for %s", product.Name)),
		s.header.Render(fmt.Sprintf("plans: %d", len(plans))),
	}

	if len(plans) == 0 {
		lines = append(lines, s.empty.Render("No plans available for this product."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, plan := range plans {
		isSelected := selected != nil && selected.ID == plan.ID
		lines = append(lines, s.section.Render(renderPlanCard(plan, isSelected, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPlanCard(plan domain.Plan, isSelected bool, s styles) string {
	title := fmt.Sprintf("%s  #%d", plan.Name, plan.ID)
	if isSelected {
		title = s.selected.Render("> " + title)
	} else {
		title = s.cardTitle.Render(title)
	}

	parts := []string{
		title,
		s.price.Render(fmt.Sprintf("%s / %s", formatPrice(plan.Price), durationLabel(plan.DurationDays))),
	}

	if plan.Description != "" {
		parts = append(parts, s.detail.Render(plan.Description))
	}
	if plan.MaxRequestsPerMonth > 0 {
		parts = append(parts, s.detail.Render(fmt.Sprintf("up to %d requests/month", plan.MaxRequestsPerMonth)))
	}
	for _, feature := range plan.Features {
		parts = append(parts, s.detail.Render("- "+feature))
	}

	parts = append(parts, s.activeBadge(plan.Active))

	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func RenderSubscriptionCreated(subscription domain.Subscription) string {
	s := newStyles()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.title.Render(fmt.Sprintf("Subscription #%d created", subscription.ID)),
		s.detail.Render(fmt.Sprintf("product #%d, plan #%d", subscription.ProductID, subscription.PlanID)),
		s.detail.Render(fmt.Sprintf("valid %s to %s", formatDate(subscription.StartDate), formatDate(subscription.EndDate))),
		s.statusBadge(subscription.Status),
	)
}
