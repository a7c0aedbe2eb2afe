package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wvwvw5/neuro-store/internal/application"
	"github.com/wvwvw5/neuro-store/internal/domain"
)

var errTopUpCancelled = errors.New("top-up cancelled")

type verifyResultMsg struct {
	receipt domain.Receipt
	err     error
}

// topUpWizardModel is the interactive second step of the top-up: the
// payment is already submitted, the model collects the SMS code and
// verifies it against the flow. A wrong code keeps the prompt open for
// another attempt; escape abandons the payment.
type topUpWizardModel struct {
	ctx       context.Context
	flow      *application.TopUpFlow
	input     textinput.Model
	verifying bool
	errMsg    string
	receipt   domain.Receipt
	done      bool
	cancelled bool
}

func newTopUpWizardModel(ctx context.Context, flow *application.TopUpFlow) topUpWizardModel {
	input := textinput.New()
	input.Placeholder = "SMS code"
	input.CharLimit = 8
	input.Width = 12
	input.Focus()

	return topUpWizardModel{
		ctx:   ctx,
		flow:  flow,
		input: input,
	}
}

func (m topUpWizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m topUpWizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			m.flow.Back()
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.verifying {
				return m, nil
			}
			code := m.input.Value()
			if code == "" {
				return m, nil
			}
			m.verifying = true
			m.errMsg = ""
			return m, m.verifyCmd(code)
		}
	case verifyResultMsg:
		m.verifying = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			m.input.Reset()
			return m, nil
		}
		m.receipt = msg.receipt
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m topUpWizardModel) verifyCmd(code string) tea.Cmd {
	return func() tea.Msg {
		receipt, err := m.flow.VerifyCode(m.ctx, code)
		return verifyResultMsg{receipt: receipt, err: err}
	}
}

func (m topUpWizardModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	faint := lipgloss.NewStyle().Faint(true)
	lines := []string{
		fmt.Sprintf("Payment %d submitted, enter the SMS verification code:", m.flow.PaymentID()),
		m.input.View(),
	}

	if m.verifying {
		lines = append(lines, faint.Render("verifying..."))
	}
	if m.errMsg != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Render(m.errMsg))
	}

	lines = append(lines, faint.Render("enter to verify, esc to cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func runTopUpWizard(ctx context.Context, output io.Writer, flow *application.TopUpFlow) (domain.Receipt, error) {
	p := tea.NewProgram(
		newTopUpWizardModel(ctx, flow),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return domain.Receipt{}, err
	}

	result, ok := finalModel.(topUpWizardModel)
	if !ok {
		return domain.Receipt{}, fmt.Errorf("unexpected final wizard model type %T", finalModel)
	}
	if result.cancelled {
		return domain.Receipt{}, errTopUpCancelled
	}

	return result.receipt, nil
}
