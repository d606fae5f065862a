package overlay

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/services/mail"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

// SendResultMsg reports the outcome of a send action
type SendResultMsg struct {
	Kind Kind
	Err  error
}

// EmailPreview shows a transactional email before sending it. The send
// action runs Idle → Submitting → Idle: the trigger is disabled while a
// send is in flight, so a second concurrent send is impossible from this
// panel. The send context is tied to the panel's lifetime; closing the
// panel cancels an in-flight send.
type EmailPreview struct {
	kind    Kind
	message mail.Message
	sender  mail.Sender
	logger  *slog.Logger
	styles  *Styles

	submitting bool
	spinner    spinner.Model

	ctx    context.Context
	cancel context.CancelFunc
}

// EmailCategory maps an email preview kind to its mail category. Calling it
// with a non-preview kind is a programming error.
func (k Kind) EmailCategory() mail.Category {
	switch k {
	case KindOrderConfirmedEmailPreview:
		return mail.CategoryOrderConfirmed
	case KindOrderShippedEmailPreview:
		return mail.CategoryOrderShipped
	case KindOrderDeliveredEmailPreview:
		return mail.CategoryOrderDelivered
	default:
		panic("overlay: " + k.String() + " is not an email preview")
	}
}

// NewEmailPreview creates an email preview panel for the given order
func NewEmailPreview(kind Kind, order domain.OrderProjection, sender mail.Sender, overrideTo string, logger *slog.Logger) *EmailPreview {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	ctx, cancel := context.WithCancel(context.Background())

	return &EmailPreview{
		kind:    kind,
		message: mail.Compose(kind.EmailCategory(), order, overrideTo),
		sender:  sender,
		logger:  logger,
		styles:  New(),
		spinner: sp,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init initializes the panel
func (p *EmailPreview) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (p *EmailPreview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.submitting {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case SendResultMsg:
		if msg.Kind == p.kind {
			p.submitting = false
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			// Closing cancels an in-flight send
			return p, func() tea.Msg { return CloseOverlayMsg{} }

		case "s", "enter":
			if p.submitting {
				// Trigger disabled while in flight
				return p, nil
			}
			p.submitting = true
			return p, tea.Batch(p.spinner.Tick, p.sendCmd())
		}
	}

	return p, nil
}

// sendCmd performs the send on the panel's lifetime context
func (p *EmailPreview) sendCmd() tea.Cmd {
	ctx := p.ctx
	msg := p.message
	kind := p.kind
	sender := p.sender
	return func() tea.Msg {
		return SendResultMsg{Kind: kind, Err: sender.Send(ctx, msg)}
	}
}

// Cancel aborts any in-flight send. The app calls this when the panel is
// hidden.
func (p *EmailPreview) Cancel() {
	p.cancel()
}

// Submitting reports whether a send is in flight
func (p *EmailPreview) Submitting() bool {
	return p.submitting
}

// View renders the preview
func (p *EmailPreview) View() string {
	var b strings.Builder

	b.WriteString(p.styles.FieldLabel.Render("To:      "))
	b.WriteString(p.styles.FieldValue.Render(p.message.To))
	b.WriteString("\n")
	b.WriteString(p.styles.FieldLabel.Render("Subject: "))
	b.WriteString(p.styles.FieldValue.Render(p.message.Subject))
	b.WriteString("\n\n")

	b.WriteString(p.styles.Body.Render(p.message.TextBody))
	b.WriteString("\n")

	if p.submitting {
		b.WriteString(p.spinner.View())
		b.WriteString(p.styles.MenuItemDisabled.Render(" Sending..."))
	} else {
		b.WriteString(p.styles.MenuKey.Render("[S]"))
		b.WriteString(p.styles.MenuItem.Render(" Send"))
	}

	b.WriteString("\n")
	b.WriteString(p.styles.Footer.Render("S/Enter: Send • Esc: Close"))

	return b.String()
}

// Title returns the panel title
func (p *EmailPreview) Title() string {
	return p.message.Subject
}

// Kind returns the overlay kind
func (p *EmailPreview) Kind() Kind {
	return p.kind
}

// Size returns the panel dimensions
func (p *EmailPreview) Size() (width, height int) {
	lines := len(strings.Split(p.message.TextBody, "\n"))
	return 64, lines + 8
}
