// Package app contains the main application model and TEA implementation.
// All state mutation happens on the single Bubble Tea update loop; commands
// run I/O off-loop and report back as messages.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danagreer/shopdeck/internal/config"
	"github.com/danagreer/shopdeck/internal/domain"
	"github.com/danagreer/shopdeck/internal/services/mail"
	"github.com/danagreer/shopdeck/internal/services/payment"
	"github.com/danagreer/shopdeck/internal/types"
	"github.com/danagreer/shopdeck/internal/ui/alert"
	"github.com/danagreer/shopdeck/internal/ui/orderdetail"
	"github.com/danagreer/shopdeck/internal/ui/orderlist"
	"github.com/danagreer/shopdeck/internal/ui/overlay"
	"github.com/danagreer/shopdeck/internal/ui/storefront"
	"github.com/danagreer/shopdeck/internal/ui/styles"
)

const (
	alertTickInterval = time.Second
	successAlertTTL   = 3 * time.Second
	errorAlertTTL     = 5 * time.Second
)

// PaymentAPI reads transaction records from the payment provider
type PaymentAPI interface {
	GetOrder(ctx context.Context, id string) (payment.Order, error)
}

// CatalogAPI reads and writes the document store's projections and
// storefront content
type CatalogAPI interface {
	Order(ctx context.Context, id string) (domain.OrderProjection, error)
	ListOrders(ctx context.Context) ([]domain.OrderProjection, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	SaveCategory(ctx context.Context, cat domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	SaveCollection(ctx context.Context, col domain.Collection) error
	Hero(ctx context.Context) (domain.HeroBanner, error)
	SaveHero(ctx context.Context, hero domain.HeroBanner) error
}

// Model is the main application state
type Model struct {
	// Current page
	page types.PageID

	// Pages
	orders *orderlist.Model
	detail *orderdetail.Model
	store  *storefront.Model

	// Overlay state: the registry holds visibility, surface holds the
	// live panel for the visible overlay
	registry   *overlay.Registry
	surface    overlay.Overlay
	scrollLock overlay.ScrollLock

	// Transient alerts
	alerts []types.Alert

	// Services
	payment PaymentAPI
	catalog CatalogAPI
	sender  mail.Sender

	// Terminal size
	width  int
	height int

	// Loading state
	loading bool
	spinner spinner.Model

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

// New creates a new application model
func New(cfg *config.Config, paymentAPI PaymentAPI, catalogAPI CatalogAPI, sender mail.Sender, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	st := styles.New()

	return Model{
		page:     types.PageOrders,
		orders:   orderlist.New(st),
		detail:   orderdetail.New(st),
		store:    storefront.New(st),
		registry: overlay.NewRegistry(),
		payment:  paymentAPI,
		catalog:  catalogAPI,
		sender:   sender,
		loading:  true,
		spinner:  s,
		styles:   st,
		config:   cfg,
		logger:   logger,
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadOrdersCmd(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 2 // status bar
		m.orders.SetSize(msg.Width, contentHeight)
		m.detail.SetSize(msg.Width, contentHeight)
		m.store.SetSize(msg.Width, contentHeight)
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		// The email preview runs its own spinner while submitting
		if m.surface != nil {
			cmds = append(cmds, m.updateSurface(msg))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.surface != nil {
			return m, m.updateSurface(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.closeOverlay()
		return m, nil

	case overlay.SendResultMsg:
		return m.handleSendResult(msg)

	case overlay.ApplyFilterMsg:
		m.orders.SetFilter(msg.Statuses, msg.Query)
		m.closeOverlay()
		return m, nil

	case overlay.FormSubmitMsg:
		return m.handleFormSubmit(msg)

	case overlay.ConfirmMsg:
		m.closeOverlay()
		if msg.Confirmed {
			return m, m.deleteCategoryCmd(msg.Subject)
		}
		return m, nil

	case ordersLoadedMsg:
		m.orders.SetOrders(msg.orders)
		m.loading = false
		return m, nil

	case ordersErrorMsg:
		m.loading = false
		return m, m.addAlert(types.AlertError, fmt.Sprintf("Failed to load orders: %v", msg.err))

	case orderDetailLoadedMsg:
		m.detail.SetOrder(msg.order, msg.payment)
		if msg.paymentErr != nil {
			m.logger.Warn("payment record unavailable", "order", msg.order.ID, "error", msg.paymentErr)
			return m, m.addAlert(types.AlertNeutral, "Payment record unavailable")
		}
		return m, nil

	case orderDetailErrorMsg:
		m.page = types.PageOrders
		return m, m.addAlert(types.AlertError, fmt.Sprintf("Failed to load order %s: %v", msg.id, msg.err))

	case contentLoadedMsg:
		m.store.SetContent(msg.hero, msg.categories, msg.collections)
		return m, nil

	case contentErrorMsg:
		return m, m.addAlert(types.AlertError, fmt.Sprintf("Failed to load content: %v", msg.err))

	case contentSavedMsg:
		return m.handleContentSaved(msg)

	case tickMsg:
		m.expireAlerts()
		if len(m.alerts) > 0 {
			return m, tickEvery(alertTickInterval)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes page-level keys. Overlay keys never reach here; the
// surface consumes them first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		// Esc dismisses visible alerts before anything else
		if len(m.alerts) > 0 {
			m.alerts = nil
			m.syncScroll()
			return m, nil
		}
	}

	switch m.page {
	case types.PageOrders:
		return m.handleOrdersKey(msg)
	case types.PageOrderDetails:
		return m.handleDetailKey(msg)
	case types.PageStorefront:
		return m.handleStorefrontKey(msg)
	}
	return m, nil
}

func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.orders.MoveCursor(1)
	case "k", "up":
		m.orders.MoveCursor(-1)
	case "enter":
		if sel, ok := m.orders.Selected(); ok {
			m.page = types.PageOrderDetails
			return m, m.loadOrderDetailCmd(sel.ID)
		}
	case "f":
		return m.showOverlay(overlay.KindOrderFilter), nil
	case "s":
		m.orders.CycleSort()
	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadOrdersCmd())
	case "2":
		m.page = types.PageStorefront
		if !m.store.Loaded() {
			return m, m.loadContentCmd()
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.page = types.PageOrders
	case "j", "down":
		if !m.scrollLock.Locked() {
			m.detail.Scroll(1)
		}
	case "k", "up":
		if !m.scrollLock.Locked() {
			m.detail.Scroll(-1)
		}
	case "c":
		return m.showOverlay(overlay.KindOrderConfirmedEmailPreview), nil
	case "x":
		return m.showOverlay(overlay.KindOrderShippedEmailPreview), nil
	case "d":
		return m.showOverlay(overlay.KindOrderDeliveredEmailPreview), nil
	}
	return m, nil
}

func (m Model) handleStorefrontKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.store.MoveCursor(1)
	case "k", "up":
		m.store.MoveCursor(-1)
	case "enter":
		switch sel := m.store.Selected(); sel.Section {
		case storefront.SectionHero:
			return m.showOverlay(overlay.KindHeroEdit), nil
		case storefront.SectionCategories:
			return m.showOverlay(overlay.KindCategoryEdit), nil
		case storefront.SectionCollections:
			return m.showOverlay(overlay.KindCollectionEdit), nil
		}
	case "h":
		return m.showOverlay(overlay.KindHeroEdit), nil
	case "d":
		if m.store.Selected().Section == storefront.SectionCategories {
			return m.showOverlay(overlay.KindDeleteConfirm), nil
		}
	case "r":
		return m, m.loadContentCmd()
	case "1":
		m.page = types.PageOrders
	}
	return m, nil
}

// showOverlay constructs the panel for the kind, flips its registry flag and
// re-syncs the scroll lock
func (m Model) showOverlay(kind overlay.Kind) Model {
	switch {
	case kind.IsEmailPreview():
		if !m.detail.Loaded() {
			return m
		}
		m.surface = overlay.NewEmailPreview(kind, m.detail.Order(), m.sender, m.config.Mail.Recipient, m.logger)

	case kind == overlay.KindOrderFilter:
		m.surface = overlay.NewFilterMenu(m.orders.Filter())

	case kind == overlay.KindHeroEdit:
		m.surface = overlay.NewHeroForm(m.store.Hero())

	case kind == overlay.KindCategoryEdit:
		m.surface = overlay.NewCategoryForm(m.store.Selected().Category)

	case kind == overlay.KindCollectionEdit:
		m.surface = overlay.NewCollectionForm(m.store.Selected().Collection)

	case kind == overlay.KindDeleteConfirm:
		cat := m.store.Selected().Category
		m.surface = overlay.NewConfirmDialog(
			"Delete Category",
			fmt.Sprintf("Delete category %q?", cat.Name),
			cat.ID,
		)
	}

	m.registry.Show(m.page, kind)
	m.syncScroll()
	return m
}

// closeOverlay hides whatever is visible on the current page. Closing an
// email preview cancels its in-flight send.
func (m *Model) closeOverlay() {
	if ep, ok := m.surface.(*overlay.EmailPreview); ok {
		ep.Cancel()
	}
	m.surface = nil
	m.registry.HideAll(m.page)
	m.syncScroll()
}

// updateSurface forwards a message to the visible overlay panel
func (m *Model) updateSurface(msg tea.Msg) tea.Cmd {
	updated, cmd := m.surface.Update(msg)
	if o, ok := updated.(overlay.Overlay); ok {
		m.surface = o
	}
	return cmd
}

// handleSendResult converts a send outcome into an alert. A result whose
// error is context.Canceled means the operator closed the panel mid-send;
// that is not an outcome worth reporting.
func (m Model) handleSendResult(msg overlay.SendResultMsg) (tea.Model, tea.Cmd) {
	var surfaceCmd tea.Cmd
	if m.surface != nil {
		surfaceCmd = m.updateSurface(msg)
	}

	if errors.Is(msg.Err, context.Canceled) {
		m.logger.Debug("send canceled", "kind", msg.Kind.String())
		return m, surfaceCmd
	}

	if msg.Err != nil {
		m.logger.Error("email send failed", "kind", msg.Kind.String(), "error", msg.Err)
		return m, tea.Batch(surfaceCmd, m.addAlert(types.AlertError, fmt.Sprintf("Send failed: %v", msg.Err)))
	}

	m.logger.Info("email sent", "kind", msg.Kind.String())
	return m, tea.Batch(surfaceCmd, m.addAlert(types.AlertSuccess, "Email sent"))
}

func (m Model) handleFormSubmit(msg overlay.FormSubmitMsg) (tea.Model, tea.Cmd) {
	m.closeOverlay()

	switch msg.Kind {
	case overlay.KindHeroEdit:
		return m, m.saveHeroCmd(domain.HeroBanner{
			Heading:    msg.Values["heading"],
			Subheading: msg.Values["subheading"],
			ImageURL:   msg.Values["image_url"],
			CTALabel:   msg.Values["cta_label"],
			CTAPath:    msg.Values["cta_path"],
		})

	case overlay.KindCategoryEdit:
		return m, m.saveCategoryCmd(domain.Category{
			ID:       msg.Values["id"],
			Name:     msg.Values["name"],
			Slug:     msg.Values["slug"],
			ImageURL: msg.Values["image_url"],
		})

	case overlay.KindCollectionEdit:
		return m, m.saveCollectionCmd(domain.Collection{
			ID:         msg.Values["id"],
			Title:      msg.Values["title"],
			Slug:       msg.Values["slug"],
			ProductIDs: overlay.SplitProductIDs(msg.Values["product_ids"]),
		})
	}

	return m, nil
}

func (m Model) handleContentSaved(msg contentSavedMsg) (tea.Model, tea.Cmd) {
	verb := "saved"
	if msg.deleted {
		verb = "deleted"
	}

	if msg.err != nil {
		m.logger.Error("content write failed", "what", msg.what, "error", msg.err)
		return m, m.addAlert(types.AlertError, fmt.Sprintf("%s not %s: %v", msg.what, verb, msg.err))
	}

	// Reload so the page reflects the write
	return m, tea.Batch(
		m.addAlert(types.AlertSuccess, fmt.Sprintf("%s %s", msg.what, verb)),
		m.loadContentCmd(),
	)
}

// addAlert appends a transient alert, re-syncs the scroll lock and schedules
// the expiry tick
func (m *Model) addAlert(level types.AlertLevel, message string) tea.Cmd {
	ttl := successAlertTTL
	if level == types.AlertError {
		ttl = errorAlertTTL
	}
	m.alerts = append(m.alerts, types.Alert{
		Level:   level,
		Message: message,
		Expires: time.Now().Add(ttl),
	})
	m.syncScroll()
	return tickEvery(alertTickInterval)
}

// expireAlerts drops expired alerts and re-syncs the scroll lock
func (m *Model) expireAlerts() {
	m.alerts = alert.Prune(m.alerts, time.Now())
	m.syncScroll()
}

// syncScroll recomputes the scroll lock from the visibility union: locked
// iff any overlay or alert is visible on the current page
func (m *Model) syncScroll() {
	locked := m.registry.AnyVisible(m.page) || len(m.alerts) > 0
	if m.scrollLock.Sync(locked) {
		m.logger.Debug("scroll lock", "locked", locked)
	}
}

// Page returns the current page, for tests
func (m Model) Page() types.PageID {
	return m.page
}

// ScrollLocked reports the scroll lock state, for tests
func (m Model) ScrollLocked() bool {
	return m.scrollLock.Locked()
}

// Alerts returns the visible alerts, for tests
func (m Model) Alerts() []types.Alert {
	return m.alerts
}
