package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danagreer/shopdeck/internal/domain"
)

// FormSubmitMsg is sent when a content form is submitted
type FormSubmitMsg struct {
	Kind   Kind
	Values map[string]string
}

// field is one editable line in a content form
type field struct {
	key   string
	label string
	input textinput.Model
}

// ContentForm is a generic text form overlay used for the storefront content
// editors (hero banner, category, collection).
type ContentForm struct {
	kind   Kind
	title  string
	fields []field
	focus  int
	styles *Styles
}

func newField(key, label, value string) field {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200
	in.SetValue(value)
	return field{key: key, label: label, input: in}
}

func newContentForm(kind Kind, title string, fields []field) *ContentForm {
	f := &ContentForm{
		kind:   kind,
		title:  title,
		fields: fields,
		styles: New(),
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// NewHeroForm creates the hero banner editor
func NewHeroForm(hero domain.HeroBanner) *ContentForm {
	return newContentForm(KindHeroEdit, "Edit Hero Banner", []field{
		newField("heading", "Heading", hero.Heading),
		newField("subheading", "Subheading", hero.Subheading),
		newField("image_url", "Image URL", hero.ImageURL),
		newField("cta_label", "CTA Label", hero.CTALabel),
		newField("cta_path", "CTA Path", hero.CTAPath),
	})
}

// NewCategoryForm creates the category editor
func NewCategoryForm(cat domain.Category) *ContentForm {
	return newContentForm(KindCategoryEdit, "Edit Category", []field{
		newField("id", "ID", cat.ID),
		newField("name", "Name", cat.Name),
		newField("slug", "Slug", cat.Slug),
		newField("image_url", "Image URL", cat.ImageURL),
	})
}

// NewCollectionForm creates the collection editor. Product IDs are edited as
// a comma-separated list.
func NewCollectionForm(col domain.Collection) *ContentForm {
	return newContentForm(KindCollectionEdit, "Edit Collection", []field{
		newField("id", "ID", col.ID),
		newField("title", "Title", col.Title),
		newField("slug", "Slug", col.Slug),
		newField("product_ids", "Product IDs", strings.Join(col.ProductIDs, ", ")),
	})
}

// Init initializes the form
func (f *ContentForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *ContentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "tab", "down":
			f.moveFocus(1)
			return f, nil

		case "shift+tab", "up":
			f.moveFocus(-1)
			return f, nil

		case "enter":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return f, cmd
}

func (f *ContentForm) moveFocus(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *ContentForm) submit() tea.Cmd {
	values := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		values[fl.key] = strings.TrimSpace(fl.input.Value())
	}
	kind := f.kind
	return func() tea.Msg {
		return FormSubmitMsg{Kind: kind, Values: values}
	}
}

// Values returns the current field values keyed by field key
func (f *ContentForm) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		values[fl.key] = strings.TrimSpace(fl.input.Value())
	}
	return values
}

// View renders the form
func (f *ContentForm) View() string {
	var b strings.Builder

	for i, fl := range f.fields {
		label := f.styles.FieldLabel
		if i == f.focus {
			label = f.styles.MenuItemActive
		}
		b.WriteString(label.Render(fl.label + ": "))
		b.WriteString(fl.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(f.styles.Footer.Render("Tab: Next field • Enter: Save • Esc: Cancel"))

	return b.String()
}

// Title returns the form title
func (f *ContentForm) Title() string {
	return f.title
}

// Kind returns the overlay kind
func (f *ContentForm) Kind() Kind {
	return f.kind
}

// Size returns the form dimensions
func (f *ContentForm) Size() (width, height int) {
	return 64, len(f.fields) + 4
}

// SplitProductIDs parses the comma-separated product ID field value
func SplitProductIDs(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
