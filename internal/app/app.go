// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/layout"
	"github.com/llehouerou/carousel/internal/ui/styles"
)

// helpPanelWidth is the widest the help panel gets.
const helpPanelWidth = 44

// Screen is what a host program shows: a title and its card identifiers.
type Screen struct {
	Name        string
	Title       string
	Identifiers []string
}

// Page is the committed carousel page, shown in the footer.
type Page struct {
	Identifier string
	Index      int
}

// Model is the root model of a host screen. It frames one carousel between a
// title row and a footer row.
type Model struct {
	ui.Base
	Screen    Screen
	Carousel  carouselview.Model
	Help      help.Model
	HelpPanel helpbindings.Model
	Keys      *keymap.Resolver
	ShowHelp  bool
	Page      *Page
	ErrorMsg  string
	Quitting  bool

	// terminal commands freeing card images, written by the final frame
	cleanup string
}

// New creates a host screen model. The carousel is sized on the first
// WindowSizeMsg.
func New(screen Screen, opts carouselview.Options) Model {
	c := carouselview.New(screen.Identifiers, 0, 0, opts)
	c.SetFocused(true)
	c.SetOrigin(layout.ContentRow(headerbar.Height), 1)

	h := help.New()
	h.Styles.ShortKey = styles.T().S().Base
	h.Styles.ShortDesc = styles.T().S().Subtle
	h.Styles.ShortSeparator = styles.T().S().Subtle

	panel := helpbindings.New()
	panel.SetContexts([]string{"global", "carousel"})

	return Model{
		Screen:    screen,
		Carousel:  c,
		Help:      h,
		HelpPanel: panel,
		Keys:      keymap.NewResolver(keymap.ByContext("global")),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.Carousel.Init()
}
