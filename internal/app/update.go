// internal/app/update.go
package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/keymap"
	"github.com/llehouerou/carousel/internal/ui"
	"github.com/llehouerou/carousel/internal/ui/action"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
	"github.com/llehouerou/carousel/internal/ui/headerbar"
	"github.com/llehouerou/carousel/internal/ui/helpbindings"
	"github.com/llehouerou/carousel/internal/ui/layout"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		return m.handleAction(msg)
	}

	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	return m, cmd
}

// resize gives the carousel every row except the title and footer.
func (m *Model) resize(width, height int) tea.Cmd {
	m.SetSize(width, height)
	m.Help.Width = width
	body := layout.ContentHeight(height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		FooterHeight: ui.FooterHeight,
	})
	m.HelpPanel.SetSize(layout.PanelWidth(width, helpPanelWidth), body)
	return m.Carousel.Resize(width, body)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits even while the help panel has the keyboard.
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.ShowHelp {
		var cmd tea.Cmd
		m.HelpPanel, cmd = m.HelpPanel.Update(msg)
		return m, cmd
	}

	switch m.Keys.Resolve(msg) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.setHelp(true)
		return m, nil
	}

	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	log.Printf("%s: %s", m.Screen.Name, msg)

	switch a := msg.Action.(type) {
	case carouselview.PageChanged:
		m.Page = &Page{Identifier: a.Identifier, Index: a.Index}

	case carouselview.CardLoadFailed:
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpCardLoad, a.Identifier, a.Err)
		log.Print(m.ErrorMsg)

	case helpbindings.Close:
		m.setHelp(false)
	}
	return m, nil
}

// setHelp shows or hides the help panel. The carousel ignores input while
// the panel is up.
func (m *Model) setHelp(show bool) {
	m.ShowHelp = show
	m.Carousel.SetFocused(!show)
	if show {
		m.HelpPanel.SetContexts([]string{"global", "carousel"})
	}
}

// quit stops the carousel and keeps the commands that free its images for
// the final frame.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cleanup = m.Carousel.Dispose()
	m.Quitting = true
	return m, tea.Quit
}
