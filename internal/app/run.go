// internal/app/run.go
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/ui/cardart"
	"github.com/llehouerou/carousel/internal/ui/carouselview"
)

// DebugEnv names a file that receives diagnostics while the program runs.
const DebugEnv = "CAROUSEL_DEBUG"

// Options selects what a host program shows.
type Options struct {
	ConfigPath string
	ScreenName string

	// Identifiers, when set, replace the screen's configured images.
	Identifiers []string
}

// Run loads the configuration, builds the screen and runs it until the user
// quits.
func Run(opts Options) error {
	if path := os.Getenv(DebugEnv); path != "" {
		f, err := tea.LogToFile(path, "carousel")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// The terminal belongs to the UI.
		log.SetOutput(io.Discard)
	}

	m, err := Build(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// Build creates the screen model described by opts and the configuration.
func Build(opts Options) (Model, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}

	sc, err := cfg.Screen(opts.ScreenName)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", errmsg.OpScreenBuild, err)
	}
	if opts.Identifiers != nil {
		sc.Images = opts.Identifiers
	}

	cellW, cellH := cardart.CellSize()
	screen := Screen{Name: opts.ScreenName, Title: sc.Title, Identifiers: sc.Images}
	return New(screen, carouselview.Options{
		SettleDelay: cfg.SettleDelay(),
		Art:         newArt(cfg),
		CellWidth:   cellW,
		CellHeight:  cellH,
	}), nil
}

// newArt returns the card image renderer, or nil when the terminal shows
// cards as text. A cache that cannot be opened only costs speed.
func newArt(cfg *config.Config) *cardart.Renderer {
	protocol := cardart.Detect(cfg.ImageProtocol)
	if protocol == nil {
		log.Printf("no image protocol, drawing cards as text")
		return nil
	}

	cache, err := cardart.NewCache(cfg.CacheDir)
	if err != nil {
		log.Print(errmsg.Format(errmsg.OpCacheOpen, err))
		cache = nil
	}
	return cardart.NewRenderer(protocol, cardart.Resolver{Dir: cfg.AssetsDir}, cache)
}
