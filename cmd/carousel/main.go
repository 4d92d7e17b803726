package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	_ "embed"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoobzio/capitan"

	"github.com/jask/carousel"
	"github.com/jask/carousel/internal/config"
	"github.com/jask/carousel/tui"
)

//go:embed deck.html
var defaultDeck string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	path := cfg.Deck.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	var src io.Reader
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("open deck: %v", err)
		}
		defer f.Close()
		src = f
	} else {
		src = strings.NewReader(defaultDeck)
	}

	doc, err := carousel.ParseDeck(src)
	if err != nil {
		log.Fatalf("parse deck: %v", err)
	}

	// Surface construction problems on stderr; a failed container is
	// skipped, not fatal.
	capitan.Hook(carousel.CarouselConstructFailed, func(_ context.Context, e *capitan.Event) {
		id, _ := carousel.KeyCarouselID.From(e)
		reason, _ := carousel.KeyReason.From(e)
		log.Printf("carousel %s: %s", id, reason)
	})
	defer capitan.Shutdown()

	reg := carousel.NewRegistry()
	m := tui.New(reg)
	carousel.Bootstrap(doc, reg, m.ChangeOption())
	defer reg.Destroy()

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
