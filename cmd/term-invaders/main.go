package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-invaders/audio"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/game"
	"github.com/lixenwraith/term-invaders/input"
	"github.com/lixenwraith/term-invaders/render"
)

func main() {
	sounds := audio.NewSoundManager()

	var screen tcell.Screen

	// shutdown is the single cleanup path for normal exit, panics and
	// signals; sync.Once makes it safe to reach from all of them at once
	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			sounds.Cleanup()
			if screen != nil {
				screen.Fini()
			}
		})
	}

	// Panic recovery: restore the terminal before the stack trace so it
	// is readable, and stop audio so no loop outlives the process
	defer func() {
		if r := recover(); r != nil {
			shutdown()
			fmt.Fprintf(os.Stderr, "\nterm-invaders crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer shutdown()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		shutdown()
		os.Exit(0)
	}()

	width, height := screen.Size()
	renderer := render.NewRenderer(screen)

	if width < constants.MinWidth || height < constants.MinHeight {
		renderer.DrawTooSmall()
		waitForKey(screen)
		return
	}

	if err := sounds.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
	}

	clock := game.NewSystemClock()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(width, height, clock, rng, sounds)
	keys := input.DefaultKeyTable()

	eventChan := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		frameStart := clock.Now()

		// At most one pending input per frame; no input is the normal
		// case and must not stall the loop
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !g.HandleAction(keys.Translate(ev, g.Phase)) {
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			}
		default:
		}

		g.Update()
		renderer.Draw(g)

		// Sleep the remainder of the frame budget; an overrun frame
		// proceeds immediately
		if remaining := constants.FrameTime - clock.Now().Sub(frameStart); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func waitForKey(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}
