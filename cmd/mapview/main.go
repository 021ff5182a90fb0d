// Command mapview prints the collision map and spawn positions in the terminal.
package main

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/discoverme/data"
	"chosenoffset.com/discoverme/internal/config"
	"chosenoffset.com/discoverme/internal/game"
	"chosenoffset.com/discoverme/internal/telemetry"
)

func main() {
	cfg, err := config.LoadConfig(config.Path("config.json"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	world, err := game.LoadWorld(context.Background(), telemetry.NoopTracer(), cfg, data.FS())
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	screen, err := NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	defer screen.Close()

	run(screen, BuildView(cfg, world))
}

func run(screen *Screen, view *View) {
	styles := map[rune]tcell.Style{
		glyphFloor:  tcell.StyleDefault.Foreground(tcell.ColorDarkGreen),
		glyphSolid:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		glyphPlayer: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
	marker := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)

	var scrollX, scrollY int
	for {
		w, h := screen.Size()
		scrollX, scrollY = view.Clamp(scrollX, scrollY, w, h-1)

		screen.Clear()
		for y := 0; y < h-1 && scrollY+y < len(view.Cells); y++ {
			row := view.Cells[scrollY+y]
			for x := 0; x < w && scrollX+x < len(row); x++ {
				r := row[scrollX+x]
				style, ok := styles[r]
				if !ok {
					style = marker
				}
				screen.SetContent(x, y, r, style)
			}
		}
		for i, r := range []rune(view.Status(scrollX, scrollY)) {
			if i >= w {
				break
			}
			screen.SetContent(i, h-1, r, tcell.StyleDefault.Reverse(true))
		}
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyUp:
				scrollY--
			case tcell.KeyDown:
				scrollY++
			case tcell.KeyLeft:
				scrollX--
			case tcell.KeyRight:
				scrollX++
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return
				}
			}
		}
	}
}
