package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/poimap/common"
	"github.com/milk9111/poimap/config"
	"github.com/milk9111/poimap/engine"
	"github.com/milk9111/poimap/render"
	"github.com/milk9111/poimap/render/canvas"
	"github.com/milk9111/poimap/tiled"
)

type Game struct {
	debug bool
	quit  bool

	engine   *engine.Engine
	loop     *engine.Loop
	canvas   *canvas.Canvas
	frame    *ebiten.Image
	pauseUI  *ebitenui.UI
	pauseKey ebiten.Key

	mu      sync.Mutex
	loadErr error
}

func NewGame(cfg config.Viewer, debug bool) *Game {
	client := &http.Client{Timeout: 30 * time.Second}
	loader := render.NewCachedLoader(render.HTTPLoader{
		BaseURL: strings.TrimRight(cfg.ServerURL, "/") + cfg.ImagePath,
		Client:  client,
	})

	e := engine.New(loader, cfg.Defaults)
	g := &Game{
		debug:    debug,
		engine:   e,
		loop:     engine.NewLoop(e),
		canvas:   canvas.NewCanvas(nil),
		pauseKey: parseKey(cfg.PauseKey),
	}
	g.pauseUI = NewPauseUI(g)

	go g.load(cfg, client)
	return g
}

func parseKey(name string) ebiten.Key {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		log.Printf("unknown pause key %q, using P", name)
		return ebiten.KeyP
	}
	return k
}

func (g *Game) load(cfg config.Viewer, client *http.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	url := strings.TrimRight(cfg.ServerURL, "/") + cfg.MapPath
	b, err := tiled.Fetch(ctx, client, url, cfg.Mode == config.ModeSingle)
	if err == nil {
		err = g.engine.LoadBundle(ctx, b)
	}
	if err != nil {
		log.Printf("failed to load map %s: %v", url, err)
		g.mu.Lock()
		g.loadErr = err
		g.mu.Unlock()
		return
	}
	for _, lerr := range g.engine.LoadErrors() {
		log.Printf("map %s: %v", url, lerr)
	}
	g.loop.Start()
}

func (g *Game) paused() bool {
	return !g.loop.Running() && g.engine.State() == engine.StateRendering
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	g.engine.OnPointerMove(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.engine.OnPointerClick(float64(x), float64(y))
		if g.debug {
			for _, o := range g.engine.Clicked() {
				log.Printf("clicked %s %d %q", o.Kind, o.ID, o.Name)
			}
		}
	}

	if inpututil.IsKeyJustPressed(g.pauseKey) && g.engine.State() == engine.StateRendering {
		g.loop.Toggle()
	}
	if g.paused() {
		g.pauseUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if w, h, ok := g.engine.Size(); ok && w > 0 && h > 0 {
		if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
			g.frame = ebiten.NewImage(w, h)
		}
		g.canvas.Target(g.frame)
		g.loop.Tick(g.canvas)
		screen.DrawImage(g.frame, nil)
	}

	if g.paused() {
		g.pauseUI.Draw(screen)
	}

	switch g.engine.State() {
	case engine.StateError:
		g.mu.Lock()
		err := g.loadErr
		g.mu.Unlock()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("failed to load map: %v", err))
	case engine.StateUnloaded, engine.StateLoading:
		ebitenutil.DebugPrint(screen, "loading map...")
	default:
		if g.debug {
			ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Hovered: %d",
				g.engine.Frames(), ebiten.ActualFPS(), len(g.engine.Hovered())))
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w, h, ok := g.engine.Size(); ok && w > 0 && h > 0 {
		return w, h
	}
	return common.BaseWidth, common.BaseHeight
}
