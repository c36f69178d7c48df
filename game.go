package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"raycasino/casino"
	"raycasino/config"
	"raycasino/engine"
	"raycasino/logger"
	"raycasino/model"
	"raycasino/world"
)

// main game object
type Game struct {
	log *logrus.Entry

	state  *world.State
	tables *casino.Registry
	driver *world.Driver
	snap   world.Snapshot

	//--software frame and its GPU copy--//
	renderer *engine.Renderer
	scene    *ebiten.Image

	// layout resolution is the logical frame times renderScale
	renderScale  float64
	screenWidth  int
	screenHeight int

	assets     *Assets
	controls   *Controls
	hud        *HUD
	minimap    *Minimap
	crosshairs *Crosshairs
	gun        *Gun
}

func NewGame(cfg *config.Config, grid *model.GridMap) *Game {
	root := logrus.NewEntry(logger.Log)

	wcfg := cfg.World()
	wcfg.Logger = root
	state := world.New(grid, model.DefaultTables(), wcfg)

	tables := casino.NewRegistry(root)
	state.SetMounter(tables.Mount)

	scale := math.Max(1, cfg.Window.Scale)
	g := &Game{
		log:          logger.Component("game"),
		state:        state,
		tables:       tables,
		renderer:     engine.NewRenderer(grid, engine.LogicalWidth, engine.LogicalHeight),
		scene:        ebiten.NewImage(engine.LogicalWidth, engine.LogicalHeight),
		renderScale:  scale,
		screenWidth:  int(float64(engine.LogicalWidth) * scale),
		screenHeight: int(float64(engine.LogicalHeight) * scale),
		assets:       LoadAssets(cfg.Assets, logger.Component("assets")),
		controls:     NewControls(),
	}
	g.hud = NewHUD(tables, g.screenWidth, g.screenHeight, scale)
	g.minimap = NewMinimap(grid, scale)
	g.crosshairs = NewCrosshairs(scale)
	g.gun = NewGun(g.assets.Gun, scale)
	g.driver = world.NewDriver(state, world.NewClock(nil), g.renderScene)

	g.log.WithFields(logrus.Fields{
		"seed":  cfg.Seed,
		"map":   grid.Width(),
		"scale": scale,
	}).Info("game initialised")
	return g
}

func (g *Game) renderScene(s *world.State) {
	s.RenderScene(g.renderer, g.assets.Enemy.Image())
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
// If you don't have to adjust the screen size with the outside size, just return a fixed size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// Update - Allows the game to run logic such as updating the world, gathering input, and playing audio.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	in := g.controls.Poll(g.state.Mode())
	g.driver.Step(in)
	g.controls.Sync(g.state.Mode())
	g.snap = g.state.Snapshot()
	return nil
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.WritePixels(g.renderer.Frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(g.renderScale, g.renderScale)
	screen.DrawImage(g.scene, op)

	g.gun.Draw(screen, g.snap)
	g.crosshairs.Draw(screen, g.snap)
	g.minimap.Draw(screen, g.state)
	g.hud.Draw(screen, g.snap, g.controls.Captured())
	g.hud.DrawOverlay(screen, g.snap)
}
