package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/wallhop/assets"
	"github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Quit() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level *assets.Level, watcher *config.Watcher) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(level, watcher),
	}
}

func (g *Game) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadLevel reads name from disk when such a file exists, otherwise from the
// levels compiled into the binary.
func loadLevel(name string) (*assets.Level, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return assets.LoadLevel(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return assets.LoadEmbeddedLevel(name)
}

func main() {
	settingsPath := flag.String("settings", "", "YAML settings file overlaid on the defaults")
	levelName := flag.String("level", "level01.tmx", "embedded level name or path to a TMX file")
	debug := flag.Bool("debug", true, "draw collision outlines (toggle in game with F1)")
	watch := flag.Bool("watch", false, "reload the settings file when it changes")
	flag.Parse()

	config.Debug.DrawCollision = *debug
	config.Debug.Watch = *watch

	var watcher *config.Watcher
	if *settingsPath != "" {
		if err := config.LoadFile(*settingsPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		if config.Debug.Watch {
			w, err := config.NewWatcher(*settingsPath)
			if err != nil {
				log.Printf("Warning: Could not watch settings: %v", err)
			} else {
				watcher = w
				defer watcher.Close()
			}
		}
	}

	level, err := loadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("wallhop")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(level, watcher)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
