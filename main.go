package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trazo/data"
	"github.com/milk9111/trazo/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	play := flag.Bool("play", false, "skip the menu and start drawing")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	dataDir := flag.String("data", data.DefaultDir, "directory settings are saved in")
	script := flag.String("script", "", "tengo script in prefabs/scripts/ that drives the pointer (basename, .tengo optional)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory checked for prefab overrides before the embedded copies")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("trazo")

	game, err := NewGame(Config{
		Debug:   *debug,
		Play:    *play,
		DataDir: *dataDir,
		Script:  *script,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
