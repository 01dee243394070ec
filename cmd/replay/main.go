// Command replay runs a pointer script through the drawing systems without
// opening a window and writes the resulting strokes as yaml and, optionally,
// a PDF.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/trazo/data"
	"github.com/milk9111/trazo/ecs"
	"github.com/milk9111/trazo/ecs/system"
	"github.com/milk9111/trazo/export"
	"github.com/milk9111/trazo/input"
	"github.com/milk9111/trazo/prefabs"
)

const tps = 60

// replay drives the scripted input frame by frame, the same way the game
// does during play, and snapshots the strokes it produced.
func replay(src []byte, spec *prefabs.DrawingSpec, mode data.ColorAdvance, maxFrames int) ([]export.Stroke, error) {
	script, err := input.NewScript(src)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	if _, err := system.SpawnCamera(w, spec.Camera.Zoom); err != nil {
		return nil, err
	}
	if _, err := system.SpawnCanvas(w, spec.Canvas.Color.Color, spec.Canvas.RenderLayer.Index); err != nil {
		return nil, err
	}

	later := system.NewLaterSystem()
	inputs := system.NewInputSystem(script)
	drawing := system.NewDrawingSystem(spec.Colors(), mode, 0)

	for frame := 0; !script.Done(); frame++ {
		if maxFrames > 0 && frame >= maxFrames {
			log.Printf("replay: stopped after %d of %d frames", frame, script.Frames())
			break
		}
		later.Tick(w, 1.0/tps)
		inputs.Update(w)
		drawing.Update(w)
		w.EndFrame()
	}
	return export.Snapshot(w), nil
}

func main() {
	scriptName := flag.String("script", "spiral", "tengo script in prefabs/scripts/ (basename, .tengo optional)")
	out := flag.String("out", "", "yaml output path (stdout when empty)")
	pdfPath := flag.String("pdf", "", "also write a PDF to this path")
	mode := flag.String("mode", string(data.ColorAdvanceStroke), "color advance: stroke or key")
	maxFrames := flag.Int("frames", 0, "stop after this many frames (0 runs the whole script)")
	flag.Parse()

	spec, err := prefabs.LoadDrawingSpec()
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	src, err := prefabs.LoadScript(*scriptName)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	opts := data.Options{ColorAdvance: data.ColorAdvance(*mode)}
	opts.Normalize()

	strokes, err := replay(src, spec, opts.ColorAdvance, *maxFrames)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}

	raw, err := export.Marshal(strokes)
	if err != nil {
		log.Fatalf("replay: %v", err)
	}
	if *out == "" {
		fmt.Print(string(raw))
	} else if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Fatalf("replay: write %s: %v", *out, err)
	}

	if *pdfPath != "" {
		if err := export.WritePDF(*pdfPath, strokes, export.PDFOptions{LineWidth: float64(spec.Stroke.Width)}); err != nil {
			log.Fatalf("replay: %v", err)
		}
	}
}
