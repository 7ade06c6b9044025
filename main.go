package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/engine/terminal"
	"darkmaze/pkg/game/devtools"
	"darkmaze/pkg/game/gameplay"
	"darkmaze/pkg/game/generator"
	"darkmaze/pkg/game/renderer"
	"darkmaze/pkg/game/renderer/ebiten"
	"darkmaze/pkg/game/renderer/tui"
)

// options holds the parsed command line
type options struct {
	cfg      generator.Config
	pace     time.Duration
	backend  string
	reveal   bool
	dump     string
	lang     string
	keys     bool
	fitWidth bool
	fitDepth bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := generator.DefaultConfig()
	var o options

	fs := flag.NewFlagSet("darkmaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.cfg.Width, "width", def.Width, "maze width in cells (0 = fit the terminal)")
	fs.IntVar(&o.cfg.Depth, "depth", def.Depth, "maze depth in cells (0 = fit the terminal)")
	fs.Float64Var(&o.cfg.DoorProbability, "doors", def.DoorProbability, "probability that a new passage is a door, in [0,1]")
	fs.IntVar(&o.cfg.ThemeCount, "themes", def.ThemeCount, "number of room themes")
	fs.IntVar(&o.cfg.WallVariants, "wall-variants", def.WallVariants, "number of wall styles")
	fs.Int64Var(&o.cfg.Seed, "seed", 0, "random seed (0 = time based)")
	fs.DurationVar(&o.pace, "pace", 10*time.Millisecond, "delay between generation steps (0 = instant)")
	fs.StringVar(&o.backend, "renderer", "tui", "renderer backend: tui or ebiten")
	fs.BoolVar(&o.reveal, "reveal", false, "show every room instead of only the nearby ones")
	fs.StringVar(&o.dump, "dump", "", "generate one maze, write a debug dump to this file (- for stdout) and exit")
	fs.StringVar(&o.lang, "lang", "en_GB", "message language")
	fs.BoolVar(&o.keys, "keys", false, "print the key bindings and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.fitWidth = o.cfg.Width == 0
	o.fitDepth = o.cfg.Depth == 0
	if o.backend != "tui" && o.backend != "ebiten" {
		return o, fmt.Errorf("unknown renderer %q", o.backend)
	}
	return o, nil
}

// resolveSize replaces zero dimensions with the largest maze that fits
func (o *options) resolveSize(fit func(reserved int) (int, int)) {
	if !o.fitWidth && !o.fitDepth {
		return
	}
	w, d := fit(tui.StatusRows + 2)
	if o.fitWidth {
		o.cfg.Width = w
	}
	if o.fitDepth {
		o.cfg.Depth = d
	}
}

func newRenderer(o options) renderer.Renderer {
	if o.backend == "ebiten" {
		return ebiten.New(o.pace)
	}
	return tui.New(o.pace)
}

// boundActions is the order key bindings are listed in
var boundActions = []engineinput.Action{
	engineinput.ActionForward,
	engineinput.ActionBack,
	engineinput.ActionLeft,
	engineinput.ActionRight,
	engineinput.ActionLookLeft,
	engineinput.ActionLookRight,
	engineinput.ActionRestart,
	engineinput.ActionReveal,
	engineinput.ActionQuit,
}

func printBindings(w io.Writer) {
	byAction := engineinput.GetBindingsByAction()
	for _, act := range boundActions {
		codes := strings.Join(byAction[act], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		fmt.Fprintf(w, "%-12s %s\n", engineinput.ActionName(act)+":", codes)
	}
}

// dumpMaze generates one maze without a renderer and writes its debug dump
func dumpMaze(o options) error {
	b, err := generator.NewBuilder(o.cfg)
	if err != nil {
		return err
	}
	for !b.Done() {
		b.Step()
	}
	if o.dump == "-" {
		return devtools.WriteMaze(os.Stdout, b.Maze(), b.Stats())
	}
	path, err := devtools.DumpMazeToFile(o.dump, b.Maze(), b.Stats())
	if err != nil {
		return err
	}
	log.Printf("maze dumped to %s", path)
	return nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("%v", err)
	}

	if o.keys {
		printBindings(os.Stdout)
		return
	}

	gotext.Configure("locales", o.lang, "default")
	o.resolveSize(terminal.FitMaze)

	if err := o.cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration:\n%v", err)
	}

	if o.dump != "" {
		if err := dumpMaze(o); err != nil {
			log.Fatalf("dump failed: %v", err)
		}
		return
	}

	// The terminal renderer owns stdout, so logs go to a file while it runs.
	if o.backend == "tui" {
		if f, err := os.Create("darkmaze.log"); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	s, err := gameplay.NewSession(o.cfg)
	if err != nil {
		log.Fatalf("cannot start: %v", err)
	}
	s.Reveal = o.reveal

	r := newRenderer(o)
	if err := r.Init(); err != nil {
		log.Fatalf("%s renderer: %v", r.Name(), err)
	}
	if err := r.Run(s); err != nil {
		log.Fatalf("%s renderer: %v", r.Name(), err)
	}
}
