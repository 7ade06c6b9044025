// Package ebiten provides an Ebiten-based 2D graphical renderer. Generation
// is stepped from Update so the maze grows on screen between frames.
package ebiten

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	engineinput "darkmaze/pkg/engine/input"
	"darkmaze/pkg/game/gameplay"
)

// keyRepeatInfo tracks a held key for auto-repeat
type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// EbitenRenderer is the windowed renderer implementation
type EbitenRenderer struct {
	session *gameplay.Session

	// Pace is the delay between animated generation steps
	Pace     time.Duration
	nextStep time.Time

	windowWidth  int
	windowHeight int

	monoFontSource     *text.GoTextFaceSource
	cachedMonoFace     *text.GoTextFace
	cachedMonoFontSize float64

	keyRepeatState      map[string]keyRepeatInfo
	keyRepeatStateMutex sync.Mutex

	windowOpenedLogged bool
	quit               bool
}

// New creates a new Ebiten renderer
func New(pace time.Duration) *EbitenRenderer {
	return &EbitenRenderer{
		Pace:           pace,
		windowWidth:    1024,
		windowHeight:   768,
		keyRepeatState: make(map[string]keyRepeatInfo),
	}
}

// Name returns the backend name
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Init loads the monospace font and sets up the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.monoFontSource = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle("Dark Maze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Run starts the Ebiten game loop on the session
func (e *EbitenRenderer) Run(s *gameplay.Session) error {
	e.session = s
	e.nextStep = time.Now()
	return ebiten.RunGame(e)
}

// Update handles input and advances generation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		if e.session.Apply(intent.Action) {
			e.quit = true
		}
		if intent.Action == engineinput.ActionRestart {
			e.nextStep = time.Now()
		}
	}
	if e.quit {
		return ebiten.Termination
	}

	return e.advance(time.Now())
}

// maxStepsPerUpdate keeps a fast pace from stalling a frame
const maxStepsPerUpdate = 2000

// advance runs the generation steps that are due by now
func (e *EbitenRenderer) advance(now time.Time) error {
	s := e.session
	if s.Ready() {
		return nil
	}
	if e.Pace <= 0 {
		return s.Advance(0)
	}
	steps := 0
	for !now.Before(e.nextStep) && steps < maxStepsPerUpdate {
		e.nextStep = e.nextStep.Add(e.Pace)
		steps++
	}
	if steps == maxStepsPerUpdate {
		e.nextStep = now
	}
	if steps == 0 {
		return nil
	}
	return s.Advance(steps)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
