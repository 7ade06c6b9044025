package input

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by EnterRaw when stdin is not a terminal
var ErrNotTerminal = errors.New("input: stdin is not a terminal")

// EscapeTimeout is how long a lone ESC waits for the rest of a sequence
const EscapeTimeout = 25 * time.Millisecond

// EnterRaw puts stdin in raw mode until the returned restore func is called
func EnterRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { term.Restore(fd, oldState) }, nil
}

type readResult struct {
	b   byte
	err error
}

// KeyReader decodes key presses from a raw byte stream. A goroutine pumps
// bytes from the source so a lone ESC can be told apart from a sequence.
type KeyReader struct {
	bytes chan readResult
	err   error // sticky once the source fails

	EscapeTimeout time.Duration
}

// NewKeyReader starts reading r. The pump stops at the first read error.
func NewKeyReader(r io.Reader) *KeyReader {
	k := &KeyReader{
		bytes:         make(chan readResult),
		EscapeTimeout: EscapeTimeout,
	}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n == 1 {
				k.bytes <- readResult{b: buf[0]}
			}
			if err != nil {
				k.bytes <- readResult{err: err}
				return
			}
		}
	}()
	return k
}

func (k *KeyReader) next() (byte, error) {
	if k.err != nil {
		return 0, k.err
	}
	res := <-k.bytes
	k.err = res.err
	return res.b, res.err
}

// nextWithin returns the next byte if it arrives in time, ok=false otherwise
func (k *KeyReader) nextWithin(d time.Duration) (b byte, ok bool, err error) {
	if k.err != nil {
		return 0, false, k.err
	}
	select {
	case res := <-k.bytes:
		k.err = res.err
		return res.b, res.err == nil, res.err
	case <-time.After(d):
		return 0, false, nil
	}
}

// ReadKey waits for one key press and returns its code. An empty code means
// the key has no name.
func (k *KeyReader) ReadKey() (string, error) {
	b, err := k.next()
	if err != nil {
		return "", err
	}
	if b == 0x1b {
		return k.readEscape()
	}
	return keyCode(b), nil
}

// ReadIntent reads one key press and maps it to an intent
func (k *KeyReader) ReadIntent() (Intent, error) {
	code, err := k.ReadKey()
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: code})), nil
}

// readEscape decodes the rest of an escape sequence after ESC.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; nothing
// following within the timeout is the Escape key itself.
func (k *KeyReader) readEscape() (string, error) {
	b2, ok, err := k.nextWithin(k.EscapeTimeout)
	if !ok {
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		// ESC followed by another key: report Escape and drop the key
		return "escape", nil
	}
	b3, err := k.next()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// keyCode names a single non-escape byte the way bindings expect it
func keyCode(b byte) string {
	switch {
	case b == 3:
		return "ctrl_c"
	case b == ' ':
		return "space"
	case b == '\r' || b == '\n':
		return "enter"
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a'))
	case b > 32 && b < 127:
		return string(rune(b))
	}
	return ""
}
