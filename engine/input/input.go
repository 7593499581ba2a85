package input

import (
	"fmt"
	"sort"

	"github.com/1siamBot/geoscape/engine/dogfight"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	LeftJustPressed  bool
	RightJustPressed bool
	LeftJustReleased bool
	ScrollY          float64

	// Keyboard
	Pressed []ebiten.Key // keys that went down this frame
	keyBuf  []ebiten.Key
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, s.ScrollY = ebiten.Wheel()

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	s.Pressed = s.keyBuf
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Commands maps this frame's key presses through the bindings
func (s *InputState) Commands(b *Bindings) []dogfight.Command {
	var out []dogfight.Command
	for _, k := range s.Pressed {
		if cmd, ok := b.Command(k); ok {
			out = append(out, cmd)
		}
	}
	return out
}

// Bindings maps keys to dogfight commands
type Bindings struct {
	keys map[ebiten.Key]dogfight.Command
}

// NewBindings parses command-name to key-name pairs. Key names are
// ebiten's, such as "A", "Digit1" or "Escape".
func NewBindings(names map[string]string) (*Bindings, error) {
	b := &Bindings{keys: make(map[ebiten.Key]dogfight.Command, len(names))}
	cmds := make([]string, 0, len(names))
	for c := range names {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	for _, c := range cmds {
		cmd, ok := dogfight.ParseCommand(c)
		if !ok {
			return nil, fmt.Errorf("binding %q: unknown command", c)
		}
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(names[c])); err != nil {
			return nil, fmt.Errorf("binding %q: %w", c, err)
		}
		if prev, dup := b.keys[k]; dup {
			return nil, fmt.Errorf("binding %q: key %s already bound to %s", c, names[c], prev)
		}
		b.keys[k] = cmd
	}
	return b, nil
}

// Command returns the command bound to k
func (b *Bindings) Command(k ebiten.Key) (dogfight.Command, bool) {
	cmd, ok := b.keys[k]
	return cmd, ok
}
