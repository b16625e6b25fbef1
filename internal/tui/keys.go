package tui

// Key is a decoded terminal key press.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyReset
	KeyPerspective
	KeyTopDown
	KeyEverything
	KeyQuit
)

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// ParseKeys decodes one read from a raw-mode terminal. Arrow keys arrive
// as ESC [ A..D; an ESC with nothing after it in the same read is the
// Escape key itself. Unknown bytes are dropped.
func ParseKeys(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == esc {
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				if k := arrow(buf[i+2]); k != KeyNone {
					keys = append(keys, k)
				}
				i += 2
				continue
			}
			if i+1 == len(buf) {
				keys = append(keys, KeyReset)
			}
			continue
		}
		switch b {
		case '1':
			keys = append(keys, KeyPerspective)
		case '2':
			keys = append(keys, KeyTopDown)
		case '3':
			keys = append(keys, KeyEverything)
		case 'r', 'R':
			keys = append(keys, KeyReset)
		case 'q', 'Q', ctrlC:
			keys = append(keys, KeyQuit)
		case 'w', 'k':
			keys = append(keys, KeyUp)
		case 's', 'j':
			keys = append(keys, KeyDown)
		case 'a', 'h':
			keys = append(keys, KeyLeft)
		case 'd', 'l':
			keys = append(keys, KeyRight)
		}
	}
	return keys
}

func arrow(b byte) Key {
	switch b {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	}
	return KeyNone
}
