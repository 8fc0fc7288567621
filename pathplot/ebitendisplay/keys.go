package ebitendisplay

import (
	"github.com/LdDl/pathplot-go/pathplot"
)

// keyCodes maps key names reported by the window to plotter key codes.
// Names not listed are ignored.
var keyCodes = map[string]pathplot.Key{
	"Escape": pathplot.KeyEsc,
	"Enter":  pathplot.Key(13),
	"Space":  pathplot.Key(' '),
	"Tab":    pathplot.Key(9),
}

func init() {
	for r := 'A'; r <= 'Z'; r++ {
		keyCodes[string(r)] = pathplot.Key(r - 'A' + 'a')
	}
	for r := '0'; r <= '9'; r++ {
		keyCodes["Digit"+string(r)] = pathplot.Key(r)
	}
}

// keyCode converts key name, second value is false for unmapped keys
func keyCode(name string) (pathplot.Key, bool) {
	code, ok := keyCodes[name]
	return code, ok
}
