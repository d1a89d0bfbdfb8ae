package panel

import (
	"fmt"
	"os"
)

// globalDebug gates diagnostic output. Widgets have no owning scene to ask,
// so the flag is package-wide.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, drags, drops,
// tree builder collisions, and tree size warnings are printed to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is on.
func DebugMode() bool { return globalDebug }

func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[panel] "+format+"\n", args...)
}

// debugCheckTreeDepth warns on stderr if a built path is deeper than the
// threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(p PathKey) {
	if d := p.Depth(); d > debugMaxTreeDepth {
		debugf("warning: tree depth %d exceeds %d (path %q)", d, debugMaxTreeDepth, p)
	}
}

// debugCheckChildCount warns on stderr if a category has more than 1000
// children.
const debugMaxChildCount = 1000

func debugCheckChildCount(label any, n int) {
	if n > debugMaxChildCount {
		debugf("warning: category %v has %d children (threshold %d)", label, n, debugMaxChildCount)
	}
}
