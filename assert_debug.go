//go:build texdebug

package texdec

const debugChecks = true

// debugAssert panics with msg when cond is false. Enabled by the texdebug
// build tag.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}
