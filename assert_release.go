//go:build !texdebug

package texdec

// debugChecks reports whether precondition checks are compiled in.
const debugChecks = false

// debugAssert compiles away in release builds. Build with -tags texdebug to
// check buffer geometry on every call.
func debugAssert(bool, string) {}
