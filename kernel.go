package texdec

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"golang.org/x/sys/cpu"
)

// Kernel names.
const (
	KernelGeneric = "generic"
	KernelSSE2    = "sse2"
	KernelNEON    = "neon"
)

// ErrUnknownKernel is returned by UseKernel for a kernel that is not
// registered on this CPU.
var ErrUnknownKernel = errors.New("texdec: unknown kernel")

type (
	fingerprintFunc func(data []byte) uint32
	tileFunc        func(src, dst []byte, blocksWide, blocksHigh, pitch int)
	classifyFunc    func(pixels []byte, stride, width, height int, f PixelFormat) CheckAlphaResult
)

// Kernel is one implementation set of the bulk data paths. The fingerprint
// of each kernel is its own checksum family; tiling and alpha
// classification give identical results on every kernel.
type Kernel struct {
	name        string
	fingerprint fingerprintFunc
	tile        tileFunc
	detile      tileFunc
	classify    classifyFunc
}

// Name returns the registry name of the kernel.
func (k *Kernel) Name() string { return k.name }

// Fingerprint returns the checksum of data. See the package-level Fingerprint.
func (k *Kernel) Fingerprint(data []byte) uint32 { return k.fingerprint(data) }

// Tile converts a linear image into tiled layout. See the package-level Tile.
func (k *Kernel) Tile(linear, tiled []byte, blocksWide, blocksHigh, pitch int) {
	k.tile(linear, tiled, blocksWide, blocksHigh, pitch)
}

// Detile converts tiled memory into a linear image. See the package-level Detile.
func (k *Kernel) Detile(tiled, linear []byte, blocksWide, blocksHigh, pitch int) {
	k.detile(tiled, linear, blocksWide, blocksHigh, pitch)
}

// ClassifyAlpha scans a packed image for translucent pixels. See the
// package-level ClassifyAlpha.
func (k *Kernel) ClassifyAlpha(pixels []byte, stride, width, height int, f PixelFormat) CheckAlphaResult {
	if !f.IsValid() {
		debugAssert(false, "texdec: unknown pixel format")
		return CheckAlphaAny
	}
	return k.classify(pixels, stride, width, height, f)
}

var (
	genericKernel = &Kernel{
		name:        KernelGeneric,
		fingerprint: fingerprintGeneric,
		tile:        tileScalar,
		detile:      detileScalar,
		classify:    classifyGeneric,
	}
	sse2Kernel = &Kernel{
		name:        KernelSSE2,
		fingerprint: fingerprintSSE2,
		tile:        tileWide,
		detile:      detileWide,
		classify:    classifyWide,
	}
	neonKernel = &Kernel{
		name:        KernelNEON,
		fingerprint: fingerprintNEON,
		tile:        tileWide,
		detile:      detileWide,
		classify:    classifyWide,
	}
)

// kernels holds the sets usable on this CPU.
// Priority: NEON > SSE2 > generic (generic is always present).
var kernels = newKernelRegistry()

func newKernelRegistry() *gpucontext.Registry[*Kernel] {
	return gpucontext.NewRegistry[*Kernel](
		gpucontext.WithPriority(KernelNEON, KernelSSE2, KernelGeneric),
	)
}

// active is the kernel behind the package-level entry points.
var active atomic.Pointer[Kernel]

func init() {
	registerKernels(kernels, runtime.GOARCH, cpu.X86.HasSSE2, cpu.ARM64.HasASIMD)
	active.Store(kernels.Best())
}

// registerKernels fills the registry from detected CPU features. Detection
// happens once; the chosen kernel is fixed until UseKernel is called.
func registerKernels(r *gpucontext.Registry[*Kernel], arch string, hasSSE2, hasASIMD bool) {
	registerKernel(r, genericKernel)
	if arch == "amd64" && hasSSE2 {
		registerKernel(r, sse2Kernel)
	}
	if arch == "arm64" && hasASIMD {
		registerKernel(r, neonKernel)
	}
}

func registerKernel(r *gpucontext.Registry[*Kernel], k *Kernel) {
	r.Register(k.Name(), func() *Kernel { return k })
	Logger().Debug("kernel registered", "kernel", k.Name())
}

// ActiveKernel returns the kernel used by the package-level functions.
func ActiveKernel() *Kernel {
	return active.Load()
}

// LookupKernel returns the named kernel if it is usable on this CPU.
func LookupKernel(name string) (*Kernel, bool) {
	k := kernels.Get(name)
	return k, k != nil
}

// Kernels returns the names of the kernels usable on this CPU, sorted.
func Kernels() []string {
	names := kernels.Available()
	slices.Sort(names)
	return names
}

// UseKernel switches the package-level functions to the named kernel.
// It is safe for concurrent use, but fingerprints computed before the switch
// are not comparable with fingerprints computed after it.
func UseKernel(name string) error {
	k, ok := LookupKernel(name)
	if !ok {
		Logger().Warn("kernel not available", "kernel", name, "available", Kernels())
		return fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	prev := active.Swap(k)
	Logger().Info("kernel selected", "kernel", name, "previous", prev.Name())
	return nil
}
