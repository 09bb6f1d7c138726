// Command texdump inspects captured texture memory.
//
// It prints the fingerprint and alpha classification of a texture and can
// render DXT and 8888 textures to PNG or BMP:
//
//	texdump -in tex.txdp -out tex.png -scale 4
//	texdump -in vram.bin -raw-format dxt5 -width 128 -height 128 -swizzled
//	texdump -in vram.bin -raw-format 8888 -width 64 -height 64 -pack tex.txdp -compression zstd
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/texdec"
	"github.com/gogpu/texdec/internal/texfile"
)

func main() {
	var (
		in          = flag.String("in", "", "input dump, or raw texture memory with -raw-format")
		rawFormat   = flag.String("raw-format", "", "treat input as raw memory of this format (dxt1, dxt3, dxt5, 8888, 5551, 4444, 5650)")
		width       = flag.Int("width", 0, "raw texture width")
		height      = flag.Int("height", 0, "raw texture height")
		bufw        = flag.Int("bufw", 0, "raw buffer width in texels (default: width)")
		swizzled    = flag.Bool("swizzled", false, "raw memory is tiled")
		out         = flag.String("out", "", "write decoded image (.png or .bmp)")
		scale       = flag.Int("scale", 1, "integer upscale factor for -out")
		pack        = flag.String("pack", "", "write input as a dump file")
		compression = flag.String("compression", "lz4", "dump compression for -pack (none, lz4, zstd)")
		kernel      = flag.String("kernel", "", "force a kernel (see -kernels)")
		kernels     = flag.Bool("kernels", false, "list kernels available on this CPU")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	texdec.SetLogger(logger)

	if *kernels {
		for _, name := range texdec.Kernels() {
			fmt.Println(name)
		}
		return
	}
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *kernel != "" {
		if err := texdec.UseKernel(*kernel); err != nil {
			logger.Error("select kernel", "err", err)
			os.Exit(1)
		}
	}

	d, err := loadDump(*in, *rawFormat, *width, *height, *bufw, *swizzled)
	if err != nil {
		logger.Error("load texture", "path", *in, "err", err)
		os.Exit(1)
	}

	r, img, err := inspect(d)
	if err != nil {
		logger.Error("inspect texture", "path", *in, "err", err)
		os.Exit(1)
	}
	fmt.Print(r)

	if *out != "" {
		if img == nil {
			logger.Error("no image form", "format", d.Format)
			os.Exit(1)
		}
		if err := writeImage(*out, img, *scale); err != nil {
			logger.Error("write image", "path", *out, "err", err)
			os.Exit(1)
		}
		logger.Info("image written", "path", *out)
	}

	if *pack != "" {
		c, err := texfile.ParseCompression(*compression)
		if err != nil {
			logger.Error("pack", "err", err)
			os.Exit(1)
		}
		if err := packDump(*pack, d, c); err != nil {
			logger.Error("pack", "path", *pack, "err", err)
			os.Exit(1)
		}
		logger.Info("dump written", "path", *pack, "compression", c)
	}
}
