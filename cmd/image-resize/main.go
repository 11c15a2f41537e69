// Command image-resize loads a PNG or JPEG file, halves its dimensions and
// writes the result in the same format.
//
// Usage:
//
//	image-resize <file path in> <file path out>
//
// Progress is reported on stdout. The exit status is always 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/image-container/internal/config"
	"github.com/ironsheep/image-container/internal/imaging"
)

func main() {
	// Diagnostics go to stderr; stdout carries the status lines.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	run(os.Args, os.Stdout, logger)
}

// run executes the load, resize and save stages, printing one status line
// per stage. Failures are reported, never returned.
func run(args []string, out io.Writer, logger zerolog.Logger) {
	if len(args) != 3 {
		prog := "image-resize"
		if len(args) > 0 {
			prog = args[0]
		}
		fmt.Fprintf(out, "USAGE: %s <file path in> <file path out>\n", prog)
		return
	}
	src, dst := args[1], args[2]

	c, err := config.Default().Codec()
	if err != nil {
		logger.Error().Err(err).Msg("failed to build codec")
		fmt.Fprintln(out, "\tLOAD FAILED")
		fmt.Fprintln(out, "COMPLETED")
		return
	}

	img, err := imaging.NewFromFile(src, imaging.WithCodec(c), imaging.WithLogger(logger))
	if err != nil {
		logger.Debug().Err(err).Str("path", src).Msg("load failed")
		fmt.Fprintln(out, "\tLOAD FAILED")
		fmt.Fprintln(out, "COMPLETED")
		return
	}
	defer img.Release()

	fmt.Fprintln(out, "\tLOADED")
	fmt.Fprintf(out, "\tTYPE: %s\n", img.Format())

	if err := img.Resize(img.Width()>>1, img.Height()>>1); err != nil {
		logger.Debug().Err(err).Msg("resize failed")
		fmt.Fprintln(out, "\tRESIZE FAILED")
		fmt.Fprintln(out, "COMPLETED")
		return
	}
	fmt.Fprintln(out, "\tRESIZED")

	if err := img.Save(dst); err != nil {
		logger.Debug().Err(err).Str("path", dst).Msg("save failed")
		fmt.Fprintln(out, "\tSAVE FAILED")
	} else {
		fmt.Fprintln(out, "\tSAVED")
	}
	fmt.Fprintln(out, "COMPLETED")
}
