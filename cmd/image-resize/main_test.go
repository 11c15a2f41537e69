package main

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ironsheep/image-container/internal/codec"
	"github.com/ironsheep/image-container/internal/imaging"
)

func writeJPEG(t *testing.T, dir string, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 200, 255})
		}
	}

	path := filepath.Join(dir, "in.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, nil); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := writeJPEG(t, dir, 100, 100)
	outPath := filepath.Join(dir, "out.jpg")

	var out bytes.Buffer
	run([]string{"image-resize", in, outPath}, &out, zerolog.Nop())

	want := "\tLOADED\n\tTYPE: JPEG\n\tRESIZED\n\tSAVED\nCOMPLETED\n"
	if out.String() != want {
		t.Errorf("output:\ngot  %q\nwant %q", out.String(), want)
	}

	img, err := imaging.NewFromFile(outPath)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	if img.Format() != codec.JPEG || img.Width() != 50 || img.Height() != 50 {
		t.Errorf("output: got %s %dx%d, want JPEG 50x50", img.Format(), img.Width(), img.Height())
	}
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{{"image-resize"}, {"image-resize", "a"}, {"image-resize", "a", "b", "c"}, {"image-resize", "--version"}} {
		var out bytes.Buffer
		run(args, &out, zerolog.Nop())
		if want := "USAGE: image-resize <file path in> <file path out>\n"; out.String() != want {
			t.Errorf("args %v: got %q, want %q", args, out.String(), want)
		}
	}
}

func TestRun_LoadFailed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "zeros.bin")
	if err := os.WriteFile(in, make([]byte, 10), 0644); err != nil {
		t.Fatalf("failed to write input: %v", err)
	}

	var out, logs bytes.Buffer
	run([]string{"image-resize", in, filepath.Join(dir, "out")}, &out, zerolog.New(&logs).Level(zerolog.DebugLevel))

	if want := "\tLOAD FAILED\nCOMPLETED\n"; out.String() != want {
		t.Errorf("output: got %q, want %q", out.String(), want)
	}
	if !bytes.Contains(logs.Bytes(), []byte("unrecognized image format")) {
		t.Errorf("debug log should carry the cause, got %s", logs.String())
	}
}

func TestRun_ResizeFailed(t *testing.T) {
	// A 1x1 image halves to 0x0, which the resampler rejects.
	dir := t.TempDir()
	in := writeJPEG(t, dir, 1, 1)

	var out bytes.Buffer
	run([]string{"image-resize", in, filepath.Join(dir, "out.jpg")}, &out, zerolog.Nop())

	want := "\tLOADED\n\tTYPE: JPEG\n\tRESIZE FAILED\nCOMPLETED\n"
	if out.String() != want {
		t.Errorf("output: got %q, want %q", out.String(), want)
	}
}

func TestRun_SaveFailed(t *testing.T) {
	dir := t.TempDir()
	in := writeJPEG(t, dir, 8, 8)

	var out bytes.Buffer
	run([]string{"image-resize", in, filepath.Join(dir, "no", "such", "dir", "out.jpg")}, &out, zerolog.Nop())

	want := "\tLOADED\n\tTYPE: JPEG\n\tRESIZED\n\tSAVE FAILED\nCOMPLETED\n"
	if out.String() != want {
		t.Errorf("output: got %q, want %q", out.String(), want)
	}
}
