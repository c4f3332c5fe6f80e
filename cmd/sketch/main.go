package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/sketch"
	"github.com/midbel/sketch/dsl"
	"github.com/midbel/sketch/raster"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		format   = flag.String("format", "", "output format (svg or png), detected from the output extension when empty")
		width    = flag.Float64("width", sketch.DefaultWidth, "chart width")
		height   = flag.Float64("height", sketch.DefaultHeight, "chart height")
		family   = flag.String("font", sketch.DefaultFamily, "font family")
		fontfile = flag.String("font-file", "", "font file used to measure text")
		output   = flag.String("out", "", "output file, or directory when multiple inputs are given")
		verbose  = flag.Bool("verbose", false, "report each file written")
	)
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input files given")
		os.Exit(1)
	}

	rdr := sketch.Renderer{
		Width:  *width,
		Height: *height,
		Family: *family,
	}
	if *fontfile != "" {
		dat, err := os.ReadFile(*fontfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		m, err := sketch.NewMeasurer(dat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", *fontfile, err)
			os.Exit(1)
		}
		rdr.Measurer = m
	}

	var grp errgroup.Group
	for _, file := range flag.Args() {
		file := file
		grp.Go(func() error {
			out := outputFile(*output, file, *format, flag.NArg())
			if err := drawFile(rdr, file, out, *format); err != nil {
				return err
			}
			if *verbose {
				fmt.Fprintf(os.Stderr, "%s: %s written\n", file, out)
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func drawFile(rdr sketch.Renderer, file, out, format string) error {
	dat, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	ch, err := dsl.Parse(string(dat))
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	var buf bytes.Buffer
	width, height, err := rdr.Render(&buf, ch)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if detectFormat(out, format) == "png" {
		img, err := raster.PNG(buf.Bytes(), int(width), int(height), rdr.Family)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		return os.WriteFile(out, img, 0644)
	}
	return os.WriteFile(out, buf.Bytes(), 0644)
}

// outputFile resolves where one rendered document goes. A single input may
// name its output directly; with several inputs the output flag is a
// directory and each file keeps its name with the format extension.
func outputFile(out, file, format string, count int) string {
	if out != "" && count == 1 && !isDir(out) {
		return out
	}
	ext := "." + detectFormat(out, format)
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ext
	if out == "" {
		return filepath.Join(filepath.Dir(file), base)
	}
	return filepath.Join(out, base)
}

func detectFormat(out, format string) string {
	if format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(out), ".png") {
		return "png"
	}
	return "svg"
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
