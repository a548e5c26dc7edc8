// Command rulekit runs the line/region extraction engine over a PNG
// mask from the command line.
//
// Usage:
//
//	rulekit segments <mask.png>
//	rulekit regions <mask.png>
//	rulekit render <mask.png> <overlay.png>
//	rulekit ocr <mask.png>          (requires building with -tags ocr)
//
// Grounded on examples/basic_usage.go's shape (a main package
// demonstrating the library end to end), promoted to a real CLI with
// subcommands rather than a hardcoded demo sequence.
package main

import (
	"fmt"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/tsawler/rulekit"
	"github.com/tsawler/rulekit/params"
	"github.com/tsawler/rulekit/rasterio"
	"github.com/tsawler/rulekit/regionocr"
	"github.com/tsawler/rulekit/render"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	maskPath := os.Args[2]

	data, err := os.ReadFile(maskPath)
	if err != nil {
		log.Fatalf("reading %s: %v", maskPath, err)
	}
	r, err := rasterio.DecodeGray8(data)
	if err != nil {
		log.Fatalf("decoding %s: %v", maskPath, err)
	}

	p := defaultParams()
	e := rulekit.New(r, p)

	switch cmd {
	case "segments":
		segs, err := e.Segments()
		if err != nil {
			log.Fatalf("extracting segments: %v", err)
		}
		for _, s := range segs {
			fmt.Printf("(%.1f,%.1f)-(%.1f,%.1f)\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
		}

	case "regions":
		regions, err := e.Regions()
		if err != nil {
			log.Fatalf("extracting regions: %v", err)
		}
		for _, reg := range regions {
			fmt.Printf("x=%.1f y=%.1f w=%.1f h=%.1f closed=%v\n", reg.X, reg.Y, reg.W, reg.H, reg.Closed)
		}

	case "render":
		if len(os.Args) < 4 {
			usage()
			os.Exit(2)
		}
		outPath := os.Args[3]
		segs, err := e.Segments()
		if err != nil {
			log.Fatalf("extracting segments: %v", err)
		}
		regions, err := e.Regions()
		if err != nil {
			log.Fatalf("extracting regions: %v", err)
		}
		if err := render.Overlay(r, segs, regions, 10*vg.Inch, 10*vg.Inch, outPath); err != nil {
			log.Fatalf("rendering overlay: %v", err)
		}
		fmt.Printf("wrote %s\n", outPath)

	case "ocr":
		regions, err := e.Regions()
		if err != nil {
			log.Fatalf("extracting regions: %v", err)
		}
		client, err := regionocr.New()
		if err != nil {
			log.Fatalf("starting OCR client: %v", err)
		}
		defer client.Close()
		for i, reg := range regions {
			text, err := client.RecognizeRegion(r, reg)
			if err != nil {
				log.Printf("region %d: %v", i, err)
				continue
			}
			fmt.Printf("region %d: %q\n", i, text)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func defaultParams() params.Parameters {
	return params.Parameters{
		Sensitivity:      1,
		MaxGap:           2,
		MinSegmentLength: 8,
		ChannelWidth:     3,
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rulekit <segments|regions|render|ocr> <mask.png> [out.png]")
}
