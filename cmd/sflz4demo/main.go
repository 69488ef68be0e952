// Command sflz4demo encodes and decodes a block with sflz4, printing a hex
// dump of the compressed form the way the original sflz4.h example.c does.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nigeltao/sflz4"
	"github.com/nigeltao/sflz4/internal/cpuinfo"
)

const ssss = "She sells sea shells by the sea shore.\n" +
	"The shells she sells are surely seashells.\n" +
	"So if she sells shells on the seashore,\n" +
	"I'm sure she sells seashore shells.\n"

var (
	inputFile   string
	showFeature bool
)

func init() {
	flag.StringVar(&inputFile, "input", "", "file to compress instead of the built-in demo string")
	flag.BoolVar(&showFeature, "features", false, "print detected SIMD feature bits and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "sflz4demo: encode/decode one LZ4 block\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if showFeature {
		fmt.Println(cpuinfo.Detect())
		return
	}

	src := []byte(ssss)
	if inputFile != "" {
		b, err := os.ReadFile(inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sflz4demo: %v\n", err)
			os.Exit(1)
		}
		src = b
	}

	if err := run(src, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "sflz4demo: %v\n", err)
		os.Exit(1)
	}
}

func run(src []byte, w *os.File) error {
	bound, err := sflz4.CompressBlockBound(len(src))
	if err != nil {
		return fmt.Errorf("CompressBlockBound: %w", err)
	}
	enc := make([]byte, bound)
	encLen, err := sflz4.CompressBlock(src, enc)
	if err != nil {
		return fmt.Errorf("CompressBlock: %w", err)
	}
	enc = enc[:encLen]

	fmt.Fprintf(w, "Encoded %d bytes as %d bytes:\n", len(src), len(enc))
	for i, b := range enc {
		column := i & 7
		prefix := " "
		if column == 0 {
			prefix = "    "
		}
		suffix := ""
		if column == 7 || i+1 == len(enc) {
			suffix = "\n"
		}
		fmt.Fprintf(w, "%s0x%02X,%s", prefix, b, suffix)
	}

	dec := make([]byte, len(src))
	decLen, err := sflz4.UncompressBlock(enc, dec)
	if err != nil {
		return fmt.Errorf("UncompressBlock: %w", err)
	}
	dec = dec[:decLen]

	fmt.Fprintf(w, "\nDecoded %d bytes as %d bytes:\n", len(enc), len(dec))
	w.Write(dec)
	return nil
}
