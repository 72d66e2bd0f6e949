// cconv converts a color palette file (JSON records or plain text with one
// color per line) into a JSON array where every color carries hex, RGB,
// normalized RGB, HSL and (unless -cut) HSV, CIELAB, CMYK, luminance and a
// light/dark flag.
package main

import (
	"flag"
	"os"

	"fortio.org/cconv"
	"fortio.org/cli"
	"fortio.org/log"
	"golang.org/x/term"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	cut := flag.Bool("cut", false, "Reduced output: only hex, rgb, rgb_norm and hsl")
	preview := flag.Bool("preview", false, "Also print color swatches to the terminal")
	trueColor := flag.Bool("truecolor", os.Getenv("COLORTERM") != "",
		"Use 24 bit colors for the -preview output (default on when COLORTERM is set)")
	cli.MinArgs = 1
	cli.MaxArgs = 2
	cli.ArgsHelp = "input-file [output-file]\nInput is a JSON array of {id,name,color} records or text with one color\nper line; output defaults to " + cconv.DefaultOutput + "."
	cli.Main()
	args := flag.Args()
	inputFile := args[0]
	outputFile := cconv.DefaultOutput
	if len(args) == 2 {
		outputFile = args[1]
	}
	mode := cconv.Full
	if *cut {
		mode = cconv.Cut
	}
	colors, err := cconv.ConvertFile(inputFile, outputFile, mode)
	if err != nil {
		return log.FErrf("Error: %v", err)
	}
	if *preview {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			log.Warnf("Stdout is not a terminal, skipping preview")
			return 0
		}
		cconv.WritePreview(os.Stdout, colors, *trueColor)
	}
	return 0
}
