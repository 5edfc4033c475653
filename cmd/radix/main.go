// Command radix converts a number between positional notations.
//
// Usage:
//
//	radix [-from BASE] [-to BASE] NUMBER
//	radix [-from BASE] -all NUMBER
//
// NUMBER is a digit string over the 0-9A-Za-z alphabet with an
// optional single '.' separator. BASE is a radix between 2 and 62
// (both default to 10). With -all, the number is printed in every
// radix from 2 to 62 instead of a single destination.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/calebcase/radix"
)

type options struct {
	from, to uint
	all      bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	var opts options

	flag.UintVar(&opts.from, "from", 10, "radix of NUMBER")
	flag.UintVar(&opts.to, "to", 10, "radix to convert NUMBER to")
	flag.BoolVar(&opts.all, "all", false, "print NUMBER in every radix from 2 to 62")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("expected exactly one NUMBER argument, got %d", flag.NArg())
	}
	number := flag.Arg(0)

	if opts.all {
		for to := uint32(radix.MinBase); to <= radix.MaxBase; to++ {
			out, err := radix.Convert(number, uint32(opts.from), to)
			if err != nil {
				return err
			}

			fmt.Printf("%2d: %s\n", to, out)
		}

		return nil
	}

	out, err := radix.Convert(number, uint32(opts.from), uint32(opts.to))
	if err != nil {
		return err
	}

	fmt.Println(out)

	return nil
}
