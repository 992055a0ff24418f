package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	bignum "github.com/shabbyrobe/go-bignum"
)

// Prints the radix chunk tables found in digit_32.go and digit_64.go. For
// each radix, the chunk is the largest power of the radix that does not
// exceed the digit base, so that one chunk of characters always fits in one
// Digit.
//
// Pass "dump" after the digit width to see the raw table instead of Go
// source.

const usage = `Radix chunk table generator

Usage: <digitbits> [dump]

digitbits is 16 or 32.`

type chunk struct {
	Radix int
	Base  bignum.Uint
	Width int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return errors.New("missing args")
	}

	digitBits, err := strconv.ParseUint(os.Args[1], 10, 8)
	if err != nil {
		return errors.Wrap(err, "bad digitbits")
	}
	if digitBits != 16 && digitBits != 32 {
		return errors.Errorf("digitbits must be 16 or 32, found %d", digitBits)
	}

	table := chunks(uint(digitBits))

	if len(os.Args) > 2 && os.Args[2] == "dump" {
		spew.Dump(table)
		return nil
	}

	fmt.Printf("// %d-bit digits\n", digitBits)
	fmt.Println("switch radix {")
	for _, c := range table {
		fmt.Printf("case %d:\n\treturn %s, %d\n", c.Radix, c.Base, c.Width)
	}
	fmt.Println("}")
	return nil
}

func chunks(digitBits uint) []chunk {
	limit := bignum.UintFromWord(1).Lsh(digitBits)

	var out []chunk
	for radix := 2; radix <= 16; radix++ {
		r := bignum.UintFromInt(radix)
		base, width := bignum.UintFromWord(1), 0
		for {
			next := base.Mul(r)
			if next.GreaterThan(limit) {
				break
			}
			base, width = next, width+1
		}
		out = append(out, chunk{Radix: radix, Base: base, Width: width})
	}
	return out
}
