package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	biguint "github.com/shabbyrobe/go-biguint"
	"github.com/zeebo/errs"
)

// bigcalc evaluates a single binary operation on two arbitrarily large
// unsigned decimal integers. It exists mostly to poke at the library from a
// shell, and -debug shows the internal form of the operands and results.

const usage = `Arbitrary precision unsigned calculator

Usage: bigcalc [-debug] <a> <op> <b>

Ops: + - * x / % cmp

'x' is the same as '*' and saves quoting it in a shell. '/' prints the
quotient and the remainder on separate lines. 'cmp' prints -1, 0 or 1.`

var Error = errs.Class("bigcalc")

var (
	errUsage     = Error.New("bad arguments")
	errUnderflow = Error.New("result would be negative")
	errDivZero   = Error.New("division by zero")
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bigcalc", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() { fmt.Fprintln(stdout, usage) }

	var debug bool
	fs.BoolVar(&debug, "debug", false, "Dump the internal representation of operands and results")
	if err := fs.Parse(args); err != nil {
		return oops.Trace(err)
	}

	rest := fs.Args()
	if len(rest) != 3 {
		fs.Usage()
		return oops.Trace(errUsage)
	}

	a, err := biguint.FromString(rest[0])
	if err != nil {
		return oops.Trace(err)
	}
	op := rest[1]
	b, err := biguint.FromString(rest[2])
	if err != nil {
		return oops.Trace(err)
	}

	if debug {
		dump(stdout, "a", a)
		dump(stdout, "b", b)
	}

	if op == "cmp" {
		fmt.Fprintln(stdout, a.Cmp(b))
		return nil
	}

	results, err := eval(a, op, b)
	if err != nil {
		return err
	}

	for i, r := range results {
		if debug {
			dump(stdout, fmt.Sprintf("result[%d]", i), r)
		}
		fmt.Fprintln(stdout, r)
	}
	return nil
}

// eval applies op to a and b. Conditions the library treats as fatal are
// reported as errors instead.
func eval(a biguint.Uint, op string, b biguint.Uint) ([]biguint.Uint, error) {
	switch op {
	case "+":
		return []biguint.Uint{a.Add(b)}, nil

	case "-":
		if a.LessThan(b) {
			return nil, oops.Trace(errUnderflow)
		}
		return []biguint.Uint{a.Sub(b)}, nil

	case "*", "x":
		return []biguint.Uint{a.Mul(b)}, nil

	case "/", "%":
		if b.IsZero() {
			return nil, oops.Trace(errDivZero)
		}
		q, r := a.QuoRem(b)
		if op == "%" {
			return []biguint.Uint{r}, nil
		}
		return []biguint.Uint{q, r}, nil

	default:
		return nil, oops.Trace(Error.New("unknown op %q", op))
	}
}

func dump(w io.Writer, name string, u biguint.Uint) {
	fmt.Fprintf(w, "%s: %#v\n", name, u)
	fmt.Fprint(w, spew.Sdump(u.Limbs()))
}
