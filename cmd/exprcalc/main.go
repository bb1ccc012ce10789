package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"

	"github.com/exprcalc/exprcalc"
)

func main() {
	app := &cli.App{
		Name:      "exprcalc",
		Usage:     "evaluate an arithmetic expression",
		ArgsUsage: "expression",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "prec",
				Value: exprcalc.DefaultPrec,
				Usage: "precision of decimal arithmetic in bits",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print the parse tree before the result",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump the parse tree structure to stderr",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one expression argument, got %d", c.NArg())
	}
	src := c.Args().First()
	e, err := exprcalc.Parse(src, exprcalc.Prec(c.Uint("prec")))
	if err != nil {
		return syntaxError(src, err)
	}
	if c.Bool("dump") {
		spew.Fdump(os.Stderr, e)
	}
	if c.Bool("echo") {
		fmt.Printf("%v : ", e)
	}
	v, err := e.Eval()
	if err != nil {
		return err
	}
	fmt.Println(v)
	return nil
}

// syntaxError echoes the source with a caret under the offset at which
// parsing failed. Errors without a position pass through unchanged.
func syntaxError(src string, err error) error {
	var ie exprcalc.InputError
	if !errors.As(err, &ie) {
		return err
	}
	return fmt.Errorf("%s\n%*s\n%v", src, ie.Pos()+1, "^", err)
}
