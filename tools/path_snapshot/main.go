package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	calc "github.com/rpgo/synthfeed/internal/calculation"
	"github.com/rpgo/synthfeed/internal/config"
)

const usage = "usage: path_snapshot <seed> <points> [config-file]"

// errUsage marks bad command-line arguments.
var errUsage = errors.New("bad arguments")

// path_snapshot prints index, date, raw and rounded value of a feed, for building test fixtures.
func main() {
	err := run(os.Args[1:], os.Stdout)
	switch {
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: expected 2 or 3, got %d", errUsage, len(args))
	}
	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: seed %q is not an integer", errUsage, args[0])
	}
	points, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: points %q is not an integer", errUsage, args[1])
	}

	cfg := config.DefaultConfiguration()
	if len(args) > 2 {
		cfg, err = config.NewInputParser().LoadFromFile(args[2])
		if err != nil {
			return err
		}
	}
	pathCfg, err := calc.NewPathConfig(cfg.Generation)
	if err != nil {
		return err
	}
	gen := calc.NewPathGenerator(pathCfg, nil)

	raw, err := gen.GeneratePath(seed, points)
	if err != nil {
		return err
	}
	series, err := gen.GenerateSeries(seed, points)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Index,Date,Raw,Value")
	for i := range series {
		fmt.Fprintf(w, "%d,%s,%.17g,%s\n", i, series[i].Time, raw[i], strconv.FormatFloat(series[i].Value, 'f', -1, 64))
	}

	s := calc.Summarize(series)
	fmt.Fprintf(w, "# seed=%d points=%d last=%s min=%s max=%s\n", seed, points, s.Last, s.Min, s.Max)
	return nil
}
