package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/radhian/commission-system/entity"
	"github.com/radhian/commission-system/infra/logger"
	"github.com/radhian/commission-system/infra/reader"
	"github.com/radhian/commission-system/usecase/commission"
)

func main() {
	var logLevel string

	flag.StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error, off)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <operations.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger.Init(logLevel, os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), os.Stdout); err != nil {
		log.Fatalf("commission calculation failed: %v", err)
	}
}

// run writes one commission line per operation of the input file. Nothing is
// written unless every operation was priced.
func run(inputPath string, out io.Writer) error {
	operations, err := reader.ReadOperations(inputPath)
	if err != nil {
		return err
	}

	commissions, err := commission.CalculateCommissions(operations)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, line := range entity.CommissionLines(commissions) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
