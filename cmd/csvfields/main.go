// Command csvfields reads one or more CSV files (or standard input) and
// prints one compact summary line per column describing the distinct values
// it contains: boring, constant, limited to a small set, or a numeric/text
// range. With -c it instead echoes the selected columns verbatim.
//
// Example:
//
//	csvfields vehicles.csv
//	csvfields -d excel-tab -c vin -c owner registry.tsv
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"csvfields/internal/analyze"
	"csvfields/internal/dialect"
)

const version = "0.2"

// columnList collects repeated -c/--column flags in command-line order.
type columnList []string

func (c *columnList) String() string { return strings.Join(*c, ",") }

func (c *columnList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func main() {
	// An interrupt maps to a distinct exit status, separate from the
	// failed-file count.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		os.Exit(2)
	}()

	os.Exit(run(os.Args))
}

func run(args []string) int {
	prog := filepath.Base(args[0])

	// Help goes to stdout and exits 0, unlike flag's default behavior.
	for _, a := range args[1:] {
		if a == "--" {
			break
		}
		if a == "-h" || a == "-help" || a == "--help" {
			printUsage(os.Stdout, prog)
			return 0
		}
	}

	var (
		showVersion  bool
		listDialects bool
		dialectName  string
		columns      columnList
	)
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printUsage(os.Stderr, prog) }
	fs.BoolVar(&showVersion, "V", false, "output version information and exit")
	fs.BoolVar(&showVersion, "version", false, "output version information and exit")
	fs.StringVar(&dialectName, "d", "", "CSV dialect to use instead of sniffing")
	fs.StringVar(&dialectName, "dialect", "", "CSV dialect to use instead of sniffing")
	fs.BoolVar(&listDialects, "list-dialects", false, "list known CSV dialects and exit")
	fs.Var(&columns, "c", "instead of analyzing, output the named column (repeatable)")
	fs.Var(&columns, "column", "instead of analyzing, output the named column (repeatable)")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if showVersion {
		fmt.Printf("%s v%s\n", prog, version)
		return 0
	}

	if listDialects {
		for _, name := range dialect.Names() {
			fmt.Println(name)
		}
		return 1
	}

	var fixed *dialect.Dialect
	if dialectName != "" {
		d, ok := dialect.Lookup(dialectName)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: unknown dialect %q (see --list-dialects)\n", prog, dialectName)
			return 2
		}
		fixed = &d
	}

	return analyze.Run(analyze.Options{
		Prog:    prog,
		Dialect: fixed,
		Columns: columns,
		Files:   fs.Args(),
	}, os.Stdin, os.Stdout, os.Stderr)
}

func printUsage(w *os.File, prog string) {
	fmt.Fprintf(w, `Usage: %s [OPTION]... [FILE]...
Display interesting information about the fields in a CSV file.

With no FILE, or when FILE is -, read standard input.

  -h, --help             display this help and exit
  -V, --version          output version information and exit
  -d, --dialect DIALECT  CSV dialect to use instead of sniffing
      --list-dialects    list known CSV dialects and exit
  -c, --column COLUMN    instead of analyzing, output the named column
                         (may be repeated)

The exit status is the number of input files that could not be processed.
`, prog)
}
