package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tomdoesdev/lexkit/internal/dump"
	"github.com/tomdoesdev/lexkit/internal/errors"
	"github.com/tomdoesdev/lexkit/internal/lexer"
)

func main() {
	format := flag.String("format", "json", "output format: json or yaml")
	skipComments := flag.Bool("skip-comments", false, "discard comment tokens")
	skipNewlines := flag.Bool("skip-newlines", false, "discard newline tokens")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	source, err := os.ReadFile(filename)
	if err != nil {
		logrus.WithError(err).Fatal("could not read input file")
	}

	l := lexer.New()
	l.SkipComments = *skipComments
	l.SkipNewlines = *skipNewlines

	logrus.WithField("file", filename).Debug("lexing")
	if err := l.Run(string(source)); err != nil {
		if lexErr := l.Err(); lexErr != nil {
			reporter := errors.NewReporter(string(source), filename)
			fmt.Fprint(os.Stderr, reporter.ReportAll([]errors.LexicalError{{
				Message:  lexErr.Description,
				Line:     lexErr.Pos.Line,
				Column:   lexErr.Pos.Column,
				Filename: filename,
			}}))
			os.Exit(1)
		}
		logrus.WithError(err).Fatal("lexing failed")
	}
	logrus.WithField("tokens", len(l.Tokens())).Debug("lexing complete")

	d := dump.NewWithFormat(dump.Format(*format))
	output, err := d.Dump(l.Tokens())
	if err != nil {
		logrus.WithError(err).Fatal("could not serialize token stream")
	}

	// Output goes to stdout so it can be piped
	fmt.Println(output)
}
