package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"mdhtml/transpiler"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	dumpAST := flag.Bool("ast", false, "print the parsed tree to stderr")
	flag.Parse()
	var (
		in  io.Reader = os.Stdin
		out io.Writer = os.Stdout
	)
	switch flag.NArg() {
	case 0:
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	case 2:
		fi, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer fi.Close()
		in = fi
		fo, err := os.Create(flag.Arg(1))
		if err != nil {
			log.Fatal(err)
		}
		defer fo.Close()
		out = fo
	default:
		log.Fatalf("usage: %s [-ast] [input [output]]", os.Args[0])
	}
	if err := transpiler.ToHTML(in, out, os.Stderr, *dumpAST); err != nil {
		log.Fatal(err)
	}
}
