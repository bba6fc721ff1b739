package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/sankeo-tools/gtfs"
	"github.com/sankeo-tools/gtfs/agency/sankeo"
	"github.com/sankeo-tools/gtfs/importer"
)

var (
	out    = flag.String("out", "sankeo_import_profile.pb.gz", "file path to output the profile to")
	rounds = flag.Int("rounds", 1, "number of times each feed is parsed and imported")
)

func main() {
	if err := run(); err != nil {
		fmt.Println("failed:", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	var gtfsBytes [][]byte
	for _, gtfsFile := range flag.Args() {
		b, err := os.ReadFile(gtfsFile)
		if err != nil {
			return err
		}
		gtfsBytes = append(gtfsBytes, b)
	}
	tools, err := sankeo.New(sankeo.Profile(), sankeo.ToolsOpts{})
	if err != nil {
		return err
	}

	fmt.Println("starting profile")
	var profile bytes.Buffer
	if err := pprof.StartCPUProfile(&profile); err != nil {
		return err
	}
	for round := 0; round < *rounds; round++ {
		for i, in := range gtfsBytes {
			fmt.Printf("round %d: importing file %d/%d\n", round+1, i+1, len(gtfsBytes))
			static, err := gtfs.ParseStatic(in, gtfs.ParseStaticOptions{})
			if err != nil {
				pprof.StopCPUProfile()
				return err
			}
			if _, err := importer.Import(static, tools); err != nil {
				pprof.StopCPUProfile()
				return err
			}
		}
	}
	pprof.StopCPUProfile()

	fmt.Println("writing profile to", *out)
	return os.WriteFile(*out, profile.Bytes(), 0644)
}
