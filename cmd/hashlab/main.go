package main

import (
	"flag"
	"log"
	"os"

	"github.com/scottcagno/hashlab/pkg/bench"
	"github.com/scottcagno/hashlab/pkg/util"
)

func main() {
	var (
		confPath  = flag.String("config", "", "path to a yaml config file")
		outPath   = flag.String("out", "", "csv output path (overrides config)")
		seed      = flag.Int64("seed", 0, "rng seed (overrides config)")
		baselines = flag.Bool("baselines", false, "also time third-party engines")
	)
	flag.Parse()

	cfg := bench.NewConfig()
	if *confPath != "" {
		c, err := bench.LoadConfig(*confPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = c
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *baselines {
		cfg.Baselines = true
	}

	defer util.TimeThis(util.Msg("suite"))

	runner := bench.NewRunner(cfg)
	results, err := runner.Run()
	if err != nil {
		log.Fatalf("run suite: %v", err)
	}
	bench.Report(os.Stdout, results)
	if err := bench.WriteCSV(cfg.Output, results); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	log.Printf("wrote %d result rows to %s\n", len(results), cfg.Output)
}
