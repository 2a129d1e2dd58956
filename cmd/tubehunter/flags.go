package main

import (
	"flag"
	"fmt"
)

const usageText = `tubehunter - collect YouTube videos for tech topics

Usage:
  tubehunter [flags] [topic ...]

Topics default to a built-in technology list when none are given.

Examples:
  tubehunter "Python tutorials" "Machine Learning basics"
  tubehunter --max-results 20 "Docker tutorials"
  tubehunter --filter-threshold 7 "Python tutorials"
  tubehunter --topics-file topics.yaml --log-level DEBUG

Flags:
`

type cliFlags struct {
	topics          []string
	topicsFile      string
	maxResults      int
	logLevel        string
	outputDir       string
	filterThreshold float64
	filterSet       bool
}

func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("tubehunter", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageText)
		fs.PrintDefaults()
	}

	fl := &cliFlags{}
	fs.IntVar(&fl.maxResults, "max-results", 10, "maximum number of videos per topic")
	fs.StringVar(&fl.logLevel, "log-level", "INFO", "log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	fs.StringVar(&fl.outputDir, "output-dir", "outputs", "directory for report files")
	fs.StringVar(&fl.topicsFile, "topics-file", "", "YAML file with a topics list")
	fs.Float64Var(&fl.filterThreshold, "filter-threshold", 0, "enable scoring filter with minimum score (0-10), requires ANTHROPIC_API_KEY")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "filter-threshold" {
			fl.filterSet = true
		}
	})

	fl.topics = fs.Args()

	return fl, nil
}
