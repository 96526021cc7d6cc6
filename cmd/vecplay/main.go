package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/wippyai/vecmem/alloc"
	"github.com/wippyai/vecmem/scenario"
)

// byteSizeValue adapts datasize parsing to the flag package, so -quota
// accepts strings like "512B" or "64KB".
type byteSizeValue datasize.ByteSize

func (v *byteSizeValue) String() string {
	return datasize.ByteSize(*v).String()
}

func (v *byteSizeValue) Set(s string) error {
	b, err := datasize.ParseString(s)
	if err != nil {
		return err
	}
	*v = byteSizeValue(b)
	return nil
}

func main() {
	var quota byteSizeValue
	var (
		scenarioFile = flag.String("scenario", "", "Path to a scenario YAML file to replay")
		interactive  = flag.Bool("i", false, "Interactive workbench with TUI")
		debug        = flag.Bool("debug", false, "Log allocator activity to stderr")
	)
	flag.Var(&quota, "quota", "Byte budget for the workbench allocator (e.g. 64KB, 0 = unlimited)")
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		alloc.SetLogger(logger)
		scenario.SetLogger(logger)
	}

	if *scenarioFile == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: vecplay -scenario <file.yaml>")
		fmt.Fprintln(os.Stderr, "       vecplay -i [-quota 64KB]  (interactive workbench)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(datasize.ByteSize(quota)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runScenario(*scenarioFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScenario(path string) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Scenario: %s\n", s.Name)
	if s.Description != "" {
		fmt.Printf("%s\n", s.Description)
	}
	fmt.Printf("Steps: %d\n\n", len(s.Steps))

	rep := scenario.NewRunner(s).Run()
	for _, st := range rep.Steps {
		if st.Err != nil {
			fmt.Printf("  %2d  %-12s FAIL: %v\n", st.Index, st.Op, st.Err)
		} else {
			fmt.Printf("  %2d  %-12s %s\n", st.Index, st.Op, st.Note)
		}
	}

	fmt.Printf("\nAllocations: %s  Frees: %s  Live: %d (%s)\n",
		humanize.Comma(int64(rep.Stats.Allocs)),
		humanize.Comma(int64(rep.Stats.Frees)),
		rep.Stats.Live,
		humanize.Bytes(rep.Stats.LiveBytes))

	if rep.LeakErr != nil {
		fmt.Printf("Leak check: %v\n", rep.LeakErr)
	} else {
		fmt.Printf("Leak check: clean\n")
	}

	if !rep.OK() {
		return fmt.Errorf("scenario %q failed", rep.Scenario)
	}
	return nil
}
