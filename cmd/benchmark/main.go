package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	itersKey   = "iters"
	widthsKey  = "widths"
	depthsKey  = "depths"
	summaryKey = "summary"
	profileKey = "profile"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark signal fan-out and property binding propagation",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Fires per scenario",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  widthsKey,
				Usage: "Comma separated subscriber counts / binding chains",
				Value: "1,10,100,1000",
			},
			&cli.StringFlag{
				Name:  depthsKey,
				Usage: "Comma separated binding chain depths",
				Value: "1,10,100",
			},
			&cli.BoolFlag{
				Name:  summaryKey,
				Usage: "Print a throughput summary after the latency tables",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(log, cmd)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalw("benchmark failed", "error", err)
	}
}

func run(log *zap.SugaredLogger, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))
	if iters < 1 {
		return fmt.Errorf("%s must be positive", itersKey)
	}
	widths, err := parseSizes(cmd.String(widthsKey))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", widthsKey, err)
	}
	depths, err := parseSizes(cmd.String(depthsKey))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", depthsKey, err)
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	log.Infow("benchmark started", "iters", iters, "widths", widths, "depths", depths)
	defer func() {
		log.Infow("benchmark finished", "took", time.Since(start))
	}()

	var fanOuts []*result
	for _, w := range widths {
		r, err := fanOut(w, iters)
		if err != nil {
			return err
		}
		fanOuts = append(fanOuts, r)
	}
	renderLatency("Signal fan-out", fanOuts)

	var propagations []*result
	for _, w := range widths {
		for _, d := range depths {
			log.Debugw("running propagation", "width", w, "depth", d)
			r, err := propagate(w, d, iters)
			if err != nil {
				return err
			}
			propagations = append(propagations, r)
		}
	}
	renderLatency("Property bindings", propagations)

	if cmd.Bool(summaryKey) {
		renderSummary(iters, append(fanOuts, propagations...))
	}
	return nil
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("size %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("no sizes in %q", s)
	}
	return sizes, nil
}

func renderLatency(title string, results []*result) {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	for _, r := range results {
		tbl.AppendRow(table.Row{
			r.name,
			r.calc.Time.Avg,
			r.calc.Time.Min,
			r.calc.Time.P75,
			r.calc.Time.P99,
			r.calc.Time.Max,
		})
	}
	tbl.Render()
}

func renderSummary(iters int, results []*result) {
	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"benchmark", "fires", "deliveries", "time", "deliveries/s"})
	for _, r := range results {
		rate := int64(0)
		if secs := r.total.Seconds(); secs > 0 {
			rate = int64(float64(r.deliveries) / secs)
		}
		tw.Append([]string{
			r.name,
			humanize.Comma(int64(iters)),
			humanize.Comma(r.deliveries),
			r.total.String(),
			humanize.Comma(rate),
		})
	}
	tw.Render()
}
