package main

import (
	"context"
	"fmt"
	"go/format"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	countKey = "count"
	outKey   = "out"

	minCount = 2
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the multi argument signals",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  countKey,
				Usage: "Highest signal arity to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "File to write the generated signals to",
				Value: "signal/signals_gen.go",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return generate(log, cmd)
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalw("codegen failed", "error", err)
	}
}

func generate(log *zap.SugaredLogger, cmd *cli.Command) error {
	start := time.Now()
	count := int(cmd.Uint(countKey))
	out := cmd.String(outKey)
	log.Infow("codegen for signals started", "count", count, "out", out)
	defer func() {
		log.Infow("codegen for signals finished", "took", time.Since(start))
	}()

	contents, err := render(count)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// render produces the gofmt'ed signals source for arities up to count.
func render(count int) ([]byte, error) {
	if count < minCount {
		return nil, fmt.Errorf("count must be at least %d, got %d", minCount, count)
	}
	formatted, err := format.Source([]byte(templates.SignalsGen(count)))
	if err != nil {
		return nil, fmt.Errorf("formatting generated signals: %w", err)
	}
	return formatted, nil
}
