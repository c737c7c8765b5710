package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/synthparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outPathKey           = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed DerivedN registration constructors",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outPathKey,
				Usage: "Path of the generated file",
				Value: "synth/derived.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for synth started")
	defer func() {
		log.Printf("Codegen for synth finished in %v", time.Since(start))
	}()

	count := cmd.Uint(genericParamCountKey)
	outPath := cmd.String(outPathKey)
	log.Printf("Generating Derived1..Derived%d into %s", count, outPath)

	contents := templates.DerivedGen(int(count))
	return os.WriteFile(outPath, []byte(contents), 0644)
}
