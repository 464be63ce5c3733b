// Package main provides the tensorrand CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/tensorrand/random"
	"github.com/born-ml/tensorrand/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("tensorrand %s\n", version)
	case "sample":
		if err := sample(os.Args[2:]); err != nil {
			log.Fatalf("sample: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("tensorrand - random tensor sampling")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                         Show version")
	fmt.Println("  sample uniform|gaussian [flags] Fill a tensor and print its summary")
	fmt.Println("")
	fmt.Println("Environment:")
	fmt.Println("  TENSORRAND_BACKEND      cpu, vector, webgpu or host")
	fmt.Println("  TENSORRAND_SEED         integer seed")
	fmt.Println("  TENSORRAND_BUFFER_SIZE  scratch capacity in elements")
}

func sample(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing distribution (uniform or gaussian)")
	}
	dist := args[0]
	if dist != "uniform" && dist != "gaussian" {
		return fmt.Errorf("unknown distribution %q", dist)
	}

	cfg, err := random.ConfigFromEnv(random.DefaultConfig())
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	backend := fs.String("backend", cfg.Backend.String(), "backend: cpu, vector, webgpu, host")
	seed := fs.Int64("seed", cfg.Seed, "generator seed")
	rows := fs.Int("rows", 1, "outer extent")
	cols := fs.Int("cols", 1000, "inner extent")
	a := fs.Float64("a", 0, "uniform low / gaussian mean")
	b := fs.Float64("b", 1, "uniform high / gaussian standard deviation")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	kind, err := random.ParseBackend(*backend)
	if err != nil {
		return err
	}
	cfg.Backend = kind
	cfg.Seed = *seed

	engine, err := random.Open(cfg)
	if err != nil {
		return err
	}
	defer engine.Release()

	dst, err := tensor.NewRaw(tensor.Shape{*rows, *cols}, engine.Device())
	if err != nil {
		return err
	}
	defer dst.Release()

	err = random.Catch(func() {
		if dist == "uniform" {
			engine.SampleUniform(dst, float32(*a), float32(*b))
		} else {
			engine.SampleGaussian(dst, float32(*a), float32(*b))
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("backend: %s (seed %d)\n", engine.Name(), cfg.Seed)
	fmt.Printf("%s %v: %s\n", dist, dst.Shape(), random.Summarize(dst))
	return nil
}
