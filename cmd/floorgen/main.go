// floorgen is a CLI for generating parametric floor meshes.
//
// Parameters come from a YAML file, a Lisp script, or the built-in
// defaults; the generated mesh is written as STL and/or OBJ.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/chazu/floorgen/pkg/export"
	"github.com/chazu/floorgen/pkg/floor"
	"github.com/chazu/floorgen/pkg/logger"
	"github.com/chazu/floorgen/pkg/script"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML parameter file")
		scriptPath = flag.String("script", "", "Lisp floor script")
		seed       = flag.Int64("seed", 0, "random seed (0 = time-seeded)")
		stlPath    = flag.String("stl", "", "write binary STL to this path")
		objPath    = flag.String("obj", "", "write Wavefront OBJ to this path")
		logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
		logFile    = flag.String("log-file", "", "also log to this rotating file")
	)
	flag.Parse()

	if err := logger.Init(*logLevel, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*configPath, *scriptPath, *seed, *stlPath, *objPath); err != nil {
		logger.Log.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(configPath, scriptPath string, seed int64, stlPath, objPath string) error {
	if stlPath == "" && objPath == "" {
		return fmt.Errorf("no output requested; pass -stl and/or -obj")
	}
	if configPath != "" && scriptPath != "" {
		return fmt.Errorf("-config and -script are mutually exclusive")
	}

	cfg, err := loadConfig(configPath, scriptPath)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	if seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger.Log.Info("generating floor",
		zap.Stringer("material", cfg.Material),
		zap.Float64("width", cfg.Width),
		zap.Float64("length", cfg.Length),
	)

	start := time.Now()
	buf, err := floor.Generate(cfg, rng)
	if err != nil {
		return err
	}
	logger.Log.Info("floor generated",
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("faces", buf.FaceCount()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if stlPath != "" {
		if err := export.SaveSTL(stlPath, buf); err != nil {
			return err
		}
		logger.Log.Info("wrote STL", zap.String("path", stlPath))
	}
	if objPath != "" {
		if err := export.SaveOBJ(objPath, buf); err != nil {
			return err
		}
		logger.Log.Info("wrote OBJ", zap.String("path", objPath))
	}
	return nil
}

// loadConfig resolves the floor parameters: defaults, overridden by a
// YAML file or a Lisp script when given.
func loadConfig(configPath, scriptPath string) (floor.Config, error) {
	cfg := floor.DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return cfg, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", configPath, err)
		}
	}

	if scriptPath != "" {
		source, err := os.ReadFile(scriptPath)
		if err != nil {
			return cfg, fmt.Errorf("loading script from %s: %w", scriptPath, err)
		}
		eng := script.NewEngine()
		scriptCfg, evalErrs, err := eng.Evaluate(string(source))
		if err != nil {
			return cfg, fmt.Errorf("evaluating %s: %w", scriptPath, err)
		}
		if len(evalErrs) > 0 {
			for _, e := range evalErrs {
				logger.Log.Error("script error", zap.String("script", scriptPath), zap.String("detail", e.Error()))
			}
			return cfg, fmt.Errorf("%s: %d script error(s)", scriptPath, len(evalErrs))
		}
		cfg = scriptCfg
	}

	return cfg, nil
}
