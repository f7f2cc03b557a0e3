// Command baggen generates a bagged ensemble from environment-driven
// settings and prints its diagnostics.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"innerbag/adapters/numerics"
	"innerbag/app"
	"innerbag/domain/bag"
	"innerbag/internal/config"
	"innerbag/internal/profiling"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	generator := bag.NewGenerator(bag.GeneratorConfig{
		Summer: numerics.NewBigSummer(),
	})
	service := app.NewEnsembleService(generator, cfg.MaxParallel)

	ensembles, err := service.BuildSubEnsembles(
		context.Background(), cfg.Seed, cfg.SampleCount, nil, cfg.BagCount, cfg.SubEnsembles)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	defer func() {
		for _, e := range ensembles {
			e.Release()
		}
	}()

	for _, e := range ensembles {
		fmt.Printf("ensemble %s (seed %d): %d bags of %d samples\n",
			e.ID, e.Seed, e.Bags.Len(), e.Bags.Bag(0).Len())
		if !cfg.Profile {
			continue
		}
		profile, err := profiling.ProfileEnsemble(e.Bags)
		if err != nil {
			log.Fatalf("profile: %v", err)
		}
		fmt.Printf("  weight totals: mean=%.2f stddev=%.2f min=%.2f max=%.2f\n",
			profile.MeanTotal, profile.StdDevTotal, profile.MinTotal, profile.MaxTotal)
		fmt.Printf("  occurrence divergence from Poisson(1): %.4f\n",
			profile.OccurrenceDivergence)
	}
}
