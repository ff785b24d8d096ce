// Command compose runs the local composition pipeline offline:
//
//	compose -gender female -out result.png top=shirt.png pants=jeans.png
//
// Each argument is category=imagefile. The remote generator is never used.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/daxdesai/Closetly/internal/application/usecases"
	domainservices "github.com/daxdesai/Closetly/internal/domain/services"
	"github.com/daxdesai/Closetly/internal/infrastructure/rendering"
)

func main() {
	gender := flag.String("gender", "neutral", "model gender: male, female, neutral")
	out := flag.String("out", "tryon.png", "output file")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() == 0 {
		logger.Fatal().Msg("no garments given; pass category=imagefile arguments")
	}

	var garments []usecases.GarmentUpload
	for _, arg := range flag.Args() {
		category, path, ok := strings.Cut(arg, "=")
		if !ok {
			logger.Fatal().Str("arg", arg).Msg("arguments must look like category=imagefile")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("cannot read garment file")
		}
		garments = append(garments, usecases.GarmentUpload{
			Name:     filepath.Base(path),
			Category: category,
			Data:     data,
		})
	}

	compositor := rendering.NewCompositor(logger)
	tryOnService := domainservices.NewTryOnService(nil, compositor, logger)
	tryOnUseCase := usecases.NewTryOnUseCase(tryOnService, logger)

	output, err := tryOnUseCase.Execute(context.Background(), usecases.TryOnInput{
		Garments: garments,
		Gender:   *gender,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("composition failed")
	}

	if err := os.WriteFile(*out, output.Image, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("cannot write output")
	}
	logger.Info().Str("out", *out).Int("bytes", len(output.Image)).Msg("composed")
}
