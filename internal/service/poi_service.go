package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"poi-api/internal/apperr"
	"poi-api/internal/geo"
	"poi-api/internal/metrics"
	"poi-api/internal/models"
	"poi-api/internal/prompt"
	"poi-api/internal/provider"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ImageLoader reads a stored upload back in the encoding the providers consume.
type ImageLoader interface {
	LoadImage(path string) (models.ImagePayload, error)
}

// POIBackends are the adapters driven by the POI pipeline.
// VisualA/VisualB describe the photo, TextA/TextB synthesize the merged evidence.
type POIBackends struct {
	OCR      provider.ImageAnalyzer
	Geocoder provider.Geocoder
	VisualA  provider.VisionCompleter
	VisualB  provider.VisionCompleter
	TextA    provider.TextCompleter
	TextB    provider.TextCompleter
}

// POIService identifies the point of interest shown in a photo taken at a coordinate.
type POIService struct {
	images     ImageLoader
	backends   POIBackends
	concurrent bool
}

// NewPOIService creates a new POI service. With concurrent set, the independent
// calls of each stage run in parallel; otherwise they run one after another.
func NewPOIService(images ImageLoader, backends POIBackends, concurrent bool) *POIService {
	return &POIService{images: images, backends: backends, concurrent: concurrent}
}

// Stage 2 result slots. The merge reads them by slot, never by completion order.
const (
	slotOCR = iota
	slotGeocode
	slotVisualA
	slotVisualB
	slotCount
)

// pipelineContext is owned by one FromImage call.
type pipelineContext struct {
	coordinate models.Coordinate
	image      models.ImagePayload
	results    [slotCount]provider.Result

	ocrText   string
	addresses []string
	visualA   string
	visualB   string
}

// FromImage runs the pipeline on the image stored at imagePath. The first failing
// call aborts the request and its error is returned; there are no partial results.
func (s *POIService) FromImage(ctx context.Context, coordinate models.Coordinate, imagePath string) (pair *models.SummaryPair, err error) {
	start := time.Now()
	defer func() { metrics.ObservePipeline(start, err) }()

	if !geo.ValidCoordinate(coordinate) {
		return nil, apperr.InvalidInput("poi", geo.MessageOutOfRange)
	}

	pc := &pipelineContext{coordinate: coordinate}

	// Decode
	pc.image, err = s.images.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("service: failed to read image: %w", err)
	}

	// Independent fan-out
	if err := s.run(ctx, s.fanOut(pc)...); err != nil {
		return nil, err
	}

	// Merge
	if err := pc.collect(); err != nil {
		return nil, err
	}
	merged := pc.mergedPrompt()
	log.Debug().Str("prompt", merged).Msg("POI merged prompt")

	// Fan-in synthesis
	var primary, secondary string
	err = s.run(ctx,
		func(ctx context.Context) error {
			text, err := s.backends.TextA.TextComplete(ctx, prompt.POI, merged)
			if err != nil {
				return fmt.Errorf("service: %s summary failed: %w", s.backends.TextA.Name(), err)
			}
			primary = text
			return nil
		},
		func(ctx context.Context) error {
			text, err := s.backends.TextB.TextComplete(ctx, prompt.POI, merged)
			if err != nil {
				return fmt.Errorf("service: %s summary failed: %w", s.backends.TextB.Name(), err)
			}
			secondary = text
			return nil
		},
	)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("primary", primary).Str("secondary", secondary).Msg("POI summaries")

	// Assemble
	return &models.SummaryPair{
		Primary:   models.Summary{Provider: s.backends.TextA.Name(), Text: primary},
		Secondary: models.Summary{Provider: s.backends.TextB.Name(), Text: secondary},
	}, nil
}

func (s *POIService) fanOut(pc *pipelineContext) []func(context.Context) error {
	return []func(context.Context) error{
		func(ctx context.Context) error {
			analysis, err := s.backends.OCR.AnalyzeImage(ctx, pc.image, []models.VisionFeature{models.FeatureDocumentTextDetection})
			if err != nil {
				return fmt.Errorf("service: ocr failed: %w", err)
			}
			pc.results[slotOCR] = provider.VisionResult{Analysis: analysis}
			return nil
		},
		func(ctx context.Context) error {
			resp, err := s.backends.Geocoder.Geocode(ctx, pc.coordinate)
			if err != nil {
				return fmt.Errorf("service: geocoding failed: %w", err)
			}
			pc.results[slotGeocode] = provider.GeocodeResult{Response: resp}
			return nil
		},
		func(ctx context.Context) error {
			text, err := s.backends.VisualA.VisionComplete(ctx, prompt.POIVisual, pc.image)
			if err != nil {
				return fmt.Errorf("service: %s visual failed: %w", s.backends.VisualA.Name(), err)
			}
			pc.results[slotVisualA] = provider.TextResult{Provider: s.backends.VisualA.Name(), Text: text}
			return nil
		},
		func(ctx context.Context) error {
			text, err := s.backends.VisualB.VisionComplete(ctx, prompt.POIVisual, pc.image)
			if err != nil {
				return fmt.Errorf("service: %s visual failed: %w", s.backends.VisualB.Name(), err)
			}
			pc.results[slotVisualB] = provider.TextResult{Provider: s.backends.VisualB.Name(), Text: text}
			return nil
		},
	}
}

// run executes tasks as one join barrier. In concurrent mode the first error
// cancels the context shared by the remaining tasks.
func (s *POIService) run(ctx context.Context, tasks ...func(context.Context) error) error {
	if !s.concurrent {
		for _, task := range tasks {
			if err := task(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error { return task(gctx) })
	}
	return g.Wait()
}

// collect unpacks the stage 2 results into the fields the merge reads.
func (pc *pipelineContext) collect() error {
	for slot, result := range pc.results {
		switch r := result.(type) {
		case provider.VisionResult:
			if r.Analysis != nil {
				pc.ocrText = r.Analysis.Text()
			}
			log.Debug().Str("ocr", pc.ocrText).Msg("POI vision")
		case provider.GeocodeResult:
			var raw []string
			if r.Response != nil {
				raw = r.Response.FormattedAddresses()
			}
			pc.addresses = geo.UniqueAddresses(raw)
			log.Debug().Strs("addresses", pc.addresses).Msg("POI geocoding")
		case provider.TextResult:
			if slot == slotVisualA {
				pc.visualA = r.Text
			} else {
				pc.visualB = r.Text
			}
			log.Debug().Str("provider", r.Provider).Str("text", r.Text).Msg("POI visual")
		default:
			return fmt.Errorf("service: stage result %d missing (%T)", slot, result)
		}
	}
	return nil
}

func (pc *pipelineContext) mergedPrompt() string {
	// []string always marshals
	addresses, _ := json.Marshal(pc.addresses)
	return fmt.Sprintf(
		"POI description from person one: %s. Description from another person: %s. Potential address: %s. OCR results: %s. Potential GPS lat = %v ; lng = %v",
		pc.visualA, pc.visualB, addresses, pc.ocrText, pc.coordinate.Latitude, pc.coordinate.Longitude,
	)
}
