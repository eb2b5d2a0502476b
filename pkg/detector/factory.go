package detector

import (
	"io/fs"

	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/pkg/language"
)

// Factory hands out detectors that share one model store, so detectors over
// the same catalog do not duplicate the materialized frequency tables.
// Sharing is an optimization only; detectors built directly behave the same.
type Factory struct {
	store  *model.Store
	logger *zap.Logger
}

// NewFactory builds a factory over the bundled models for the whole
// catalog. A nil logger defaults to nop.
func NewFactory(logger *zap.Logger) *Factory {
	return NewFactoryWithSource(model.BundledModels(), logger)
}

// NewFactoryWithSource builds a factory reading models from source.
func NewFactoryWithSource(source fs.FS, logger *zap.Logger) *Factory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{
		store:  model.NewStore(source, language.AllLanguages(), logger),
		logger: logger,
	}
}

// NewDetector builds a detector over the shared store.
func (f *Factory) NewDetector(languages []language.Language, minimumRelativeDistance float64) (*Detector, error) {
	return NewBuilder().
		FromLanguages(languages...).
		WithMinimumRelativeDistance(minimumRelativeDistance).
		WithLogger(f.logger).
		withStore(f.store).
		Build()
}
