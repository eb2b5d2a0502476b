package detector

import (
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/rules"
	"github.com/glossa-dev/glossa/internal/scorer"
	"github.com/glossa-dev/glossa/pkg/language"
)

// Builder assembles a Detector. The zero configuration uses the bundled
// models, all catalog languages, and a minimum relative distance of 0.
type Builder struct {
	languages               []language.Language
	minimumRelativeDistance float64
	source                  fs.FS
	store                   *model.Store
	logger                  *zap.Logger
}

// NewBuilder returns a builder configured for all catalog languages.
func NewBuilder() *Builder {
	return &Builder{languages: language.AllLanguages()}
}

// FromAllLanguages selects the whole catalog.
func (b *Builder) FromAllLanguages() *Builder {
	b.languages = language.AllLanguages()
	return b
}

// FromLanguages restricts the detector to the given languages.
func (b *Builder) FromLanguages(languages ...language.Language) *Builder {
	b.languages = languages
	return b
}

// WithMinimumRelativeDistance sets the margin the top language must hold
// over the runner-up for Detect to report it. Valid range is [0.0, 0.99].
func (b *Builder) WithMinimumRelativeDistance(distance float64) *Builder {
	b.minimumRelativeDistance = distance
	return b
}

// WithModelSource reads training models from source instead of the bundled
// resources. The layout must match language-models/<iso>/<order>s.json.
func (b *Builder) WithModelSource(source fs.FS) *Builder {
	b.source = source
	return b
}

// WithLogger attaches a logger for debug-level tracing. The default is a
// nop logger.
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// withStore shares a materialized model store across detectors; used by
// Factory.
func (b *Builder) withStore(store *model.Store) *Builder {
	b.store = store
	return b
}

// Build validates the configuration and assembles the detector.
func (b *Builder) Build() (*Detector, error) {
	seen := make(map[language.Language]bool, len(b.languages))
	var ordered []language.Language
	for _, requested := range b.languages {
		if requested != language.Unknown {
			seen[requested] = true
		}
	}
	for _, lang := range language.AllLanguages() {
		if seen[lang] {
			ordered = append(ordered, lang)
		}
	}
	if len(ordered) == 0 {
		return nil, fmt.Errorf("detector: at least one language is required")
	}
	if b.minimumRelativeDistance < 0 || b.minimumRelativeDistance > 0.99 {
		return nil, fmt.Errorf("detector: minimum relative distance %v outside [0.0, 0.99]", b.minimumRelativeDistance)
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := b.store
	if store == nil {
		source := b.source
		if source == nil {
			source = model.BundledModels()
		}
		store = model.NewStore(source, ordered, logger)
	}

	return &Detector{
		languages:               ordered,
		minimumRelativeDistance: b.minimumRelativeDistance,
		store:                   store,
		rules:                   rules.NewEngine(ordered),
		scorer:                  scorer.New(store),
		logger:                  logger,
	}, nil
}
