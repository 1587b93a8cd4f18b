package singlish

/**
 * gosinglish - A Singlish to Sinhala transliteration library
 * Copyright Singlish Project, 2022
 * Licensed under AGPL-3.0-only
 */

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Engine applies a compiled scheme. The passes are fixed at
// construction, so one engine is safe for any number of goroutines
// converting at once. Set Debug and the logger before sharing it;
// conversions only read.
type Engine struct {
	scheme *Scheme
	passes []pass

	Debug bool
	log   zerolog.Logger
}

// New builds an engine over the built-in Sinhala scheme.
func New() (*Engine, error) {
	return NewFromScheme(SinhalaScheme())
}

// NewFromScheme validates a scheme and compiles its passes.
func NewFromScheme(scheme *Scheme) (*Engine, error) {
	if err := scheme.Validate(); err != nil {
		return nil, fmt.Errorf("scheme %s: %w", scheme.Details.Identifier, err)
	}

	engine := Engine{
		scheme: scheme,
		passes: scheme.compile(),
		log:    zerolog.Nop(),
	}

	return &engine, nil
}

// SetLogger directs engine logging somewhere. Pass traces only show
// up with Debug set and the logger at debug level.
func (engine *Engine) SetLogger(log zerolog.Logger) {
	engine.log = log
}

// Scheme returns the engine's rule table. Treat it as read-only; the
// compiled passes won't follow edits made after construction.
func (engine *Engine) Scheme() *Scheme {
	return engine.scheme
}

// Convert transliterates Singlish input into Sinhala script.
//
// The function is total: the empty string maps to itself and anything
// no rule covers passes through untouched, so digits, punctuation and
// stray Latin letters survive in place. Converting an already
// converted string changes nothing, the patterns are Latin and the
// output is not.
func (engine *Engine) Convert(input string) string {
	if input == "" {
		return ""
	}

	start := time.Now()

	text := input
	for _, p := range engine.passes {
		for _, rw := range p.rewrites {
			text = strings.ReplaceAll(text, rw.pattern, rw.replacement)
		}

		if engine.Debug {
			engine.log.Debug().Int("pass", p.id).Str("name", p.name).Str("text", text).Msg("pass applied")
		}
	}

	if engine.Debug {
		engine.log.Debug().Str("input", input).Str("output", text).Dur("took", time.Since(start)).Msg("converted")
	}

	return text
}

var defaultEngine *Engine
var defaultEngineOnce sync.Once

// Convert transliterates with the built-in Sinhala scheme. The shared
// engine is built on first use. The built-in scheme failing to
// compile is a bug in the tables, not an input condition, so it
// panics instead of returning an error nobody can act on.
func Convert(input string) string {
	defaultEngineOnce.Do(func() {
		var err error
		defaultEngine, err = New()
		if err != nil {
			panic(fmt.Sprintf("singlish: built-in scheme is invalid: %v", err))
		}
	})

	return defaultEngine.Convert(input)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
