package topics

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/abhisek/quizrush/internal/quiz"
)

// MultiplicationKey is the key of the generated multiplication tables topic.
const MultiplicationKey = "tablas_multiplicar"

// Registry maps topic keys to sources and caches the filtered result of
// each load. It is safe for concurrent use.
type Registry struct {
	log zerolog.Logger
	sf  singleflight.Group

	mu      sync.RWMutex
	sources map[string]Source
	cache   map[string][]quiz.Question
}

var _ Loader = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		log:     log.With().Str("component", "topics").Logger(),
		sources: make(map[string]Source),
		cache:   make(map[string][]quiz.Question),
	}
}

// Default builds the registry used by the game: embedded topics, the
// multiplication tables, then topicsDir (if set) on top.
func Default(topicsDir string, log zerolog.Logger) (*Registry, error) {
	r := NewRegistry(log)
	if err := r.RegisterFS(embedded, embeddedDir); err != nil {
		return nil, fmt.Errorf("register embedded topics: %w", err)
	}
	r.Register(MultiplicationKey, MultiplicationTables())

	if topicsDir != "" {
		if err := r.RegisterFS(os.DirFS(topicsDir), "."); err != nil {
			return nil, fmt.Errorf("register topics from %s: %w", topicsDir, err)
		}
	}
	return r, nil
}

// Register binds key to src, replacing any previous source and dropping
// its cached questions.
func (r *Registry) Register(key string, src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[key] = src
	delete(r.cache, key)
}

// RegisterFS registers every topic file (.json, .yaml, .yml) in dir. The
// key is the file name without extension. Files are decoded lazily on
// first load.
func (r *Registry) RegisterFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !IsTopicFile(entry.Name()) {
			continue
		}
		name := path.Join(dir, entry.Name())
		key := strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))
		r.Register(key, fileSource(fsys, name))
		r.log.Debug().Str("topic", key).Str("file", name).Msg("registered topic file")
	}
	return nil
}

// Keys returns the registered topic keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.sources))
	for k := range r.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Load returns the playable questions of a topic. Questions with too few
// options are dropped; if none remain ErrNoValidQuestions is returned.
// Concurrent loads of the same key share one read of the source.
func (r *Registry) Load(ctx context.Context, key string) ([]quiz.Question, error) {
	r.mu.RLock()
	if qs, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return clone(qs), nil
	}
	src, ok := r.sources[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTopicNotFound, key)
	}

	result, err, _ := r.sf.Do(key, func() (any, error) {
		r.mu.RLock()
		if qs, ok := r.cache[key]; ok {
			r.mu.RUnlock()
			return qs, nil
		}
		r.mu.RUnlock()

		raw, err := src.Questions(ctx)
		if err != nil {
			return nil, fmt.Errorf("load topic %q: %w", key, err)
		}

		valid := quiz.FilterPlayable(raw)
		if dropped := len(raw) - len(valid); dropped > 0 {
			r.log.Warn().
				Str("topic", key).
				Int("dropped", dropped).
				Msg("questions with too few options skipped")
		}
		if len(valid) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoValidQuestions, key)
		}

		r.mu.Lock()
		r.cache[key] = valid
		r.mu.Unlock()
		return valid, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(result.([]quiz.Question)), nil
}

func fileSource(fsys fs.FS, name string) Source {
	return SourceFunc(func(context.Context) ([]quiz.Question, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		f, err := Decode(name, data)
		if err != nil {
			return nil, err
		}
		return f.Questions, nil
	})
}

func clone(qs []quiz.Question) []quiz.Question {
	out := make([]quiz.Question, len(qs))
	copy(out, qs)
	return out
}
