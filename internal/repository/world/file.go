package world

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/autofix-handedness/internal/config"
	domain "github.com/oshokin/autofix-handedness/internal/domain/glove"
)

// Repository defines persistence operations for the glove collection.
type Repository interface {
	Load(ctx context.Context) ([]*domain.Glove, error)
	Save(ctx context.Context, gloves []*domain.Glove) error
}

// FileRepository persists the glove collection to a YAML file on disk.
type FileRepository struct {
	// path is the filesystem location of the world file.
	path string
	// mu protects concurrent access to the world file.
	mu sync.Mutex
}

// ErrNotFound is returned when the world file does not exist yet.
var ErrNotFound = errors.New("world not found")

// fileWorld is the on-disk layout of the world file.
type fileWorld struct {
	Gloves []fileGlove `yaml:"gloves"`
}

// fileGlove is the on-disk layout of a single glove.
type fileGlove struct {
	ID         int64     `yaml:"id"`
	Handedness [2]bool   `yaml:"handedness,flow"`
	CreatedAt  time.Time `yaml:"created_at,omitempty"`
}

// NewFileRepository creates a repository that reads/writes YAML at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the location of the world file.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the glove collection from disk in stored order.
func (r *FileRepository) Load(_ context.Context) ([]*domain.Glove, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read world file: %w", err)
	}

	var stored fileWorld
	if err = yaml.Unmarshal(contents, &stored); err != nil {
		return nil, fmt.Errorf("decode world file: %w", err)
	}

	return fromFile(&stored), nil
}

// Save writes the glove collection to disk.
func (r *FileRepository) Save(_ context.Context, gloves []*domain.Glove) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(toFile(gloves))
	if err != nil {
		return fmt.Errorf("encode world: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write world file: %w", err)
	}

	return nil
}

// fromFile converts the on-disk layout into domain gloves.
func fromFile(stored *fileWorld) []*domain.Glove {
	gloves := make([]*domain.Glove, 0, len(stored.Gloves))
	for _, g := range stored.Gloves {
		gloves = append(gloves, &domain.Glove{
			ID:         g.ID,
			Handedness: g.Handedness,
			CreatedAt:  g.CreatedAt,
		})
	}

	return gloves
}

// toFile converts domain gloves into the on-disk layout, skipping nil entries.
func toFile(gloves []*domain.Glove) *fileWorld {
	stored := &fileWorld{
		Gloves: make([]fileGlove, 0, len(gloves)),
	}

	for _, g := range gloves {
		if g == nil {
			continue
		}

		stored.Gloves = append(stored.Gloves, fileGlove{
			ID:         g.ID,
			Handedness: g.Handedness,
			CreatedAt:  g.CreatedAt.UTC(),
		})
	}

	return stored
}
