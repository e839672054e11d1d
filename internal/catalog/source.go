package catalog

import (
	"context"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// StaticSource - источник из уже собранного снапшота (по умолчанию Default())
type StaticSource struct {
	snap Snapshot
}

func NewStaticSource(snap Snapshot) *StaticSource {
	return &StaticSource{snap: snap}
}

func (s *StaticSource) Load(_ context.Context) (Data, error) {
	return s.snap.Build()
}

// FileSource - снапшот из файла (yaml, json, toml - по расширению)
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (Data, error) {
	if err := ctx.Err(); err != nil {
		return Data{}, err
	}
	var snap Snapshot
	if err := cleanenv.ReadConfig(s.path, &snap); err != nil {
		return Data{}, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}
	data, err := snap.Build()
	if err != nil {
		return Data{}, fmt.Errorf("snapshot %s: %w", s.path, err)
	}
	return data, nil
}
