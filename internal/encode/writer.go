package encode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"bms-codec/internal/model"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Extension is the file extension of generated sources.
const Extension = ".bms"

// GeneratedFile is one encoded map ready to be written.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// EncodeAll encodes every map concurrently. The result keeps the order of
// maps; each file is named after its map.
func EncodeAll(ctx context.Context, maps []*model.Map) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, len(maps))

	g, ctx := errgroup.WithContext(ctx)

	for i, m := range maps {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if m == nil {
				return fmt.Errorf("map %d is nil", i)
			}

			files[i] = GeneratedFile{
				Filename: FileName(m),
				Content:  []byte(Encode(m)),
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("encoding maps: %w", err)
	}

	return files, nil
}

// FileName is the file a map is written to.
func FileName(m *model.Map) string {
	return model.SanitizeName(m.Name, model.DefaultMapName) + Extension
}

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// WriteFile writes a single encoded map to path.
func WriteFile(m *model.Map, path string) error {
	if err := os.WriteFile(path, []byte(Encode(m)), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
