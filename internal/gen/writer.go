package gen

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes generated files to fsys. With an empty outputDir each
// file replaces its source; otherwise files are written into outputDir by
// base name, which is created if it doesn't exist.
func WriteFiles(fsys afero.Fs, files []GeneratedFile, outputDir string) error {
	if outputDir != "" {
		if err := fsys.MkdirAll(outputDir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	seen := make(map[string]string, len(files))

	for _, file := range files {
		outputPath := file.Filename
		if outputDir != "" {
			outputPath = filepath.Join(outputDir, filepath.Base(file.Filename))
		}

		if prev, ok := seen[outputPath]; ok {
			return fmt.Errorf("files %s and %s both map to %s", prev, file.Filename, outputPath)
		}

		seen[outputPath] = file.Filename
	}

	for _, file := range files {
		outputPath := file.Filename
		if outputDir != "" {
			outputPath = filepath.Join(outputDir, filepath.Base(file.Filename))
		}

		if err := afero.WriteFile(fsys, outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}
	}

	return nil
}
