package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory. Each
// file is replaced atomically, so a failed run never leaves a half-written
// file behind.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if file.Dir == "" {
			return fmt.Errorf("no directory known for package %s", file.PkgPath)
		}

		outputPath := filepath.Join(file.Dir, file.Filename)

		err := atomic.WriteFile(outputPath, bytes.NewReader(file.Content))
		if err != nil {
			return fmt.Errorf("writing file %s: %w", outputPath, err)
		}

		// atomic.WriteFile keeps the mode of a replaced file; new files get
		// the temp file's 0600.
		if err := os.Chmod(outputPath, filePerm); err != nil {
			return fmt.Errorf("setting mode of %s: %w", outputPath, err)
		}
	}

	return nil
}

// writeDebugUnformatted saves output that failed to format as
// <dir>/<pkg>.<name>.unformatted.go, one sidecar per package.
func writeDebugUnformatted(dir, pkgName, filename string, content []byte) error {
	if dir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	name := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	if pkgName != "" {
		name = pkgName + "." + name
	}

	return os.WriteFile(filepath.Join(dir, name), content, filePerm)
}
