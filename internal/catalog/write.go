package catalog

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Write writes store artifacts to dir.
func Write(dir string, manifest Manifest, courses []Course, vectors []float32) error {
	if manifest.Dim <= 0 {
		return fmt.Errorf("invalid dim: %d", manifest.Dim)
	}
	if len(courses) == 0 {
		return fmt.Errorf("no courses to write")
	}
	if len(vectors) != len(courses)*manifest.Dim {
		return fmt.Errorf("vector length mismatch: got %d want %d", len(vectors), len(courses)*manifest.Dim)
	}
	if manifest.VectorFile == "" {
		manifest.VectorFile = "vectors.f32"
	}
	if manifest.CoursesFile == "" {
		manifest.CoursesFile = "courses.jsonl"
	}
	if manifest.CreatedAt == "" {
		manifest.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create store dir %s: %w", dir, err)
	}

	// manifest
	mb, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "catalog_manifest.json"), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}

	// courses jsonl
	cf, err := os.Create(filepath.Join(dir, manifest.CoursesFile))
	if err != nil {
		return fmt.Errorf("cannot create courses file: %w", err)
	}
	bw := bufio.NewWriter(cf)
	for _, c := range courses {
		line, err := json.Marshal(c)
		if err != nil {
			_ = cf.Close()
			return err
		}
		if _, err := bw.Write(line); err != nil {
			_ = cf.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = cf.Close()
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		_ = cf.Close()
		return err
	}
	if err := cf.Close(); err != nil {
		return err
	}

	// vectors
	vf, err := os.Create(filepath.Join(dir, manifest.VectorFile))
	if err != nil {
		return fmt.Errorf("cannot create vectors file: %w", err)
	}
	if err := binary.Write(vf, binary.LittleEndian, vectors); err != nil {
		_ = vf.Close()
		return fmt.Errorf("cannot write vectors: %w", err)
	}
	if err := vf.Close(); err != nil {
		return err
	}

	return nil
}
