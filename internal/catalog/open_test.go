package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestOpen_PrefersStore(t *testing.T) {
	storeDir := t.TempDir()
	vectors := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	if err := Write(storeDir, Manifest{Dim: 3, ModelID: "stored"}, sampleCourses(), vectors); err != nil {
		t.Fatalf("Write: %v", err)
	}
	csvPath := writeCSV(t, "Course Name,Embeddings Skills\nCSV Course,\"[1 1]\"\n")

	c, err := Open(context.Background(), OpenOptions{StoreDir: storeDir, CSVPath: csvPath}, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Manifest.ModelID != "stored" {
		t.Fatalf("store should win over CSV: %+v", c.Manifest)
	}
}

func TestOpen_FallsBackToCSV(t *testing.T) {
	missingStore := filepath.Join(t.TempDir(), "nope")
	csvPath := writeCSV(t, "Course Name,Embeddings Skills\nCSV Course,\"[1 1]\"\n")

	c, err := Open(context.Background(), OpenOptions{StoreDir: missingStore, CSVPath: csvPath}, nil, zap.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if c.Len() != 1 || c.Courses[0].Name != "CSV Course" {
		t.Fatalf("expected CSV fallback, got %+v", c.Courses)
	}
}

func TestOpen_NoSource(t *testing.T) {
	_, err := Open(context.Background(), OpenOptions{}, nil, zap.NewNop())
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}

	_, err = Open(context.Background(), OpenOptions{
		StoreDir: filepath.Join(t.TempDir(), "nope"),
		CSVPath:  filepath.Join(t.TempDir(), "nope.csv"),
	}, nil, zap.NewNop())
	if !errors.Is(err, ErrNoSource) {
		t.Fatalf("all strategies failing should yield ErrNoSource, got %v", err)
	}
}
