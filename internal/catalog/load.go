package catalog

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Load reads a precomputed store from dir containing manifest + courses +
// vectors. Every row's embedding must have the manifest dimension; any
// mismatch is a load error, never a silent truncation.
func Load(dir string) (*Catalog, error) {
	manifestPath := filepath.Join(dir, "catalog_manifest.json")
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON %s: %w", manifestPath, err)
	}
	if m.Dim <= 0 {
		return nil, fmt.Errorf("invalid dim in manifest: %d", m.Dim)
	}
	if m.VectorFile == "" {
		m.VectorFile = "vectors.f32"
	}
	if m.CoursesFile == "" {
		m.CoursesFile = "courses.jsonl"
	}

	courses, err := loadCourses(filepath.Join(dir, m.CoursesFile))
	if err != nil {
		return nil, err
	}
	vectors, err := loadVectors(filepath.Join(dir, m.VectorFile), len(courses), m.Dim)
	if err != nil {
		return nil, err
	}

	return &Catalog{Manifest: m, Courses: courses, Vectors: vectors}, nil
}

func loadCourses(path string) ([]Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open courses file %s: %w", path, err)
	}
	defer f.Close()

	var out []Course
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var c Course
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("invalid courses JSONL %s: %w", path, err)
		}
		out = append(out, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read courses file %s: %w", path, err)
	}
	return out, nil
}

func loadVectors(path string, nCourses, dim int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open vector file %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("cannot stat vector file %s: %w", path, err)
	}
	if st.Size()%4 != 0 {
		return nil, fmt.Errorf("vector file size is not multiple of 4 bytes: %d", st.Size())
	}

	expected := int64(nCourses * dim * 4)
	if expected != st.Size() {
		return nil, fmt.Errorf("vector file size mismatch: got %d want %d (courses=%d dim=%d)", st.Size(), expected, nCourses, dim)
	}

	out := make([]float32, nCourses*dim)
	if err := binary.Read(io.LimitReader(f, expected), binary.LittleEndian, out); err != nil {
		return nil, fmt.Errorf("cannot read vectors from %s: %w", path, err)
	}
	return out, nil
}
