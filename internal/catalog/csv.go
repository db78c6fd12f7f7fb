package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jobsync/skillmatch/internal/embeddings"
)

// LoadCSV loads the raw tabular source at path. When the source carries an
// embeddings column its values are parsed from their text encoding; otherwise
// every row's skills text is encoded through enc, one call per row, paid once.
func LoadCSV(ctx context.Context, path string, enc embeddings.Provider, normalize bool) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog CSV %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header %s: %w", path, err)
	}
	cols := columnIndex(header)
	if _, ok := cols["course name"]; !ok {
		return nil, fmt.Errorf("catalog CSV %s has no course name column", path)
	}
	_, hasEmbeddings := cols["embeddings skills"]

	var (
		courses []Course
		vectors []float32
		dim     int
	)

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV row %s: %w", path, err)
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		c := Course{
			Name:          field("course name"),
			Provider:      field("provider"),
			Skills:        field("skills gained"),
			LevelDuration: field("level & duration"),
			URL:           field("course link"),
			Image:         field("course image"),
			ProviderImage: field("provider image"),
		}
		if c.LevelDuration == "" {
			c.LevelDuration = "N/A"
		}
		if s := field("rating score"); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				c.Rating = &v
			}
		}

		var emb []float32
		if hasEmbeddings {
			emb, err = ParseVector(field("embeddings skills"))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", len(courses)+1, err)
			}
		} else {
			if enc == nil {
				return nil, fmt.Errorf("catalog CSV %s has no embeddings column and no encoder is configured", path)
			}
			emb, err = enc.Embed(ctx, c.Skills)
			if err != nil {
				return nil, fmt.Errorf("cannot encode skills for %q: %w", c.Name, err)
			}
			if normalize {
				emb = NormalizeL2(emb)
			}
		}

		if dim == 0 {
			dim = len(emb)
		}
		if len(emb) != dim || dim == 0 {
			return nil, fmt.Errorf("row %d: embedding dim %d differs from %d: %w", len(courses)+1, len(emb), dim, ErrVectorLengthMismatch)
		}

		courses = append(courses, c)
		vectors = append(vectors, emb...)
	}

	if len(courses) == 0 {
		return nil, fmt.Errorf("catalog CSV %s contains no rows", path)
	}

	modelID := ""
	if !hasEmbeddings {
		modelID = enc.ModelID()
	}
	m := Manifest{
		StoreVersion: 1,
		ModelID:      modelID,
		Dim:          dim,
		Normalize:    normalize && !hasEmbeddings,
		CoursesFile:  "courses.jsonl",
		VectorFile:   "vectors.f32",
	}
	return &Catalog{Manifest: m, Courses: courses, Vectors: vectors}, nil
}

// ParseVector parses a text-encoded embedding such as
// "[0.12 -0.5 ...]" or "0.12, -0.5, ..." into a float32 vector.
func ParseVector(s string) ([]float32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty embedding value")
	}
	out := make([]float32, 0, len(fields))
	for _, fv := range fields {
		v, err := strconv.ParseFloat(fv, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid embedding component %q: %w", fv, err)
		}
		out = append(out, float32(v))
	}
	return out, nil
}

func columnIndex(header []string) map[string]int {
	out := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if h == "" {
			continue
		}
		// Accept a few aliases seen in catalog exports.
		switch h {
		case "rating":
			h = "rating score"
		case "course url":
			h = "course link"
		case "embeddings":
			h = "embeddings skills"
		}
		if _, ok := out[h]; !ok {
			out[h] = i
		}
	}
	return out
}
