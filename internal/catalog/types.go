package catalog

// Manifest describes a precomputed catalog store and how to interpret it.
type Manifest struct {
	StoreVersion int    `json:"store_version"`
	CreatedAt    string `json:"created_at"`
	ModelID      string `json:"model_id"`
	Dim          int    `json:"dim"`
	Normalize    bool   `json:"normalize"`
	CoursesFile  string `json:"courses_file"`
	VectorFile   string `json:"vector_file"`
}

// Course is one immutable catalog row. The skill embedding lives in the
// owning Catalog's vector block, keyed by row position.
type Course struct {
	Name          string   `json:"course_name"`
	Provider      string   `json:"provider"`
	Skills        string   `json:"skills_gained"`
	Rating        *float64 `json:"rating"`
	LevelDuration string   `json:"level_duration"`
	URL           string   `json:"course_url"`
	Image         string   `json:"course_image,omitempty"`
	ProviderImage string   `json:"provider_image,omitempty"`
}

// Catalog is the loaded, read-only course table. It is established once at
// startup and never mutated afterwards, so concurrent queries need no
// locking.
type Catalog struct {
	Manifest Manifest
	Courses  []Course
	// Vectors holds all row embeddings contiguously: row i occupies
	// [i*Dim, (i+1)*Dim).
	Vectors []float32
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.Courses)
}

// Vector returns the embedding of row i as a read-only view.
func (c *Catalog) Vector(i int) []float32 {
	d := c.Manifest.Dim
	return c.Vectors[i*d : (i+1)*d]
}
