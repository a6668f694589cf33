// Package catalog holds the read-only plant catalog and its file loader.
package catalog

import (
	"github.com/duynguyendang/plantcurator/pkg/vocab"
)

// PlantRecord is one catalog entry.
type PlantRecord struct {
	KoreanName       string             `json:"korean_name" yaml:"korean_name"`
	Difficulty       vocab.Difficulty   `json:"difficulty" yaml:"difficulty"`
	LightLevel       vocab.Light        `json:"light_level" yaml:"light_level"`
	Size             vocab.Size         `json:"size" yaml:"size"`
	AirPurifying     vocab.AirPurifying `json:"air_purifying" yaml:"air_purifying"`
	PetSafe          vocab.PetSafety    `json:"pet_safe" yaml:"pet_safe"`
	GrowthSpeed      vocab.GrowthSpeed  `json:"growth_speed" yaml:"growth_speed"`
	ManagementTip    string             `json:"management_tip,omitempty" yaml:"management_tip,omitempty"`
	DiscolorationTip string             `json:"discoloration_tip,omitempty" yaml:"discoloration_tip,omitempty"`
	ImageFile        string             `json:"image_file,omitempty" yaml:"image_file,omitempty"`
}

// Attributes returns the six categorical codes indexed by vocab.QuestionID.
func (p PlantRecord) Attributes() [vocab.NumQuestions]string {
	return [vocab.NumQuestions]string{
		vocab.QDifficulty:   string(p.Difficulty),
		vocab.QLight:        string(p.LightLevel),
		vocab.QSize:         string(p.Size),
		vocab.QAirPurifying: string(p.AirPurifying),
		vocab.QPetSafe:      string(p.PetSafe),
		vocab.QGrowthSpeed:  string(p.GrowthSpeed),
	}
}

// UnknownAttributes returns the keys of attributes whose code is not an answer option.
// Such a record is kept but can never match that question.
func (p PlantRecord) UnknownAttributes() []string {
	valid := [vocab.NumQuestions]bool{
		vocab.QDifficulty:   p.Difficulty.Valid(),
		vocab.QLight:        p.LightLevel.Valid(),
		vocab.QSize:         p.Size.Valid(),
		vocab.QAirPurifying: p.AirPurifying.Valid(),
		vocab.QPetSafe:      p.PetSafe.Valid(),
		vocab.QGrowthSpeed:  p.GrowthSpeed.Valid(),
	}
	var out []string
	for _, q := range vocab.Questions() {
		if !valid[q.ID] {
			out = append(out, q.Key)
		}
	}
	return out
}

// Catalog is an immutable, ordered set of plant records.
// It is safe for concurrent readers.
type Catalog struct {
	path    string
	records []PlantRecord
	skipped int
}

// New builds a catalog from records, preserving their order.
func New(path string, records []PlantRecord) *Catalog {
	rs := make([]PlantRecord, len(records))
	copy(rs, records)
	return &Catalog{path: path, records: rs}
}

// Empty returns a catalog with no records.
func Empty(path string) *Catalog {
	return &Catalog{path: path}
}

// Path is the file the catalog was loaded from.
func (c *Catalog) Path() string {
	if c == nil {
		return ""
	}
	return c.path
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// IsEmpty reports whether there is nothing to match against.
func (c *Catalog) IsEmpty() bool { return c.Len() == 0 }

// Skipped is the number of file entries rejected by presence checks.
func (c *Catalog) Skipped() int {
	if c == nil {
		return 0
	}
	return c.skipped
}

// Records returns a copy of the records in catalog order.
func (c *Catalog) Records() []PlantRecord {
	if c == nil {
		return nil
	}
	out := make([]PlantRecord, len(c.records))
	copy(out, c.records)
	return out
}

// At returns the i-th record without copying the slice.
func (c *Catalog) At(i int) PlantRecord { return c.records[i] }

// Lookup finds a record by its Korean name.
func (c *Catalog) Lookup(name string) (PlantRecord, bool) {
	for _, r := range c.records {
		if r.KoreanName == name {
			return r, true
		}
	}
	return PlantRecord{}, false
}
