package matcher

import (
	"testing"

	"github.com/duynguyendang/plantcurator/pkg/catalog"
	"github.com/duynguyendang/plantcurator/pkg/common/errors"
	"github.com/duynguyendang/plantcurator/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pothos = catalog.PlantRecord{
	KoreanName:   "Pothos",
	Difficulty:   vocab.DifficultyLow,
	LightLevel:   vocab.LightMedium,
	Size:         vocab.SizeSmall,
	AirPurifying: vocab.AirNormal,
	PetSafe:      vocab.PetCaution,
	GrowthSpeed:  vocab.GrowthFast,
}

var pothosCriteria = Criteria{
	Difficulty:   vocab.DifficultyLow,
	LightLevel:   vocab.LightMedium,
	Size:         vocab.SizeSmall,
	AirPurifying: vocab.AirNormal,
	PetSafe:      vocab.PetCaution,
	GrowthSpeed:  vocab.GrowthFast,
}

// withScore copies pothos and breaks the last 6-score fields so it matches exactly score answers.
func withScore(name string, score int) catalog.PlantRecord {
	r := pothos
	r.KoreanName = name
	fields := []func(){
		func() { r.GrowthSpeed = vocab.GrowthSlow },
		func() { r.PetSafe = vocab.PetSafe },
		func() { r.AirPurifying = vocab.AirHigh },
		func() { r.Size = vocab.SizeLarge },
		func() { r.LightLevel = vocab.LightBright },
		func() { r.Difficulty = vocab.DifficultyHigh },
	}
	for i := 0; i < vocab.NumQuestions-score; i++ {
		fields[i]()
	}
	return r
}

func names(ms []ScoredMatch) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Record.KoreanName
	}
	return out
}

func scores(ms []ScoredMatch) []int {
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Score
	}
	return out
}

func TestMatch_Example(t *testing.T) {
	cat := catalog.New("mem", []catalog.PlantRecord{pothos})

	exact := Match(cat, pothosCriteria, ModeExact)
	require.Len(t, exact, 1)
	assert.Equal(t, "Pothos", exact[0].Record.KoreanName)
	assert.Equal(t, 6, exact[0].Score)

	// Change a single answer to a non-matching code
	changed := pothosCriteria
	changed.GrowthSpeed = vocab.GrowthNormal

	assert.Empty(t, Match(cat, changed, ModeExact))

	scored := Match(cat, changed, ModeScored)
	require.Len(t, scored, 1)
	assert.Equal(t, 5, scored[0].Score)
	assert.Equal(t, "Pothos", scored[0].Record.KoreanName)
}

func TestMatch_ExactCatalogOrderAndCap(t *testing.T) {
	cat := catalog.New("mem", []catalog.PlantRecord{
		withScore("p5", 5),
		withScore("a", 6),
		withScore("b", 6),
		withScore("p0", 0),
		withScore("c", 6),
		withScore("d", 6),
	})

	got := Match(cat, pothosCriteria, ModeExact)
	assert.Equal(t, []string{"a", "b", "c"}, names(got))
	assert.Equal(t, []int{6, 6, 6}, scores(got))
}

func TestMatch_ScoredOrdering(t *testing.T) {
	cat := catalog.New("mem", []catalog.PlantRecord{
		withScore("two", 2),
		withScore("zero", 0),
		withScore("four-a", 4),
		withScore("one", 1),
		withScore("four-b", 4),
		withScore("six", 6),
	})

	got := Match(cat, pothosCriteria, ModeScored)
	assert.Equal(t, []string{"six", "four-a", "four-b"}, names(got))
	assert.Equal(t, []int{6, 4, 4}, scores(got))
}

func TestMatch_ScoredExcludesZero(t *testing.T) {
	cat := catalog.New("mem", []catalog.PlantRecord{withScore("zero", 0), withScore("one", 1)})

	got := Match(cat, pothosCriteria, ModeScored)
	assert.Equal(t, []string{"one"}, names(got))
}

func TestMatch_EmptyCatalog(t *testing.T) {
	for _, mode := range []Mode{ModeExact, ModeScored} {
		assert.Empty(t, Match(catalog.Empty("mem"), pothosCriteria, mode))
		assert.Empty(t, Match(nil, pothosCriteria, mode))
	}
}

func TestMatch_Idempotent(t *testing.T) {
	cat := catalog.New("mem", []catalog.PlantRecord{
		withScore("a", 3), withScore("b", 5), withScore("c", 3), withScore("d", 1),
	})
	for _, mode := range []Mode{ModeExact, ModeScored} {
		assert.Equal(t, Match(cat, pothosCriteria, mode), Match(cat, pothosCriteria, mode))
	}
}

func TestCountMatches(t *testing.T) {
	for score := 0; score <= vocab.NumQuestions; score++ {
		assert.Equal(t, score, CountMatches(withScore("x", score), pothosCriteria))
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("", ModeScored)
	require.NoError(t, err)
	assert.Equal(t, ModeScored, m)

	m, err = ParseMode(" EXACT ", ModeScored)
	require.NoError(t, err)
	assert.Equal(t, ModeExact, m)

	_, err = ParseMode("fuzzy", ModeScored)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestResolve(t *testing.T) {
	t.Run("all selected", func(t *testing.T) {
		sel, err := Resolve(Answers{
			"difficulty":    "매우 귀찮음 (물 주기를 자주 잊어요) 😴",
			"light_level":   "중간",
			"size":          "소",
			"air_purifying": "일반적인 공기 정화 수준",
			"pet_safe":      "주의",
			"growth_speed":  "빠름",
		})
		require.NoError(t, err)
		assert.True(t, sel.AllSelected())
		assert.Empty(t, sel.Missing())

		c, err := sel.Criteria()
		require.NoError(t, err)
		assert.Equal(t, pothosCriteria, c)
	})

	t.Run("all unselected", func(t *testing.T) {
		sel, err := Resolve(Answers{"difficulty": vocab.Unselected})
		require.NoError(t, err)
		assert.False(t, sel.AllSelected())
		assert.Len(t, sel.Missing(), vocab.NumQuestions)

		_, err = sel.Criteria()
		assert.ErrorIs(t, err, errors.ErrIncompleteSelection)
	})

	t.Run("partial", func(t *testing.T) {
		sel, err := Resolve(Answers{"difficulty": "하", "size": "대"})
		require.NoError(t, err)
		assert.False(t, sel.AllSelected())
		assert.Equal(t, []string{"light_level", "air_purifying", "pet_safe", "growth_speed"}, sel.Missing())
	})

	t.Run("unknown option", func(t *testing.T) {
		_, err := Resolve(Answers{"pet_safe": "위험"})
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}
