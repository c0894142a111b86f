package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScansion_ShortWordsBypassTaqti(t *testing.T) {
	assert.Equal(t, "=", computeScansion("آ", "ignored", nil, false))
	assert.Equal(t, "=", computeScansion("دل", "ignored", nil, false))
}

func TestComputeScansion_TaqtiPieces(t *testing.T) {
	// با + ر: a closed two-letter piece is ambiguous, a single letter short.
	assert.Equal(t, "x-", computeScansion("بار", "با ر", nil, false))
	// '+' separates pieces the same way a space does.
	assert.Equal(t, "x-", computeScansion("بار", "با+ر", nil, false))
}

func TestComputeScansion_TaqtiPieceInherentLongVowel(t *testing.T) {
	// A two-letter piece containing ی/و/ے scans as a firm long; the final
	// flexibility rule then relaxes the vowel-final ending.
	assert.Equal(t, "=x", computeScansion("موتی", "مو تی", nil, false))
}

func TestComputeScansion_TaqtiPieceAlifMadd(t *testing.T) {
	// آب splits off the madd long; the closed اد piece stays ambiguous.
	assert.Equal(t, "=-x", computeScansion("آباد", "آب اد", nil, false))
}

func TestComputeScansion_FinalFlexibility(t *testing.T) {
	// Vowel-final word relaxes its last long to flexible.
	got := computeScansion("دریا", "در یا", nil, false)
	assert.Equal(t, "xx", got)

	// An Arabic-language entry keeps a firm ending.
	got = computeScansion("دریا", "در یا", []string{"عربی"}, false)
	assert.Equal(t, "x=", got)

	// Persian keeps the ending firm only for alif.
	got = computeScansion("دریا", "در یا", []string{"فارسی"}, false)
	assert.Equal(t, "x=", got)
}

func TestComputeScansion_ModifiedWordStaysFlexible(t *testing.T) {
	got := computeScansion("دریا", "در یا", []string{"عربی"}, true)
	assert.Equal(t, "xx", got)
}

func TestComputeScansion_NoTaqtiFallsBackToHeuristics(t *testing.T) {
	assert.Equal(t, lengthThreeScan("نقش"), computeScansion("نقش", "", nil, false))
	assert.Equal(t, lengthFourScan("کتاب"), computeScansion("کتاب", "", nil, false))
}

func TestComputeScansion_Empty(t *testing.T) {
	assert.Equal(t, "", computeScansion("", "", nil, false))
}
