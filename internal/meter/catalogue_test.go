package meter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
	assert.Equal(t, 129, NumStandard())
	assert.Equal(t, 12, NumRubai())
	assert.Equal(t, 11, NumSpecial())
	assert.Equal(t, 152, Total())
}

func TestPatternAndName_Ranges(t *testing.T) {
	assert.Equal(t, "-===/-===/-===/-===", Pattern(0))
	assert.Equal(t, "ہزج مثمن سالم", Name(0))

	first := NumStandard()
	assert.True(t, IsRubai(first))
	assert.True(t, strings.HasSuffix(Name(first), "(رباعی)"))

	special := NumStandard() + NumRubai()
	assert.True(t, IsSpecial(special))
	assert.Contains(t, Name(special), "بحرِ ہندی")
}

func TestIndexByName_Variants(t *testing.T) {
	// Several catalogue rows share one display name (pattern variants).
	idx := IndexByName("ہزج مثمن اخرب مکفوف محذوف")
	assert.Len(t, idx, 4)
	for _, i := range idx {
		assert.Equal(t, "ہزج مثمن اخرب مکفوف محذوف", Name(i))
	}

	assert.Empty(t, IndexByName("no such meter"))
}

func TestAfail(t *testing.T) {
	assert.Equal(t, "مفاعیلن مفاعیلن مفاعیلن مفاعیلن", Afail("-===/-===/-===/-==="))
	// Caesura does not break foot decomposition.
	assert.Equal(t, "فاعلن مفاعیلن فاعلن مفاعیلن", Afail("=-=/-===+=-=/-==="))
	assert.Equal(t, "", Afail(""))
}

func TestAfailList(t *testing.T) {
	fl := AfailList("-===/-==")
	require.Len(t, fl, 2)
	assert.Equal(t, "مفاعیلن", fl[0].Name)
	assert.Equal(t, "-===", fl[0].Pattern)
	assert.Equal(t, "فعولن", fl[1].Name)
}

func TestRukn(t *testing.T) {
	assert.Equal(t, "فعولن", Rukn("-=="))
	assert.Equal(t, "", Rukn("xxxx"))
}

func TestVariants(t *testing.T) {
	v := Variants("=-=/-===+=-=/-===")
	assert.Equal(t, "=-=-====-=-===", v[0])
	assert.Equal(t, "=-=-====-=-===-", v[1])
	assert.Equal(t, "=-=-===-=-=-===-", v[2])
	assert.Equal(t, "=-=-===-=-=-===", v[3])
}

func TestVariants_NoCaesura(t *testing.T) {
	v := Variants("-===/-===")
	assert.Equal(t, "-===-===", v[0])
	assert.Equal(t, "-===-===-", v[1])
	assert.Equal(t, v[1], v[2])
	assert.Equal(t, v[0], v[3])
}

func TestVariantsOf_MatchesVariants(t *testing.T) {
	require.NoError(t, Validate())
	for _, i := range []int{0, 5, 63, NumStandard() + 3} {
		assert.Equal(t, Variants(Pattern(i)), VariantsOf(i))
	}
}

func TestAfailSpecial(t *testing.T) {
	name := Name(NumStandard() + NumRubai())
	assert.NotEmpty(t, AfailSpecial(name))
	assert.Equal(t, "", AfailSpecial("unknown"))
}

func TestUsable(t *testing.T) {
	assert.True(t, Usable(0))
	// Index 8 is masked off in the usage table.
	assert.False(t, Usable(8))
}
