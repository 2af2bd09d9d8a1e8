package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memoria-parser/internal/validated"
)

func TestParseAmount_AllLiterals(t *testing.T) {
	tests := []struct {
		text      string
		amount    Amount
		direction Direction
	}{
		{"小アップ", AmountSmall, DirectionUp},
		{"中アップ", AmountMedium, DirectionUp},
		{"大アップ", AmountLarge, DirectionUp},
		{"特大アップ", AmountExtraLarge, DirectionUp},
		{"超特大アップ", AmountSuperLarge, DirectionUp},
		{"極大アップ", AmountUltraLarge, DirectionUp},
		{"小ダウン", AmountSmall, DirectionDown},
		{"中ダウン", AmountMedium, DirectionDown},
		{"大ダウン", AmountLarge, DirectionDown},
		{"特大ダウン", AmountExtraLarge, DirectionDown},
		{"超特大ダウン", AmountSuperLarge, DirectionDown},
		{"極大ダウン", AmountUltraLarge, DirectionDown},
		{"小ダメージ", AmountSmall, DirectionUp},
		{"中ダメージ", AmountMedium, DirectionUp},
		{"大ダメージ", AmountLarge, DirectionUp},
		{"特大ダメージ", AmountExtraLarge, DirectionUp},
		{"超特大ダメージ", AmountSuperLarge, DirectionUp},
		{"極大ダメージ", AmountUltraLarge, DirectionUp},
		{"小回復", AmountSmall, DirectionUp},
		{"中回復", AmountMedium, DirectionUp},
		{"大回復", AmountLarge, DirectionUp},
		{"特大回復", AmountExtraLarge, DirectionUp},
		{"超特大回復", AmountSuperLarge, DirectionUp},
		{"極大回復", AmountUltraLarge, DirectionUp},
	}
	require.Len(t, tests, len(amountLiterals))

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			a := ParseAmount(validated.Root(), tt.text)
			require.True(t, a.OK(), "%v", a.Errors())
			assert.Equal(t, tt.amount, a.Value())

			d := ParseDirection(validated.Root(), tt.text)
			require.True(t, d.OK())
			assert.Equal(t, tt.direction, d.Value())
		})
	}
}

func TestParseAmount_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, AmountLarge, ParseAmount(validated.Root(), "  大アップ ").Value())
}

func TestParseAmount_Unknown(t *testing.T) {
	r := ParseAmount(validated.Root("parseSkill"), "xyz")
	require.False(t, r.OK())
	errs := r.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "xyz", errs[0].Target)
	assert.Equal(t, "given text doesn't match any amount", errs[0].Msg)
	assert.Equal(t, "parseSkill.parseAmount", errs[0].Meta.Path)
}

func TestParseStatus(t *testing.T) {
	r := ParseStatus(validated.Root(), "火属性攻撃力・水属性攻撃力・風属性攻撃力")
	require.True(t, r.OK())
	assert.Equal(t, []StatusKind{StatusFireATK, StatusWaterATK, StatusWindATK}, r.Value())

	assert.Equal(t, []StatusKind{StatusLife}, ParseStatus(validated.Root(), "HP").Value())

	bad := ParseStatus(validated.Root(), "XYZ")
	require.False(t, bad.OK())
	assert.Equal(t, "given text doesn't match any status", bad.Errors()[0].Msg)
	assert.Equal(t, "parseStatus", bad.Errors()[0].Meta.Path)
}

func TestParseStatus_ReturnsFreshSlice(t *testing.T) {
	r := ParseStatus(validated.Root(), "ATK・DEF").Value()
	r[0] = StatusLife
	assert.Equal(t, []StatusKind{StatusATK, StatusDEF}, ParseStatus(validated.Root(), "ATK・DEF").Value())
}

func TestParseElement(t *testing.T) {
	for text, want := range map[string]Element{
		"火": ElementFire, "水": ElementWater, "風": ElementWind, "光": ElementLight, "闇": ElementDark,
	} {
		assert.Equal(t, want, ParseElement(validated.Root(), text).Value(), text)
	}

	bad := ParseElement(validated.Root(), "土")
	require.False(t, bad.OK())
	assert.Equal(t, "given text doesn't match any element", bad.Errors()[0].Msg)

	_, ok := LookupElement("土")
	assert.False(t, ok)
}

func TestParseTrigger(t *testing.T) {
	assert.Equal(t, TriggerPhysical, ParseTrigger(validated.Root(), "通常攻撃").Value())
	assert.Equal(t, TriggerMagical, ParseTrigger(validated.Root(), "特殊攻撃").Value())
	assert.Equal(t, TriggerAssist, ParseTrigger(validated.Root(), "支援/妨害").Value())
	assert.False(t, ParseTrigger(validated.Root(), "防御").OK())
}

func TestParseSupportTrigger(t *testing.T) {
	tests := map[string]Trigger{
		"攻:ATKアップⅡ":       TriggerAttack,
		"援:支援/妨害効果アップⅢ": TriggerAssist,
		"回:回復アップⅢ":       TriggerRecovery,
		"コ:マッチPtアップ":     TriggerCommand,
	}
	for name, want := range tests {
		r := ParseSupportTrigger(validated.Root(), name)
		require.True(t, r.OK(), name)
		assert.Equal(t, want, r.Value(), name)
	}

	bad := ParseSupportTrigger(validated.Root("parseSupport"), "ATKアップⅡ")
	require.False(t, bad.OK())
	assert.Equal(t, "parseSupport.parseTrigger", bad.Errors()[0].Meta.Path)
}

func TestParseProbability(t *testing.T) {
	assert.Equal(t, ProbabilitySmall, ParseProbability(validated.Root(), "攻撃時、一定確率で自身のATKを小アップさせる。").Value())
	assert.Equal(t, ProbabilityMedium, ParseProbability(validated.Root(), "攻撃時、中確率で自身のATKを小アップさせる。").Value())

	bad := ParseProbability(validated.Root(), "攻撃時、自身のATKを小アップさせる。")
	require.False(t, bad.OK())
	assert.Equal(t, "given text doesn't match any probability", bad.Errors()[0].Msg)
}

func TestParseRate(t *testing.T) {
	assert.Equal(t, 12.5, ParseRate(validated.Root(), "12.5").Value())
	for _, bad := range []string{"", "abc", "-1", "NaN", "Inf"} {
		assert.False(t, ParseRate(validated.Root(), bad).OK(), bad)
	}
}

func TestAmount_TextRoundTrip(t *testing.T) {
	var a Amount
	require.NoError(t, a.UnmarshalText([]byte("super-large")))
	assert.Equal(t, AmountSuperLarge, a)
	assert.Error(t, a.UnmarshalText([]byte("")))
	assert.Equal(t, "Amount(42)", Amount(42).String())
}

func TestDirection_UnmarshalText(t *testing.T) {
	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("down")))
	assert.Equal(t, DirectionDown, d)
	require.NoError(t, d.UnmarshalText([]byte("up")))
	assert.Equal(t, DirectionUp, d)

	err := d.UnmarshalText([]byte("sideways"))
	assert.EqualError(t, err, `unknown direction "sideways"`)
	assert.Equal(t, DirectionUp, d)
}
