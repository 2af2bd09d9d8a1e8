package parser

import (
	"math"
	"strconv"
	"strings"

	"memoria-parser/internal/validated"
)

type amountLiteral struct {
	text      string
	amount    Amount
	direction Direction
}

// amountLiterals is matched top to bottom; the first exact match wins.
var amountLiterals = []amountLiteral{
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

var elementLiterals = []struct {
	text    string
	element Element
}{
	{"火", ElementFire},
	{"水", ElementWater},
	{"風", ElementWind},
	{"光", ElementLight},
	{"闇", ElementDark},
}

// statusLiterals enumerates every status phrase, compounds included.
// Compounds are listed as whole literals rather than split on "・" so that
// the amount following them is parsed once for the whole group.
var statusLiterals = []struct {
	text  string
	kinds []StatusKind
}{
	{"ATK", []StatusKind{StatusATK}},
	{"DEF", []StatusKind{StatusDEF}},
	{"Sp.ATK", []StatusKind{StatusSpATK}},
	{"Sp.DEF", []StatusKind{StatusSpDEF}},
	{"HP", []StatusKind{StatusLife}},
	{"火属性攻撃力", []StatusKind{StatusFireATK}},
	{"火属性防御力", []StatusKind{StatusFireDEF}},
	{"水属性攻撃力", []StatusKind{StatusWaterATK}},
	{"水属性防御力", []StatusKind{StatusWaterDEF}},
	{"風属性攻撃力", []StatusKind{StatusWindATK}},
	{"風属性防御力", []StatusKind{StatusWindDEF}},
	{"光属性攻撃力", []StatusKind{StatusLightATK}},
	{"光属性防御力", []StatusKind{StatusLightDEF}},
	{"闇属性攻撃力", []StatusKind{StatusDarkATK}},
	{"闇属性防御力", []StatusKind{StatusDarkDEF}},

	{"ATK・DEF", []StatusKind{StatusATK, StatusDEF}},
	{"Sp.ATK・Sp.DEF", []StatusKind{StatusSpATK, StatusSpDEF}},
	{"ATK・Sp.ATK", []StatusKind{StatusATK, StatusSpATK}},
	{"DEF・Sp.DEF", []StatusKind{StatusDEF, StatusSpDEF}},
	{"ATK・Sp.DEF", []StatusKind{StatusATK, StatusSpDEF}},
	{"Sp.ATK・DEF", []StatusKind{StatusSpATK, StatusDEF}},
	{"ATK・Sp.ATK・DEF・Sp.DEF", []StatusKind{StatusATK, StatusSpATK, StatusDEF, StatusSpDEF}},

	{"火属性攻撃力・火属性防御力", []StatusKind{StatusFireATK, StatusFireDEF}},
	{"水属性攻撃力・水属性防御力", []StatusKind{StatusWaterATK, StatusWaterDEF}},
	{"風属性攻撃力・風属性防御力", []StatusKind{StatusWindATK, StatusWindDEF}},
	{"光属性攻撃力・光属性防御力", []StatusKind{StatusLightATK, StatusLightDEF}},
	{"闇属性攻撃力・闇属性防御力", []StatusKind{StatusDarkATK, StatusDarkDEF}},
	{"火属性攻撃力・水属性攻撃力", []StatusKind{StatusFireATK, StatusWaterATK}},
	{"水属性攻撃力・風属性攻撃力", []StatusKind{StatusWaterATK, StatusWindATK}},
	{"火属性攻撃力・風属性攻撃力", []StatusKind{StatusFireATK, StatusWindATK}},
	{"光属性攻撃力・闇属性攻撃力", []StatusKind{StatusLightATK, StatusDarkATK}},
	{"光属性防御力・闇属性防御力", []StatusKind{StatusLightDEF, StatusDarkDEF}},
	{"火属性攻撃力・水属性攻撃力・風属性攻撃力", []StatusKind{StatusFireATK, StatusWaterATK, StatusWindATK}},
	{"火属性防御力・水属性防御力・風属性防御力", []StatusKind{StatusFireDEF, StatusWaterDEF, StatusWindDEF}},
}

var triggerLiterals = []struct {
	text    string
	trigger Trigger
}{
	{"攻撃", TriggerAttack},
	{"通常攻撃", TriggerPhysical},
	{"特殊攻撃", TriggerMagical},
	{"支援/妨害", TriggerAssist},
	{"回復", TriggerRecovery},
	{"コマンド", TriggerCommand},
}

// supportPrefixes maps the marker at the head of a support name to its trigger.
var supportPrefixes = []struct {
	prefix  string
	trigger Trigger
}{
	{"攻:", TriggerAttack},
	{"援:", TriggerAssist},
	{"回:", TriggerRecovery},
	{"コ:", TriggerCommand},
}

func noMatch[T any](p validated.Path, target, kind string) validated.Result[T] {
	return validated.Failf[T](p, target, "given text doesn't match any %s", kind)
}

func lookupAmount(p validated.Path, text string) validated.Result[amountLiteral] {
	p = p.With("parseAmount")
	s := strings.TrimSpace(text)
	for _, l := range amountLiterals {
		if l.text == s {
			return validated.Ok(l)
		}
	}
	return noMatch[amountLiteral](p, text, "amount")
}

// ParseAmount resolves an amount phrase such as "特大アップ" to its magnitude.
func ParseAmount(p validated.Path, text string) validated.Result[Amount] {
	return validated.Map(lookupAmount(p, text), func(l amountLiteral) Amount { return l.amount })
}

// ParseDirection resolves the direction implied by an amount phrase.
func ParseDirection(p validated.Path, text string) validated.Result[Direction] {
	p = p.With("parseDirection")
	s := strings.TrimSpace(text)
	for _, l := range amountLiterals {
		if l.text == s {
			return validated.Ok(l.direction)
		}
	}
	return noMatch[Direction](p, text, "direction")
}

// LookupElement maps a source attribute word to its Element.
func LookupElement(text string) (Element, bool) {
	s := strings.TrimSpace(text)
	for _, l := range elementLiterals {
		if l.text == s {
			return l.element, true
		}
	}
	return "", false
}

// ParseElement resolves a source attribute word such as "火".
func ParseElement(p validated.Path, text string) validated.Result[Element] {
	p = p.With("parseElement")
	if el, ok := LookupElement(text); ok {
		return validated.Ok(el)
	}
	return noMatch[Element](p, text, "element")
}

// ParseStatus resolves a status phrase to one or more status kinds, in
// textual order.
func ParseStatus(p validated.Path, text string) validated.Result[[]StatusKind] {
	p = p.With("parseStatus")
	s := strings.TrimSpace(text)
	for _, l := range statusLiterals {
		if l.text == s {
			return validated.Ok(append([]StatusKind(nil), l.kinds...))
		}
	}
	return noMatch[[]StatusKind](p, text, "status")
}

// ParseTrigger resolves a trigger phrase such as "通常攻撃" in a legendary
// skill text.
func ParseTrigger(p validated.Path, text string) validated.Result[Trigger] {
	p = p.With("parseTrigger")
	s := strings.TrimSpace(text)
	for _, l := range triggerLiterals {
		if l.text == s {
			return validated.Ok(l.trigger)
		}
	}
	return noMatch[Trigger](p, text, "trigger")
}

// ParseSupportTrigger derives the trigger of a support skill from the
// marker prefix of its name, e.g. "攻:ATKアップⅡ".
func ParseSupportTrigger(p validated.Path, name string) validated.Result[Trigger] {
	p = p.With("parseTrigger")
	s := strings.TrimSpace(name)
	for _, l := range supportPrefixes {
		if strings.HasPrefix(s, l.prefix) {
			return validated.Ok(l.trigger)
		}
	}
	return noMatch[Trigger](p, name, "trigger")
}

// ParseProbability reads the activation tier stated anywhere in a support
// description.
func ParseProbability(p validated.Path, description string) validated.Result[Probability] {
	p = p.With("parseProbability")
	switch {
	case strings.Contains(description, "中確率"):
		return validated.Ok(ProbabilityMedium)
	case strings.Contains(description, "一定確率"):
		return validated.Ok(ProbabilitySmall)
	}
	return noMatch[Probability](p, description, "probability")
}

// ParseRate parses a non-negative, finite percentage such as "12.5".
func ParseRate(p validated.Path, text string) validated.Result[float64] {
	p = p.With("parseRate")
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return noMatch[float64](p, text, "rate")
	}
	return validated.Ok(f)
}
