package parser

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	"memoria-parser/internal/validated"
)

// matcher is one recognized clause template. Every occurrence of pattern in
// a sentence is handed to build together with its submatches.
type matcher struct {
	name    string
	pattern *regexp.Regexp
	build   func(p validated.Path, m []string) validated.Result[[]Effect]
}

// actor is the subject of a clause: the memoria itself, allies or enemies,
// optionally with a count such as "1~2体".
const actor = `(?:自身|味方[^のを、に]*|敵[^のを、に]*)`

// sentenceMatchers is tried top to bottom. A match claims its span of the
// sentence; later matches overlapping a claimed span are ignored, so the
// specific templates win over the generic status change. Capture groups stop
// at "を" and "、" so a template never reaches into the neighbouring clause.
var sentenceMatchers = []matcher{
	{
		name:    "parseDamageUp",
		pattern: regexp.MustCompile(`(?:` + actor + `の)?(?:通常|特殊)?攻撃ダメージを([^を、]+?)させ`),
		build:   amountEffect(EffectDamageUp),
	},
	{
		name:    "parseSupportUp",
		pattern: regexp.MustCompile(`(?:` + actor + `の)?支援/妨害効果を([^を、]+?)させ`),
		build:   amountEffect(EffectSupportUp),
	},
	{
		name:    "parseRecoveryUp",
		pattern: regexp.MustCompile(`(?:` + actor + `の)?HP回復量を([^を、]+?)させ`),
		build:   amountEffect(EffectRecoveryUp),
	},
	{
		name:    "parseMatchPtUp",
		pattern: regexp.MustCompile(`自身のマッチPt獲得量が([^が、]+?)する`),
		build:   amountEffect(EffectMatchPtUp),
	},
	{
		name:    "parseMpCostDown",
		pattern: regexp.MustCompile(`MP消費を抑える`),
		build:   fixedEffect(EffectMpCostDown),
	},
	{
		name:    "parseRangeUp",
		pattern: regexp.MustCompile(`効果対象範囲が(?:拡大|\+1)される`),
		build:   fixedEffect(EffectRangeUp),
	},
	{
		name:    "parseStatusChange",
		pattern: regexp.MustCompile(`(` + actor + `)の([^のを、]+)を([^を、]+?)(?:させ|する|し)`),
		build:   statusChange,
	},

	// Decorative phrases carry no effect of their own; inner tokens are
	// still validated.
	{
		name:    "parseDamage",
		pattern: regexp.MustCompile(`敵[^に、]*に(?:通常|特殊)([^を、]+?)を与え`),
		build: func(p validated.Path, m []string) validated.Result[[]Effect] {
			return validated.Map(ParseAmount(p, m[1]), func(Amount) []Effect { return nil })
		},
	},
	{
		name:    "parseNote",
		pattern: regexp.MustCompile(`^※.*$`),
		build: func(validated.Path, []string) validated.Result[[]Effect] {
			return validated.Ok[[]Effect](nil)
		},
	},
}

// connectorPattern is the prose allowed between recognized clauses: the
// activation condition, the probability and verb endings.
var connectorPattern = regexp.MustCompile(`^(?:(?:攻撃|支援/妨害|回復|オーダー発動|コマンド)時|(?:一定|中)確率で|る)$`)

func amountEffect(t EffectType) func(validated.Path, []string) validated.Result[[]Effect] {
	return func(p validated.Path, m []string) validated.Result[[]Effect] {
		return validated.Map(ParseAmount(p, m[1]), func(a Amount) []Effect {
			return []Effect{{Type: t, Amount: a}}
		})
	}
}

// fixedEffect builds templates whose text states no magnitude; they count
// as medium.
func fixedEffect(t EffectType) func(validated.Path, []string) validated.Result[[]Effect] {
	return func(validated.Path, []string) validated.Result[[]Effect] {
		return validated.Ok([]Effect{{Type: t, Amount: AmountMedium}})
	}
}

// statusChange fans a possibly compound status out into one effect per
// kind, all sharing the amount and direction parsed once.
func statusChange(p validated.Path, m []string) validated.Result[[]Effect] {
	return validated.Zip2(ParseStatus(p, m[2]), lookupAmount(p, m[3]), func(kinds []StatusKind, l amountLiteral) []Effect {
		out := make([]Effect, len(kinds))
		for i, k := range kinds {
			out[i] = Effect{Type: EffectStatusChange, Amount: l.amount, Status: k, Direction: l.direction}
		}
		return out
	})
}

// splitSentences splits a description on the Japanese full stop and drops
// empty fragments.
func splitSentences(description string) []string {
	var out []string
	for _, s := range strings.Split(description, "。") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func submatches(s string, loc []int) []string {
	out := make([]string, len(loc)/2)
	for i := range out {
		if loc[2*i] >= 0 {
			out[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	return out
}

type fragment struct {
	start int
	text  string
}

// leftovers returns the unclaimed text of s split on "、", trimmed.
func leftovers(s string, claimed []bool) []fragment {
	var out []fragment
	flush := func(start, end int) {
		for _, part := range strings.Split(s[start:end], "、") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, fragment{start: start, text: part})
			}
		}
	}
	start := -1
	for i := range len(s) {
		switch {
		case !claimed[i] && start < 0:
			start = i
		case claimed[i] && start >= 0:
			flush(start, i)
			start = -1
		}
	}
	if start >= 0 {
		flush(start, len(s))
	}
	return out
}

// parseSentence parses one sentence into effects in textual order. Every
// part of the sentence must be claimed by a template or be connector prose;
// any other clause is a failure.
func parseSentence(p validated.Path, sentence string) validated.Result[[]Effect] {
	type hit struct {
		start  int
		result validated.Result[[]Effect]
	}
	claimed := make([]bool, len(sentence))
	var hits []hit
	for _, m := range sentenceMatchers {
		for _, loc := range m.pattern.FindAllStringSubmatchIndex(sentence, -1) {
			if slices.Contains(claimed[loc[0]:loc[1]], true) {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				claimed[i] = true
			}
			hits = append(hits, hit{start: loc[0], result: m.build(p.With(m.name), submatches(sentence, loc))})
		}
	}
	if len(hits) == 0 {
		return noMatch[[]Effect](p.With("parseSentence"), sentence, "effect pattern")
	}

	for _, f := range leftovers(sentence, claimed) {
		if !connectorPattern.MatchString(f.text) {
			hits = append(hits, hit{start: f.start, result: noMatch[[]Effect](p.With("parseSentence"), f.text, "effect pattern")})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int { return cmp.Compare(a.start, b.start) })

	results := make([]validated.Result[[]Effect], len(hits))
	for i, h := range hits {
		results[i] = h.result
	}
	return validated.Concat(results...)
}

// parseDescription parses every sentence of a description and concatenates
// their effects in order.
func parseDescription(p validated.Path, description string) validated.Result[[]Effect] {
	return validated.Map(
		validated.Traverse(p, splitSentences(description), parseSentence),
		func(parts [][]Effect) []Effect {
			out := make([]Effect, 0, len(parts))
			for _, part := range parts {
				out = append(out, part...)
			}
			return out
		},
	)
}
