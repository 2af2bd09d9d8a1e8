// Package parser turns the Japanese descriptions of memoria skills into
// structured effects.
//
// Every parse function takes the path of its caller and appends its own
// segment, so an error reported deep inside a description carries the full
// route to the failing token, e.g.
// "parseSkill.parseSeq.0.parseStatusChange.parseStatus". Failures are never
// short-circuited across independent parts: a skill with two bad sentences
// reports both.
package parser

import (
	"regexp"
	"strings"

	"memoria-parser/internal/validated"
)

// ParseSkill parses the main skill of a memoria. The raw text is kept
// verbatim and Effects is never nil on success.
func ParseSkill(name, description string) validated.Result[Skill] {
	p := validated.Root("parseSkill")
	return validated.Map(parseDescription(p, description), func(effects []Effect) Skill {
		return Skill{
			Raw:     RawText{Name: name, Description: description},
			Effects: effects,
		}
	})
}

// ParseSupport parses a support skill. The trigger comes from the name
// prefix, the probability and effects from the description.
func ParseSupport(name, description string) validated.Result[Support] {
	p := validated.Root("parseSupport")
	return validated.Zip3(
		ParseSupportTrigger(p, name),
		ParseProbability(p, description),
		parseDescription(p, description),
		func(tr Trigger, prob Probability, effects []Effect) Support {
			return Support{
				Raw:         RawText{Name: name, Description: description},
				Trigger:     tr,
				Probability: prob,
				Effects:     effects,
			}
		},
	)
}

var legendaryPattern = regexp.MustCompile(`^(.+?)属性の(.+?)メモリアのスキル効果を([0-9]+(?:\.[0-9]+)?)%アップさせる。?$`)

type legendaryStage struct {
	attribute Element
	trigger   Trigger
	rate      float64
}

// parseLegendaryStage parses one growth stage. Inner token errors are
// reported directly under the stage index.
func parseLegendaryStage(p validated.Path, description string) validated.Result[legendaryStage] {
	m := legendaryPattern.FindStringSubmatch(strings.TrimSpace(description))
	if m == nil {
		return noMatch[legendaryStage](p.With("parseLegendaryStage"), description, "legendary pattern")
	}
	return validated.Zip3(
		ParseElement(p, m[1]),
		ParseTrigger(p, m[2]),
		ParseRate(p, m[3]),
		func(el Element, tr Trigger, rate float64) legendaryStage {
			return legendaryStage{attribute: el, trigger: tr, rate: rate}
		},
	)
}

// ParseLegendary parses the five growth stages of a legendary skill. All
// stages must name the same attribute and trigger; only the rate grows.
func ParseLegendary(name string, description [5]string) validated.Result[Legendary] {
	p := validated.Root("parseLegendary")
	stages := validated.Traverse(p, description[:], parseLegendaryStage)
	return validated.Bind(stages, func(ss []legendaryStage) validated.Result[Legendary] {
		first := ss[0]
		for _, s := range ss[1:] {
			if s.attribute != first.attribute || s.trigger != first.trigger {
				return validated.Failf[Legendary](
					p.With("checkConsistency"),
					strings.Join(description[:], "\n"),
					"legendary stages disagree on attribute or trigger",
				)
			}
		}
		l := Legendary{
			Raw:       RawLegendary{Name: name, Description: description},
			Attribute: first.attribute,
			Trigger:   first.trigger,
		}
		for i, s := range ss {
			l.Rates[i] = s.rate
		}
		return validated.Ok(l)
	})
}
