package parser

import "fmt"

// Amount is the magnitude of a change, independent of its direction.
type Amount int

const (
	AmountNone Amount = iota
	AmountSmall
	AmountMedium
	AmountLarge
	AmountExtraLarge
	AmountSuperLarge
	AmountUltraLarge
)

var amountNames = [...]string{
	AmountNone:       "",
	AmountSmall:      "small",
	AmountMedium:     "medium",
	AmountLarge:      "large",
	AmountExtraLarge: "extra-large",
	AmountSuperLarge: "super-large",
	AmountUltraLarge: "ultra-large",
}

func (a Amount) String() string {
	if a < 0 || int(a) >= len(amountNames) {
		return fmt.Sprintf("Amount(%d)", int(a))
	}
	return amountNames[a]
}

func (a Amount) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Amount) UnmarshalText(b []byte) error {
	for i, name := range amountNames {
		if i > 0 && name == string(b) {
			*a = Amount(i)
			return nil
		}
	}
	return fmt.Errorf("unknown amount %q", b)
}

// Direction is the sign of a status change. Damage and recovery phrases
// are always up.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func (d *Direction) UnmarshalText(b []byte) error {
	switch v := Direction(b); v {
	case DirectionUp, DirectionDown:
		*d = v
		return nil
	}
	return fmt.Errorf("unknown direction %q", b)
}

// Element is the canonical attribute of a memoria or legendary skill.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementWater Element = "Water"
	ElementWind  Element = "Wind"
	ElementLight Element = "Light"
	ElementDark  Element = "Dark"
)

// Elements lists every element in display order.
var Elements = []Element{ElementFire, ElementWater, ElementWind, ElementLight, ElementDark}

func (e *Element) UnmarshalText(b []byte) error {
	for _, el := range Elements {
		if string(el) == string(b) {
			*e = el
			return nil
		}
	}
	return fmt.Errorf("unknown element %q", b)
}

// StatusKind is a single stat affected by a status change.
type StatusKind string

const (
	StatusATK   StatusKind = "ATK"
	StatusDEF   StatusKind = "DEF"
	StatusSpATK StatusKind = "Sp.ATK"
	StatusSpDEF StatusKind = "Sp.DEF"
	StatusLife  StatusKind = "Life"

	StatusFireATK  StatusKind = "Fire ATK"
	StatusFireDEF  StatusKind = "Fire DEF"
	StatusWaterATK StatusKind = "Water ATK"
	StatusWaterDEF StatusKind = "Water DEF"
	StatusWindATK  StatusKind = "Wind ATK"
	StatusWindDEF  StatusKind = "Wind DEF"
	StatusLightATK StatusKind = "Light ATK"
	StatusLightDEF StatusKind = "Light DEF"
	StatusDarkATK  StatusKind = "Dark ATK"
	StatusDarkDEF  StatusKind = "Dark DEF"
)

var statusKinds = []StatusKind{
	StatusATK, StatusDEF, StatusSpATK, StatusSpDEF, StatusLife,
	StatusFireATK, StatusFireDEF, StatusWaterATK, StatusWaterDEF, StatusWindATK,
	StatusWindDEF, StatusLightATK, StatusLightDEF, StatusDarkATK, StatusDarkDEF,
}

func (s *StatusKind) UnmarshalText(b []byte) error {
	for _, k := range statusKinds {
		if string(k) == string(b) {
			*s = k
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", b)
}

// Trigger is the game condition under which an effect activates.
type Trigger string

const (
	TriggerAttack   Trigger = "Attack"
	TriggerPhysical Trigger = "Attack/Physical"
	TriggerMagical  Trigger = "Attack/Magical"
	TriggerAssist   Trigger = "Assist"
	TriggerRecovery Trigger = "Recovery"
	TriggerCommand  Trigger = "Command"
)

var triggers = []Trigger{TriggerAttack, TriggerPhysical, TriggerMagical, TriggerAssist, TriggerRecovery, TriggerCommand}

func (t *Trigger) UnmarshalText(b []byte) error {
	for _, tr := range triggers {
		if string(tr) == string(b) {
			*t = tr
			return nil
		}
	}
	return fmt.Errorf("unknown trigger %q", b)
}

// Probability is the activation tier of a support skill.
type Probability int

const (
	ProbabilityNone Probability = iota
	ProbabilitySmall
	ProbabilityMedium
)

func (p Probability) String() string {
	switch p {
	case ProbabilitySmall:
		return "small"
	case ProbabilityMedium:
		return "medium"
	}
	return ""
}

func (p Probability) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Probability) UnmarshalText(b []byte) error {
	switch string(b) {
	case "small":
		*p = ProbabilitySmall
	case "medium":
		*p = ProbabilityMedium
	default:
		return fmt.Errorf("unknown probability %q", b)
	}
	return nil
}

// EffectType tags the variant of an Effect.
type EffectType string

const (
	EffectDamageUp     EffectType = "DamageUp"
	EffectSupportUp    EffectType = "SupportUp"
	EffectRecoveryUp   EffectType = "RecoveryUp"
	EffectMatchPtUp    EffectType = "MatchPtUp"
	EffectMpCostDown   EffectType = "MpCostDown"
	EffectRangeUp      EffectType = "RangeUp"
	EffectStatusChange EffectType = "StatusChange"
)

var effectTypes = []EffectType{
	EffectDamageUp, EffectSupportUp, EffectRecoveryUp, EffectMatchPtUp,
	EffectMpCostDown, EffectRangeUp, EffectStatusChange,
}

func (t *EffectType) UnmarshalText(b []byte) error {
	for _, et := range effectTypes {
		if string(et) == string(b) {
			*t = et
			return nil
		}
	}
	return fmt.Errorf("unknown effect %q", b)
}

// Effect is one atomic parsed consequence of a clause.
// Status and Direction are set only for EffectStatusChange.
type Effect struct {
	Type      EffectType `json:"type" yaml:"type"`
	Amount    Amount     `json:"amount" yaml:"amount"`
	Status    StatusKind `json:"status,omitempty" yaml:"status,omitempty"`
	Direction Direction  `json:"direction,omitempty" yaml:"direction,omitempty"`
}

func (e Effect) String() string {
	if e.Type == EffectStatusChange {
		return fmt.Sprintf("%s %s %s", e.Status, e.Amount, e.Direction)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Amount)
}

// RawText is the display text of a skill, kept verbatim.
type RawText struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// RawLegendary is the display text of a legendary skill: one description
// per growth stage.
type RawLegendary struct {
	Name        string    `json:"name" yaml:"name"`
	Description [5]string `json:"description" yaml:"description"`
}

// Skill is a parsed main skill.
type Skill struct {
	Raw     RawText  `json:"raw" yaml:"raw"`
	Effects []Effect `json:"effects" yaml:"effects"`
}

// Support is a parsed support skill.
type Support struct {
	Raw         RawText     `json:"raw" yaml:"raw"`
	Trigger     Trigger     `json:"trigger" yaml:"trigger"`
	Probability Probability `json:"probability" yaml:"probability"`
	Effects     []Effect    `json:"effects" yaml:"effects"`
}

// Legendary is a parsed legendary skill. Rates holds one percentage per
// growth stage; Attribute and Trigger are the same in every stage.
type Legendary struct {
	Raw       RawLegendary `json:"raw" yaml:"raw"`
	Attribute Element      `json:"attribute" yaml:"attribute"`
	Trigger   Trigger      `json:"trigger" yaml:"trigger"`
	Rates     [5]float64   `json:"rates" yaml:"rates"`
}
