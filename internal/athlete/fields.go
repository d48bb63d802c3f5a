package athlete

import (
	"fmt"
	"sort"
)

// Kind is the Go type a field is coerced to.
type Kind int

// Field kinds.
const (
	KindString Kind = iota
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Field describes where a fact lives on the profile page and how to read it.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool

	locate     locator
	transforms []transform
}

// Field names accepted by Profile.Text, Profile.Int and Profile.Float.
const (
	FieldName                 = "name"
	FieldNickname             = "nickname"
	FieldDivision             = "division"
	FieldRank                 = "rank"
	FieldRecord               = "record"
	FieldImageURL             = "image_url"
	FieldAge                  = "age"
	FieldWeight               = "weight"
	FieldHeight               = "height"
	FieldHometown             = "hometown"
	FieldStatus               = "status"
	FieldReach                = "reach"
	FieldLegReach             = "leg_reach"
	FieldOctagonDebut         = "octagon_debut"
	FieldTrainsAt             = "trains_at"
	FieldStrikingAccuracy     = "striking_accuracy"
	FieldSigStrikesLanded     = "sig_strikes_landed"
	FieldSigStrikesAttempted  = "sig_strikes_attempted"
	FieldTakedownAccuracy     = "takedown_accuracy"
	FieldTakedownsLanded      = "takedowns_landed"
	FieldTakedownsAttempted   = "takedowns_attempted"
	FieldWinsByKO             = "wins_by_ko"
	FieldWinsByKOPercent      = "wins_by_ko_percent"
	FieldWinsByDecision       = "wins_by_decision"
	FieldWinsByDecisionPct    = "wins_by_decision_percent"
	FieldWinsBySubmission     = "wins_by_submission"
	FieldWinsBySubmissionPct  = "wins_by_submission_percent"
	FieldSigStrLandedPerMin   = "sig_str_landed_per_min"
	FieldSigStrAbsorbedPerMin = "sig_str_absorbed_per_min"
	FieldTakedownAverage      = "takedown_avg"
	FieldSubmissionAverage    = "submission_avg"
	FieldSigStrDefense        = "sig_str_defense"
	FieldTakedownDefense      = "takedown_defense"
	FieldKnockdownAverage     = "knockdown_avg"
	FieldAverageFightTime     = "average_fight_time"
	FieldSigStrStanding       = "sig_str_standing"
	FieldSigStrStandingPct    = "sig_str_standing_percent"
	FieldSigStrClinch         = "sig_str_clinch"
	FieldSigStrClinchPct      = "sig_str_clinch_percent"
	FieldSigStrGround         = "sig_str_ground"
	FieldSigStrGroundPct      = "sig_str_ground_percent"
	FieldSigStrHead           = "sig_str_head"
	FieldSigStrHeadPct        = "sig_str_head_percent"
	FieldSigStrBody           = "sig_str_body"
	FieldSigStrBodyPct        = "sig_str_body_percent"
	FieldSigStrLeg            = "sig_str_leg"
	FieldSigStrLegPct         = "sig_str_leg_percent"
)

const (
	accuracySel = "text.e-chart-circle__percent"
	overlapSel  = "dl.c-overlap__stats"
	threeBarSel = "div.c-stat-3bar__value"
	compareSel  = "div.c-stat-compare__number"
)

func required(name string, kind Kind, loc locator, ts ...transform) Field {
	return Field{Name: name, Kind: kind, locate: loc, transforms: ts}
}

func optional(name string, kind Kind, loc locator, ts ...transform) Field {
	return Field{Name: name, Kind: kind, Optional: true, locate: loc, transforms: ts}
}

func targetID(region, suffix string) string {
	return fmt.Sprintf("text#e-stat-body_x5F__x5F_%s_%s", region, suffix)
}

var fieldTable = []Field{
	required(FieldName, KindString, first("h1.hero-profile__name")),
	optional(FieldNickname, KindString, first("p.hero-profile__nickname"), trim(`/"`)),
	required(FieldDivision, KindString, first("p.hero-profile__division-title")),
	required(FieldRank, KindString, first("div.c-hero__headline-suffix"), ParseRank),
	required(FieldRecord, KindString, first("p.hero-profile__division-body"), word(0)),
	required(FieldImageURL, KindString, attr("img.hero-profile__image", "src")),

	required(FieldAge, KindInt, bio("Age"), count()),
	required(FieldWeight, KindFloat, bio("Weight")),
	optional(FieldHeight, KindFloat, bio("Height")),
	required(FieldHometown, KindString, bio("Hometown")),
	required(FieldStatus, KindString, bio("Status")),
	optional(FieldReach, KindFloat, bio("Reach")),
	optional(FieldLegReach, KindFloat, bio("Leg reach")),
	optional(FieldOctagonDebut, KindString, bio("Octagon Debut")),
	optional(FieldTrainsAt, KindString, bio("Trains at")),

	required(FieldStrikingAccuracy, KindInt, nth(accuracySel, 0), percent("%")),
	required(FieldTakedownAccuracy, KindInt, nth(accuracySel, 1), percent("%")),
	required(FieldSigStrikesLanded, KindInt, definition(overlapSel, 0), count()),
	required(FieldSigStrikesAttempted, KindInt, definition(overlapSel, 1), count()),
	optional(FieldTakedownsLanded, KindInt, definition(overlapSel, 2), count()),
	optional(FieldTakedownsAttempted, KindInt, definition(overlapSel, 3), count()),

	required(FieldSigStrStanding, KindInt, nth(threeBarSel, 0), word(0), count()),
	required(FieldSigStrStandingPct, KindInt, nth(threeBarSel, 0), word(1), percent("(%)")),
	required(FieldSigStrClinch, KindInt, nth(threeBarSel, 1), word(0), count()),
	required(FieldSigStrClinchPct, KindInt, nth(threeBarSel, 1), word(1), percent("(%)")),
	required(FieldSigStrGround, KindInt, nth(threeBarSel, 2), word(0), count()),
	required(FieldSigStrGroundPct, KindInt, nth(threeBarSel, 2), word(1), percent("(%)")),
	required(FieldWinsByKO, KindInt, nth(threeBarSel, 3), word(0), count()),
	required(FieldWinsByKOPercent, KindInt, nth(threeBarSel, 3), word(1), percent("(%)")),
	required(FieldWinsByDecision, KindInt, nth(threeBarSel, 4), word(0), count()),
	required(FieldWinsByDecisionPct, KindInt, nth(threeBarSel, 4), word(1), percent("(%)")),
	required(FieldWinsBySubmission, KindInt, nth(threeBarSel, 5), word(0), count()),
	required(FieldWinsBySubmissionPct, KindInt, nth(threeBarSel, 5), word(1), percent("(%)")),

	required(FieldSigStrLandedPerMin, KindFloat, nth(compareSel, 0)),
	required(FieldSigStrAbsorbedPerMin, KindFloat, nth(compareSel, 1)),
	required(FieldTakedownAverage, KindFloat, nth(compareSel, 2)),
	required(FieldSubmissionAverage, KindFloat, nth(compareSel, 3)),
	required(FieldSigStrDefense, KindInt, nth(compareSel, 4), percent("%")),
	required(FieldTakedownDefense, KindInt, nth(compareSel, 5), percent("%")),
	required(FieldKnockdownAverage, KindFloat, nth(compareSel, 6)),
	required(FieldAverageFightTime, KindString, nth(compareSel, 7)),

	required(FieldSigStrHead, KindInt, first(targetID("head", "value")), count()),
	required(FieldSigStrHeadPct, KindInt, first(targetID("head", "percent")), percent("%")),
	required(FieldSigStrBody, KindInt, first(targetID("body", "value")), count()),
	required(FieldSigStrBodyPct, KindInt, first(targetID("body", "percent")), percent("%")),
	required(FieldSigStrLeg, KindInt, first(targetID("leg", "value")), count()),
	required(FieldSigStrLegPct, KindInt, first(targetID("leg", "percent")), percent("%")),
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(fieldTable))
	for _, f := range fieldTable {
		idx[f.Name] = f
	}
	return idx
}()

// LookupField returns the table entry for name.
func LookupField(name string) (Field, bool) {
	f, ok := fieldIndex[name]
	return f, ok
}

// Fields returns the names of every extractable field, sorted.
func Fields() []string {
	names := make([]string, 0, len(fieldTable))
	for _, f := range fieldTable {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
