package athlete

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/JakeFAU/ufc-athletes/internal/metrics"
)

// Profile is a parsed athlete page. Fields are read lazily on each call and
// the underlying document is never modified, so a Profile is safe to share.
type Profile struct {
	url string
	doc *goquery.Document
}

// ParseProfile builds a Profile from an HTML body.
func ParseProfile(r io.Reader, url string) (*Profile, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", url, err)
	}
	return &Profile{url: url, doc: doc}, nil
}

// URL is the address the profile was fetched from.
func (p *Profile) URL() string {
	return p.url
}

func (p *Profile) String() string {
	name, err := p.Name()
	if err != nil {
		return p.url
	}
	return name
}

func (p *Profile) locate(name string) (Field, string, error) {
	f, ok := LookupField(name)
	if !ok {
		return Field{}, "", fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
	text, err := f.locate(p.doc.Selection)
	for _, t := range f.transforms {
		if err != nil {
			break
		}
		text, err = t(text)
	}
	if err != nil {
		return f, "", &ExtractError{Field: name, Err: err}
	}
	return f, strings.TrimSpace(text), nil
}

func extractAs[T any](p *Profile, name string, conv func(string) (T, error)) (T, error) {
	var zero T
	f, text, err := p.locate(name)
	if err == nil {
		var v T
		if v, err = conv(text); err == nil {
			metrics.ObserveExtraction(name, metrics.OutcomeOK)
			return v, nil
		}
		err = &ExtractError{Field: name, Err: err}
	}
	if f.Optional {
		metrics.ObserveExtraction(name, metrics.OutcomeAbsent)
	} else {
		metrics.ObserveExtraction(name, metrics.OutcomeError)
	}
	return zero, err
}

func asString(s string) (string, error) { return s, nil }

func asFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

func optionalAs[T any](p *Profile, name string, conv func(string) (T, error)) (T, bool) {
	v, err := extractAs(p, name, conv)
	return v, err == nil
}

// Text returns the trimmed text of any field.
func (p *Profile) Text(name string) (string, error) {
	return extractAs(p, name, asString)
}

// Int returns an integer field.
func (p *Profile) Int(name string) (int, error) {
	return extractAs(p, name, strconv.Atoi)
}

// Float returns a floating point field.
func (p *Profile) Float(name string) (float64, error) {
	return extractAs(p, name, asFloat)
}

// Value returns a field coerced to the kind declared in the field table.
// Optional fields that are missing yield (nil, nil).
func (p *Profile) Value(name string) (any, error) {
	f, ok := LookupField(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}
	var (
		v   any
		err error
	)
	switch f.Kind {
	case KindInt:
		v, err = p.Int(name)
	case KindFloat:
		v, err = p.Float(name)
	default:
		v, err = p.Text(name)
	}
	if err != nil && f.Optional {
		return nil, nil
	}
	return v, err
}

// Name is the athlete's full name.
func (p *Profile) Name() (string, error) { return p.Text(FieldName) }

// Nickname is reported absent when the page has none.
func (p *Profile) Nickname() (string, bool) { return optionalAs(p, FieldNickname, asString) }

// Division is the division label, e.g. "Women's Strawweight Division".
func (p *Profile) Division() (string, error) { return p.Text(FieldDivision) }

// Gender is inferred from the division label.
func (p *Profile) Gender() (Gender, error) {
	div, err := p.Division()
	if err != nil {
		return "", err
	}
	return GenderFromDivision(div), nil
}

// Rank is the display rank: "Champion", "#5 Lightweight Division" or "Unranked ...".
func (p *Profile) Rank() (string, error) { return p.Text(FieldRank) }

// RecordText is the raw W-L-D string.
func (p *Profile) RecordText() (string, error) { return p.Text(FieldRecord) }

// Record parses the W-L-D record.
func (p *Profile) Record() (Record, error) {
	text, err := p.RecordText()
	if err != nil {
		return Record{}, err
	}
	rec, err := ParseRecord(text)
	if err != nil {
		return Record{}, &ExtractError{Field: FieldRecord, Err: err}
	}
	return rec, nil
}

// Wins is the first component of the record.
func (p *Profile) Wins() (int, error) {
	rec, err := p.Record()
	return rec.Wins, err
}

// Losses is the second component of the record.
func (p *Profile) Losses() (int, error) {
	rec, err := p.Record()
	return rec.Losses, err
}

// Draws is the third component of the record.
func (p *Profile) Draws() (int, error) {
	rec, err := p.Record()
	return rec.Draws, err
}

// ImageURL is the hero image source.
func (p *Profile) ImageURL() (string, error) { return p.Text(FieldImageURL) }

// Age in years.
func (p *Profile) Age() (int, error) { return p.Int(FieldAge) }

// Weight in pounds.
func (p *Profile) Weight() (float64, error) { return p.Float(FieldWeight) }

// WeightClass derives the class from the listed weight.
func (p *Profile) WeightClass() (WeightClass, error) {
	w, err := p.Weight()
	if err != nil {
		return "", err
	}
	return WeightClassFor(w), nil
}

// Height in inches.
func (p *Profile) Height() (float64, bool) { return optionalAs(p, FieldHeight, asFloat) }

// HeightFeet renders Height as feet and inches.
func (p *Profile) HeightFeet() (string, bool) {
	h, ok := p.Height()
	if !ok {
		return "", false
	}
	return HeightInFeet(h), true
}

// Hometown as printed on the bio.
func (p *Profile) Hometown() (string, error) { return p.Text(FieldHometown) }

// Status is "Active" or "Retired".
func (p *Profile) Status() (string, error) { return p.Text(FieldStatus) }

// Reach in inches.
func (p *Profile) Reach() (float64, bool) { return optionalAs(p, FieldReach, asFloat) }

// LegReach in inches.
func (p *Profile) LegReach() (float64, bool) { return optionalAs(p, FieldLegReach, asFloat) }

// OctagonDebut is the date of the first UFC bout.
func (p *Profile) OctagonDebut() (string, bool) { return optionalAs(p, FieldOctagonDebut, asString) }

// TrainsAt is the athlete's gym.
func (p *Profile) TrainsAt() (string, bool) { return optionalAs(p, FieldTrainsAt, asString) }

// StrikingAccuracy is a percentage.
func (p *Profile) StrikingAccuracy() (int, error) { return p.Int(FieldStrikingAccuracy) }

// SigStrikesLanded over the UFC career.
func (p *Profile) SigStrikesLanded() (int, error) { return p.Int(FieldSigStrikesLanded) }

// SigStrikesAttempted over the UFC career.
func (p *Profile) SigStrikesAttempted() (int, error) { return p.Int(FieldSigStrikesAttempted) }

// TakedownAccuracy is a percentage.
func (p *Profile) TakedownAccuracy() (int, error) { return p.Int(FieldTakedownAccuracy) }

// TakedownsLanded is absent for athletes without grappling stats.
func (p *Profile) TakedownsLanded() (int, bool) {
	return optionalAs(p, FieldTakedownsLanded, strconv.Atoi)
}

// TakedownsAttempted is absent for athletes without grappling stats.
func (p *Profile) TakedownsAttempted() (int, bool) {
	return optionalAs(p, FieldTakedownsAttempted, strconv.Atoi)
}

// FinishCount is a method-of-victory tally with its share of all wins.
type FinishCount struct {
	Count   int `json:"count"`
	Percent int `json:"percent"`
}

func (p *Profile) pair(countField, pctField string) (FinishCount, error) {
	n, err := p.Int(countField)
	if err != nil {
		return FinishCount{}, err
	}
	pct, err := p.Int(pctField)
	if err != nil {
		return FinishCount{}, err
	}
	return FinishCount{Count: n, Percent: pct}, nil
}

// WinsByKO counts knockout wins.
func (p *Profile) WinsByKO() (FinishCount, error) {
	return p.pair(FieldWinsByKO, FieldWinsByKOPercent)
}

// WinsByDecision counts decision wins.
func (p *Profile) WinsByDecision() (FinishCount, error) {
	return p.pair(FieldWinsByDecision, FieldWinsByDecisionPct)
}

// WinsBySubmission counts submission wins.
func (p *Profile) WinsBySubmission() (FinishCount, error) {
	return p.pair(FieldWinsBySubmission, FieldWinsBySubmissionPct)
}

// SigStrikesStanding counts significant strikes thrown standing.
func (p *Profile) SigStrikesStanding() (FinishCount, error) {
	return p.pair(FieldSigStrStanding, FieldSigStrStandingPct)
}

// SigStrikesClinch counts significant strikes thrown in the clinch.
func (p *Profile) SigStrikesClinch() (FinishCount, error) {
	return p.pair(FieldSigStrClinch, FieldSigStrClinchPct)
}

// SigStrikesGround counts significant strikes thrown on the ground.
func (p *Profile) SigStrikesGround() (FinishCount, error) {
	return p.pair(FieldSigStrGround, FieldSigStrGroundPct)
}

// SigStrikesHead counts significant strikes to the head.
func (p *Profile) SigStrikesHead() (FinishCount, error) {
	return p.pair(FieldSigStrHead, FieldSigStrHeadPct)
}

// SigStrikesBody counts significant strikes to the body.
func (p *Profile) SigStrikesBody() (FinishCount, error) {
	return p.pair(FieldSigStrBody, FieldSigStrBodyPct)
}

// SigStrikesLeg counts significant strikes to the legs.
func (p *Profile) SigStrikesLeg() (FinishCount, error) {
	return p.pair(FieldSigStrLeg, FieldSigStrLegPct)
}

// SigStrikesLandedPerMin is the career landing rate.
func (p *Profile) SigStrikesLandedPerMin() (float64, error) { return p.Float(FieldSigStrLandedPerMin) }

// SigStrikesAbsorbedPerMin is the career absorption rate.
func (p *Profile) SigStrikesAbsorbedPerMin() (float64, error) {
	return p.Float(FieldSigStrAbsorbedPerMin)
}

// TakedownAverage is takedowns landed per 15 minutes.
func (p *Profile) TakedownAverage() (float64, error) { return p.Float(FieldTakedownAverage) }

// SubmissionAverage is submission attempts per 15 minutes.
func (p *Profile) SubmissionAverage() (float64, error) { return p.Float(FieldSubmissionAverage) }

// SigStrikeDefense is a percentage.
func (p *Profile) SigStrikeDefense() (int, error) { return p.Int(FieldSigStrDefense) }

// TakedownDefense is a percentage.
func (p *Profile) TakedownDefense() (int, error) { return p.Int(FieldTakedownDefense) }

// KnockdownAverage is knockdowns per 15 minutes.
func (p *Profile) KnockdownAverage() (float64, error) { return p.Float(FieldKnockdownAverage) }

// AverageFightTime is printed as MM:SS.
func (p *Profile) AverageFightTime() (string, error) { return p.Text(FieldAverageFightTime) }
