package athlete

// Fighter is a fully materialised profile. Optional values are nil when the
// page does not carry them; required fields that could not be read are left
// at their zero value and listed in FieldErrors.
type Fighter struct {
	URL         string      `json:"url"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Nickname    *string     `json:"nickname,omitempty"`
	Division    string      `json:"division"`
	Gender      Gender      `json:"gender"`
	Rank        string      `json:"rank"`
	Record      Record      `json:"record"`
	ImageURL    string      `json:"image_url"`
	Age         int         `json:"age"`
	Weight      float64     `json:"weight"`
	WeightClass WeightClass `json:"weight_class"`
	Height      *float64    `json:"height,omitempty"`
	HeightFeet  *string     `json:"height_feet,omitempty"`
	Hometown    string      `json:"hometown"`
	Status      string      `json:"status"`
	Reach       *float64    `json:"reach,omitempty"`
	LegReach    *float64    `json:"leg_reach,omitempty"`
	Debut       *string     `json:"octagon_debut,omitempty"`
	TrainsAt    *string     `json:"trains_at,omitempty"`

	Striking  Striking   `json:"striking"`
	Grappling Grappling  `json:"grappling"`
	Wins      WinMethods `json:"wins_by_method"`

	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// Striking groups the significant strike statistics.
type Striking struct {
	Accuracy         int         `json:"accuracy"`
	Landed           int         `json:"landed"`
	Attempted        int         `json:"attempted"`
	LandedPerMin     float64     `json:"landed_per_min"`
	AbsorbedPerMin   float64     `json:"absorbed_per_min"`
	Defense          int         `json:"defense"`
	KnockdownAverage float64     `json:"knockdown_avg"`
	Standing         FinishCount `json:"standing"`
	Clinch           FinishCount `json:"clinch"`
	Ground           FinishCount `json:"ground"`
	Head             FinishCount `json:"head"`
	Body             FinishCount `json:"body"`
	Leg              FinishCount `json:"leg"`
	AverageFightTime string      `json:"average_fight_time"`
}

// Grappling groups takedown and submission statistics.
type Grappling struct {
	TakedownAccuracy   int     `json:"takedown_accuracy"`
	TakedownsLanded    *int    `json:"takedowns_landed,omitempty"`
	TakedownsAttempted *int    `json:"takedowns_attempted,omitempty"`
	TakedownAverage    float64 `json:"takedown_avg"`
	TakedownDefense    int     `json:"takedown_defense"`
	SubmissionAverage  float64 `json:"submission_avg"`
}

// WinMethods breaks wins down by finish.
type WinMethods struct {
	KO         FinishCount `json:"ko"`
	Decision   FinishCount `json:"decision"`
	Submission FinishCount `json:"submission"`
}

// Incomplete reports whether any required field failed.
func (f *Fighter) Incomplete() bool {
	return len(f.FieldErrors) > 0
}

type snapshot struct {
	errs map[string]string
}

func (s *snapshot) note(name string, err error) {
	if err == nil {
		return
	}
	if s.errs == nil {
		s.errs = make(map[string]string)
	}
	s.errs[name] = err.Error()
}

func req[T any](s *snapshot, name string, dst *T, get func() (T, error)) {
	v, err := get()
	s.note(name, err)
	if err == nil {
		*dst = v
	}
}

func opt[T any](dst **T, get func() (T, bool)) {
	if v, ok := get(); ok {
		*dst = &v
	}
}

// Fighter reads every field of the profile once. It never fails; required
// fields that could not be read are reported in Fighter.FieldErrors.
func (p *Profile) Fighter() *Fighter {
	var (
		s snapshot
		f = &Fighter{URL: p.url}
	)

	req(&s, FieldName, &f.Name, p.Name)
	if f.Name != "" {
		f.Slug = Slug(f.Name)
	}
	opt(&f.Nickname, p.Nickname)
	req(&s, FieldDivision, &f.Division, p.Division)
	if f.Division != "" {
		f.Gender = GenderFromDivision(f.Division)
	}
	req(&s, FieldRank, &f.Rank, p.Rank)
	req(&s, FieldRecord, &f.Record, p.Record)
	req(&s, FieldImageURL, &f.ImageURL, p.ImageURL)
	req(&s, FieldAge, &f.Age, p.Age)
	req(&s, FieldWeight, &f.Weight, p.Weight)
	if f.Weight > 0 {
		f.WeightClass = WeightClassFor(f.Weight)
	}
	opt(&f.Height, p.Height)
	opt(&f.HeightFeet, p.HeightFeet)
	req(&s, FieldHometown, &f.Hometown, p.Hometown)
	req(&s, FieldStatus, &f.Status, p.Status)
	opt(&f.Reach, p.Reach)
	opt(&f.LegReach, p.LegReach)
	opt(&f.Debut, p.OctagonDebut)
	opt(&f.TrainsAt, p.TrainsAt)

	st := &f.Striking
	req(&s, FieldStrikingAccuracy, &st.Accuracy, p.StrikingAccuracy)
	req(&s, FieldSigStrikesLanded, &st.Landed, p.SigStrikesLanded)
	req(&s, FieldSigStrikesAttempted, &st.Attempted, p.SigStrikesAttempted)
	req(&s, FieldSigStrLandedPerMin, &st.LandedPerMin, p.SigStrikesLandedPerMin)
	req(&s, FieldSigStrAbsorbedPerMin, &st.AbsorbedPerMin, p.SigStrikesAbsorbedPerMin)
	req(&s, FieldSigStrDefense, &st.Defense, p.SigStrikeDefense)
	req(&s, FieldKnockdownAverage, &st.KnockdownAverage, p.KnockdownAverage)
	req(&s, FieldSigStrStanding, &st.Standing, p.SigStrikesStanding)
	req(&s, FieldSigStrClinch, &st.Clinch, p.SigStrikesClinch)
	req(&s, FieldSigStrGround, &st.Ground, p.SigStrikesGround)
	req(&s, FieldSigStrHead, &st.Head, p.SigStrikesHead)
	req(&s, FieldSigStrBody, &st.Body, p.SigStrikesBody)
	req(&s, FieldSigStrLeg, &st.Leg, p.SigStrikesLeg)
	req(&s, FieldAverageFightTime, &st.AverageFightTime, p.AverageFightTime)

	gr := &f.Grappling
	req(&s, FieldTakedownAccuracy, &gr.TakedownAccuracy, p.TakedownAccuracy)
	opt(&gr.TakedownsLanded, p.TakedownsLanded)
	opt(&gr.TakedownsAttempted, p.TakedownsAttempted)
	req(&s, FieldTakedownAverage, &gr.TakedownAverage, p.TakedownAverage)
	req(&s, FieldTakedownDefense, &gr.TakedownDefense, p.TakedownDefense)
	req(&s, FieldSubmissionAverage, &gr.SubmissionAverage, p.SubmissionAverage)

	req(&s, FieldWinsByKO, &f.Wins.KO, p.WinsByKO)
	req(&s, FieldWinsByDecision, &f.Wins.Decision, p.WinsByDecision)
	req(&s, FieldWinsBySubmission, &f.Wins.Submission, p.WinsBySubmission)

	f.FieldErrors = s.errs
	return f
}
