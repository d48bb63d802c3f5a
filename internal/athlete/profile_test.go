package athlete

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadProfile(t *testing.T, name string) *Profile {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	p, err := ParseProfile(f, "https://www.ufc.com/athlete/"+name)
	require.NoError(t, err)
	return p
}

func TestProfileFieldTable(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_full.html")
	want := map[string]any{
		FieldName:                 "Mateo Rivas",
		FieldNickname:             "The Anvil",
		FieldDivision:             "Lightweight Division",
		FieldRank:                 "#5 Lightweight Division",
		FieldRecord:               "22-3-1",
		FieldImageURL:             "https://images.example.com/athletes/mateo-rivas.png",
		FieldAge:                  31,
		FieldWeight:               155.0,
		FieldHeight:               70.0,
		FieldHometown:             "Tijuana, Mexico",
		FieldStatus:               "Active",
		FieldReach:                72.0,
		FieldLegReach:             40.0,
		FieldOctagonDebut:         "Mar. 4, 2017",
		FieldTrainsAt:             "Kill Cliff FC",
		FieldStrikingAccuracy:     52,
		FieldSigStrikesLanded:     1203,
		FieldSigStrikesAttempted:  2310,
		FieldTakedownAccuracy:     41,
		FieldTakedownsLanded:      34,
		FieldTakedownsAttempted:   83,
		FieldSigStrStanding:       750,
		FieldSigStrStandingPct:    62,
		FieldSigStrClinch:         253,
		FieldSigStrClinchPct:      21,
		FieldSigStrGround:         200,
		FieldSigStrGroundPct:      17,
		FieldWinsByKO:             10,
		FieldWinsByKOPercent:      45,
		FieldWinsByDecision:       7,
		FieldWinsByDecisionPct:    32,
		FieldWinsBySubmission:     5,
		FieldWinsBySubmissionPct:  23,
		FieldSigStrLandedPerMin:   5.41,
		FieldSigStrAbsorbedPerMin: 3.12,
		FieldTakedownAverage:      1.85,
		FieldSubmissionAverage:    0.7,
		FieldSigStrDefense:        58,
		FieldTakedownDefense:      71,
		FieldKnockdownAverage:     0.45,
		FieldAverageFightTime:     "12:34",
		FieldSigStrHead:           802,
		FieldSigStrHeadPct:        67,
		FieldSigStrBody:           250,
		FieldSigStrBodyPct:        21,
		FieldSigStrLeg:            148,
		FieldSigStrLegPct:         12,
	}
	require.Len(t, want, len(Fields()), "every field should be covered")

	for name, expected := range want {
		got, err := p.Value(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, got, name)
	}
}

func TestProfileDerivedFields(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_full.html")

	class, err := p.WeightClass()
	require.NoError(t, err)
	assert.Equal(t, Lightweight, class)

	gender, err := p.Gender()
	require.NoError(t, err)
	assert.Equal(t, Man, gender)

	feet, ok := p.HeightFeet()
	require.True(t, ok)
	assert.Equal(t, "5 foot 10 inch", feet)

	ko, err := p.WinsByKO()
	require.NoError(t, err)
	assert.Equal(t, FinishCount{Count: 10, Percent: 45}, ko)
	assert.Equal(t, "Mateo Rivas", p.String())
}

func TestProfileRecordIsStable(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_full.html")

	var first Record
	for i := 0; i < 3; i++ {
		rec, err := p.Record()
		require.NoError(t, err)
		if i == 0 {
			first = rec
		}
		assert.Equal(t, first, rec)
	}

	wins, err := p.Wins()
	require.NoError(t, err)
	losses, err := p.Losses()
	require.NoError(t, err)
	draws, err := p.Draws()
	require.NoError(t, err)
	assert.Equal(t, first.Wins+first.Losses+first.Draws, wins+losses+draws)
	assert.Equal(t, Record{Wins: 22, Losses: 3, Draws: 1}, first)
}

func TestProfileOptionalFieldsAbsent(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_minimal.html")

	_, ok := p.Nickname()
	assert.False(t, ok)
	_, ok = p.Height()
	assert.False(t, ok)
	_, ok = p.HeightFeet()
	assert.False(t, ok)
	_, ok = p.Reach()
	assert.False(t, ok)
	_, ok = p.LegReach()
	assert.False(t, ok)
	_, ok = p.OctagonDebut()
	assert.False(t, ok)
	_, ok = p.TrainsAt()
	assert.False(t, ok)
	_, ok = p.TakedownsLanded()
	assert.False(t, ok)
	_, ok = p.TakedownsAttempted()
	assert.False(t, ok)

	v, err := p.Value(FieldNickname)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestProfileMissingNodeFailsOnlyThatField(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_minimal.html")

	_, err := p.SigStrikesLandedPerMin()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrElementNotFound))
	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, FieldSigStrLandedPerMin, extractErr.Field)

	rank, err := p.Rank()
	require.NoError(t, err)
	assert.Equal(t, "Champion", rank)

	landed, err := p.SigStrikesLanded()
	require.NoError(t, err)
	assert.Equal(t, 890, landed)

	class, err := p.WeightClass()
	require.NoError(t, err)
	assert.Equal(t, Strawweight, class)

	gender, err := p.Gender()
	require.NoError(t, err)
	assert.Equal(t, Woman, gender)
}

func TestProfileParseFailureIsExtractError(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_full.html")

	_, err := p.Int(FieldHometown)
	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, FieldHometown, extractErr.Field)
	assert.False(t, errors.Is(err, ErrElementNotFound))
}

const outOfRangePage = `<html><body>
<svg><text class="e-chart-circle__percent">150%</text></svg>
<svg><text class="e-chart-circle__percent">45%</text></svg>
<dl class="c-overlap__stats"><dt>Sig. Strikes Landed</dt><dd>-5</dd></dl>
<dl class="c-overlap__stats"><dt>Sig. Strikes Attempted</dt><dd>100</dd></dl>
<dl class="c-overlap__stats"><dt>Takedowns Landed</dt><dd>-1</dd></dl>
<div class="c-stat-3bar__value">12 (120%)</div>
<div class="c-stat-compare__number">4.10</div>
<div class="c-stat-compare__number">3.02</div>
<div class="c-stat-compare__number">1.50</div>
<div class="c-stat-compare__number">0.40</div>
<div class="c-stat-compare__number">-20%</div>
<div class="c-stat-compare__number">101%</div>
</body></html>`

func TestProfileRejectsOutOfRangeNumbers(t *testing.T) {
	t.Parallel()

	p, err := ParseProfile(strings.NewReader(outOfRangePage), "https://www.ufc.com/athlete/range")
	require.NoError(t, err)

	for _, name := range []string{
		FieldStrikingAccuracy,
		FieldSigStrikesLanded,
		FieldSigStrStandingPct,
		FieldSigStrDefense,
		FieldTakedownDefense,
	} {
		_, err := p.Int(name)
		var extractErr *ExtractError
		require.True(t, errors.As(err, &extractErr), "%s: got %v", name, err)
		assert.Equal(t, name, extractErr.Field)
	}

	for name, want := range map[string]int{
		FieldTakedownAccuracy:    45,
		FieldSigStrikesAttempted: 100,
		FieldSigStrStanding:      12,
	} {
		got, err := p.Int(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	v, err := p.Value(FieldTakedownsLanded)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestProfileUnknownField(t *testing.T) {
	t.Parallel()

	p := loadProfile(t, "profile_full.html")

	_, err := p.Text("shoe_size")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = p.Value("shoe_size")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFighterSnapshot(t *testing.T) {
	t.Parallel()

	full := loadProfile(t, "profile_full.html").Fighter()
	assert.False(t, full.Incomplete(), "unexpected field errors: %v", full.FieldErrors)
	assert.Equal(t, "mateo-rivas", full.Slug)
	assert.Equal(t, Lightweight, full.WeightClass)
	require.NotNil(t, full.Nickname)
	assert.Equal(t, "The Anvil", *full.Nickname)
	require.NotNil(t, full.HeightFeet)
	assert.Equal(t, "5 foot 10 inch", *full.HeightFeet)
	require.NotNil(t, full.Grappling.TakedownsLanded)
	assert.Equal(t, 34, *full.Grappling.TakedownsLanded)
	assert.Equal(t, FinishCount{Count: 802, Percent: 67}, full.Striking.Head)

	minimal := loadProfile(t, "profile_minimal.html").Fighter()
	assert.True(t, minimal.Incomplete())
	assert.Equal(t, "Ana Lima", minimal.Name)
	assert.Equal(t, Woman, minimal.Gender)
	assert.Nil(t, minimal.Nickname)
	assert.Nil(t, minimal.Height)
	assert.Nil(t, minimal.Grappling.TakedownsLanded)
	assert.Contains(t, minimal.FieldErrors, FieldSigStrLandedPerMin)
	assert.Contains(t, minimal.FieldErrors, FieldWinsByKO)
	assert.NotContains(t, minimal.FieldErrors, FieldNickname)
	assert.NotContains(t, minimal.FieldErrors, FieldName)
}
