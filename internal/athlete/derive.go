package athlete

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WeightClass is a named competitive weight category.
type WeightClass string

// Weight classes, lightest first.
const (
	Strawweight      WeightClass = "Strawweight"
	Flyweight        WeightClass = "Flyweight"
	Bantamweight     WeightClass = "Bantamweight"
	Featherweight    WeightClass = "Featherweight"
	Lightweight      WeightClass = "Lightweight"
	Welterweight     WeightClass = "Welterweight"
	Middleweight     WeightClass = "Middleweight"
	LightHeavyweight WeightClass = "Light Heavyweight"
	Heavyweight      WeightClass = "Heavyweight"
)

// Gender is inferred from the division label.
type Gender string

// Genders.
const (
	Man   Gender = "Man"
	Woman Gender = "Woman"
)

const womensMarker = "Women's"

// weightLadder holds the inclusive upper bound, in pounds, of each class.
var weightLadder = []struct {
	limit float64
	class WeightClass
}{
	{116, Strawweight},
	{126, Flyweight},
	{136, Bantamweight},
	{146, Featherweight},
	{156, Lightweight},
	{171, Welterweight},
	{186, Middleweight},
	{206, LightHeavyweight},
}

// WeightClassFor maps a listed weight in pounds to its class.
func WeightClassFor(weight float64) WeightClass {
	for _, step := range weightLadder {
		if weight <= step.limit {
			return step.class
		}
	}
	return Heavyweight
}

// GenderFromDivision classifies a division label such as "Women's Flyweight Division".
func GenderFromDivision(division string) Gender {
	if strings.Contains(division, womensMarker) {
		return Woman
	}
	return Man
}

// HeightInFeet renders a height in inches as "6 foot" or "5 foot 10 inch".
func HeightInFeet(inches float64) string {
	total := int(math.Round(inches))
	feet, rest := total/12, total%12
	if rest == 0 {
		return fmt.Sprintf("%d foot", feet)
	}
	return fmt.Sprintf("%d foot %d inch", feet, rest)
}

// ParseRank reads the headline suffix, e.g. "\n#5\nLightweight Division\n• 22-3-0".
//
// Only the text before the bullet is used. Its second line decides the shape:
// a title holder is returned verbatim, a "#N" rank is joined with the line that
// follows it, and anything else is reported as unranked.
func ParseRank(text string) (string, error) {
	before, _, _ := strings.Cut(text, "•")
	lines := strings.Split(before, "\n")
	if len(lines) < 2 {
		return "", fmt.Errorf("rank %q: no rank line", text)
	}
	head := strings.TrimSpace(lines[1])
	if strings.Contains(head, "Champion") {
		return head, nil
	}
	next := ""
	if len(lines) > 2 {
		next = strings.TrimSpace(lines[2])
	}
	if strings.HasPrefix(head, "#") {
		return strings.TrimSpace(head + " " + next), nil
	}
	return strings.TrimSpace("Unranked " + head + " " + next), nil
}

// Record is a win-loss-draw tally. No-contests are not tracked.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}

func (r Record) String() string {
	return fmt.Sprintf("%d-%d-%d", r.Wins, r.Losses, r.Draws)
}

// ParseRecord parses "W-L-D".
func ParseRecord(text string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	if len(parts) != 3 {
		return Record{}, fmt.Errorf("record %q: want W-L-D", text)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Record{}, fmt.Errorf("record %q: %w", text, err)
		}
		if n < 0 {
			return Record{}, fmt.Errorf("record %q: negative component", text)
		}
		nums[i] = n
	}
	return Record{Wins: nums[0], Losses: nums[1], Draws: nums[2]}, nil
}
