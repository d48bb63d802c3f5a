package athlete

import "strings"

// Division is a championship division. An empty Gender matches either.
type Division struct {
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	WeightClass WeightClass `json:"weight_class"`
	Gender      Gender      `json:"gender,omitempty"`
}

// Championship divisions in roster order.
var (
	WomensStrawweight    = Division{"Women's Strawweight", "womens-strawweight", Strawweight, Woman}
	WomensFlyweight      = Division{"Women's Flyweight", "womens-flyweight", Flyweight, Woman}
	WomensBantamweight   = Division{"Women's Bantamweight", "womens-bantamweight", Bantamweight, Woman}
	WomensFeatherweight  = Division{"Women's Featherweight", "womens-featherweight", Featherweight, Woman}
	MensFlyweight        = Division{"Flyweight", "flyweight", Flyweight, Man}
	MensBantamweight     = Division{"Bantamweight", "bantamweight", Bantamweight, Man}
	MensFeatherweight    = Division{"Featherweight", "featherweight", Featherweight, Man}
	MensLightweight      = Division{"Lightweight", "lightweight", Lightweight, ""}
	MensWelterweight     = Division{"Welterweight", "welterweight", Welterweight, ""}
	MensMiddleweight     = Division{"Middleweight", "middleweight", Middleweight, ""}
	MensLightHeavyweight = Division{"Light Heavyweight", "light-heavyweight", LightHeavyweight, ""}
	MensHeavyweight      = Division{"Heavyweight", "heavyweight", Heavyweight, ""}
)

var divisions = []Division{
	WomensStrawweight,
	WomensFlyweight,
	WomensBantamweight,
	WomensFeatherweight,
	MensFlyweight,
	MensBantamweight,
	MensFeatherweight,
	MensLightweight,
	MensWelterweight,
	MensMiddleweight,
	MensLightHeavyweight,
	MensHeavyweight,
}

// Divisions lists every championship division.
func Divisions() []Division {
	out := make([]Division, len(divisions))
	copy(out, divisions)
	return out
}

// DivisionBySlug finds a division by its slug, ignoring case.
func DivisionBySlug(slug string) (Division, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, d := range divisions {
		if d.Slug == slug {
			return d, true
		}
	}
	return Division{}, false
}

func (d Division) String() string {
	return d.Name
}

// Matches reports whether a fighter with the given class and gender holds
// this division's weight.
func (d Division) Matches(class WeightClass, gender Gender) bool {
	if class != d.WeightClass {
		return false
	}
	return d.Gender == "" || d.Gender == gender
}
