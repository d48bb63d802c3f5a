package athlete

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// locator finds a node below root and returns its raw text.
type locator func(root *goquery.Selection) (string, error)

// transform narrows located text down to the value of interest.
type transform func(string) (string, error)

const bioSelector = "div.c-bio__info-details"

func notFound(sel string) error {
	return fmt.Errorf("%s: %w", sel, ErrElementNotFound)
}

func first(sel string) locator {
	return nth(sel, 0)
}

func nth(sel string, i int) locator {
	return func(root *goquery.Selection) (string, error) {
		s := root.Find(sel).Eq(i)
		if s.Length() == 0 {
			return "", notFound(fmt.Sprintf("%s[%d]", sel, i))
		}
		return s.Text(), nil
	}
}

func attr(sel, name string) locator {
	return func(root *goquery.Selection) (string, error) {
		v, ok := root.Find(sel).First().Attr(name)
		if !ok {
			return "", notFound(sel + "@" + name)
		}
		return v, nil
	}
}

// bio reads the value cell that follows a label cell in the bio grid.
func bio(label string) locator {
	return func(root *goquery.Selection) (string, error) {
		details := root.Find(bioSelector).First()
		if details.Length() == 0 {
			return "", notFound(bioSelector)
		}
		cell := details.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return s.Children().Length() == 0 && strings.TrimSpace(s.Text()) == label
		}).First()
		value := cell.Next()
		if value.Length() == 0 {
			return "", notFound(fmt.Sprintf("%s %q", bioSelector, label))
		}
		return value.Text(), nil
	}
}

// definition reads the first <dd> of the i-th definition list matching sel.
func definition(sel string, i int) locator {
	return func(root *goquery.Selection) (string, error) {
		dd := root.Find(sel).Eq(i).Find("dd").First()
		if dd.Length() == 0 {
			return "", notFound(fmt.Sprintf("%s[%d] dd", sel, i))
		}
		return dd.Text(), nil
	}
}

func trim(cutset string) transform {
	return func(s string) (string, error) {
		return strings.Trim(strings.TrimSpace(s), cutset), nil
	}
}

// word returns the i-th whitespace separated token.
func word(i int) transform {
	return func(s string) (string, error) {
		parts := strings.Fields(s)
		if i >= len(parts) {
			return "", fmt.Errorf("token %d of %q: out of range", i, s)
		}
		return parts[i], nil
	}
}

// percent strips cutset and rejects anything that is not an integer in [0,100].
func percent(cutset string) transform {
	return func(s string) (string, error) {
		s = strings.Trim(strings.TrimSpace(s), cutset)
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("percentage %q: %w", s, err)
		}
		if n < 0 || n > 100 {
			return "", fmt.Errorf("percentage %d: out of range [0,100]", n)
		}
		return s, nil
	}
}

// count rejects anything that is not a non-negative integer.
func count() transform {
	return func(s string) (string, error) {
		s = strings.TrimSpace(s)
		n, err := strconv.Atoi(s)
		if err != nil {
			return "", fmt.Errorf("count %q: %w", s, err)
		}
		if n < 0 {
			return "", fmt.Errorf("count %d: negative", n)
		}
		return s, nil
	}
}
