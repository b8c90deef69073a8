// Package prompt collects city and filter choices from an interactive terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare-explorer/internal/domain"
)

// Prompter asks questions on out and reads answers line by line from in.
// Invalid answers are re-asked; io.EOF is returned when input ends.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints the question and returns the trimmed answer.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// askUntil repeats the question until accept returns nil.
func (p *Prompter) askUntil(question string, accept func(string) error) error {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return err
		}
		if err := accept(answer); err == nil {
			return nil
		}
	}
}

// Confirm asks a yes/no question. "yes" or "y" in any case counts as yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " Enter yes or no.\n")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y"), nil
}

// City shows the city menu and asks until a known city is entered.
func (p *Prompter) City() (domain.City, error) {
	fmt.Fprintln(p.out, "City abbreviations")
	for _, c := range domain.Cities {
		fmt.Fprintf(p.out, "%s: %s\n", c.Title(), strings.ToUpper(c.Abbreviation()))
	}
	fmt.Fprintln(p.out, strings.Repeat("-", 40))

	var city domain.City
	err := p.askUntil("Type the name or abbreviation of the city you wish to analyse: ", func(s string) error {
		c, err := domain.ParseCity(s)
		city = c
		return err
	})
	return city, err
}

// Month shows the month menu and asks until a valid selector is entered.
func (p *Prompter) Month() (domain.MonthFilter, error) {
	fmt.Fprintln(p.out, "Month abbreviations")
	for _, m := range domain.FilterMonths {
		fmt.Fprintf(p.out, "%s: %s\n", m, strings.ToLower(m.String()[:3]))
	}
	fmt.Fprintln(p.out, strings.Repeat("-", 40))

	var month domain.MonthFilter
	err := p.askUntil("Type the month you wish to filter by, or 'all' to apply no month filter: ", func(s string) error {
		m, err := domain.ParseMonthFilter(s)
		month = m
		return err
	})
	return month, err
}

// Day shows the weekday menu and asks until a valid selector is entered.
func (p *Prompter) Day() (domain.DayFilter, error) {
	fmt.Fprintln(p.out, "Week day abbreviations")
	fmt.Fprintln(p.out, "Monday: mon\nTuesday: tue\nWednesday: wed\nThursday: thu\nFriday: fri\nSaturday: sat\nSunday: sun")
	fmt.Fprintln(p.out, strings.Repeat("-", 40))

	var day domain.DayFilter
	err := p.askUntil("Type the day of the week you wish to filter by, or 'all' to apply no day filter: ", func(s string) error {
		d, err := domain.ParseDayFilter(s)
		day = d
		return err
	})
	return day, err
}

// Filters asks for city, month and day in order and echoes the selection.
func (p *Prompter) Filters() (domain.City, domain.FilterSpec, error) {
	fmt.Fprintln(p.out, "Hello! Let's explore some US bikeshare data!")

	city, err := p.City()
	if err != nil {
		return "", domain.FilterSpec{}, err
	}
	month, err := p.Month()
	if err != nil {
		return "", domain.FilterSpec{}, err
	}
	day, err := p.Day()
	if err != nil {
		return "", domain.FilterSpec{}, err
	}

	spec := domain.FilterSpec{Month: month, Day: day}
	fmt.Fprintln(p.out, "Analysis for the following filtered parameters:")
	fmt.Fprintf(p.out, "City: %s\nMonth: %s\nDay: %s\n", city, spec.Month, spec.Day)
	fmt.Fprintln(p.out, strings.Repeat("-", 40))
	return city, spec, nil
}
