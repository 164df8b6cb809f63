package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ecotrack-dev/ecotrack/internal/advice"
	"github.com/ecotrack-dev/ecotrack/internal/model"
	"github.com/ecotrack-dev/ecotrack/internal/report"
	"github.com/ecotrack-dev/ecotrack/internal/store"
)

// Session drives the interactive menu loop over a loaded store. Input and
// output are injected so the loop can be exercised without a TTY.
type Session struct {
	store  *store.Store
	advice *advice.Service
	in     *bufio.Scanner
	out    io.Writer
}

// NewSession creates a Session reading menu choices from in.
func NewSession(st *store.Store, adv *advice.Service, in io.Reader, out io.Writer) *Session {
	return &Session{
		store:  st,
		advice: adv,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops over the menu until the user exits or input ends. Both exits
// save the dataset first. Every failure inside the loop is reported and the
// loop continues; nothing terminates the process.
func (s *Session) Run() error {
	for {
		s.printMenu()
		choice, ok := s.readLine()
		if !ok {
			return s.saveAndExit()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.logPrompt(model.CategoryEnergy, "Enter energy consumption (kWh): ")
		case "2":
			s.logPrompt(model.CategoryWater, "Enter water usage (liters): ")
		case "3":
			s.logPrompt(model.CategoryWaste, "Enter waste production (kg): ")
		case "4":
			report.Render(s.out, s.store.Totals(), s.advice)
		case "5":
			return s.saveAndExit()
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out, "\n1. Log Energy Consumption")
	fmt.Fprintln(s.out, "2. Log Water Consumption")
	fmt.Fprintln(s.out, "3. Log Waste Production")
	fmt.Fprintln(s.out, "4. Generate Report")
	fmt.Fprintln(s.out, "5. Exit")
	fmt.Fprint(s.out, "Select an option: ")
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// logPrompt asks for an amount and records it. Non-numeric input and
// unrecognized categories are reported and dropped; the menu loop resumes.
func (s *Session) logPrompt(category model.Category, prompt string) {
	fmt.Fprint(s.out, prompt)
	line, ok := s.readLine()
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a numeric value.")
		return
	}

	if _, err := s.store.Record(string(category), amount); err != nil {
		fmt.Fprintf(s.out, "Resource type '%s' is not recognized.\n", category)
		return
	}

	fmt.Fprintf(s.out, "%s consumption logged: %s\n", category.Label(), amount.String())
}

// saveAndExit saves the dataset and ends the session. A save failure is
// reported but still exits; "last explicit save wins" is the only guarantee.
func (s *Session) saveAndExit() error {
	if err := s.store.Save(); err != nil {
		fmt.Fprintf(s.out, "An error occurred while saving data: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Data saved successfully.")
	}
	fmt.Fprintln(s.out, "Exiting Eco Consumption Tracker.")
	return nil
}
