package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/beevik/etree"
	"github.com/cyp0633/librrule/rrule"
	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

func main() {
	file := pflag.StringP("file", "f", "", "iCalendar file to read (default: built-in sample calendar)")
	strict := pflag.Bool("strict", false, "reject unknown RRULE parts instead of warning")
	xcal := pflag.Bool("xcal", false, "print each rule as an xCal <recur> element")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	policy := rrule.UnknownPartsWarn
	if *strict {
		policy = rrule.UnknownPartsReject
	}
	decoder := rrule.NewDecoder(rrule.WithLogger(logger), rrule.WithUnknownParts(policy))

	input, err := openInput(*file)
	if err != nil {
		logger.Error("failed to open input", "file", *file, "error", err)
		os.Exit(1)
	}
	defer input.Close()

	results, err := decoder.DecodeCalendar(input)
	if err != nil {
		logger.Error("failed to decode calendar", "error", err)
		os.Exit(1)
	}

	for _, res := range results {
		summary := ""
		if prop := res.Component.Props.Get(ical.PropSummary); prop != nil {
			summary = prop.Value
		}
		fmt.Printf("%s %s (%s)\n", res.Component.Name, res.UID, summary)

		for _, rule := range res.Rules {
			printRule(rule, *xcal)
		}
		for _, w := range res.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		data, err := sampleCalendar()
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	}
	return os.Open(path)
}

func printRule(rule *rrule.Rule, asXML bool) {
	fmt.Printf("  RRULE:%s\n", rule)
	fmt.Printf("    every %d %s", rule.EffectiveInterval(), rule.Frequency)
	if count, ok := rule.Count.Get(); ok {
		fmt.Printf(", %d times", count)
	}
	if until, ok := rule.Until.Get(); ok {
		fmt.Printf(", until %s (%s)", until.Time.Format(time.DateTime), until.Form)
	}
	fmt.Println()
	if len(rule.ByWeekday) > 0 {
		fmt.Printf("    on %v, week starts %s\n", rule.ByWeekday, rule.EffectiveWeekStart())
	}

	if asXML {
		doc := etree.NewDocument()
		doc.SetRoot(rule.ToXML())
		doc.Indent(2)
		doc.WriteTo(os.Stdout)
	}
}

// sampleCalendar builds a small calendar with recurring events
func sampleCalendar() ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//librrule//Example//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")

	start := time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	cal.Children = append(cal.Children,
		createEvent("Team standup", start, "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR;WKST=MO"),
		createEvent("Sprint review", start.Add(6*time.Hour), "FREQ=WEEKLY;INTERVAL=2;COUNT=12;BYDAY=FR"),
		createEvent("Board meeting", start, "FREQ=MONTHLY;BYDAY=-1TH;UNTIL=20241231T235959Z"),
		createEvent("Election day", start, "FREQ=YEARLY;INTERVAL=4;BYMONTH=11;BYDAY=TU;BYMONTHDAY=2,3,4,5,6,7,8"),
		createEvent("Lunch", start.Add(3*time.Hour), ""),
	)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode sample calendar: %w", err)
	}
	return buf.Bytes(), nil
}

// createEvent is a helper function to create a calendar event
func createEvent(summary string, start time.Time, rule string) *ical.Component {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, uuid.New().String())
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(time.Hour))

	if rule != "" {
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rule
		event.Props.Set(prop)
	}

	return event.Component
}
