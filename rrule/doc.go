/*
Package rrule decodes iCalendar recurrence rules (RFC 5545 section 3.3.10) into typed values.

# Basic Usage

Pass the text that follows "RRULE:" on an unfolded content line:

	rule, err := rrule.Decode("FREQ=WEEKLY;INTERVAL=2;WKST=SU;BYDAY=TU,TH")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(rule.Frequency, rule.EffectiveInterval(), rule.ByWeekday)

Optional scalar parts are mo.Option values and optional lists are nil when
absent. The decoder does not expand occurrences and does not check that parts
make sense together (e.g. BYDAY ordinals with FREQ=DAILY).

# Errors

Every failure is an *Error whose Kind is one of the Err* sentinels:

	_, err := rrule.Decode("FREQ=SECONDLY")
	if errors.Is(err, rrule.ErrUnsupportedFrequency) {
		var e *rrule.Error
		errors.As(err, &e)
		fmt.Println(e.Part, e.Value) // FREQ SECONDLY
	}

The first failing part aborts the decode; no partial Rule is returned.

# Unknown Parts

By default a part the decoder does not know is skipped and reported as a
Warning. StrictConfig (or WithUnknownParts(UnknownPartsReject)) turns it into
ErrUnrecognizedProperty instead:

	dec := rrule.NewDecoder(
		rrule.WithUnknownParts(rrule.UnknownPartsReject),
		rrule.WithLogger(slog.Default()),
	)
	rule, warnings, err := dec.Decode(value)

# Calendar Data

DecodeComponent and DecodeCalendar pull RRULE properties out of go-ical
components and whole iCalendar streams. Rule.String renders a rule back to
RRULE text, and Rule.ToXML / Decoder.DecodeElement handle the xCal <recur>
representation of RFC 6321.
*/
package rrule
