package rrule

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func elementToString(t *testing.T, elem *etree.Element) string {
	t.Helper()
	doc := etree.NewDocument()
	doc.SetRoot(elem.Copy())
	s, err := doc.WriteToString()
	require.NoError(t, err)
	return s
}

func TestRule_ToXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "RFC 6321 example",
			input: "FREQ=WEEKLY;COUNT=5;BYDAY=TU,SU",
			want: `<recur xmlns="urn:ietf:params:xml:ns:icalendar-2.0">` +
				`<freq>WEEKLY</freq><count>5</count><byday>TU</byday><byday>SU</byday></recur>`,
		},
		{
			name:  "until and months",
			input: "FREQ=YEARLY;UNTIL=20000131T140000Z;BYMONTH=1,2;BYSETPOS=-1;WKST=SU",
			want: `<recur xmlns="urn:ietf:params:xml:ns:icalendar-2.0">` +
				`<freq>YEARLY</freq><until>2000-01-31T14:00:00Z</until>` +
				`<bymonth>1</bymonth><bymonth>2</bymonth><bysetpos>-1</bysetpos><wkst>SU</wkst></recur>`,
		},
		{
			name:  "date until",
			input: "FREQ=DAILY;UNTIL=19971224;BYHOUR=9,17",
			want: `<recur xmlns="urn:ietf:params:xml:ns:icalendar-2.0">` +
				`<freq>DAILY</freq><until>1997-12-24</until><byhour>9</byhour><byhour>17</byhour></recur>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := elementToString(t, MustDecode(tt.input).ToXML())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecoder_DecodeElement(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<recur xmlns="urn:ietf:params:xml:ns:icalendar-2.0">
  <freq>MONTHLY</freq>
  <until>1997-12-24T00:00:00Z</until>
  <byday>1SU</byday>
  <byday>-1SU</byday>
  <interval>2</interval>
</recur>`)
	require.NoError(t, err)

	rule, warnings, err := NewDecoder().DecodeElement(doc.Root())
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, &Rule{
		Frequency: Monthly,
		Until:     mo.Some(DateTime{Time: time.Date(1997, 12, 24, 0, 0, 0, 0, time.UTC), Form: UTCForm}),
		Interval:  mo.Some(2),
		ByWeekday: []WeekdayOccurrence{{Ordinal: 1, Weekday: Sunday}, {Ordinal: -1, Weekday: Sunday}},
	}, rule)
}

func TestDecoder_DecodeElementRoundTrip(t *testing.T) {
	inputs := []string{
		"FREQ=YEARLY;INTERVAL=4;BYMONTH=11;BYDAY=TU;BYMONTHDAY=2,3,4,5,6,7,8",
		"FREQ=DAILY;UNTIL=20000131T140000;BYHOUR=9,10;BYMINUTE=0,20,40",
		"FREQ=WEEKLY;COUNT=4;WKST=SU;BYDAY=TU,TH",
		"FREQ=MINUTELY;BYSECOND=0,30;BYYEARDAY=-1;BYWEEKNO=1;BYSETPOS=2",
	}

	dec := NewDecoderWithConfig(StrictConfig)
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			rule := MustDecode(input)
			again, _, err := dec.DecodeElement(rule.ToXML())
			require.NoError(t, err)
			assert.Equal(t, rule, again)
		})
	}
}

func TestDecoder_DecodeElementErrors(t *testing.T) {
	dec := NewDecoder()

	_, _, err := dec.DecodeElement(etree.NewElement("vevent"))
	assert.Error(t, err)

	_, _, err = dec.DecodeElement(nil)
	assert.Error(t, err)

	_, _, err = dec.DecodeElement(etree.NewElement("recur"))
	assert.ErrorIs(t, err, ErrEmptyRule)

	recur := etree.NewElement("recur")
	recur.CreateElement("count").SetText("3")
	_, _, err = dec.DecodeElement(recur)
	assert.ErrorIs(t, err, ErrMissingFrequency)

	recur.CreateElement("freq").SetText("DAILY")
	recur.CreateElement("bymonth").SetText("13")
	_, _, err = dec.DecodeElement(recur)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
