package services

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"only delimiters", " . .. ", []string{}},
		{"two sentences", "Hello. World.", []string{"Hello", "World"}},
		{"consecutive delimiters", "A..B", []string{"A", "B"}},
		{"no delimiter", "  just one  ", []string{"just one"}},
		{"inner whitespace kept", "Hi there. Bye.", []string{"Hi there", "Bye"}},
		{"newlines and tabs", "\tOne\n.\r\nTwo\t", []string{"One", "Two"}},
		{"decimal is split", "Pi is 3.14", []string{"Pi is 3", "14"}},
		{"no-break space", "\u00a0Hi\u00a0.\u00a0there", []string{"Hi", "there"}},
		{"information separators", "\u001c a \u001c. b", []string{"a", "b"}},
		{"separator only", "\u001f", []string{}},
		{"other control kept", "\u0007bell.", []string{"\u0007bell"}},
		{"unicode whitespace", " Hola　. Adiós", []string{"Hola", "Adiós"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Segment(tc.in)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSegmentInvariants(t *testing.T) {
	inputs := []string{
		"",
		".",
		"a.b.c",
		" leading. trailing ",
		"...x...y...",
		"no delimiters at all",
		"mixed\n. lines .\t. tabs",
		strings.Repeat("word. ", 200),
		"\u3000wide\u3000.\u00a0nbsp\u00a0",
		"\u2003em space\u2003. \u0085next line\u0085",
		"\u001c a \u001f. b\u001e",
	}

	for _, in := range inputs {
		got := Segment(in)
		assert.LessOrEqual(t, len(got), strings.Count(in, ".")+1, "input %q", in)
		for _, seg := range got {
			require.NotEmpty(t, seg, "input %q", in)
			first, _ := utf8.DecodeRuneInString(seg)
			last, _ := utf8.DecodeLastRuneInString(seg)
			assert.False(t, isSegmentSpace(first), "leading space in %q", seg)
			assert.False(t, isSegmentSpace(last), "trailing space in %q", seg)
			assert.NotContains(t, seg, ".")
		}
	}
}

func TestSegmentIsDeterministic(t *testing.T) {
	in := "First. Second.  Third..."
	assert.Equal(t, Segment(in), Segment(in))
}

type recorderStub struct {
	calls    int
	bytes    int
	segments int
}

func (r *recorderStub) RecordSegmentation(textBytes, segments int) {
	r.calls++
	r.bytes = textBytes
	r.segments = segments
}

func TestSegmentationServiceProcess(t *testing.T) {
	rec := &recorderStub{}
	svc := NewSegmentationService(rec, nil)

	result := svc.Process("Hi there. Bye.")

	assert.Equal(t, []string{"Hi there", "Bye"}, result.Segments)
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, len("Hi there. Bye."), rec.bytes)
	assert.Equal(t, 2, rec.segments)
}

func TestSegmentationServiceWithoutRecorder(t *testing.T) {
	svc := NewSegmentationService(nil, nil)

	result := svc.Process("")
	require.NotNil(t, result.Segments)
	assert.Empty(t, result.Segments)
}

func TestIsSegmentSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x1C, 0x1D, 0x1E, 0x1F, 0x85, 0xA0, 0x3000} {
		assert.True(t, isSegmentSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '.', 0x00, 0x07, 0x1B, 0x200B, 0xFEFF} {
		assert.False(t, isSegmentSpace(r), "%U", r)
	}
}
