package sorting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tables := testTables()

	tests := []struct {
		raw  string
		want ParsedClass
	}{
		{
			raw:  "flex",
			want: ParsedClass{Prefix: "flex"},
		},
		{
			raw:  "sm:hover:flex",
			want: ParsedClass{Variants: []string{"sm", "hover"}, Prefix: "flex"},
		},
		{
			raw:  "!-mt-4",
			want: ParsedClass{Important: true, Negated: true, Prefix: "mt", Value: "4"},
		},
		{
			raw:  "border-t-red-500/50",
			want: ParsedClass{Prefix: "border", Direction: "t", Color: "red", Shade: "500", Alpha: "50", HasAlpha: true},
		},
		{
			raw:  "max-w-sm",
			want: ParsedClass{Prefix: "max-w", Size: "sm"},
		},
		{
			raw:  "inline-flex",
			want: ParsedClass{Prefix: "inline-flex"},
		},
		{
			raw:  "grid-cols-[1fr_2fr]",
			want: ParsedClass{Prefix: "grid-cols", Suffix: "[1fr_2fr]"},
		},
		{
			raw:  "bg-red/",
			want: ParsedClass{Prefix: "bg", Color: "red", HasAlpha: true},
		},
		{
			raw:  "custom-widget",
			want: ParsedClass{Prefix: "custom", Suffix: "widget"},
		},
		{
			raw:  "p-2-4",
			want: ParsedClass{Prefix: "p", Value: "2", Suffix: "4"},
		},
		{
			raw:  "text-xs",
			want: ParsedClass{Prefix: "text", Size: "xs"},
		},
		{
			raw:  "md:w-[calc(100%-2rem)]",
			want: ParsedClass{Variants: []string{"md"}, Prefix: "w", Suffix: "[calc(100%-2rem)]"},
		},
		{
			raw:  "hover:",
			want: ParsedClass{Variants: []string{"hover"}},
		},
		{
			raw:  "",
			want: ParsedClass{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			tt.want.Original = tt.raw
			assert.Equal(t, tt.want, Parse(tables, tt.raw))
		})
	}
}

func TestParse_IsBase(t *testing.T) {
	tables := testTables()

	assert.True(t, Parse(tables, "border").IsBase())
	assert.True(t, Parse(tables, "hover:border").IsBase())
	assert.False(t, Parse(tables, "border-t").IsBase())
	assert.False(t, Parse(tables, "bg-red/").IsBase())
	assert.False(t, Parse(tables, "custom-widget").IsBase())
}

func TestParse_VariantSeparator(t *testing.T) {
	l := testLists()
	l.VariantSeparator = "_"
	underscore := NewTables(l)

	pc := Parse(underscore, "sm_hover_p-4")
	assert.Equal(t, []string{"sm", "hover"}, pc.Variants)
	assert.Equal(t, "p", pc.Prefix)

	l.VariantSeparator = ""
	fallback := NewTables(l)
	assert.Equal(t, DefaultVariantSeparator, fallback.VariantSeparator())
	assert.Equal(t, []string{"sm"}, Parse(fallback, "sm:p-4").Variants)
}
