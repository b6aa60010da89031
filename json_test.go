package jsonbind

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"jsonbind.dev/types"
)

type suit int

const (
	clubs suit = iota
	diamonds
	hearts
	spades
)

type card struct {
	Suit suit
	Rank int
}

type hand struct {
	Player string
	Cards  []card
	Dealt  time.Time
}

func init() {
	RegisterEnum(map[string]suit{
		"CLUBS":    clubs,
		"DIAMONDS": diamonds,
		"HEARTS":   hearts,
		"SPADES":   spades,
	})
	Register("hand", hand{})
}

func TestRoundTrip(t *testing.T) {
	in := hand{
		Player: "ada \"the engine\" lovelace",
		Cards:  []card{{spades, 1}, {hearts, 12}},
		Dealt:  time.Date(2026, 8, 23, 10, 20, 30, 0, time.UTC),
	}
	s, err := String(in)
	require.NoError(t, err)
	out, err := ParseAs[hand](strings.NewReader(s))
	require.NoError(t, err)
	assert.Equal(t, in.Player, out.Player)
	assert.Equal(t, in.Cards, out.Cards)
	assert.True(t, in.Dealt.Equal(out.Dealt))
}

func TestRoundTripRandomised(t *testing.T) {
	suits := []suit{clubs, diamonds, hearts, spades}
	for i := 0; i < 1000; i++ {
		in := hand{
			Player: string(rune('a'+frand.Intn(26))) + "-player",
			Dealt: time.Date(1900+frand.Intn(300), time.Month(1+frand.Intn(12)),
				1+frand.Intn(28), frand.Intn(24), frand.Intn(60), frand.Intn(60),
				0, time.UTC),
		}
		for c := frand.Intn(5); c > 0; c-- {
			in.Cards = append(in.Cards, card{suits[frand.Intn(4)], frand.Intn(13)})
		}
		s, err := String(in)
		require.NoError(t, err)
		out, err := ParseAs[hand](strings.NewReader(s))
		require.NoError(t, err)
		assert.Equal(t, in.Player, out.Player)
		assert.Equal(t, in.Cards, out.Cards)
		assert.True(t, in.Dealt.Equal(out.Dealt), "dealt %v != %v", in.Dealt, out.Dealt)
	}
}

func TestTaggedRoundTrip(t *testing.T) {
	in := hand{Player: "bob"}
	var b strings.Builder
	require.NoError(t, StringifyTagged(&b, in))
	assert.Contains(t, b.String(), `"class":"hand"`)
	out, err := Parse(strings.NewReader(b.String()), nil)
	require.NoError(t, err)
	h, ok := out.(hand)
	require.True(t, ok, "expect a hand, got %#v", out)
	assert.Equal(t, "bob", h.Player)
}

func TestDynamicParse(t *testing.T) {
	got, err := ParseString(`{"a": [1, true, "x"], "b": null}`, types.Any())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": []any{1.0, true, "x"},
		"b": nil,
	}, got)
}

func TestParseAsNull(t *testing.T) {
	got, err := ParseAs[*hand](strings.NewReader(`null`))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStringOfIntegers(t *testing.T) {
	// 64 bit integers survive without drifting through a float mantissa
	s, err := String([]int64{9223372036854775807, -9223372036854775808})
	require.NoError(t, err)
	assert.Equal(t, `[9223372036854775807,-9223372036854775808]`, s)
	back, err := ParseAs[[]int64](strings.NewReader(s))
	require.NoError(t, err)
	assert.Equal(t, []int64{9223372036854775807, -9223372036854775808}, back)
}
