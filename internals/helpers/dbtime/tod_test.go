// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEquivalentForms(t *testing.T) {
	// "8:50", "08:50", dan "08:50:00" harus jadi jam yang sama
	var cases = []string{"8:50", "08:50", "08:50:00", " 08:50 "}

	ref, err := Parse("08:50:00")
	require.NoError(t, err)

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.NoError(t, err)
			assert.True(t, got.Time.Equal(ref.Time), "Parse(%q) = %s, mau %s", in, got, ref)
		})
	}
}

func TestParseZeroPadsEachPart(t *testing.T) {
	got, err := Parse("8:5")
	require.NoError(t, err)
	assert.Equal(t, "08:05:00", got.String())

	got, err = Parse("9:5:7")
	require.NoError(t, err)
	assert.Equal(t, "09:05:07", got.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	var cases = []string{"", "8", "0850", "25:99", "12:60", "ab:cd", "10:15:30:45"}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.Error(t, err, "Parse(%q) harus gagal", in)
		})
	}
}

func TestFromDropsDateAndZone(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	src := time.Date(2025, 4, 8, 10, 32, 15, 999, loc)

	got := From(src)
	want, err := Parse("10:32:15")
	require.NoError(t, err)
	assert.True(t, got.Time.Equal(want.Time))
}

func TestScanVariants(t *testing.T) {
	var tod Tod

	require.NoError(t, tod.Scan("8:50"))
	assert.Equal(t, "08:50:00", tod.String())

	require.NoError(t, tod.Scan([]byte("13:00:00")))
	assert.Equal(t, "13:00:00", tod.String())

	require.NoError(t, tod.Scan(time.Date(2025, 4, 8, 16, 40, 0, 0, time.UTC)))
	assert.Equal(t, "16:40:00", tod.String())

	require.NoError(t, tod.Scan(nil))
	assert.True(t, tod.Time.IsZero())

	assert.Error(t, tod.Scan(42))
	assert.Error(t, tod.Scan("banana"))
}

func TestValueAlwaysHHMMSS(t *testing.T) {
	tod, err := Parse("8:5")
	require.NoError(t, err)

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:05:00", v)
}

func TestJSONCodec(t *testing.T) {
	tod, err := Parse("10:35")
	require.NoError(t, err)

	b, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"10:35:00"`, string(b))

	var back Tod
	require.NoError(t, back.UnmarshalJSON(b))
	assert.True(t, back.Time.Equal(tod.Time))

	assert.Error(t, back.UnmarshalJSON([]byte(`"jam makan siang"`)))
}
