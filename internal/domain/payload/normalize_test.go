package payload

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestToBool(t *testing.T) {
	cases := []struct {
		name string
		raw  *string
		want bool
	}{
		{"null", nil, false},
		{"empty", strp(""), false},
		{"zero", strp("0"), false},
		{"one", strp("1"), true},
		{"five", strp("5"), true},
		{"text", strp("yes"), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToBool(tc.raw))
		})
	}
}

func TestToOptionalInt(t *testing.T) {
	t.Run("null and empty are nil", func(t *testing.T) {
		n, err := ToOptionalInt(nil)
		require.NoError(t, err)
		assert.Nil(t, n)

		n, err = ToOptionalInt(strp(""))
		require.NoError(t, err)
		assert.Nil(t, n)
	})

	t.Run("zero is a real value", func(t *testing.T) {
		n, err := ToOptionalInt(strp("0"))
		require.NoError(t, err)
		require.NotNil(t, n)
		assert.Equal(t, 0, *n)
	})

	t.Run("non numeric fails", func(t *testing.T) {
		_, err := ToOptionalInt(strp("12a"))
		var mf *MalformedFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "int", mf.Kind)
		assert.Equal(t, "12a", mf.Value)
	})
}

func TestToOptionalID(t *testing.T) {
	for _, raw := range []*string{nil, strp(""), strp("0")} {
		n, err := ToOptionalID(raw)
		require.NoError(t, err)
		assert.Nil(t, n)
	}

	n, err := ToOptionalID(strp("17"))
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 17, *n)
}

func TestToInt_RequiresValue(t *testing.T) {
	_, err := ToInt(nil)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = ToInt(strp(""))
	var mf *MalformedFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, "int", mf.Kind)
	assert.NotErrorIs(t, err, ErrMissingField)

	n, err := ToInt(strp("42"))
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestToFloat(t *testing.T) {
	_, err := ToFloat(nil)
	assert.ErrorIs(t, err, ErrMissingField)

	f, err := ToFloat(strp("0.0000000000"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)

	f, err = ToFloat(strp("-150.5"))
	require.NoError(t, err)
	assert.Equal(t, -150.5, f)

	opt, err := ToOptionalFloat(strp(""))
	require.NoError(t, err)
	assert.Nil(t, opt)

	_, err = ToOptionalFloat(strp("abc"))
	assert.Error(t, err)
}

func TestToOptionalString(t *testing.T) {
	assert.Nil(t, ToOptionalString(nil))
	assert.Nil(t, ToOptionalString(strp("")))
	assert.Equal(t, "x", *ToOptionalString(strp("x")))
	assert.Equal(t, "", ToString(nil))
}

func TestToOptionalDateTime(t *testing.T) {
	t.Run("sentinel, empty and null are nil", func(t *testing.T) {
		for _, raw := range []*string{nil, strp(""), strp("0000-00-00 00:00:00")} {
			got, err := ToOptionalDateTime(raw)
			require.NoError(t, err)
			assert.Nil(t, got)
		}
	})

	t.Run("full date time", func(t *testing.T) {
		got, err := ToOptionalDateTime(strp("2024-01-15 10:30:00"))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))
	})

	t.Run("unparsable fails", func(t *testing.T) {
		_, err := ToOptionalDateTime(strp("15/01/2024"))
		var mf *MalformedFieldError
		require.ErrorAs(t, err, &mf)
		assert.Equal(t, "datetime", mf.Kind)
	})
}

func TestToOptionalDate(t *testing.T) {
	got, err := ToOptionalDate(strp("0000-00-00"))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ToOptionalDate(strp("2019-06-01"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)))

	got, err = ToOptionalDate(strp("2019-06-01 13:45:00"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ToOptionalDate(strp("junio"))
	assert.Error(t, err)
}

func TestToOptionalDuration(t *testing.T) {
	cases := []struct {
		name         string
		raw          *string
		sentinelZero bool
		want         *time.Duration
		wantErr      bool
	}{
		{name: "thirty minutes", raw: strp("00:30:00"), sentinelZero: true, want: durp(30 * time.Minute)},
		{name: "zero with sentinel", raw: strp("00:00:00"), sentinelZero: true, want: nil},
		{name: "zero without sentinel", raw: strp("00:00:00"), sentinelZero: false, want: durp(0)},
		{name: "over a day", raw: strp("26:01:02"), want: durp(26*time.Hour + time.Minute + 2*time.Second)},
		{name: "null", raw: nil, want: nil},
		{name: "two parts", raw: strp("00:30"), wantErr: true},
		{name: "minutes out of range", raw: strp("00:75:00"), wantErr: true},
		{name: "garbage", raw: strp("aa:bb:cc"), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToOptionalDuration(tc.raw, tc.sentinelZero)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type color string

const (
	colorRed  color = "red"
	colorBlue color = "blue"
)

func TestToEnum(t *testing.T) {
	c, err := ToEnum(strp("red"), "color", colorRed, colorBlue)
	require.NoError(t, err)
	assert.Equal(t, colorRed, c)

	_, err = ToEnum(strp("RED"), "color", colorRed, colorBlue)
	var ue *UnknownEnumValueError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "color", ue.Enum)
	assert.Equal(t, "RED", ue.Value)

	_, err = ToEnum[color](nil, "color", colorRed)
	assert.True(t, errors.As(err, &ue))
}

func TestNormalizers_AreIdempotent(t *testing.T) {
	inputs := []*string{nil, strp(""), strp("0"), strp("7"), strp("2024-01-15 10:30:00"), strp("01:00:00")}
	for _, in := range inputs {
		a, errA := ToOptionalInt(in)
		b, errB := ToOptionalInt(in)
		assert.Equal(t, a, b)
		assert.Equal(t, errA == nil, errB == nil)

		assert.Equal(t, ToBool(in), ToBool(in))

		d1, _ := ToOptionalDateTime(in)
		d2, _ := ToOptionalDateTime(in)
		assert.Equal(t, d1, d2)

		du1, _ := ToOptionalDuration(in, true)
		du2, _ := ToOptionalDuration(in, true)
		assert.Equal(t, du1, du2)
	}
}

func durp(d time.Duration) *time.Duration { return &d }
