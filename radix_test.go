package radix_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/radix"
	"github.com/calebcase/radix/digit"
	"github.com/calebcase/radix/fixed"
)

func TestConvert(t *testing.T) {
	type TC struct {
		Number   string
		From, To uint32
		Out      string
		Mark     error
	}

	t.Run("integers", func(t *testing.T) {
		tcs := []TC{
			{"1010", 2, 10, "10", oops.New("unexpected")},
			{"1111111111", 2, 10, "1023", oops.New("unexpected")},
			{"10", 10, 2, "1010", oops.New("unexpected")},
			{"1023", 10, 2, "1111111111", oops.New("unexpected")},
			{"255", 10, 16, "FF", oops.New("unexpected")},
			{"4080", 10, 16, "FF0", oops.New("unexpected")},
			{"FF", 16, 10, "255", oops.New("unexpected")},
			{"FF0", 16, 10, "4080", oops.New("unexpected")},
			{"1010", 2, 16, "A", oops.New("unexpected")},
			{"11111111", 2, 16, "FF", oops.New("unexpected")},
			{"A", 16, 2, "1010", oops.New("unexpected")},
			{"FF", 16, 2, "11111111", oops.New("unexpected")},
			{"1000000", 10, 16, "F4240", oops.New("unexpected")},
			{"F4240", 16, 10, "1000000", oops.New("unexpected")},
			{"HelloWorld", 62, 10, "239032307299047885", oops.New("unexpected")},
			{"239032307299047885", 10, 62, "HelloWorld", oops.New("unexpected")},
			{"z", 62, 10, "61", oops.New("unexpected")},
		}

		for _, tc := range tcs {
			t.Run(fmt.Sprintf("%s/%d/%d", tc.Number, tc.From, tc.To), func(t *testing.T) {
				out, err := radix.Convert(tc.Number, tc.From, tc.To)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Out, out, tc.Mark)
			})
		}
	})

	t.Run("zero", func(t *testing.T) {
		tcs := []TC{
			{"0", 2, 10, "0", oops.New("unexpected")},
			{"0", 10, 16, "0", oops.New("unexpected")},
			{"000", 16, 16, "0", oops.New("unexpected")},
			// A trailing fractional zero never renders a '.' suffix.
			{"0.0", 2, 10, "0", oops.New("unexpected")},
			{"1.0", 10, 10, "1", oops.New("unexpected")},
			{"", 10, 2, "0", oops.New("unexpected")},
		}

		for _, tc := range tcs {
			t.Run(fmt.Sprintf("%q/%d/%d", tc.Number, tc.From, tc.To), func(t *testing.T) {
				out, err := radix.Convert(tc.Number, tc.From, tc.To)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Out, out, tc.Mark)
			})
		}
	})

	t.Run("identity", func(t *testing.T) {
		tcs := []TC{
			{"1234567890", 10, 10, "1234567890", oops.New("unexpected")},
			{"HelloWorld", 62, 62, "HelloWorld", oops.New("unexpected")},
			// Leading zeros are not part of the value and do not
			// survive rendering.
			{"00FF", 16, 16, "FF", oops.New("unexpected")},
		}

		for _, tc := range tcs {
			t.Run(fmt.Sprintf("%s/%d", tc.Number, tc.From), func(t *testing.T) {
				out, err := radix.Convert(tc.Number, tc.From, tc.To)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Out, out, tc.Mark)
			})
		}
	})

	t.Run("fractional", func(t *testing.T) {
		// Fractional rendering is the documented byte granular
		// approximation; these pin its output as is.
		tcs := []TC{
			{"0.5", 10, 2, "10.2", oops.New("unexpected")},
			{"0.1", 2, 10, "0.A", oops.New("unexpected")},
			{"0.1", 2, 2, "0.2", oops.New("unexpected")},
			{"0.5", 10, 10, "0.o", oops.New("unexpected")},
		}

		for _, tc := range tcs {
			t.Run(fmt.Sprintf("%s/%d/%d", tc.Number, tc.From, tc.To), func(t *testing.T) {
				out, err := radix.Convert(tc.Number, tc.From, tc.To)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Out, out, tc.Mark)
			})
		}
	})
}

func TestConvertRoundTrip(t *testing.T) {
	numbers := []string{
		"1234567890",
		"123456789012345678901234567890123456789012345678901234567890",
	}

	for _, number := range numbers {
		t.Run(number, func(t *testing.T) {
			for base := uint32(radix.MinBase); base <= radix.MaxBase; base++ {
				converted, err := radix.Convert(number, 10, base)
				require.NoError(t, err)

				back, err := radix.Convert(converted, base, 10)
				require.NoError(t, err)
				require.Equal(t, number, back, "base %d", base)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	type TC struct {
		Number   string
		From, To uint32
		Class    *errs.Class
		Mark     error
	}

	tcs := []TC{
		{"10", 1, 10, &radix.ErrInvalidBase, oops.New("unexpected")},
		{"10", 0, 10, &radix.ErrInvalidBase, oops.New("unexpected")},
		{"10", 10, 63, &radix.ErrInvalidBase, oops.New("unexpected")},
		{"10", 10, 1, &radix.ErrInvalidBase, oops.New("unexpected")},
		{"2", 2, 10, &digit.ErrInvalidDigit, oops.New("unexpected")},
		{"G", 16, 10, &digit.ErrInvalidDigit, oops.New("unexpected")},
		{"10 ", 10, 2, &digit.ErrInvalidDigit, oops.New("unexpected")},
		{"1.2.3", 10, 2, &fixed.ErrInvalidInput, oops.New("unexpected")},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%q/%d/%d", tc.Number, tc.From, tc.To), func(t *testing.T) {
			out, err := radix.Convert(tc.Number, tc.From, tc.To)
			require.Error(t, err, tc.Mark)
			require.Empty(t, out, tc.Mark)
			require.True(t, tc.Class.Has(err), tc.Mark)
			require.True(t, radix.Error.Has(err), tc.Mark)
		})
	}
}
