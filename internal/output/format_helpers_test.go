//go:build unit

package output

import (
	"testing"

	"github.com/rpgo/synthfeed/pkg/decimal"
	shop "github.com/shopspring/decimal"
)

func TestFormatValue(t *testing.T) {
	cases := map[float64]string{
		1:       "1.00000",
		0.99412: "0.99412",
		1.0007:  "1.00070",
		-0.5:    "-0.50000",
	}
	for in, want := range cases {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got, want := FormatSigned(decimal.NewPrice(0.0125)), "+0.01250"; got != want {
		t.Errorf("FormatSigned = %q, want %q", got, want)
	}
	if got, want := FormatSigned(decimal.NewPrice(-0.00778)), "-0.00778"; got != want {
		t.Errorf("FormatSigned = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := shop.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}
