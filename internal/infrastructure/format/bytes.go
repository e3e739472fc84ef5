// Package format renders byte quantities for the dashboard.
package format

import (
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// Units selects binary (KiB, 1024) or decimal (kB, 1000) prefixes.
type Units string

const (
	UnitsIEC Units = "iec"
	UnitsSI  Units = "si"
)

// ByteFormatter formats byte counts and converts gigabytes to bytes using one unit system.
type ByteFormatter struct {
	units Units
}

// NewByteFormatter returns a formatter for the named unit system; anything
// other than "si" means binary units.
func NewByteFormatter(units string) *ByteFormatter {
	u := UnitsIEC
	if strings.EqualFold(units, string(UnitsSI)) {
		u = UnitsSI
	}
	return &ByteFormatter{units: u}
}

// Units reports the unit system in use.
func (f *ByteFormatter) Units() Units {
	return f.units
}

// FormatBytes renders a byte count such as "1.2 GiB". Negative and
// non-finite inputs render as "0 B".
func (f *ByteFormatter) FormatBytes(bytes float64) string {
	if bytes <= 0 || math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		bytes = 0
	}

	n, _ := new(big.Float).SetFloat64(math.Floor(bytes)).Int(nil)
	if f.units == UnitsSI {
		return humanize.BigBytes(n)
	}
	return humanize.BigIBytes(n)
}

// GBToBytes converts gigabytes to bytes in the formatter's unit system.
func (f *ByteFormatter) GBToBytes(gigabytes float64) float64 {
	if f.units == UnitsSI {
		return gigabytes * humanize.GByte
	}
	return gigabytes * humanize.GiByte
}
