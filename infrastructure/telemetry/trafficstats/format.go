package trafficstats

import "fmt"

var binaryUnits = [...]string{"B", "KiB", "MiB", "GiB"}

// FormatTotal renders a byte count with binary prefixes, keeping small
// values in whole bytes.
func FormatTotal(bytes uint64) string {
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(binaryUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f %s", value, binaryUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", value, binaryUnits[unit])
}
