package quantity

import (
	"fmt"
	"math"

	"github.com/arthur-debert/physq/pkg/dimension"
	"github.com/arthur-debert/physq/pkg/magnitude"
)

// FormatClock renders a time as "H:MM:SS" from one hour up and as "MM:SS"
// below that: 60 s is "01:00", 3661 s is "1:01:01". Fractional seconds are
// truncated. Quantities that are not times fail with DIMENSION_MISMATCH.
func FormatClock(q Quantity[magnitude.Scalar]) (string, error) {
	timeDim := dimension.Time.Dimension()
	if q.Dimension() != timeDim {
		return "", mismatch("format clock", timeDim, q.Dimension())
	}

	secs := q.Raw().Float64()
	sign := ""
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	// Absorb float noise such as 59.99999999999 from unit round trips.
	total := int64(math.Floor(secs + 1e-6))

	hours := total / 3600
	mins := (total % 3600) / 60
	rest := total % 60
	if hours > 0 {
		return fmt.Sprintf("%s%d:%02d:%02d", sign, hours, mins, rest), nil
	}
	return fmt.Sprintf("%s%02d:%02d", sign, mins, rest), nil
}
