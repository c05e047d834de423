// SPDX-License-Identifier: MIT

package signal

import "math"

func validatePeriod(period float64) error {
	if math.IsNaN(period) || math.IsInf(period, 0) || period <= 0 {
		return ErrBadPeriod
	}
	return nil
}

func validateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return ErrBadRadius
	}
	return nil
}
