// SPDX-License-Identifier: MIT

package sheet

import "errors"

// ErrNilSeries indicates a nil series.
var ErrNilSeries = errors.New("sheet: series is nil")
