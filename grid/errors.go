// SPDX-License-Identifier: MIT

package grid

import "errors"

var (
	// ErrCellOutOfRange indicates a cell value outside [MinCell, MaxCell].
	ErrCellOutOfRange = errors.New("grid: cell out of range [1,49]")
)
