// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"

	"github.com/katalvlaran/minuscule/fault"
)

var (
	// ErrZeroDenominator is returned when a fraction would get denominator 0.
	// Inside the engine it signals a defect, hence the invariant class.
	ErrZeroDenominator = fmt.Errorf("rational: zero denominator: %w", fault.ErrInvariant)

	// ErrSingular is returned by Solve on a singular system.
	ErrSingular = fmt.Errorf("rational: singular matrix: %w", fault.ErrInvariant)

	// ErrDimensionMismatch is returned by Solve when the system is not n×n with n right-hand sides.
	ErrDimensionMismatch = fmt.Errorf("rational: dimension mismatch: %w", fault.ErrConfiguration)
)
