// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// Number is the element type-set accepted by Vector and by the matrix engine.
// Its zero value is the additive identity and both + and * are defined.
type Number interface {
	constraints.Integer | constraints.Float
}
