// SPDX-License-Identifier: MIT
package cayley

import "errors"

// ErrNotClosed is returned when a product of two closure elements cannot
// be located in the element list. Per the spec, this is unreachable given
// a valid closure.Run result; it is checked defensively because it would
// indicate an inconsistency between closure and table construction.
var ErrNotClosed = errors.New("cayley: group not closed")
