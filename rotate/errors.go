// SPDX-License-Identifier: MIT

package rotate

import "fmt"

// opErrorf tags err with the public operation that surfaced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("rotate: %s: %w", op, err)
}
