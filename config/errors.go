// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")
