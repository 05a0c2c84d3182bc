//go:build tools

package tools

// Tool dependencies used by 'go generate' but not imported by application
// code. Keeps 'go mod tidy' from deleting them.

import (
	_ "go.uber.org/mock/mockgen"
)
