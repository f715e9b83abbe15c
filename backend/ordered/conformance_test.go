package ordered

import (
	"testing"

	"github.com/npillmayer/bimap/backend/backendtest"
)

func TestConformance(t *testing.T) {
	backendtest.Run(t, func() *Map[int, string] { return New[int, string]() })
}
