package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogger_WithFieldDoesNotShareBacking(t *testing.T) {
	req := require.New(t)
	base := Log().WithField("session", "a")
	l1 := base.WithField("k1", 1)
	l2 := base.WithField("k2", 2)

	req.Equal([]interface{}{"session", "a", "k1", 1}, l1.fields)
	req.Equal([]interface{}{"session", "a", "k2", 2}, l2.fields)
}

func TestInit(t *testing.T) {
	req := require.New(t)
	req.NoError(Init("debug", false))
	req.NoError(Init("not-a-level", true))
	Log().WithFields(Fields{"k": "v"}).Info("after init")
	Nop()
}
