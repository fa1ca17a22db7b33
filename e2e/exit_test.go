//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()

	for _, key := range []string{KeyQuit, KeyCtrlC} {
		tf := NewTUITest(t)
		require.NoError(t, tf.StartApp())
		require.True(t, tf.Ready(), "Should render the first frame")

		require.NoError(t, tf.SendKeys(key))
		require.NoError(t, tf.WaitForExit(3*time.Second), "App should exit on %q", key)
		tf.Cleanup()
	}
}
