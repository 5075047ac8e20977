package bench

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFingerprintStableAcrossCalls(t *testing.T) {
	suite := NewSuite(Config{})
	require.Equal(t, suite.Fingerprint(), suite.Fingerprint())
}

func TestFingerprintChangesWithDepth(t *testing.T) {
	shallow := NewSuite(Config{Depth: 3})
	deep := NewSuite(Config{Depth: 4})
	require.NotEqual(t, shallow.Fingerprint(), deep.Fingerprint())
}

func TestNewSuiteDefaultsToBuiltinGames(t *testing.T) {
	suite := NewSuite(Config{})
	require.Len(t, suite.Games, len(DefaultGames))
	require.Equal(t, 5, suite.Depth)
}

func TestRunProducesNodesAndGameResults(t *testing.T) {
	depth := 2
	if testing.Short() {
		depth = 1
	}
	// Keep the smoke test cheap: one short game at a shallow depth.
	suite := &Suite{Games: []Game{DefaultGames[0]}, Depth: depth}
	logger := zap.NewNop()

	result := suite.Run(logger)
	require.Greater(t, result.Nodes, int64(0))
	require.Len(t, result.Games, 1)
	require.Greater(t, result.Games[0].Nodes, int64(0))
}
