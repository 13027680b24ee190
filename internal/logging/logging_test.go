package logging

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestWithContextCarriesRequestID(t *testing.T) {
	entry := WithContext(WithRequestID(context.Background(), "abc"))
	require.Equal(t, "abc", entry.Data["request_id"])

	entry = WithContext(context.Background())
	require.NotContains(t, entry.Data, "request_id")
}

func TestInitToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "quizboard.log")
	closer, err := Init("debug", path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = closer.Close()
		_, _ = Init("info", "")
	})
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	require.FileExists(t, path)
}

func TestInitRejectsLevel(t *testing.T) {
	_, err := Init("loud", "")
	require.Error(t, err)
}
