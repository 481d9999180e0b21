package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/UnsplashGateway/internal/app"
)

func withoutRabbitMQ(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("RABBITMQ_URL", "")
	require.NoError(t, os.Unsetenv("RABBITMQ_URL"))
}

func TestBuildApp_ServerStartsWithoutRabbitMQ(t *testing.T) {
	withoutRabbitMQ(t)
	logFile := filepath.Join(t.TempDir(), "gateway.log")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("UNSPLASH_ACCESS_KEY", "key")

	application, err := BuildApp(context.Background(), app.ModeServer)
	require.NoError(t, err)

	assert.Nil(t, application.Publisher)
	assert.Nil(t, application.Consumer)
	assert.NotNil(t, application.Unsplash)
	assert.NotNil(t, application.Placeholders)

	// Единственный ресурс — файл лога; Shutdown его закрывает.
	require.Len(t, application.Closers, 1)
	require.NoError(t, application.Shutdown())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "RABBITMQ_URL not set")
}

func TestBuildApp_WorkerRequiresRabbitMQ(t *testing.T) {
	withoutRabbitMQ(t)

	_, err := BuildApp(context.Background(), app.ModeWorker)
	assert.ErrorContains(t, err, "RABBITMQ_URL")
}
