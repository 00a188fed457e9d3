package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/galaxy-dev/galaxy-profile/internal/config"
	"github.com/galaxy-dev/galaxy-profile/internal/domain"
	"github.com/galaxy-dev/galaxy-profile/internal/gateway"
)

// MockFetcher is a testify mock implementing gateway.Fetcher.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchProfile(ctx context.Context) (domain.AccountStats, domain.LanguageUsage, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AccountStats), args.Get(1).(domain.LanguageUsage), args.Error(2)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Username: "galaxy-dev",
		Profile:  config.Profile{Name: "Nyx Orion"},
		GalaxyArms: []config.FocusArea{
			{Name: "Frontend", Color: "dendrite_violet", Items: []string{"TypeScript"}},
			{Name: "Backend", Color: "synapse_cyan", Items: []string{"Python"}},
			{Name: "DevOps", Color: "axon_amber", Items: []string{"Docker"}},
		},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestPipelineRunWritesAllImages(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "generated")
	pipeline := NewPipeline(testConfig(t), gateway.NewDemoGateway(), discardLogger(), outDir)

	require.NoError(t, pipeline.Run(context.Background()))

	for _, name := range []string{HeaderFile, StatsCardFile, TechStackFile, ConstellationFile} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.True(t, len(data) > 0, "%s should not be empty", name)
		assert.Contains(t, string(data), "<svg")
	}
}

func TestPipelineRunIsIdempotent(t *testing.T) {
	outDir := t.TempDir()
	pipeline := NewPipeline(testConfig(t), gateway.NewDemoGateway(), discardLogger(), outDir)

	require.NoError(t, pipeline.Run(context.Background()))
	first, err := os.ReadFile(filepath.Join(outDir, HeaderFile))
	require.NoError(t, err)

	require.NoError(t, pipeline.Run(context.Background()))
	second, err := os.ReadFile(filepath.Join(outDir, HeaderFile))
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must produce identical bytes")
}

func TestPipelineRunDegradesOnFetchFailure(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.On("FetchProfile", mock.Anything).
		Return(domain.AccountStats{}, domain.LanguageUsage(nil), errors.New("network down"))

	outDir := t.TempDir()
	pipeline := NewPipeline(testConfig(t), fetcher, discardLogger(), outDir)

	require.NoError(t, pipeline.Run(context.Background()), "a fetch failure must not abort generation")
	fetcher.AssertExpectations(t)

	// Stats degrade to the unavailable dash.
	data, err := os.ReadFile(filepath.Join(outDir, StatsCardFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "—")

	for _, name := range []string{HeaderFile, TechStackFile, ConstellationFile} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestPipelineRunUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
	base := t.TempDir()
	require.NoError(t, os.Chmod(base, 0o500))
	t.Cleanup(func() { os.Chmod(base, 0o755) })

	pipeline := NewPipeline(testConfig(t), gateway.NewDemoGateway(), discardLogger(), filepath.Join(base, "out"))
	assert.Error(t, pipeline.Run(context.Background()))
}
