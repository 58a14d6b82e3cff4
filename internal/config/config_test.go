package config_test

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unft/unftd/internal/config"
	"github.com/urfave/cli/v2"
)

func testContext(t *testing.T, datadir string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	app := cli.NewApp()
	app.Flags = config.Flags()
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Set(config.Datadir.Name, datadir))
	return cli.NewContext(app, set, nil)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := config.LoadConfig(testContext(t, t.TempDir()))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "badger", cfg.DbType)
	require.Equal(t, "static", cfg.SignerType)
	require.Equal(t, uint32(config.DefaultPort), cfg.Port)
	require.NotEmpty(t, cfg.DbDir)
}

func TestValidate(t *testing.T) {
	fixtures := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"unknown db type", func(c *config.Config) { c.DbType = "mongo" }},
		{"unknown signer type", func(c *config.Config) { c.SignerType = "rsa" }},
		{"log level out of range", func(c *config.Config) { c.LogLevel = 42 }},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			cfg, err := config.LoadConfig(testContext(t, t.TempDir()))
			require.NoError(t, err)

			f.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestAppService(t *testing.T) {
	cfg, err := config.LoadConfig(testContext(t, t.TempDir()))
	require.NoError(t, err)
	defer cfg.Close()

	svc, err := cfg.AppService()
	require.NoError(t, err)
	require.NotNil(t, svc)

	// Wiring is memoized.
	again, err := cfg.AppService()
	require.NoError(t, err)
	require.Equal(t, svc, again)
}
