package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/unft/unftd/internal/core/application"
	"github.com/unft/unftd/internal/core/ports"
	"github.com/unft/unftd/internal/infrastructure/chains"
	"github.com/unft/unftd/internal/infrastructure/db"
	"github.com/unft/unftd/internal/infrastructure/pubsub"
	"github.com/unft/unftd/internal/infrastructure/signer"
	"github.com/unft/unftd/internal/infrastructure/token"
	"github.com/urfave/cli/v2"
)

var (
	supportedDbs = supportedType{
		"badger": {},
		"sqlite": {},
	}
	supportedSigners = supportedType{
		"static":  {},
		"schnorr": {},
	}
)

type Config struct {
	Datadir         string
	Port            uint32
	LogLevel        int
	DbType          string
	DbDir           string
	SignerType      string
	SupportedChains []uint64
	EventBufferSize int64

	repo     ports.RepoManager
	svc      application.Service
	eventBus *pubsub.EventBus
}

func (c *Config) String() string {
	buf, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("error while marshalling config JSON: %s", err)
	}
	return string(buf)
}

var (
	defaultDatadir         = appDataDir()
	DefaultPort            = 7530
	defaultDbType          = "badger"
	defaultSignerType      = "static"
	defaultLogLevel        = 4
	defaultEventBufferSize = 64
)

// env returns a list of strings prefixed with `UNFTD_`.
// This is used as a syntax sugar for defining env vars.
func env(values ...string) []string {
	envs := make([]string, len(values))

	for i, value := range values {
		envs[i] = fmt.Sprintf("UNFTD_%s", value)
	}

	return envs
}

var (
	Datadir = &cli.StringFlag{
		Usage: "Directory to store data",
		Name:  "datadir", EnvVars: env("DATADIR"),
		Value: defaultDatadir,
	}

	Port = &cli.UintFlag{
		Usage: "Port to listen on",
		Name:  "port", EnvVars: env("PORT"),
		Value: uint(DefaultPort),
	}

	DbType = &cli.StringFlag{
		Usage: "Type of data store to use, either badger or sqlite",
		Name:  "db-type", EnvVars: env("DB_TYPE"),
		Value: defaultDbType,
	}

	LogLevel = &cli.IntFlag{
		Usage: "Logging level, from 0 (panic) to 6 (trace)",
		Name:  "log-level", EnvVars: env("LOG_LEVEL"),
		Value: defaultLogLevel,
	}

	SignerType = &cli.StringFlag{
		Usage: "Type of tss verifier to use, either static (placeholder) or schnorr",
		Name:  "signer-type", EnvVars: env("SIGNER_TYPE"),
		Value: defaultSignerType,
	}

	SupportedChains = &cli.Uint64SliceFlag{
		Usage: "Allow-list of destination chain ids, empty means any non-zero chain",
		Name:  "supported-chains", EnvVars: env("SUPPORTED_CHAINS"),
	}

	EventBufferSize = &cli.Int64Flag{
		Usage: "Buffer size of the notification topics",
		Name:  "event-buffer-size", EnvVars: env("EVENT_BUFFER_SIZE"),
		Value: int64(defaultEventBufferSize),
	}
)

func Flags() []cli.Flag {
	return []cli.Flag{
		Datadir, Port, DbType, LogLevel, SignerType, SupportedChains, EventBufferSize,
	}
}

func LoadConfig(c *cli.Context) (*Config, error) {
	datadir := c.String(Datadir.Name)
	if err := makeDirectoryIfNotExists(datadir); err != nil {
		return nil, fmt.Errorf("failed to create datadir: %s", err)
	}

	dbPath := filepath.Join(datadir, "db")
	if err := makeDirectoryIfNotExists(dbPath); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %s", err)
	}

	return &Config{
		Datadir:         datadir,
		Port:            uint32(c.Uint(Port.Name)),
		LogLevel:        c.Int(LogLevel.Name),
		DbType:          c.String(DbType.Name),
		DbDir:           dbPath,
		SignerType:      c.String(SignerType.Name),
		SupportedChains: c.Uint64Slice(SupportedChains.Name),
		EventBufferSize: c.Int64(EventBufferSize.Name),
	}, nil
}

func (c *Config) Validate() error {
	if !supportedDbs.supports(c.DbType) {
		return fmt.Errorf("db type not supported, please select one of: %s", supportedDbs)
	}
	if !supportedSigners.supports(c.SignerType) {
		return fmt.Errorf(
			"signer type not supported, please select one of: %s", supportedSigners,
		)
	}
	if c.LogLevel < int(log.PanicLevel) || c.LogLevel > int(log.TraceLevel) {
		return fmt.Errorf(
			"invalid log level %d, must be between %d and %d",
			c.LogLevel, log.PanicLevel, log.TraceLevel,
		)
	}
	return nil
}

func (c *Config) AppService() (application.Service, error) {
	if c.svc == nil {
		if err := c.appService(); err != nil {
			return nil, err
		}
	}
	return c.svc, nil
}

func (c *Config) EventBus() *pubsub.EventBus {
	if c.eventBus == nil {
		c.eventBus = pubsub.NewEventBus(c.EventBufferSize)
	}
	return c.eventBus
}

func (c *Config) Close() {
	if c.repo != nil {
		c.repo.Close()
	}
	if c.eventBus != nil {
		// nolint:all
		c.eventBus.Close()
	}
}

func (c *Config) repoManager() error {
	var dataStoreConfig []interface{}
	logger := log.New()

	switch c.DbType {
	case "badger":
		dataStoreConfig = []interface{}{c.DbDir, logger}
	case "sqlite":
		dataStoreConfig = []interface{}{c.DbDir}
	default:
		return fmt.Errorf("unknown db type")
	}

	svc, err := db.NewService(db.ServiceConfig{
		DataStoreType:   c.DbType,
		DataStoreConfig: dataStoreConfig,
	})
	if err != nil {
		return err
	}

	c.repo = svc
	return nil
}

func (c *Config) appService() error {
	if c.repo == nil {
		if err := c.repoManager(); err != nil {
			return err
		}
	}

	var tssVerifier ports.TssVerifier
	switch c.SignerType {
	case "static":
		tssVerifier = signer.NewStaticVerifier()
	case "schnorr":
		tssVerifier = signer.NewSchnorrVerifier()
	default:
		return fmt.Errorf("unknown signer type")
	}

	var chainRegistry ports.ChainRegistry
	if len(c.SupportedChains) > 0 {
		chainRegistry = chains.NewAllowListRegistry(c.SupportedChains)
	} else {
		chainRegistry = chains.NewAllowAllRegistry()
	}

	c.svc = application.NewService(
		c.repo, token.NewInMemoryLedger(), tssVerifier, chainRegistry, c.EventBus(),
	)
	return nil
}

type supportedType map[string]struct{}

func (t supportedType) String() string {
	types := make([]string, 0, len(t))
	for tt := range t {
		types = append(types, tt)
	}
	return fmt.Sprintf("%v", types)
}

func (t supportedType) supports(typeStr string) bool {
	_, ok := t[typeStr]
	return ok
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0o755)
	}
	return nil
}

func appDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./unftd-data"
	}
	return filepath.Join(home, ".unftd")
}
