// Package config loads the TOML configuration of the mcproto binaries and
// sets up logging.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/gstoney/mcproto/transport"
)

// Environment variables that take precedence over the file.
const (
	EnvLogLevel = "MCPROTO_LOG_LEVEL"
	EnvAddr     = "MCPROTO_ADDR"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string
	LogConsole bool
	Server     Server
	Discovery  Discovery
}

type Server struct {
	Addr        string
	MetricsAddr string
	MOTD        string
	MaxPlayers  int
	// CompressionThreshold is announced to clients at login. Negative
	// disables compression.
	CompressionThreshold int
	Transport            transport.Config
}

// Discovery selects EC2 instances to probe by tag.
type Discovery struct {
	Region   string
	TagKey   string
	TagValue string
	Port     int
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		LogConsole: true,
		Server: Server{
			Addr:                 ":25565",
			MetricsAddr:          ":9100",
			MOTD:                 "A Minecraft Server",
			MaxPlayers:           20,
			CompressionThreshold: 256,
			Transport:            transport.DefaultConfig(),
		},
		Discovery: Discovery{
			TagKey: "Role",
			Port:   25565,
		},
	}
}

type fileConfig struct {
	LogLevel   string `toml:"log_level"`
	LogConsole bool   `toml:"log_console"`
	Server     struct {
		Addr                 string `toml:"addr"`
		MetricsAddr          string `toml:"metrics_addr"`
		MOTD                 string `toml:"motd"`
		MaxPlayers           int    `toml:"max_players"`
		CompressionThreshold int    `toml:"compression_threshold"`
		MaxPacketLen         int32  `toml:"max_packet_len"`
		MaxDecompressedLen   int32  `toml:"max_decompressed_len"`
	} `toml:"server"`
	Discovery struct {
		Region   string `toml:"region"`
		TagKey   string `toml:"tag_key"`
		TagValue string `toml:"tag_value"`
		Port     int    `toml:"port"`
	} `toml:"discovery"`
}

// Load reads .env from the working directory when present, then overlays
// the TOML file at path on Default. An empty path skips the file. The
// MCPROTO_* environment variables are applied last.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Server.Addr = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config %s: %w: unknown key %s", path, ErrInvalidConfig, undecoded[0])
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_console") {
		cfg.LogConsole = raw.LogConsole
	}

	s := &cfg.Server
	if meta.IsDefined("server", "addr") {
		s.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "metrics_addr") {
		s.MetricsAddr = strings.TrimSpace(raw.Server.MetricsAddr)
	}
	if meta.IsDefined("server", "motd") {
		s.MOTD = raw.Server.MOTD
	}
	if meta.IsDefined("server", "max_players") {
		s.MaxPlayers = raw.Server.MaxPlayers
	}
	if meta.IsDefined("server", "compression_threshold") {
		s.CompressionThreshold = raw.Server.CompressionThreshold
	}
	if meta.IsDefined("server", "max_packet_len") {
		s.Transport.MaxPacketLen = raw.Server.MaxPacketLen
	}
	if meta.IsDefined("server", "max_decompressed_len") {
		s.Transport.MaxDecompressedLen = raw.Server.MaxDecompressedLen
	}

	d := &cfg.Discovery
	if meta.IsDefined("discovery", "region") {
		d.Region = strings.TrimSpace(raw.Discovery.Region)
	}
	if meta.IsDefined("discovery", "tag_key") {
		d.TagKey = strings.TrimSpace(raw.Discovery.TagKey)
	}
	if meta.IsDefined("discovery", "tag_value") {
		d.TagValue = strings.TrimSpace(raw.Discovery.TagValue)
	}
	if meta.IsDefined("discovery", "port") {
		d.Port = raw.Discovery.Port
	}
	return nil
}

// Validate reports every out-of-range value joined into one error.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...)))
	}

	if c.Server.Transport.MaxPacketLen <= 0 {
		fail("server.max_packet_len must be positive, got %d", c.Server.Transport.MaxPacketLen)
	}
	if c.Server.Transport.MaxDecompressedLen < c.Server.Transport.MaxPacketLen {
		fail("server.max_decompressed_len %d is below server.max_packet_len", c.Server.Transport.MaxDecompressedLen)
	}
	if c.Server.MaxPlayers < 0 {
		fail("server.max_players must not be negative, got %d", c.Server.MaxPlayers)
	}
	if c.Discovery.Port <= 0 || c.Discovery.Port > 65535 {
		fail("discovery.port %d out of range", c.Discovery.Port)
	}
	return errors.Join(errs...)
}
