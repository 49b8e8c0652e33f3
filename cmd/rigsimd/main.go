// Command rigsimd runs a simulated rig behind a rigctld network daemon.
//
// It exposes the built-in dummy backend over the rigctld line protocol so
// clients (including this module's network backend) can develop and test
// against a rig without hardware.
//
// Usage:
//
//	rigsimd [flags]
//
// Flags:
//
//	-addr string     Listen address (default ":4532")
//	-config string   Configuration file path (YAML)
//	-mdns            Advertise the daemon via mDNS
//	-name string     mDNS instance name (default "rigsimd")
//	-log string      Event log file (CBOR), empty disables
//	-log-level string Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Serve on the conventional rigctld port
//	rigsimd
//
//	# Serve on a custom port, announced on the LAN
//	rigsimd -addr :14532 -mdns -name shack-sim
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/boybook/hamlib-go/internal/rigctld"
	"github.com/boybook/hamlib-go/pkg/discovery"
	"github.com/boybook/hamlib-go/pkg/driver"
	_ "github.com/boybook/hamlib-go/pkg/driver/simrig"
	"github.com/boybook/hamlib-go/pkg/rig"
	"github.com/boybook/hamlib-go/pkg/riglog"
)

// Config holds the daemon configuration.
type Config struct {
	Addr     string `yaml:"addr"`
	MDNS     bool   `yaml:"mdns"`
	Name     string `yaml:"name"`
	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

var (
	config     Config
	configFile string
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&config.Addr, "addr", ":4532", "Listen address")
	flag.BoolVar(&config.MDNS, "mdns", false, "Advertise the daemon via mDNS")
	flag.StringVar(&config.Name, "name", "rigsimd", "mDNS instance name")
	flag.StringVar(&config.LogFile, "log", "", "Event log file (CBOR), empty disables")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	if configFile != "" {
		fileCfg := config
		if err := loadConfigFile(configFile, &fileCfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		// Explicit flags win over file values.
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["addr"] {
			config.Addr = fileCfg.Addr
		}
		if !set["mdns"] {
			config.MDNS = fileCfg.MDNS
		}
		if !set["name"] {
			config.Name = fileCfg.Name
		}
		if !set["log"] {
			config.LogFile = fileCfg.LogFile
		}
		if !set["log-level"] {
			config.LogLevel = fileCfg.LogLevel
		}
	}

	logger := newLogger(config.LogLevel)

	var eventLogger riglog.Logger
	if config.LogFile != "" {
		fl, err := riglog.NewFileLogger(config.LogFile)
		if err != nil {
			logger.Error("failed to open event log", "file", config.LogFile, "error", err)
			os.Exit(1)
		}
		defer fl.Close()
		eventLogger = fl
	}

	r, err := rig.NewWithConfig(rig.Config{
		Model:  driver.ModelDummy,
		Logger: eventLogger,
	})
	if err != nil {
		logger.Error("failed to create rig", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := r.Open(ctx); err != nil {
		logger.Error("failed to open rig", "error", err)
		os.Exit(1)
	}
	defer r.Destroy(context.Background())

	server := rigctld.NewServer(r, rigctld.Config{
		Address: config.Addr,
		Logger:  logger,
	})
	if err := server.Start(ctx); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
	defer server.Stop()

	if config.MDNS {
		adv := discovery.NewAdvertiser(discovery.DefaultAdvertiserConfig())
		caps, _ := r.Caps()
		if err := adv.Advertise(config.Name, listenPort(server.Addr()), int(caps.Model), caps.ModelName); err != nil {
			logger.Warn("mDNS advertising failed", "error", err)
		} else {
			defer adv.Stop()
			logger.Info("advertising via mDNS", "instance", config.Name)
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func listenPort(addr net.Addr) int {
	_, portStr, err := net.SplitHostPort(addr.String())
	if err != nil {
		return rigctld.DefaultPort
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return rigctld.DefaultPort
	}
	return port
}
