// Command rigshell is an interactive shell for controlling a rig.
//
// It talks to a local serial rig or a remote rigctld daemon and exposes the
// control surface as line commands with completion.
//
// Usage:
//
//	rigshell [flags]
//
// Flags:
//
//	-model int       Rig model number (default 1, the simulated rig)
//	-addr string     Serial device path or host:port of a daemon
//	-config string   Configuration file path (YAML)
//	-log string      Event log file (CBOR), empty disables
//	-timeout duration  Per-call device timeout
//
// Examples:
//
//	# Drive the built-in simulated rig
//	rigshell
//
//	# Connect to a rigctld daemon
//	rigshell -addr localhost:4532
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/boybook/hamlib-go/pkg/driver"
	_ "github.com/boybook/hamlib-go/pkg/driver/netrigctl"
	_ "github.com/boybook/hamlib-go/pkg/driver/simrig"
	"github.com/boybook/hamlib-go/pkg/rig"
	"github.com/boybook/hamlib-go/pkg/riglog"
)

// Config holds the shell configuration.
type Config struct {
	Model   int           `yaml:"model"`
	Addr    string        `yaml:"addr"`
	LogFile string        `yaml:"log_file"`
	Timeout time.Duration `yaml:"timeout"`
}

var (
	config     Config
	configFile string
)

func init() {
	flag.StringVar(&configFile, "config", "", "Configuration file path (YAML)")
	flag.IntVar(&config.Model, "model", int(driver.ModelDummy), "Rig model number")
	flag.StringVar(&config.Addr, "addr", "", "Serial device path or host:port of a daemon")
	flag.StringVar(&config.LogFile, "log", "", "Event log file (CBOR), empty disables")
	flag.DurationVar(&config.Timeout, "timeout", 0, "Per-call device timeout")
}

func main() {
	flag.Parse()

	if configFile != "" {
		fileCfg := config
		if err := loadConfigFile(configFile, &fileCfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["model"] {
			config.Model = fileCfg.Model
		}
		if !set["addr"] {
			config.Addr = fileCfg.Addr
		}
		if !set["log"] {
			config.LogFile = fileCfg.LogFile
		}
		if !set["timeout"] {
			config.Timeout = fileCfg.Timeout
		}
	}

	var eventLogger riglog.Logger
	if config.LogFile != "" {
		fl, err := riglog.NewFileLogger(config.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open event log: %v\n", err)
			os.Exit(1)
		}
		defer fl.Close()
		eventLogger = fl
	}

	r, err := rig.NewWithConfig(rig.Config{
		Model:   driver.Model(config.Model),
		Address: config.Addr,
		Timeout: config.Timeout,
		Logger:  eventLogger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create rig: %v\n", err)
		os.Exit(1)
	}
	defer r.Destroy(context.Background())

	shell, err := NewShell(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start shell: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shell.Run(ctx, cancel)
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
