package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/graphicscoin/gfxd/infrastructure/logger"
	"github.com/graphicscoin/gfxd/util/network"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "gfxd.conf"
	defaultDataDirname    = "data"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "gfxd.log"
	defaultErrLogFilename = "gfxd_err.log"
)

var (
	// DefaultAppDir is the default home directory for gfxd.
	DefaultAppDir = btcutil.AppDataDir("gfxd", false)

	defaultConfigFile = filepath.Join(DefaultAppDir, defaultConfigFilename)
)

// Flags defines the configuration options for gfxd.
//
// See LoadConfig for details on the configuration load process.
type Flags struct {
	ShowVersion  bool     `short:"V" long:"version" description:"Display version information and exit"`
	ShowParams   bool     `long:"showparams" description:"Display the parameters of the selected network and exit"`
	ConfigFile   string   `short:"C" long:"configfile" description:"Path to configuration file"`
	AppDir       string   `short:"b" long:"appdir" description:"Directory to store data"`
	LogDir       string   `long:"logdir" description:"Directory to log output."`
	AddPeers     []string `short:"a" long:"addpeer" description:"Add a peer to connect with at startup"`
	RPCListeners []string `long:"rpclisten" description:"Add an interface/port to listen for RPC connections (default port: 4093, testnet: 3050)"`
	DebugLevel   string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	NetworkFlags
}

// Config defines the configuration options for gfxd after they have been
// resolved against the selected network.
//
// See LoadConfig for details on the configuration load process.
type Config struct {
	*Flags

	// DataDir is AppDir namespaced by the network's data directory suffix.
	DataDir string
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

func defaultFlags() *Flags {
	return &Flags{
		ConfigFile: defaultConfigFile,
		AppDir:     DefaultAppDir,
		DebugLevel: defaultLogLevel,
	}
}

// LoadConfig initializes and parses the config using a config file and
// command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//  5. Select the network and namespace the data and log directories by it
//
// Command line options always take precedence. Logging is not started here;
// see InitLog.
func LoadConfig(args []string) (*Config, []string, error) {
	cfgFlags := defaultFlags()

	// Pre-parse the command line options to see if an alternative config
	// file was specified. Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := *cfgFlags
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	parser := flags.NewParser(cfgFlags, flags.HelpFlag|flags.PassDoubleDash)
	err = flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, nil, errors.Wrapf(err, "error parsing config file %s", preCfg.ConfigFile)
		}
		// A missing config file is not an error.
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	err = cfgFlags.ResolveNetwork(parser)
	if err != nil {
		return nil, nil, err
	}
	params := cfgFlags.NetParams()

	cfg := &Config{Flags: cfgFlags}
	cfg.AppDir = cleanAndExpandPath(cfg.AppDir)
	cfg.DataDir = params.DataDir(filepath.Join(cfg.AppDir, defaultDataDirname))
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.AppDir, defaultLogDirname)
	}
	cfg.LogDir = params.DataDir(cleanAndExpandPath(cfg.LogDir))

	cfg.AddPeers, err = network.NormalizeAddresses(cfg.AddPeers, params.DefaultPort)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid --addpeer")
	}
	cfg.RPCListeners, err = network.NormalizeAddresses(cfg.RPCListeners, params.RPCPort)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid --rpclisten")
	}

	if cfg.DebugLevel != "show" {
		err = logger.ParseAndSetLogLevels(cfg.DebugLevel)
		if err != nil {
			return nil, nil, err
		}
	}

	return cfg, remainingArgs, nil
}

// InitLog starts the logging backend, writing to the console and to log
// files in the configured log directory.
func (cfg *Config) InitLog() error {
	return logger.InitLog(filepath.Join(cfg.LogDir, defaultLogFilename),
		filepath.Join(cfg.LogDir, defaultErrLogFilename))
}
