package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/graphicscoin/gfxd/domain/chainconfig"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	defer chainconfig.MustSelect(chainconfig.Mainnet)

	appDir := t.TempDir()
	missingConfigFile := filepath.Join(appDir, "missing.conf")

	tests := []struct {
		name              string
		args              []string
		expectedNetwork   chainconfig.NetworkID
		expectedDataDir   string
		expectedLogDir    string
		expectedAddPeers  []string
		expectedListeners []string
	}{
		{
			name:              "mainnet",
			args:              []string{"-b", appDir, "-C", missingConfigFile, "-a", "10.0.0.1", "--rpclisten", "127.0.0.1"},
			expectedNetwork:   chainconfig.Mainnet,
			expectedDataDir:   filepath.Join(appDir, "data"),
			expectedLogDir:    filepath.Join(appDir, "logs"),
			expectedAddPeers:  []string{"10.0.0.1:4096"},
			expectedListeners: []string{"127.0.0.1:4093"},
		},
		{
			name:              "testnet",
			args:              []string{"--testnet", "-b", appDir, "-C", missingConfigFile, "-a", "10.0.0.1", "-a", "10.0.0.1:3052"},
			expectedNetwork:   chainconfig.Testnet,
			expectedDataDir:   filepath.Join(appDir, "data", "testnet"),
			expectedLogDir:    filepath.Join(appDir, "logs", "testnet"),
			expectedAddPeers:  []string{"10.0.0.1:3052"},
			expectedListeners: []string{},
		},
	}

	for _, test := range tests {
		cfg, _, err := LoadConfig(test.args)
		if err != nil {
			t.Fatalf("%s: LoadConfig: %s", test.name, err)
		}
		if chainconfig.ActiveNetworkID() != test.expectedNetwork || cfg.NetParams().ID != test.expectedNetwork {
			t.Errorf("%s: active network is %s, want %s", test.name, chainconfig.ActiveNetworkID(), test.expectedNetwork)
		}
		if cfg.DataDir != test.expectedDataDir {
			t.Errorf("%s: DataDir %q, want %q", test.name, cfg.DataDir, test.expectedDataDir)
		}
		if cfg.LogDir != test.expectedLogDir {
			t.Errorf("%s: LogDir %q, want %q", test.name, cfg.LogDir, test.expectedLogDir)
		}
		if !reflect.DeepEqual(cfg.AddPeers, test.expectedAddPeers) {
			t.Errorf("%s: AddPeers %v, want %v", test.name, cfg.AddPeers, test.expectedAddPeers)
		}
		if len(cfg.RPCListeners) != len(test.expectedListeners) ||
			(len(test.expectedListeners) > 0 && !reflect.DeepEqual(cfg.RPCListeners, test.expectedListeners)) {
			t.Errorf("%s: RPCListeners %v, want %v", test.name, cfg.RPCListeners, test.expectedListeners)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	defer chainconfig.MustSelect(chainconfig.Mainnet)

	appDir := t.TempDir()
	configFile := filepath.Join(appDir, "gfxd.conf")
	err := os.WriteFile(configFile, []byte("[Application Options]\ntestnet=1\ndebuglevel=debug\n"), 0600)
	if err != nil {
		t.Fatalf("WriteFile: %s", err)
	}

	cfg, _, err := LoadConfig([]string{"-C", configFile, "-b", appDir})
	if err != nil {
		t.Fatalf("LoadConfig: %s", err)
	}
	if !cfg.Testnet || chainconfig.ActiveNetworkID() != chainconfig.Testnet {
		t.Errorf("config file did not select the test network")
	}
	if cfg.DebugLevel != "debug" {
		t.Errorf("DebugLevel %q, want %q", cfg.DebugLevel, "debug")
	}

	// Command line options take precedence over the config file.
	cfg, _, err = LoadConfig([]string{"-C", configFile, "-b", appDir, "-d", "warn"})
	if err != nil {
		t.Fatalf("LoadConfig: %s", err)
	}
	if cfg.DebugLevel != "warn" {
		t.Errorf("DebugLevel %q, want %q", cfg.DebugLevel, "warn")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	defer chainconfig.MustSelect(chainconfig.Mainnet)

	appDir := t.TempDir()
	missingConfigFile := filepath.Join(appDir, "missing.conf")
	badConfigFile := filepath.Join(appDir, "bad.conf")
	if err := os.WriteFile(badConfigFile, []byte("[Application Options]\nnosuchoption=1\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-C", missingConfigFile, "--nosuchflag"}},
		{"bad debug level", []string{"-C", missingConfigFile, "-b", appDir, "-d", "loud"}},
		{"bad peer", []string{"-C", missingConfigFile, "-b", appDir, "-a", "[::1"}},
		{"bad config file", []string{"-C", badConfigFile, "-b", appDir}},
	}
	for _, test := range tests {
		if _, _, err := LoadConfig(test.args); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestCleanAndExpandPath(t *testing.T) {
	os.Setenv("GFXD_TEST_DIR", "/tmp/gfxd")
	defer os.Unsetenv("GFXD_TEST_DIR")

	if got := cleanAndExpandPath("$GFXD_TEST_DIR/../gfxd/data/"); got != filepath.Clean("/tmp/gfxd/data") {
		t.Errorf("cleanAndExpandPath: got %q", got)
	}
	expected := filepath.Join(filepath.Dir(DefaultAppDir), "data")
	if got := cleanAndExpandPath("~/data"); got != expected {
		t.Errorf("cleanAndExpandPath: got %q, want %q", got, expected)
	}
}

func TestResolveNetwork(t *testing.T) {
	defer chainconfig.MustSelect(chainconfig.Mainnet)

	tests := []struct {
		name            string
		flags           NetworkFlags
		expectedErr     error
		expectedNetwork chainconfig.NetworkID
	}{
		{"default", NetworkFlags{}, nil, chainconfig.Mainnet},
		{"mainnet", NetworkFlags{Mainnet: true}, nil, chainconfig.Mainnet},
		{"testnet", NetworkFlags{Testnet: true}, nil, chainconfig.Testnet},
		{"both", NetworkFlags{Mainnet: true, Testnet: true}, ErrMultipleNetworks, chainconfig.Testnet},
	}
	for _, test := range tests {
		networkFlags := test.flags
		parser := flags.NewParser(&networkFlags, flags.None)
		err := networkFlags.ResolveNetwork(parser)
		if !errors.Is(err, test.expectedErr) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.expectedErr)
			continue
		}
		if chainconfig.ActiveNetworkID() != test.expectedNetwork {
			t.Errorf("%s: active network %s, want %s", test.name,
				chainconfig.ActiveNetworkID(), test.expectedNetwork)
		}
		if err == nil && networkFlags.NetParams() != chainconfig.ActiveParams() {
			t.Errorf("%s: NetParams is not the active network", test.name)
		}
		if err != nil && networkFlags.NetParams() != nil {
			t.Errorf("%s: NetParams set after a failed resolution", test.name)
		}
	}
}

func TestLoadConfigMultipleNetworks(t *testing.T) {
	defer chainconfig.MustSelect(chainconfig.Mainnet)

	appDir := t.TempDir()
	_, _, err := LoadConfig([]string{"-C", filepath.Join(appDir, "missing.conf"), "-b", appDir,
		"--mainnet", "--testnet"})
	if !errors.Is(err, ErrMultipleNetworks) {
		t.Fatalf("LoadConfig: expected ErrMultipleNetworks, got %v", err)
	}
}
