package app

import (
	"flag"
	"testing"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "64", "-h", "32", "-seed", "9", "-full-range", "-tps", "5"}); err != nil {
		t.Fatal(err)
	}

	if cfg.Width != 64 || cfg.Height != 32 || cfg.Seed != 9 || !cfg.FullRange || cfg.TPS != 5 {
		t.Fatalf("parsed config = %+v", cfg)
	}
	if cfg.Scale != 5 || cfg.Sim != "life" {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	opts := cfg.SimOptions()
	if opts["w"] != "64" || opts["h"] != "32" || opts["full_range"] != "true" {
		t.Fatalf("SimOptions = %v", opts)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 1234
	if cfg.ResolveSeed() != 1234 {
		t.Fatal("explicit seed not kept")
	}
	cfg.Seed = 0
	if cfg.ResolveSeed() == 0 {
		t.Fatal("clock seed should be non-zero")
	}
}
