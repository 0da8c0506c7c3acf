package parallel

import (
	"errors"
	"testing"

	"github.com/ygrebnov/parallel/metrics"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Workers != DefaultWorkers {
		t.Fatalf("Workers default = %d; want %d", cfg.Workers, DefaultWorkers)
	}
	if cfg.FeedBuffer != 0 {
		t.Fatalf("FeedBuffer default = %d; want 0", cfg.FeedBuffer)
	}
	if cfg.StopOnError != false {
		t.Fatalf("StopOnError default = %v; want false", cfg.StopOnError)
	}
	if cfg.Metrics != nil {
		t.Fatalf("Metrics default = %v; want nil", cfg.Metrics)
	}
}

func TestValidateConfig_Defaults(t *testing.T) {
	cfg := defaultConfig()
	if err := validateConfig(&cfg); err != nil {
		t.Fatalf("validateConfig returned error for defaults: %v", err)
	}
}

func TestValidateConfig_NonPositiveWorkers(t *testing.T) {
	for _, n := range []int{0, -1, -16} {
		cfg := defaultConfig()
		cfg.Workers = n
		err := validateConfig(&cfg)
		if err == nil {
			t.Fatalf("validateConfig accepted Workers = %d", n)
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("validateConfig error = %v; want ErrInvalidConfig", err)
		}
	}
}

func TestWithWorkers_Invalid(t *testing.T) {
	for _, n := range []int{0, -5} {
		cfg := defaultConfig()
		err := WithWorkers(n)(&cfg)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("WithWorkers(%d) error = %v; want ErrInvalidConfig", n, err)
		}
	}
}

func TestOptions_Applied(t *testing.T) {
	cfg := defaultConfig()
	p := metrics.NewMemoryProvider()

	for _, opt := range []Option{
		WithWorkers(4),
		WithFeedBuffer(32),
		WithStopOnError(),
		WithMetrics(p),
	} {
		if err := opt(&cfg); err != nil {
			t.Fatalf("option returned error: %v", err)
		}
	}

	if cfg.Workers != 4 {
		t.Fatalf("Workers = %d; want 4", cfg.Workers)
	}
	if cfg.FeedBuffer != 32 {
		t.Fatalf("FeedBuffer = %d; want 32", cfg.FeedBuffer)
	}
	if !cfg.StopOnError {
		t.Fatalf("StopOnError = false; want true")
	}
	if cfg.Metrics != p {
		t.Fatalf("Metrics not applied")
	}
}

func TestWithMetrics_Nil(t *testing.T) {
	cfg := defaultConfig()
	if err := WithMetrics(nil)(&cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("WithMetrics(nil) error = %v; want ErrInvalidConfig", err)
	}
}
