package spectrum

import "fmt"

// Method names a spectral estimation backend.
type Method string

// Supported methods.
const (
	MethodWelch Method = "welch"
	MethodFFT   Method = "fft"
	MethodAR    Method = "ar"
)

// Methods lists every supported method.
func Methods() []Method {
	return []Method{MethodWelch, MethodFFT, MethodAR}
}

// Config selects and parameterizes an estimator.
type Config struct {
	Method     Method
	NFFT       int    // 0 selects the backend default
	AROrder    int    // used by MethodAR only; 0 selects DefaultAROrder
	Window     Window // ignored by MethodAR
	RemoveMean bool
}

// DefaultConfig returns a Welch estimator with a Hann window that removes
// the signal mean.
func DefaultConfig() Config {
	return Config{Method: MethodWelch, Window: Hann, RemoveMean: true}
}

// New returns the estimator described by cfg.
func New(cfg Config) (Estimator, error) {
	if cfg.NFFT < 0 {
		return nil, fmt.Errorf("%w: nfft %d", ErrInvalidConfig, cfg.NFFT)
	}
	if _, err := cfg.Window.Func(); err != nil && cfg.Method != MethodAR {
		return nil, err
	}

	switch cfg.Method {
	case MethodWelch, "":
		return Welch{NFFT: cfg.NFFT, Window: cfg.Window, RemoveMean: cfg.RemoveMean}, nil
	case MethodFFT:
		return Periodogram{NFFT: cfg.NFFT, Window: cfg.Window, RemoveMean: cfg.RemoveMean}, nil
	case MethodAR:
		if cfg.AROrder < 0 {
			return nil, fmt.Errorf("%w: ar order %d", ErrInvalidConfig, cfg.AROrder)
		}
		return AR{Order: cfg.AROrder, NFFT: cfg.NFFT, RemoveMean: cfg.RemoveMean}, nil
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, string(cfg.Method))
	}
}
