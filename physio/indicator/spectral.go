package indicator

import (
	"github.com/cwbudde/algo-physio/dsp/spectrum"
	"github.com/cwbudde/algo-physio/physio/param"
)

// spectralParams configure the estimator behind the band indicators.
var spectralParams = param.Set{
	"method": {
		Level:       param.Recommended,
		Kinds:       []param.Kind{param.String},
		Description: "Spectral estimator: welch, fft or ar",
		Default:     string(spectrum.MethodWelch),
		Validator:   param.OneOf(stringsOf(spectrum.Methods())...),
	},
	"nfft": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.Int},
		Description: "Transform or segment length; 0 lets the estimator choose",
		Default:     0,
		Validator:   param.NonNegative(),
	},
	"ar_order": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.Int},
		Description: "Autoregressive model order (ar method only)",
		Default:     spectrum.DefaultAROrder,
		Validator:   param.AtLeast(1),
		Activation:  param.Equals("method", string(spectrum.MethodAR)),
	},
	"window": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.String},
		Description: "Tapering window: hann, hamming, bartlett or rect (welch and fft only)",
		Default:     string(spectrum.Hann),
		Validator:   param.OneOf(stringsOf(spectrum.Windows())...),
		Activation:  param.NotEquals("method", string(spectrum.MethodAR)),
	},
	"remove_mean": {
		Level:       param.Optional,
		Kinds:       []param.Kind{param.Bool},
		Description: "Subtract the signal mean before estimating",
		Default:     true,
	},
}

// SpectralConfig is the typed form of the spectral parameters. Zero fields
// select the defaults.
type SpectralConfig struct {
	Method  spectrum.Method
	NFFT    int
	AROrder int
	Window  spectrum.Window
	// KeepMean disables mean removal.
	KeepMean bool
}

func (c SpectralConfig) render(v param.Values) {
	if c.Method != "" {
		v["method"] = string(c.Method)
	}
	if c.NFFT != 0 {
		v["nfft"] = c.NFFT
	}
	if c.AROrder != 0 {
		v["ar_order"] = c.AROrder
	}
	if c.Window != "" {
		v["window"] = string(c.Window)
	}
	v["remove_mean"] = !c.KeepMean
}

// spectrumConfig maps resolved spectral parameters onto an estimator config.
func spectrumConfig(p param.Values) spectrum.Config {
	return spectrum.Config{
		Method:     spectrum.Method(p.String("method")),
		NFFT:       p.Int("nfft"),
		AROrder:    p.Int("ar_order"),
		Window:     spectrum.Window(p.String("window")),
		RemoveMean: p.Bool("remove_mean"),
	}
}

func stringsOf[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
