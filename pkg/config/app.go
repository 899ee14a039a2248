package config

import (
	"fmt"
	"net/url"

	"churnlens/pkg/dataset"
)

const (
	defaultWindowTitle  = "Análise de Cancelamento de Clientes"
	defaultChartTitle   = "Gráfico - Cancelamento de Clientes"
	defaultWindowWidth  = 700
	defaultWindowHeight = 650
	defaultChartWidth   = 1280
	defaultChartHeight  = 800
	defaultLogoSize     = 180
	defaultIconSize     = 24
	defaultLogLevel     = "info"

	DefaultWindowIconPath = "logo.ico"
	DefaultLogoPath       = "logo.png"
	DefaultFontPath       = "Poppins-Regular.ttf"

	DefaultContractIconURL = "https://cdn-icons-png.flaticon.com/512/5545/5545101.png"
	DefaultPaymentIconURL  = "https://static.vecteezy.com/system/resources/previews/013/484/039/original/secure-payment-3d-icon-png.png"
	DefaultSpendIconURL    = "https://static.vecteezy.com/system/resources/previews/014/208/066/original/expense-ratio-3d-rendering-isometric-icon-png.png"
)

// AppConfig holds every tunable of the desktop application. The desktop
// entry point uses DefaultAppConfig as is; there is no file or env layer.
type AppConfig struct {
	WindowTitle  string
	WindowWidth  float32
	WindowHeight float32

	ChartWindowTitle string
	ChartWidth       float32
	ChartHeight      float32

	WindowIconPath string
	LogoPath       string
	FontPath       string
	LogoSize       int
	IconSize       int

	ContractIconURL string
	PaymentIconURL  string
	SpendIconURL    string

	Seed       uint64
	SampleSize int

	LogLevel string
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		WindowTitle:      defaultWindowTitle,
		WindowWidth:      defaultWindowWidth,
		WindowHeight:     defaultWindowHeight,
		ChartWindowTitle: defaultChartTitle,
		ChartWidth:       defaultChartWidth,
		ChartHeight:      defaultChartHeight,
		WindowIconPath:   DefaultWindowIconPath,
		LogoPath:         DefaultLogoPath,
		FontPath:         DefaultFontPath,
		LogoSize:         defaultLogoSize,
		IconSize:         defaultIconSize,
		ContractIconURL:  DefaultContractIconURL,
		PaymentIconURL:   DefaultPaymentIconURL,
		SpendIconURL:     DefaultSpendIconURL,
		Seed:             dataset.DefaultSeed,
		SampleSize:       dataset.DefaultSize,
		LogLevel:         defaultLogLevel,
	}
}

// WithDefaults returns a copy with zero fields replaced by defaults.
func (c AppConfig) WithDefaults() AppConfig {
	c.applyDefaults()
	return c
}

func (c *AppConfig) applyDefaults() {
	d := DefaultAppConfig()
	if c.WindowTitle == "" {
		c.WindowTitle = d.WindowTitle
	}
	if c.WindowWidth == 0 {
		c.WindowWidth = d.WindowWidth
	}
	if c.WindowHeight == 0 {
		c.WindowHeight = d.WindowHeight
	}
	if c.ChartWindowTitle == "" {
		c.ChartWindowTitle = d.ChartWindowTitle
	}
	if c.ChartWidth == 0 {
		c.ChartWidth = d.ChartWidth
	}
	if c.ChartHeight == 0 {
		c.ChartHeight = d.ChartHeight
	}
	if c.LogoSize == 0 {
		c.LogoSize = d.LogoSize
	}
	if c.IconSize == 0 {
		c.IconSize = d.IconSize
	}
	if c.SampleSize == 0 {
		c.SampleSize = d.SampleSize
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

func (c AppConfig) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size: %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	if c.LogoSize <= 0 {
		return fmt.Errorf("logo size must be > 0")
	}
	if c.IconSize <= 0 {
		return fmt.Errorf("icon size must be > 0")
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample size must be > 0")
	}
	for name, raw := range map[string]string{
		"contract icon url": c.ContractIconURL,
		"payment icon url":  c.PaymentIconURL,
		"spend icon url":    c.SpendIconURL,
	} {
		if err := validateIconURL(raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func validateIconURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
