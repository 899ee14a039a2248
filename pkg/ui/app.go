package ui

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"churnlens/assets/icons"
	"churnlens/pkg/config"
	"churnlens/pkg/dataset"
	"churnlens/pkg/iconloader"
	"churnlens/pkg/logging"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	appID = "io.github.churnlens"

	panelTitle = "Visualização de Gráficos"
	footerText = "Desenvolvido por Marco Medeiros | LinkedIn: linkedin.com/in/marco-medeirosdev"

	buttonWidth  = 300
	buttonHeight = 48
)

// fyneDispatcher hands work to the Fyne event loop.
type fyneDispatcher struct{}

func (fyneDispatcher) Do(fn func()) { fyne.Do(fn) }

// chartButton binds a panel button to its renderer and remote icon.
type chartButton struct {
	label   string
	iconURL string
	render  func() *ChartWindow
	button  *IconButton
}

type ChurnApp struct {
	FyneApp fyne.App
	Window  fyne.Window

	cfg        config.AppConfig
	log        zerolog.Logger
	dispatcher iconloader.Dispatcher
	loader     *iconloader.Loader
	renderers  *ChartRenderers

	buttons   []*chartButton
	iconTasks []*iconloader.Task
}

func NewChurnApp(cfg config.AppConfig, log zerolog.Logger) *ChurnApp {
	a := app.NewWithID(appID)
	return newChurnApp(a, cfg, log, fyneDispatcher{})
}

func newChurnApp(a fyne.App, cfg config.AppConfig, log zerolog.Logger, d iconloader.Dispatcher) *ChurnApp {
	cfg = cfg.WithDefaults()
	uiLog := logging.Component(log, "ui")

	ca := &ChurnApp{
		FyneApp:    a,
		cfg:        cfg,
		log:        uiLog,
		dispatcher: d,
		loader: iconloader.NewLoader(d,
			iconloader.WithLogger(logging.Component(log, "iconloader")),
			iconloader.WithLimiter(rate.NewLimiter(rate.Limit(4), 3)),
		),
	}

	a.Settings().SetTheme(newChurnTheme(ca.loadFont()))
	a.SetIcon(ca.loadAppIcon())

	gen := dataset.NewGenerator(dataset.WithSeed(cfg.Seed), dataset.WithSize(cfg.SampleSize))
	decorator := NewWindowDecorator(a, fyne.NewSize(cfg.ChartWidth, cfg.ChartHeight))
	ca.renderers = NewChartRenderers(a, gen, decorator, cfg.ChartWindowTitle, cfg.WindowIconPath, logging.Component(log, "charts"))

	w := a.NewWindow(cfg.WindowTitle)
	w.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	w.SetMaster()
	if err := decorate(w, cfg.WindowTitle, cfg.WindowIconPath); err != nil {
		uiLog.Warn().Err(err).Msg("main window icon not set")
	}
	ca.Window = w

	ca.setupUI()
	return ca
}

// Run owns the event loop until the main window closes.
func (ca *ChurnApp) Run() {
	ca.Window.ShowAndRun()
}

func (ca *ChurnApp) setupUI() {
	var top []fyne.CanvasObject
	if logo := ca.loadLogo(); logo != nil {
		top = append(top, container.NewCenter(logo))
	}

	title := canvas.NewText(panelTitle, titleColor)
	title.TextSize = 20
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	top = append(top, container.NewPadded(title))

	ca.buttons = []*chartButton{
		{label: "Tipos de Contratos", iconURL: ca.cfg.ContractIconURL, render: ca.renderers.ContractChurn},
		{label: "Formas de Pagamentos", iconURL: ca.cfg.PaymentIconURL, render: ca.renderers.PaymentChurn},
		{label: "Gastos Mensais", iconURL: ca.cfg.SpendIconURL, render: ca.renderers.MonthlySpend},
	}

	buttonCells := make([]fyne.CanvasObject, 0, len(ca.buttons))
	for _, cb := range ca.buttons {
		cb.button = NewIconButton(cb.label, func() { ca.openChart(cb.render) })
		buttonCells = append(buttonCells, cb.button.Button)
	}
	buttonGroup := container.NewCenter(
		container.NewGridWrap(fyne.NewSize(buttonWidth, buttonHeight), buttonCells...),
	)

	ca.loadButtonIcons()

	footer := canvas.NewText(footerText, footerColor)
	footer.TextSize = 11
	footer.Alignment = fyne.TextAlignCenter

	body := container.NewVBox(append(top, layout.NewSpacer(), buttonGroup)...)
	content := container.NewBorder(nil, container.NewPadded(footer), nil, nil, body)
	ca.Window.SetContent(container.NewStack(canvas.NewRectangle(panelBackground), content))
}

// openChart renders a chart and keeps the panel disabled until its window
// closes.
func (ca *ChurnApp) openChart(render func() *ChartWindow) *ChartWindow {
	ca.setButtonsEnabled(false)
	cw := render()
	go func() {
		<-cw.Closed()
		ca.dispatcher.Do(func() { ca.setButtonsEnabled(true) })
	}()
	return cw
}

func (ca *ChurnApp) setButtonsEnabled(enabled bool) {
	for _, cb := range ca.buttons {
		if enabled {
			cb.button.Enable()
		} else {
			cb.button.Disable()
		}
	}
}

func (ca *ChurnApp) loadButtonIcons() {
	size := image.Pt(ca.cfg.IconSize, ca.cfg.IconSize)
	for _, cb := range ca.buttons {
		if cb.iconURL == "" {
			continue
		}
		task := ca.loader.Load(context.Background(), cb.iconURL, size, func(img image.Image) {
			if err := cb.button.SetImage(cb.label, img); err != nil {
				ca.log.Warn().Err(err).Str("button", cb.label).Msg("button icon not set")
			}
		})
		ca.iconTasks = append(ca.iconTasks, task)
	}
}

func (ca *ChurnApp) loadLogo() fyne.CanvasObject {
	img, err := loadImageFile(ca.cfg.LogoPath)
	if err != nil {
		ca.log.Info().Err(err).Msg("local logo not loaded")
		return nil
	}
	side := ca.cfg.LogoSize
	logo := canvas.NewImageFromImage(iconloader.Resize(img, image.Pt(side, side)))
	logo.FillMode = canvas.ImageFillContain
	logo.ScaleMode = canvas.ImageScaleSmooth
	logo.SetMinSize(fyne.NewSize(float32(side), float32(side)))
	return logo
}

func (ca *ChurnApp) loadFont() fyne.Resource {
	if ca.cfg.FontPath == "" {
		return nil
	}
	res, err := fyne.LoadResourceFromPath(ca.cfg.FontPath)
	if err != nil {
		ca.log.Info().Err(err).Msg("custom font not loaded, using default")
		return nil
	}
	return res
}

func (ca *ChurnApp) loadAppIcon() fyne.Resource {
	for _, path := range []string{ca.cfg.WindowIconPath, ca.cfg.LogoPath} {
		if path == "" {
			continue
		}
		res, err := fyne.LoadResourceFromPath(path)
		if err == nil {
			return res
		}
		ca.log.Debug().Err(err).Str("path", path).Msg("app icon candidate skipped")
	}
	return fyne.NewStaticResource("churnlens.png", icons.AppIconPNG())
}

func loadImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// IconTasks returns the background icon loads started at startup.
func (ca *ChurnApp) IconTasks() []*iconloader.Task { return ca.iconTasks }
