package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"jigsaw/src"
	"jigsaw/src/logic/grid"
	"jigsaw/src/logx"
	"jigsaw/src/picture"
	clic "jigsaw/src/ui/cli"
	"jigsaw/src/ui/gui"
	"jigsaw/src/ui/gui/gbase"
	"jigsaw/src/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

const logfile string = "jigsaw.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// Options merges the config file with the flags; flags set on the command
// line win.
func Options(c *cli.Command, cfg *gconf.Config) src.Options {
	opts := src.DefaultOptions()
	opts.Grid = grid.Spec{CellW: cfg.CellW, CellH: cfg.CellH, Margin: cfg.Margin}
	opts.Radius = cfg.Radius
	opts.Tolerance = cfg.Tolerance
	opts.Style.HaloWidth = cfg.HaloWidth

	if c.IsSet("cell-w") {
		opts.Grid.CellW = c.Int("cell-w")
	}
	if c.IsSet("cell-h") {
		opts.Grid.CellH = c.Int("cell-h")
	}
	if c.IsSet("cols") {
		opts.Grid.Cols = c.Int("cols")
	}
	if c.IsSet("rows") {
		opts.Grid.Rows = c.Int("rows")
	}
	if c.IsSet("margin") {
		opts.Grid.Margin = c.Int("margin")
	}
	if c.IsSet("radius") {
		opts.Radius = c.Int("radius")
	}
	if c.IsSet("tolerance") {
		opts.Tolerance = c.Int("tolerance")
	}
	opts.Seed = c.Int64("seed")
	return opts
}

func openLog() (*os.File, error) {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("error open logfile: %w", err)
	}
	return file, nil
}

// readConfig loads jigsaw.json. Its debug switch raises the log level
// unless --level was given.
func readConfig(c *cli.Command, logger *logx.Logx) (*gconf.Config, error) {
	cfg, err := gconf.NewConfig(gconf.DefaultFile)
	if err != nil {
		return nil, fmt.Errorf("error read config: %w", err)
	}
	if cfg.Debug && !c.IsSet("level") {
		logger.SetLevel(logx.GetLoggerLevelByString("debug"))
	}
	logger.Infof("config %s loaded, log level %s", gconf.DefaultFile, logger.Level())
	return cfg, nil
}

func RunGUI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := readConfig(c, logger)
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}
	glog := logger.Named("gui")
	g, err := gui.NewGUI(src.NewPuzzleBuilder(logger.Named("puzzle")), cfg, Options(c, cfg), c.String("image"), glog)
	if err != nil {
		glog.Errorf("error init GUI: %v", err)
		return fmt.Errorf("error init GUI: %w", err)
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	logger := GetLogger(file, c)
	defer logger.Sync() //nolint:errcheck

	cfg, err := readConfig(c, logger)
	if err != nil {
		return err
	}
	var img image.Image
	if path := c.String("image"); path != "" {
		if img, err = picture.Load(path); err != nil {
			return err
		}
	} else {
		img = picture.Procedural(540, 360)
	}

	pb := src.NewPuzzleBuilder(logger.Named("puzzle"))
	if _, err := pb.CreateFromImage(img, Options(c, cfg)); err != nil {
		logger.Named("cli").Errorf("error create puzzle: %v", err)
		return fmt.Errorf("error create puzzle: %w", err)
	}
	clic.EnableANSI()
	return clic.NewCLI(pb, clic.PrintTable).RunLineMode()
}

func RunJigsaw() error {
	imf := &cli.StringFlag{
		Name:    "image",
		Aliases: []string{"i"},
		Usage:   "path to the picture (png, jpeg, gif, bmp, webp)",
	}
	sf := &cli.Int64Flag{
		Name:  "seed",
		Usage: "random seed for cutting and scattering, 0 picks one",
	}
	grf := []cli.Flag{
		&cli.IntFlag{Name: "cell-w", Usage: "piece width in pixels"},
		&cli.IntFlag{Name: "cell-h", Usage: "piece height in pixels"},
		&cli.IntFlag{Name: "cols", Usage: "number of columns, overrides cell-w"},
		&cli.IntFlag{Name: "rows", Usage: "number of rows, overrides cell-h"},
		&cli.IntFlag{Name: "margin", Usage: "room around a piece for tabs"},
		&cli.IntFlag{Name: "radius", Usage: "base tab radius"},
		&cli.IntFlag{Name: "tolerance", Usage: "snap distance per axis"},
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "dev encode log",
	}
	lf := &cli.StringFlag{
		Name:        "level",
		Aliases:     []string{"l"},
		Usage:       "level log",
		DefaultText: "info",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console log",
	}
	flags := append([]cli.Flag{imf, sf, df, lf, cf}, grf...)

	runGUI := func(ctx context.Context, c *cli.Command) error {
		if err := RunGUI(c); err != nil && !errors.Is(err, gbase.ErrExit) {
			fmt.Printf("error GUI: %v\n", err)
		}
		return nil
	}

	return (&cli.Command{
		Name:  "jigsaw",
		Usage: "jigsaw puzzle game",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "play in the terminal",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error jigsaw: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:   "gui",
				Usage:  "play in a window",
				Flags:  flags,
				Action: runGUI,
			},
		},
		Action: runGUI,
	}).Run(context.Background(), os.Args)
}
