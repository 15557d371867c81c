package ui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/src/picture"
	"jigsaw/src/ui/gui/gbase/gconf"

	"github.com/urfave/cli/v3"
)

func optionsFor(t *testing.T, cfg *gconf.Config, args ...string) src.Options {
	t.Helper()
	var got src.Options
	cmd := &cli.Command{
		Name: "jigsaw",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed"},
			&cli.IntFlag{Name: "cell-w"},
			&cli.IntFlag{Name: "cell-h"},
			&cli.IntFlag{Name: "cols"},
			&cli.IntFlag{Name: "rows"},
			&cli.IntFlag{Name: "margin"},
			&cli.IntFlag{Name: "radius"},
			&cli.IntFlag{Name: "tolerance"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			got = Options(c, cfg)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), append([]string{"jigsaw"}, args...)); err != nil {
		t.Fatal(err)
	}
	return got
}

func TestOptionsFromConfig(t *testing.T) {
	cfg, err := gconf.NewConfig(filepath.Join(t.TempDir(), gconf.DefaultFile))
	if err != nil {
		t.Fatal(err)
	}
	cfg.CellW, cfg.Margin, cfg.HaloWidth = 120, 20, 2

	opts := optionsFor(t, cfg)
	if opts.Grid.CellW != 120 || opts.Grid.CellH != cfg.CellH || opts.Grid.Margin != 20 {
		t.Errorf("grid = %+v", opts.Grid)
	}
	if opts.Grid.Cols != 0 || opts.Grid.Rows != 0 {
		t.Errorf("counts set without flags: %+v", opts.Grid)
	}
	if opts.Style.HaloWidth != 2 || opts.Radius != cfg.Radius || opts.Tolerance != cfg.Tolerance {
		t.Errorf("options = %+v", opts)
	}
	if opts.Seed != 0 {
		t.Errorf("seed = %d", opts.Seed)
	}
}

func TestOptionsFlagsWin(t *testing.T) {
	cfg, err := gconf.NewConfig(filepath.Join(t.TempDir(), gconf.DefaultFile))
	if err != nil {
		t.Fatal(err)
	}
	opts := optionsFor(t, cfg,
		"--cols", "4", "--rows", "3", "--cell-w", "50", "--margin", "10",
		"--radius", "8", "--tolerance", "5", "--seed", "42")
	if opts.Grid.Cols != 4 || opts.Grid.Rows != 3 || opts.Grid.CellW != 50 || opts.Grid.Margin != 10 {
		t.Errorf("grid = %+v", opts.Grid)
	}
	if opts.Radius != 8 || opts.Tolerance != 5 || opts.Seed != 42 {
		t.Errorf("options = %+v", opts)
	}
}

func TestNegativeFlagsFailCreate(t *testing.T) {
	cfg, err := gconf.NewConfig(filepath.Join(t.TempDir(), gconf.DefaultFile))
	if err != nil {
		t.Fatal(err)
	}
	for _, arg := range []string{"--radius=-3", "--tolerance=-1"} {
		opts := optionsFor(t, cfg, arg)
		pb := src.NewPuzzleBuilder(logx.NewNopLogx())
		if _, err := pb.CreateFromImage(picture.Procedural(540, 360), opts); !errors.Is(err, src.ErrInvalidOptions) {
			t.Errorf("%s: err = %v, want ErrInvalidOptions", arg, err)
		}
	}
}
