package gconf

import (
	"encoding/json"
	"fmt"
	"os"

	"jigsaw/src/logic/carve"
	"jigsaw/src/logic/grid"
	"jigsaw/src/logic/snap"
)

const DefaultFile = "jigsaw.json"

type Config struct {
	Theme     string `json:"theme"`      // light/dark
	Lang      string `json:"language"`   // name of a language pack
	WindowH   int    `json:"window_h"`   //
	WindowW   int    `json:"window_w"`   //
	CellW     int    `json:"cell_w"`     // piece body width
	CellH     int    `json:"cell_h"`     // piece body height
	Margin    int    `json:"margin"`     // room for tabs around a piece
	Radius    int    `json:"radius"`     // base tab radius
	Tolerance int    `json:"tolerance"`  // snap distance per axis
	HaloWidth int    `json:"halo_width"` //
	LastImage string `json:"last_image"` // path of the last opened picture
	Debug     bool   `json:"debug"`      // true/false

	file string
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		Lang:      "en",
		WindowH:   700,
		WindowW:   1000,
		CellW:     grid.DefaultCellW,
		CellH:     grid.DefaultCellH,
		Margin:    grid.DefaultMargin,
		Radius:    carve.DefaultRadius,
		Tolerance: snap.DefaultTolerance,
		HaloWidth: 1,
		Debug:     false,
	}
}

// NewConfig reads file, or returns the defaults when it does not exist.
func NewConfig(file string) (*Config, error) {
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.file = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.file = file

	return &c, nil
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.file, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang == "" {
		c.Lang = def.Lang
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
	if c.CellW <= 0 || c.CellH <= 0 {
		c.CellW = def.CellW
		c.CellH = def.CellH
	}
	if c.Margin < 0 {
		c.Margin = def.Margin
	}
	if c.Radius <= 0 {
		c.Radius = def.Radius
	}
	if c.Tolerance < 0 {
		c.Tolerance = def.Tolerance
	}
	if c.HaloWidth < 1 {
		c.HaloWidth = def.HaloWidth
	}
	if c.LastImage != "" {
		if _, err := os.Stat(c.LastImage); err != nil {
			c.LastImage = ""
		}
	}
}
