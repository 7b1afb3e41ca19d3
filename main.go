package main

import (
	"flag"
	"log"

	engine "github.com/Skario37/bubbles/bubble-engine"
	"github.com/Skario37/bubbles/terminal"
	"github.com/Skario37/bubbles/websocket"
	"github.com/Skario37/bubbles/window"
)

func main() {
	var (
		confPath  = flag.String("config", "", "TOML config file overriding the defaults")
		frontend  = flag.String("frontend", "", "window, terminal or web")
		mediumKey = flag.String("medium", "", "fluid medium: air or water")
		seed      = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	)
	flag.Parse()

	conf := DefaultConf
	if *confPath != "" {
		var err error
		conf, err = ParseConfig(*confPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *frontend != "" {
		conf.Frontend = *frontend
	}
	if *mediumKey != "" {
		conf.Medium = *mediumKey
	}
	if *seed != 0 {
		conf.Seed = *seed
	}

	base, err := engine.ParseMedium(conf.Medium)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	medium := engine.NewMedium(base.Kind, conf.Temperature, conf.Salinity)

	e := engine.NewEngine(medium, float64(conf.Width), float64(conf.Height), conf.Seed)
	e.CreateBubbles(conf.Count, conf.Size)

	switch conf.Frontend {
	case "window":
		if err := window.Run(e, "bubbles"); err != nil {
			log.Fatal(err)
		}
	case "terminal":
		if err := terminal.New().Run(e); err != nil {
			log.Fatal(err)
		}
	case "web":
		srv := websocket.NewServer(websocket.Params{
			Address: conf.Address,
			Prefix:  "/",
			Root:    conf.Root,
			FPS:     conf.FPS,
		})
		if err := srv.Run(e); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown frontend %q", conf.Frontend)
	}
}
