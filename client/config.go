package main

import (
	"flag"
	"strconv"

	"github.com/HuXin0817/blokus-duo/pkg/models/model"
)

var (
	ServerAddrConf = flag.String("server", "127.0.0.1:8000", "serve address")
	GamesConf      = flag.String("games", "1", "number of selfplay games")
	RenderConf     = flag.String("Render", "On", "print the final board of each game")
	SeedConf       = flag.Int64("seed", 0, "selfplay random seed, 0 for time-based")

	Games  int
	Render model.Config
)

func initConfig() {
	flag.Parse()
	Render = model.NewConfig(*RenderConf)

	var err error
	Games, err = strconv.Atoi(*GamesConf)
	if err != nil {
		panic(err)
	}
}
