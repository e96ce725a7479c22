package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/Scrimzay/icefall/internal/config"
	"github.com/Scrimzay/icefall/internal/server"
	"github.com/Scrimzay/icefall/internal/world"
)

func main() {
	log.Println("=== STARTING ICEFALL ===")

	cfg, err := config.Parse()
	if err != nil {
		log.Fatal("Config error:", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	log.Println("Creating world...")
	gameWorld, err := world.New(rng, cfg.Tune)
	if err != nil {
		log.Fatal("World error:", err)
	}
	if cfg.Layout != world.DefaultLayout {
		if err := gameWorld.InitMap(cfg.Layout); err != nil {
			log.Fatal("World error:", err)
		}
	}

	log.Println("Starting broadcaster...")
	broadcaster := world.NewBroadcaster(gameWorld)
	go broadcaster.Run()

	r := server.SetupRouter(broadcaster, gameWorld)
	log.Printf("Server starting at port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
