package main

import (
	"flag"
	"log"

	"github.com/webaplicationjsx/warehouse-backend/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to a .env configuration file; environment variables take precedence")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		log.Fatalln(err)
	}
}
