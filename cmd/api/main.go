package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/MoeSaid22/subnet-registry/docs"
	"github.com/MoeSaid22/subnet-registry/internal/app"
	"github.com/MoeSaid22/subnet-registry/internal/config"
)

//	@title			Subnet Registry API
//	@version		1.0
//	@description	IP subnet registry with first-match address lookup and CSV import.

//	@contact.name	API Support
//	@contact.url	http://www.swagger.io/support
//	@contact.email	support@swagger.io

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
