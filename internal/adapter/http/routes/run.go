package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"seguros_xpto/internal/adapter/http/handlers"
	"seguros_xpto/internal/infrastructure/config"
	"seguros_xpto/internal/infrastructure/proposals"
	"seguros_xpto/internal/usecase"
	"seguros_xpto/pkg/httpserver"
)

// RunProposalService wires and serves the proposal-service until SIGINT/SIGTERM.
func RunProposalService(cfg config.Config) error {
	ctx := context.Background()

	proposalRepo, closeRepo, err := newProposalRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	publisher, closePublisher := newAuditPublisher(cfg)
	defer closePublisher()

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase, publisher)

	return serve(NewProposalRouter(proposalHandler), cfg, "proposal")
}

// RunHiringService wires and serves the hiring-service until SIGINT/SIGTERM.
func RunHiringService(cfg config.Config) error {
	ctx := context.Background()

	hiringRepo, closeRepo, err := newHiringRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	publisher, closePublisher := newAuditPublisher(cfg)
	defer closePublisher()

	gateway := proposals.NewProposalHTTPGateway(cfg.ProposalServiceURL, cfg.ProposalServiceTimeout)
	log.Printf("[hiring][gateway] proposal service url=%s timeout=%s", cfg.ProposalServiceURL, cfg.ProposalServiceTimeout)

	hiringUseCase := usecase.NewHiringUseCase(hiringRepo, gateway)
	hiringHandler := handlers.NewHiringHandler(hiringUseCase, publisher)

	return serve(NewHiringRouter(hiringHandler), cfg, "hiring")
}

func serve(handler http.Handler, cfg config.Config, name string) error {
	server := httpserver.New(handler, cfg.Address(), cfg.ShutdownTimeout)
	log.Printf("[%s][server] listening addr=%s", name, cfg.Address())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	select {
	case s := <-interrupt:
		log.Printf("[%s][server] signal received: %s", name, s)
	case err := <-server.Notify():
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	if err := server.Shutdown(); err != nil {
		log.Printf("[%s][server] shutdown failed err=%v", name, err)
		return err
	}
	log.Printf("[%s][server] stopped", name)
	return nil
}
