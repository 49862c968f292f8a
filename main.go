package main

import (
	"errors"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"

	"github.com/DCal661/league-of-misfits/backend"
	"github.com/DCal661/league-of-misfits/chat"
	"github.com/DCal661/league-of-misfits/controller"
	"github.com/DCal661/league-of-misfits/model"
	"github.com/DCal661/league-of-misfits/sleeper"
	"github.com/DCal661/league-of-misfits/web"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	cfg := controller.Config{
		LeagueID: os.Getenv("LEAGUE_ID"),
		Source:   os.Getenv("DATA_SOURCE"),
	}
	if cfg.Source == "" {
		cfg.Source = model.SourceSleeper
	}

	clock := clock.New()

	sleeperClient, err := sleeper.New()
	if err != nil {
		log.Fatalf("error creating sleeper client: %v", err)
	}

	var backendClient *backend.Client
	if cfg.Source == model.SourceBackend {
		backendClient, err = backend.New(os.Getenv("BACKEND_URL"))
		if err != nil {
			log.Fatalf("error creating backend client: %v", err)
		}
	}

	chatProvider := newChatProvider()

	ctrl, err := controller.New(clock, sleeperClient, backendClient, chatProvider, cfg)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the league snapshot in the background.
	wg.Add(1)
	go ctrl.RunPeriodicRefresh(refreshInterval(), shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info("server shutdown")
}

// newChatProvider picks the chat strategy: the Anthropic API when a key
// is configured, the canned generator otherwise.
func newChatProvider() chat.Provider {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		log.Info("no ANTHROPIC_API_KEY set, using canned chat replies")
		return chat.NewCanned()
	}

	claude, err := chat.NewClaude(apiKey)
	if err != nil {
		log.Fatalf("error creating chat client: %v", err)
	}
	return claude
}

func refreshInterval() time.Duration {
	interval := 15 * time.Minute
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("error parsing REFRESH_INTERVAL: %v", err)
		}
		interval = parsed
	}
	return interval
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
