/* main.go
 * The "main" method for running the bot and web server. For details about the bot see `readme.md`
 * Usage: go run . -tournament="<name>" -mode="both" -test="false"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"swiss-tournament/api/api"
	"swiss-tournament/api/store"
	"swiss-tournament/bot"
	"swiss-tournament/web"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using process environment")
	}

	//Flags
	tournamentPtr := flag.String("tournament", "swiss_open", "Name of the tournament, players and matches are scoped to it")
	modePtr := flag.String("mode", "both", "What to run: bot, web or both")
	addrPtr := flag.String("addr", envOr("HTTP_ADDR", ":8080"), "Address for the HTTP server")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	flag.Parse()

	if err := run(*tournamentPtr, *modePtr, *addrPtr, *testPtr); err != nil {
		log.Fatal(err)
	}
	log.Println("shutting down")
}

// run wires the store, bot and web server together and blocks until they stop or the process is interrupted.
// Everything that can fail before connecting to mongo is checked first so a bad invocation never opens a connection
func run(tournament string, mode string, addr string, test string) error {
	useBeta, err := convertStrToBool(test)
	if err != nil {
		return fmt.Errorf("invalid \"test\" flag %q, should be true or false", test)
	}
	runBot, runWeb, err := parseMode(mode)
	if err != nil {
		return err
	}

	var b *bot.Bot
	if runBot {
		discordToken := os.Getenv("DISCORD_PROD_TOKEN")
		if useBeta {
			discordToken = os.Getenv("DISCORD_BETA_TOKEN")
		}
		b, err = bot.NewBot(discordToken, nil, parseAdminIDs(os.Getenv("ADMIN_IDS"))...)
		if err != nil {
			return fmt.Errorf("failed to initialize bot: %w", err)
		}
	}

	a, err := api.NewAPI(envOr("DB_NAME", "tournament"), os.Getenv("MONGO_URI"), tournament)
	if err != nil {
		return fmt.Errorf("failed to initialize API: %w", err)
	}
	defer func() {
		if err := a.Store.GetClient().Disconnect(context.TODO()); err != nil {
			log.Println("failed to disconnect from mongo:", err)
		}
	}()
	if s, ok := a.Store.(*store.Store); ok {
		if err := s.EnsureIndexes(); err != nil {
			log.Println(err)
		}
	}
	if info, err := a.TournamentInfo(); err != nil {
		log.Println(err)
	} else {
		log.Println(strings.Join(info, ", "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	if b != nil {
		b.APIPtr = a
		g.Go(func() error {
			return b.Run(ctx)
		})
	}
	if runWeb {
		g.Go(func() error {
			return web.Start(ctx, web.Config{Addr: addr, API: a})
		})
	}
	return g.Wait()
}
