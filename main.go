package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	agentsx "tripdesigner/agent/agents"
	orchestratorx "tripdesigner/agent/agents/orchestrator"
	statex "tripdesigner/agent/state"
	toolx "tripdesigner/agent/tool"
	configx "tripdesigner/pkg/config"
	groqx "tripdesigner/pkg/groq"
	_ "tripdesigner/pkg/logger/autoload"
	serpapix "tripdesigner/pkg/serpapi"
)

func main() {
	groqCfg, groqErr := configx.New[groqx.Config]("GROQ")
	serpCfg, serpErr := configx.New[serpapix.Config]("SERPAPI")
	if groqErr != nil || serpErr != nil {
		fmt.Println("Please set GROQ_API_KEY and SERPAPI_API_KEY to start planning your trip.")
		os.Exit(1)
	}

	ctx := context.Background()

	registry, err := agentsx.NewRegistry(ctx, *groqCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize model registry")
	}

	searchClient := serpapix.MustNew(*serpCfg)
	flights := toolx.NewFlightFinder(searchClient, time.Now)
	hotels := toolx.NewHotelFinder(searchClient, time.Now)
	store := statex.NewMemoryStore()

	orch, err := orchestratorx.New(store, registry, flights, hotels)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize orchestrator")
	}

	sessionID := fmt.Sprintf("session-%d", time.Now().Unix())
	defer func() {
		if err := orch.EndSession(context.Background(), sessionID); err != nil {
			log.Warn().Err(err).Msg("end session")
		}
	}()

	fmt.Println("📜 AI Trip Designer (type 'exit' to quit)")
	greeting, err := orch.Greeting(ctx, sessionID)
	if err != nil {
		log.Fatal().Err(err).Msg("open session")
	}
	fmt.Println("assistant> " + greeting)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			fmt.Println("assistant> Have a great trip!")
			break
		}

		reply, err := orch.HandleMessage(ctx, sessionID, line)
		if err != nil {
			log.Error().Err(err).Msg("handle message")
			fmt.Println("assistant> Something went wrong with that turn. Please try again.")
			continue
		}
		fmt.Println("assistant> " + reply)
	}
}
