package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"ammo-agent/internal/trace"
	"ammo-agent/internal/types"
)

func main() {
	var (
		symbol    = flag.String("symbol", "", "instrument symbol to analyze (default: from config)")
		timeFrame = flag.String("timeframe", "", "Daily, Weekly or 'Intraday (60min)' (default: from config)")
		cfgPath   = flag.String("config", "config.yaml", "path to the config file")
	)
	flag.Parse()

	ctx := context.Background()

	agent, cfg, err := bootstrap(ctx, *cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		sdCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = trace.Shutdown(sdCtx)
	}()

	sym := cfg.Symbol
	if *symbol != "" {
		sym = *symbol
	}
	tf := types.TimeFrame(cfg.TimeFrame)
	if *timeFrame != "" {
		tf = types.TimeFrame(*timeFrame)
	}

	result, err := agent.Analyze(ctx, sym, tf)
	if err != nil {
		out, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Println(string(out))
		os.Exit(1)
	}

	b, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(b))
}
