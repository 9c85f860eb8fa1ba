package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	drift "github.com/driftlabs/drift-go"
	"github.com/driftlabs/drift-go/adapters"
)

// drift-demo drives an in-memory page through navigations and custom events
// so the emitter's batching and delivery can be watched against a running
// collect endpoint (see cmd/collect-stub).
func main() {
	configPath := pflag.StringP("config", "c", "", "YAML config file")
	siteID := pflag.String("site", "demo_site", "site id (ignored when set in config)")
	endpoint := pflag.String("endpoint", "http://localhost:3001", "endpoint base")
	pflag.Parse()

	config, err := drift.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}
	if config.SiteID == "" {
		config.SiteID = *siteID
	}
	if config.EndpointBase == "" {
		config.EndpointBase = *endpoint
	}

	page := adapters.NewMemoryPage("/")
	beacon := adapters.NewBeaconAdapter(16)
	defer beacon.Close()

	config.Adapters.Environment = page
	config.Adapters.History = page
	config.Adapters.Router = page
	config.Adapters.Unload = page
	config.Adapters.Beacon = beacon
	config.Adapters.Logger = adapters.NewPrintLoggerAdapter(adapters.LogLevelDebug)

	emitter := drift.NewEmitter(config)
	emitter.Start()
	defer emitter.Close()

	fmt.Printf("drift demo — sending to %s\n", drift.CollectEndpoint(config.EndpointBase))
	fmt.Println("commands: nav <url> | back <url> | route <url> | track <name> | flush | unload | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "nav":
			page.Navigate(arg)
		case "back":
			page.Back(arg)
		case "route":
			page.RouteComplete(arg)
		case "track":
			emitter.Track(arg, map[string]any{"source": "demo"})
		case "flush":
			emitter.Flush()
		case "unload":
			page.Unload()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}
