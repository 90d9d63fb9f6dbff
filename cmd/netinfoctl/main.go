// netinfoctl probes the host's network identity once and prints it, for use
// over SSH when the web page itself is unreachable.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raveberry/netinfo-agent/internal/constants"
	"github.com/raveberry/netinfo-agent/internal/domains/netprobe"
	"github.com/raveberry/netinfo-agent/internal/domains/qrsvg"
	"github.com/raveberry/netinfo-agent/internal/domains/shell"
)

func main() {
	var (
		iwgetidPath    = flag.String("iwgetid", constants.DefaultIwgetidExecutable, "path to the iwgetid executable")
		passwordHelper = flag.String("password-helper", constants.DefaultPasswordHelperPath, "path to the privileged password helper")
		showPayloads   = flag.Bool("payloads", false, "also print the QR payload strings")
		debug          = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	probeService := netprobe.NewService(shell.NewService(), *iwgetidPath, *passwordHelper)
	facts, err := probeService.Probe()
	if err != nil {
		log.Fatal().Err(err).Msg("network probe failed")
	}

	printFacts(facts)
	if *showPayloads {
		printPayloads(facts)
	}
}

func printFacts(facts netprobe.NetworkFacts) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendRow(table.Row{"default device", facts.DefaultDevice})
	t.AppendRow(table.Row{"ip", facts.IP})
	t.AppendRow(table.Row{"wifi active", facts.Wifi.Active})
	if facts.Wifi.Active {
		t.AppendRow(table.Row{"ssid", facts.Wifi.SSID})
		if facts.Wifi.PasswordSet {
			t.AppendRow(table.Row{"password", facts.Wifi.Password})
		} else {
			t.AppendRow(table.Row{"password", "(not stored)"})
		}
	}

	t.Render()
}

func printPayloads(facts netprobe.NetworkFacts) {
	fmt.Println("url payload: ", qrsvg.URLPayload(facts.IP))
	if facts.Wifi.Active {
		fmt.Println("wifi payload:", qrsvg.WifiPayload(qrsvg.WifiCredentials{
			SSID:        facts.Wifi.SSID,
			Password:    facts.Wifi.Password,
			PasswordSet: facts.Wifi.PasswordSet,
		}))
	}
}
