// Command mcstatus pings servers and prints what they report.
//
//	mcstatus -addr play.example.com:25565
//	mcstatus -discover -config mcproto.toml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/gstoney/mcproto/client"
	"github.com/gstoney/mcproto/internal/config"
	"github.com/gstoney/mcproto/internal/discovery"
)

func main() {
	addr := flag.String("addr", "localhost:25565", "server address (host:port)")
	proto := flag.Int("proto", 755, "protocol version")
	discover := flag.Bool("discover", false, "ping every EC2 instance matching the discovery config")
	cfgPath := flag.String("config", "", "config file")
	timeout := flag.Duration("timeout", 5*time.Second, "per server timeout")
	parallel := flag.Int("parallel", 8, "servers pinged at once")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcstatus: %v\n", err)
		os.Exit(1)
	}
	config.InitLogger(cfg.LogLevel, true)

	ctx := context.Background()

	targets := []discovery.Target{{Addr: *addr}}
	if *discover {
		f, err := discovery.New(ctx, cfg.Discovery)
		if err != nil {
			log.Fatal().Err(err).Msg("discovery setup failed")
		}
		if targets, err = f.Targets(ctx); err != nil {
			log.Fatal().Err(err).Msg("discovery failed")
		}
		log.Info().Int("targets", len(targets)).Msg("discovered")
	}

	var mu sync.Mutex
	rows := make([][]string, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*parallel)
	for i, target := range targets {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(gctx, *timeout)
			defer cancel()

			res, err := client.Ping(pctx, target.Addr, int32(*proto))

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Str("addr", target.Addr).Msg("ping failed")
				rows[i] = []string{target.Addr, target.Name, "-", "-", "-", err.Error()}
				return nil
			}
			st := res.Status
			rows[i] = []string{
				target.Addr,
				target.Name,
				fmt.Sprintf("%s (%d)", st.Version.Name, st.Version.Protocol),
				fmt.Sprintf("%d/%d", st.Players.Online, st.Players.Max),
				strconv.FormatInt(res.Latency.Milliseconds(), 10) + "ms",
				st.Description.String(),
			}
			return nil
		})
	}
	g.Wait()

	tw := tablewriter.NewWriter(os.Stdout)
	tw.SetHeader([]string{"Address", "Name", "Version", "Players", "Ping", "Description"})
	tw.SetAutoWrapText(false)
	tw.AppendBulk(rows)
	tw.Render()
}
