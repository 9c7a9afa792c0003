package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/yungbote/gigifypro-backend/internal/app"
)

type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }
func (l *idList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

func main() {
	var profiles idList
	var dryRun bool
	var concurrency int
	flag.Var(&profiles, "profile", "profile id to recompute (repeatable, default all)")
	flag.BoolVar(&dryRun, "dry-run", false, "print computed totals without persisting")
	flag.IntVar(&concurrency, "concurrency", 0, "parallel profiles (default recompute_concurrency)")
	flag.Parse()

	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Printf("load config: %v\n", err)
		os.Exit(1)
	}
	if concurrency > 0 {
		cfg.RecomputeConcurrency = concurrency
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close(context.Background())

	gigscore := application.Services.GigScore

	if len(profiles) == 0 && !dryRun {
		summary, err := gigscore.RecomputeAll(ctx, cfg.RecomputeConcurrency)
		fmt.Printf("profiles=%d updated=%d failed=%d\n", summary.Profiles, summary.Updated, summary.Failed)
		if err != nil {
			fmt.Printf("recompute: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ids := make([]uuid.UUID, 0, len(profiles))
	if len(profiles) == 0 {
		ids, err = application.Repos.Profile.ListIDs(ctx, nil)
		if err != nil {
			fmt.Printf("list profiles: %v\n", err)
			os.Exit(1)
		}
	}
	for _, raw := range profiles {
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			fmt.Printf("skipping invalid profile id %q\n", raw)
			continue
		}
		ids = append(ids, id)
	}

	failed := 0
	for _, id := range ids {
		if dryRun {
			b, err := gigscore.Calculate(ctx, id)
			if err != nil {
				failed++
				fmt.Printf("profile=%s error=%v\n", id, err)
				continue
			}
			fmt.Printf("profile=%s total=%d (dry run)\n", id, b.TotalScore)
			continue
		}
		b, err := gigscore.Update(ctx, id)
		if err != nil {
			failed++
			fmt.Printf("profile=%s error=%v\n", id, err)
			continue
		}
		fmt.Printf("profile=%s total=%d\n", id, b.TotalScore)
	}
	if failed > 0 {
		os.Exit(1)
	}
}
