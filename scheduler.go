package main

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler re-renders the chart for every favorited ticker after the
// market close, so the stable per-ticker chart URLs stay current.
type Scheduler struct {
	db     *Database
	market MarketClient
	charts ChartService
	cron   *cron.Cron
}

// NewScheduler creates a scheduler pinned to the Taiwan exchange timezone.
func NewScheduler(db *Database, market MarketClient, charts ChartService) (*Scheduler, error) {
	taipeiTZ, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		db:     db,
		market: market,
		charts: charts,
		cron:   cron.New(cron.WithLocation(taipeiTZ)),
	}, nil
}

// Start schedules the refresh for 15:30 Taipei time on trading weekdays.
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("30 15 * * 1-5", func() {
		log.Println("[Scheduler] Starting chart refresh after market close...")
		s.refreshCharts()
	})
	if err != nil {
		log.Printf("[Scheduler] Failed to schedule task: %v", err)
		return
	}

	s.cron.Start()
	log.Println("[Scheduler] Scheduler started - charts refresh weekdays at 15:30 Taipei time")
}

func (s *Scheduler) refreshCharts() {
	codes, err := s.db.AllFavoriteCodes()
	if err != nil {
		log.Printf("[Scheduler] Error getting favorite codes: %v", err)
		return
	}
	if len(codes) == 0 {
		log.Println("[Scheduler] No favorited stocks to refresh")
		return
	}

	log.Printf("[Scheduler] Refreshing charts for %d stocks...", len(codes))

	successCount := 0
	failCount := 0

	for _, code := range codes {
		points, err := s.market.FetchHistory(code)
		if err != nil {
			log.Printf("[Scheduler] Failed to fetch history for %s: %v", code, err)
			failCount++
			continue
		}
		if len(points) == 0 {
			log.Printf("[Scheduler] No data for %s, skipping", code)
			failCount++
			continue
		}

		if _, err := s.charts.Render(code, points); err != nil {
			log.Printf("[Scheduler] Failed to render chart for %s: %v", code, err)
			failCount++
			continue
		}
		successCount++

		// Small delay between requests to avoid rate limiting
		time.Sleep(1 * time.Second)
	}

	log.Printf("[Scheduler] Refresh completed: %d succeeded, %d failed", successCount, failCount)
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Scheduler] Scheduler stopped")
}
