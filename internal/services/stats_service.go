// internal/services/stats_service.go
package services

import (
	"sync"
	"time"
)

// UsageStats is a snapshot of generation counters.
type UsageStats struct {
	TotalRequests   int            `json:"total_requests"`
	TotalScripts    int            `json:"total_scripts"`
	FailedRequests  int            `json:"failed_requests"`
	DialogueBlocks  int            `json:"dialogue_blocks"`
	ActionBlocks    int            `json:"action_blocks"`
	DailyStats      map[string]int `json:"daily_stats"`
	LastGeneratedAt time.Time      `json:"last_generated_at,omitempty"`
}

// StatsService counts generation activity. Counters live in memory
// only; generated scripts themselves are never retained.
type StatsService struct {
	mutex sync.Mutex
	stats UsageStats
}

// NewStatsService creates a stats service with zeroed counters.
func NewStatsService() *StatsService {
	return &StatsService{
		stats: UsageStats{
			DailyStats: make(map[string]int),
		},
	}
}

// RecordGeneration counts one successful script with its block totals.
func (s *StatsService) RecordGeneration(dialogueBlocks, actionBlocks int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.stats.TotalRequests++
	s.stats.TotalScripts++
	s.stats.DialogueBlocks += dialogueBlocks
	s.stats.ActionBlocks += actionBlocks
	s.stats.LastGeneratedAt = time.Now()
	s.stats.DailyStats[time.Now().Format("2006-01-02")]++
}

// RecordFailure counts one failed generation request.
func (s *StatsService) RecordFailure() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.stats.TotalRequests++
	s.stats.FailedRequests++
}

// GetStats returns a copy of the current counters.
func (s *StatsService) GetStats() UsageStats {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot := s.stats
	snapshot.DailyStats = make(map[string]int, len(s.stats.DailyStats))
	for day, count := range s.stats.DailyStats {
		snapshot.DailyStats[day] = count
	}
	return snapshot
}
