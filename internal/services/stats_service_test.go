// internal/services/stats_service_test.go
package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Counters(t *testing.T) {
	stats := NewStatsService()

	stats.RecordGeneration(8, 9)
	stats.RecordGeneration(3, 4)
	stats.RecordFailure()

	snapshot := stats.GetStats()
	assert.Equal(t, 3, snapshot.TotalRequests)
	assert.Equal(t, 2, snapshot.TotalScripts)
	assert.Equal(t, 1, snapshot.FailedRequests)
	assert.Equal(t, 11, snapshot.DialogueBlocks)
	assert.Equal(t, 13, snapshot.ActionBlocks)
	assert.False(t, snapshot.LastGeneratedAt.IsZero())

	today := time.Now().Format("2006-01-02")
	assert.Equal(t, 2, snapshot.DailyStats[today])
}

func TestStatsService_SnapshotIsCopy(t *testing.T) {
	stats := NewStatsService()
	stats.RecordGeneration(1, 2)

	snapshot := stats.GetStats()
	today := time.Now().Format("2006-01-02")
	snapshot.DailyStats[today] = 99

	assert.Equal(t, 1, stats.GetStats().DailyStats[today])
}

func TestStatsService_ConcurrentRecording(t *testing.T) {
	stats := NewStatsService()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.RecordGeneration(1, 1)
		}()
	}
	wg.Wait()

	snapshot := stats.GetStats()
	assert.Equal(t, 50, snapshot.TotalScripts)
	assert.Equal(t, 50, snapshot.DialogueBlocks)
}
