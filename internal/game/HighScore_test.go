package game

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestHighScoreService(t *testing.T) *HighScoreService {
	t.Helper()
	service, err := NewHighScoreService(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatalf("NewHighScoreService: %v", err)
	}
	t.Cleanup(func() { service.Close() })
	return service
}

func TestHighScoreServiceOrdersRounds(t *testing.T) {
	service := newTestHighScoreService(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, r := range []Round{
		{PlayerName: "ana", Score: 40, Length: 5, CreatedAt: created},
		{PlayerName: "bo", Score: 90, Length: 10, CreatedAt: created},
		{PlayerName: "cy", Score: 40, Length: 5, CreatedAt: created},
		{PlayerName: "di", Score: 10, Length: 2},
	} {
		if err := service.SaveRound(ctx, r); err != nil {
			t.Fatalf("SaveRound(%s): %v", r.PlayerName, err)
		}
	}

	top, err := service.TopRounds(ctx, 3, 0)
	if err != nil {
		t.Fatalf("TopRounds: %v", err)
	}
	var names []string
	for _, r := range top {
		names = append(names, r.PlayerName)
	}
	if len(names) != 3 || names[0] != "bo" || names[1] != "ana" || names[2] != "cy" {
		t.Fatalf("order = %v, want [bo ana cy]", names)
	}
	if !top[0].CreatedAt.Equal(created) {
		t.Fatalf("created_at = %v, want %v", top[0].CreatedAt, created)
	}

	page, err := service.TopRounds(ctx, 3, 3)
	if err != nil {
		t.Fatalf("TopRounds page 2: %v", err)
	}
	if len(page) != 1 || page[0].PlayerName != "di" {
		t.Fatalf("second page = %+v", page)
	}

	count, err := service.CountRounds(ctx)
	if err != nil || count != 4 {
		t.Fatalf("CountRounds = %d, %v; want 4", count, err)
	}
}

func TestHighScoreServiceEmpty(t *testing.T) {
	service := newTestHighScoreService(t)
	top, err := service.TopRounds(context.Background(), 10, 0)
	if err != nil || len(top) != 0 {
		t.Fatalf("TopRounds on empty table = %v, %v", top, err)
	}
}
