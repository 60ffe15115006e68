package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreatePlayerWithDefaults(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreatePlayer("Ana")
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	if id != 1 {
		t.Errorf("first player id = %d, want 1", id)
	}

	settings, err := store.GetSettings(id)
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if settings == nil {
		t.Fatal("GetSettings() = nil, want default row")
	}
	if settings.Volume != 50 {
		t.Errorf("default volume = %d, want 50", settings.Volume)
	}
	if settings.Difficulty != "Normal" {
		t.Errorf("default difficulty = %q, want Normal", settings.Difficulty)
	}

	stats, err := store.PlayerStats(id)
	if err != nil {
		t.Fatalf("PlayerStats() error = %v", err)
	}
	if stats == nil {
		t.Fatal("PlayerStats() = nil, want zeroed row")
	}
	if stats.GamesPlayed != 0 || stats.TotalStars != 0 || stats.BestCombo != 0 || stats.BestTime != 0 {
		t.Errorf("new player stats not zeroed: %+v", stats)
	}
}

func TestCreatePlayerDuplicateName(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.CreatePlayer("Ana"); err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	_, err := store.CreatePlayer("Ana")
	if !errors.Is(err, ErrPlayerExists) {
		t.Errorf("duplicate CreatePlayer() error = %v, want ErrPlayerExists", err)
	}

	// The failed attempt must not leave partial rows behind.
	p, err := store.GetPlayer("Ana")
	if err != nil || p == nil {
		t.Fatalf("GetPlayer() = %v, %v", p, err)
	}
	if p.ID != 1 {
		t.Errorf("player id = %d, want 1", p.ID)
	}
}

func TestCreatePlayerEmptyName(t *testing.T) {
	store := newTestStore(t)

	_, err := store.CreatePlayer("")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("CreatePlayer(\"\") error = %v, want ErrEmptyName", err)
	}

	p, err := store.GetPlayer("")
	if err != nil {
		t.Fatalf("GetPlayer() error = %v", err)
	}
	if p != nil {
		t.Errorf("empty-name player row created: %+v", p)
	}
}

func TestGetPlayerMissing(t *testing.T) {
	store := newTestStore(t)

	p, err := store.GetPlayer("nobody")
	if err != nil {
		t.Fatalf("GetPlayer() error = %v", err)
	}
	if p != nil {
		t.Errorf("GetPlayer() = %+v, want nil for missing player", p)
	}
}

func TestDeletePlayerCascades(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreatePlayer("Ana")
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	if err := store.SaveScore(id, 500, 1, 30, 4, 2); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}

	if err := store.DeletePlayer(id); err != nil {
		t.Fatalf("DeletePlayer() error = %v", err)
	}

	if p, _ := store.GetPlayer("Ana"); p != nil {
		t.Error("player still present after delete")
	}
	if st, _ := store.GetSettings(id); st != nil {
		t.Error("settings row survived player delete")
	}
	if st, _ := store.PlayerStats(id); st != nil {
		t.Error("stats row survived player delete")
	}
	rows, err := store.Leaderboard(0, 10)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("scores survived player delete: %d rows", len(rows))
	}

	if err := store.DeletePlayer(id); !errors.Is(err, ErrNoSuchPlayer) {
		t.Errorf("second DeletePlayer() error = %v, want ErrNoSuchPlayer", err)
	}
}

func TestSaveScoreMissingPlayer(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveScore(42, 100, 1, 10, 0, 0)
	if !errors.Is(err, ErrNoSuchPlayer) {
		t.Errorf("SaveScore() error = %v, want ErrNoSuchPlayer", err)
	}
}

func TestLeaderboardOrderingAndFilter(t *testing.T) {
	store := newTestStore(t)

	ana, _ := store.CreatePlayer("Ana")
	bob, _ := store.CreatePlayer("Bob")

	// Interleaved inserts; ties must come back in insertion order.
	for _, e := range []struct {
		player int64
		score  int
		level  int
	}{
		{ana, 900, 1},
		{bob, 1500, 2},
		{ana, 1500, 2},
		{bob, 300, 1},
		{ana, 2100, 3},
	} {
		if err := store.SaveScore(e.player, e.score, e.level, 60, 0, 0); err != nil {
			t.Fatalf("SaveScore() error = %v", err)
		}
	}

	rows, err := store.Leaderboard(0, 10)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	wantScores := []int{2100, 1500, 1500, 900, 300}
	if len(rows) != len(wantScores) {
		t.Fatalf("Leaderboard() returned %d rows, want %d", len(rows), len(wantScores))
	}
	for i, w := range wantScores {
		if rows[i].Score != w {
			t.Errorf("rows[%d].Score = %d, want %d", i, rows[i].Score, w)
		}
	}
	// Bob saved 1500 before Ana did.
	if rows[1].PlayerName != "Bob" || rows[2].PlayerName != "Ana" {
		t.Errorf("tie order = %s, %s; want Bob, Ana", rows[1].PlayerName, rows[2].PlayerName)
	}

	level2, err := store.Leaderboard(2, 10)
	if err != nil {
		t.Fatalf("Leaderboard(2) error = %v", err)
	}
	if len(level2) != 2 {
		t.Fatalf("Leaderboard(2) returned %d rows, want 2", len(level2))
	}
	for _, r := range level2 {
		if r.Level != 2 {
			t.Errorf("level filter leaked level %d row", r.Level)
		}
	}

	limited, err := store.Leaderboard(0, 2)
	if err != nil {
		t.Fatalf("Leaderboard() error = %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d rows", len(limited))
	}
}

func TestUpdateStatisticsAccumulates(t *testing.T) {
	store := newTestStore(t)

	id, _ := store.CreatePlayer("Ana")

	if err := store.UpdateStatistics(id, 1, 5, 3, 42); err != nil {
		t.Fatalf("UpdateStatistics() error = %v", err)
	}
	if err := store.UpdateStatistics(id, 1, 2, 2, 60); err != nil {
		t.Fatalf("UpdateStatistics() error = %v", err)
	}

	st, err := store.PlayerStats(id)
	if err != nil || st == nil {
		t.Fatalf("PlayerStats() = %v, %v", st, err)
	}
	if st.GamesPlayed != 2 {
		t.Errorf("GamesPlayed = %d, want 2", st.GamesPlayed)
	}
	if st.TotalStars != 7 {
		t.Errorf("TotalStars = %d, want 7", st.TotalStars)
	}
	if st.BestCombo != 3 {
		t.Errorf("BestCombo = %d, want 3 (maximum, not sum)", st.BestCombo)
	}
	if st.BestTime != 60 {
		t.Errorf("BestTime = %d, want 60", st.BestTime)
	}

	// Zero deltas leave everything untouched.
	if err := store.UpdateStatistics(id, 0, 0, 0, 0); err != nil {
		t.Fatalf("UpdateStatistics() error = %v", err)
	}
	again, _ := store.PlayerStats(id)
	if *again != *st {
		t.Errorf("zero update changed stats: %+v -> %+v", st, again)
	}

	if err := store.UpdateStatistics(999, 1, 0, 0, 0); !errors.Is(err, ErrNoSuchPlayer) {
		t.Errorf("UpdateStatistics(missing) error = %v, want ErrNoSuchPlayer", err)
	}
}

func TestMissionLifecycle(t *testing.T) {
	store := newTestStore(t)

	id, err := store.CreateMission("Collect 10 stars", 10, "")
	if err != nil {
		t.Fatalf("CreateMission() error = %v", err)
	}

	missions, err := store.ActiveMissions()
	if err != nil {
		t.Fatalf("ActiveMissions() error = %v", err)
	}
	if len(missions) != 1 {
		t.Fatalf("ActiveMissions() returned %d missions, want 1", len(missions))
	}
	if missions[0].Kind != "daily" {
		t.Errorf("default kind = %q, want daily", missions[0].Kind)
	}

	if err := store.UpdateMissionProgress(id, 6); err != nil {
		t.Fatalf("UpdateMissionProgress() error = %v", err)
	}
	missions, _ = store.ActiveMissions()
	if len(missions) != 1 || missions[0].Progress != 6 {
		t.Fatalf("mission progress not persisted: %+v", missions)
	}
	if missions[0].Completed {
		t.Error("mission completed at 6/10")
	}

	// Crossing the target flips the flag in the same call.
	if err := store.UpdateMissionProgress(id, 5); err != nil {
		t.Fatalf("UpdateMissionProgress() error = %v", err)
	}
	missions, _ = store.ActiveMissions()
	if len(missions) != 0 {
		t.Errorf("completed mission still listed as active: %+v", missions)
	}

	// Further progress never unflips completion.
	if err := store.UpdateMissionProgress(id, 1); err != nil {
		t.Fatalf("UpdateMissionProgress() error = %v", err)
	}
	missions, _ = store.ActiveMissions()
	if len(missions) != 0 {
		t.Error("completed mission reappeared after extra progress")
	}

	if err := store.UpdateMissionProgress(999, 1); !errors.Is(err, ErrNoSuchMission) {
		t.Errorf("UpdateMissionProgress(missing) error = %v, want ErrNoSuchMission", err)
	}
}

func TestUpdateSettingsPartial(t *testing.T) {
	store := newTestStore(t)

	id, _ := store.CreatePlayer("Ana")

	vol := 80
	if err := store.UpdateSettings(id, &vol, nil); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}
	st, _ := store.GetSettings(id)
	if st.Volume != 80 {
		t.Errorf("Volume = %d, want 80", st.Volume)
	}
	if st.Difficulty != "Normal" {
		t.Errorf("partial update touched difficulty: %q", st.Difficulty)
	}

	diff := "Hard"
	if err := store.UpdateSettings(id, nil, &diff); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}
	st, _ = store.GetSettings(id)
	if st.Volume != 80 || st.Difficulty != "Hard" {
		t.Errorf("settings = %+v, want volume 80 difficulty Hard", st)
	}

	// Both nil is a no-op, including for missing players.
	if err := store.UpdateSettings(999, nil, nil); err != nil {
		t.Errorf("UpdateSettings(nil, nil) error = %v, want nil", err)
	}

	if err := store.UpdateSettings(999, &vol, nil); !errors.Is(err, ErrNoSuchPlayer) {
		t.Errorf("UpdateSettings(missing) error = %v, want ErrNoSuchPlayer", err)
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	id, err := store.CreatePlayer("Ana")
	if err != nil {
		t.Fatalf("CreatePlayer() error = %v", err)
	}
	if err := store.SaveScore(id, 1200, 2, 90, 6, 3); err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	p, err := reopened.GetPlayer("Ana")
	if err != nil || p == nil {
		t.Fatalf("GetPlayer() after reopen = %v, %v", p, err)
	}
	rows, err := reopened.Leaderboard(0, 10)
	if err != nil {
		t.Fatalf("Leaderboard() after reopen error = %v", err)
	}
	if len(rows) != 1 || rows[0].Score != 1200 {
		t.Errorf("scores not persisted across reopen: %+v", rows)
	}
}
