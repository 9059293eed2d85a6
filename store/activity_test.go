package store

import (
	"testing"
	"time"

	"recipe-planner-api/models"
)

func TestActivityLogs_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	user := mustCreateUser(t, s, "chef")

	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	for i, action := range []string{"user_registered", "recipe_created", "favorite_added"} {
		entry := &models.ActivityLog{UserID: user.ID, Action: action, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := s.CreateActivityLog(entry); err != nil {
			t.Fatalf("CreateActivityLog: %v", err)
		}
	}

	entries, err := s.GetActivityLogs(user.ID)
	if err != nil {
		t.Fatalf("GetActivityLogs: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Action != "favorite_added" || entries[2].Action != "user_registered" {
		t.Fatalf("entries not newest first: %+v", entries)
	}
}
