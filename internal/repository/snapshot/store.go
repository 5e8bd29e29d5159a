// Package snapshot keeps every domain collection in memory and persists
// them together as a single JSON document in a kvstore.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/grofast/portal-backend-go/internal/domain/appointment"
	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/chat"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
)

// DefaultKey is the kv key holding the persisted snapshot.
const DefaultKey = "grofast_data"

var ErrRecordNotFound = errors.New("record not found")

// Snapshot is the persisted layout: exactly nine top-level collections.
type Snapshot struct {
	Teams         []team.Team               `json:"teams"`
	Attendance    []attendance.Attendance   `json:"attendance"`
	LeaveRequests []leave.LeaveRequest      `json:"leaveRequests"`
	WorkUpdates   []workupdate.WorkUpdate   `json:"workUpdates"`
	Learning      []learning.Entry          `json:"learning"`
	Appointments  []appointment.Appointment `json:"appointments"`
	Meetings      []meeting.Meeting         `json:"meetings"`
	Messages      []chat.Message            `json:"messages"`
	Chats         []chat.Chat               `json:"chats"`
}

// Clone copies every collection slice so the result shares no backing
// arrays with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Teams:         slices.Clone(s.Teams),
		Attendance:    slices.Clone(s.Attendance),
		LeaveRequests: slices.Clone(s.LeaveRequests),
		WorkUpdates:   slices.Clone(s.WorkUpdates),
		Learning:      slices.Clone(s.Learning),
		Appointments:  slices.Clone(s.Appointments),
		Meetings:      slices.Clone(s.Meetings),
		Messages:      slices.Clone(s.Messages),
		Chats:         slices.Clone(s.Chats),
	}
}

// Store serialises all mutations and writes the whole snapshot after each.
type Store struct {
	mu   sync.RWMutex
	kv   kvstore.Store
	key  string
	data Snapshot
}

// Open loads the snapshot under key. A missing key yields seed; a malformed
// document or collection is logged and replaced by its seed counterpart.
// Only a backend failure is returned as an error.
func Open(ctx context.Context, kv kvstore.Store, key string, seed Snapshot) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}

	s := &Store{kv: kv, key: key, data: seed.Clone()}

	raw, err := kv.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		slog.Info("no persisted snapshot, using seed data", "key", key)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	s.data = decode(raw, s.data)
	return s, nil
}

func decode(raw []byte, seed Snapshot) Snapshot {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		slog.Warn("discarding malformed snapshot", "error", err)
		return seed
	}

	out := seed
	decodeCollection(fields, "teams", &out.Teams)
	decodeCollection(fields, "attendance", &out.Attendance)
	decodeCollection(fields, "leaveRequests", &out.LeaveRequests)
	decodeCollection(fields, "workUpdates", &out.WorkUpdates)
	decodeCollection(fields, "learning", &out.Learning)
	decodeCollection(fields, "appointments", &out.Appointments)
	decodeCollection(fields, "meetings", &out.Meetings)
	decodeCollection(fields, "messages", &out.Messages)
	decodeCollection(fields, "chats", &out.Chats)
	return out
}

func decodeCollection[T any](fields map[string]json.RawMessage, name string, dst *[]T) {
	raw, ok := fields[name]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return
	}

	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Warn("discarding malformed collection", "collection", name, "error", err)
		return
	}
	if v == nil {
		v = []T{}
	}
	*dst = v
}

// Snapshot returns a copy of the current collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// view runs fn under the read lock. fn must not retain slices.
func (s *Store) view(fn func(data *Snapshot)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.data)
}

// update applies fn and persists the result. fn must replace, not modify
// in place, any slice it changes. If fn or the write fails the in-memory
// state is restored.
func (s *Store) update(ctx context.Context, fn func(data *Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.data
	if err := fn(&s.data); err != nil {
		s.data = prev
		return err
	}
	if err := s.persistLocked(ctx); err != nil {
		s.data = prev
		return err
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, raw, 0); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
