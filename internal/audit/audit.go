// Package audit records every administrative action mediated by the gateway.
// Recording is best effort: a failed write is logged and never surfaced to
// the admin, since the underlying operation already completed.
package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/carbazaar/admin-gateway/internal/config"
)

var ErrEntryNotFound = errors.New("audit entry not found")

type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailure  Outcome = "failure"
	OutcomeCanceled Outcome = "canceled"
	OutcomePartial  Outcome = "partial"
)

type Entry struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ActorEmail string    `json:"actor_email" gorm:"index"`
	Entity     string    `json:"entity" gorm:"index"`
	Action     string    `json:"action"`
	RecordID   string    `json:"record_id"`
	Outcome    Outcome   `json:"outcome"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type Recorder interface {
	Record(ctx context.Context, entry Entry) error
	ListRecent(ctx context.Context, limit int) ([]Entry, error)
}

func BuildDSN(cfg config.AuditConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}

type GormRecorder struct {
	db *gorm.DB
}

func NewPostgresRecorder(dsn string) (*GormRecorder, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewGormRecorder(db)
}

func NewGormRecorder(db *gorm.DB) (*GormRecorder, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &GormRecorder{db: db}, nil
}

func (r *GormRecorder) Record(ctx context.Context, entry Entry) error {
	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *GormRecorder) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	if err := r.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type MemoryRecorder struct {
	mu      sync.Mutex
	nextID  uint
	entries []Entry
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{nextID: 1}
}

func (r *MemoryRecorder) Record(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *MemoryRecorder) ListRecent(ctx context.Context, limit int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
