package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/remote-assist-console/internal/domain"
	"github.com/bnema/remote-assist-console/internal/ports"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CommandRecord is one row of the outbox_commands table. Payload holds the
// full command as JSON; the other columns exist for querying.
type CommandRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	CommandID string    `gorm:"size:64;not null;uniqueIndex"`
	Kind      string    `gorm:"size:32;not null;index"`
	Scope     string    `gorm:"size:16;not null"`
	TicketID  string    `gorm:"size:64;index"`
	VehicleID string    `gorm:"size:64;index"`
	Reason    string    `gorm:"size:64"`
	Operator  string    `gorm:"size:64"`
	IssuedAt  time.Time `gorm:"index"`
	Payload   string    `gorm:"type:json;not null"`
	CreatedAt time.Time
}

func (CommandRecord) TableName() string {
	return "outbox_commands"
}

type Outbox struct {
	db *gorm.DB
}

var _ ports.CommandOutbox = (*Outbox)(nil)

// Open opens (creating if needed) the SQLite outbox at path.
func Open(path string) (*Outbox, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create outbox directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open outbox database: %w", err)
	}

	return New(db)
}

// New wraps an existing connection and migrates the outbox table.
func New(db *gorm.DB) (*Outbox, error) {
	if err := db.AutoMigrate(&CommandRecord{}); err != nil {
		return nil, fmt.Errorf("migrate outbox: %w", err)
	}

	return &Outbox{db: db}, nil
}

func (o *Outbox) Send(ctx context.Context, cmd domain.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("encode command %s: %w", cmd.ID, err)
	}

	record := CommandRecord{
		CommandID: cmd.ID,
		Kind:      string(cmd.Kind),
		Scope:     string(cmd.Scope),
		TicketID:  string(cmd.TicketID),
		VehicleID: string(cmd.VehicleID),
		Reason:    string(cmd.Reason),
		Operator:  cmd.Operator,
		IssuedAt:  cmd.IssuedAt.UTC(),
		Payload:   string(payload),
	}
	if err := o.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("insert command %s: %w", cmd.ID, err)
	}

	return nil
}

func (o *Outbox) List(ctx context.Context) ([]domain.Command, error) {
	var records []CommandRecord
	if err := o.db.WithContext(ctx).Order("issued_at ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list outbox: %w", err)
	}

	commands := make([]domain.Command, 0, len(records))
	for _, record := range records {
		var cmd domain.Command
		if err := json.Unmarshal([]byte(record.Payload), &cmd); err != nil {
			return nil, fmt.Errorf("decode command %s: %w", record.CommandID, err)
		}
		commands = append(commands, cmd)
	}

	return commands, nil
}

// CountByKind reports how many commands of each kind the outbox holds.
func (o *Outbox) CountByKind(ctx context.Context) (map[domain.CommandKind]int64, error) {
	var rows []struct {
		Kind  string
		Count int64
	}
	err := o.db.WithContext(ctx).
		Model(&CommandRecord{}).
		Select("kind, COUNT(*) AS count").
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count outbox: %w", err)
	}

	counts := make(map[domain.CommandKind]int64, len(rows))
	for _, row := range rows {
		counts[domain.CommandKind(row.Kind)] = row.Count
	}
	return counts, nil
}

func (o *Outbox) Close() error {
	sqlDB, err := o.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
