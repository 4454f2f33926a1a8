package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormStore is a Store backed by GORM.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn, migrates the users table and
// returns a ready store. Use ":memory:" for an ephemeral database.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("user: open database: %w", err)
	}
	// SQLite is single-writer; one pooled connection also keeps :memory:
	// databases from splitting across connections.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("user: database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("user: migrate: %w", err)
	}
	return NewGormStore(db), nil
}

// NewGormStore wraps an existing GORM handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindByUsername returns the user with the exact username, or (nil, nil).
func (s *GormStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user: find %q: %w", username, err)
	}
	return &u, nil
}

// FindByID returns the user with the given id, or (nil, nil).
func (s *GormStore) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user: find id %d: %w", id, err)
	}
	return &u, nil
}

// Create persists a new user record.
func (s *GormStore) Create(ctx context.Context, username, passwordHash, role string) (*User, error) {
	u := User{Username: username, PasswordHash: passwordHash, Role: role}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, fmt.Errorf("user: create %q: %w", username, err)
	}
	return &u, nil
}

var _ Store = (*GormStore)(nil)
