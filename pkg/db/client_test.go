package db

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// the two-table shape mirrors the checkout write: a header row plus
// dependent line rows inside one transaction
type receiptHeader struct {
	ID    int
	Buyer string
}

type receiptLine struct {
	ID       int
	HeaderID int
	Label    string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&receiptHeader{}, &receiptLine{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func TestWithTxCommitsBothStages(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		header := receiptHeader{Buyer: "guardian-1"}
		if err := tx.Create(&header).Error; err != nil {
			return err
		}
		return tx.Create(&receiptLine{HeaderID: header.ID, Label: "pencils"}).Error
	})
	if err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}

	var headers, lines int64
	db.Model(&receiptHeader{}).Count(&headers)
	db.Model(&receiptLine{}).Count(&lines)
	if headers != 1 || lines != 1 {
		t.Fatalf("expected 1 header and 1 line, got %d/%d", headers, lines)
	}
}

func TestWithTxRollsBackHeaderWhenLinesFail(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}

	err := client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if err := tx.Create(&receiptHeader{Buyer: "guardian-2"}).Error; err != nil {
			return err
		}
		return errors.New("line insert failed")
	})
	if err == nil {
		t.Fatal("expected WithTx to surface the callback error")
	}

	var headers int64
	db.Model(&receiptHeader{}).Count(&headers)
	if headers != 0 {
		t.Fatalf("expected the header write rolled back, found %d rows", headers)
	}
}

func TestPing(t *testing.T) {
	db := newTestDB(t)
	client := &Client{conn: db}
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}
