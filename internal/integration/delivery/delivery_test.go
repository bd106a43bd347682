package delivery

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

func TestDownloadDelivery(t *testing.T) {
	t.Run("confirms the outcome", func(t *testing.T) {
		d := NewDownloadDelivery()

		result, err := d.Deliver(context.Background(), []byte("payload"), "transactions.csv", "text/csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != adapter.DeliveryStatusDelivered {
			t.Errorf("expected delivered, got %s", result.Status)
		}
		if result.Method != MethodDownload {
			t.Errorf("expected method %s, got %s", MethodDownload, result.Method)
		}
	})

	t.Run("cancelled context reports a cancelled outcome", func(t *testing.T) {
		d := NewDownloadDelivery()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := d.Deliver(ctx, []byte("payload"), "transactions.csv", "text/csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != adapter.DeliveryStatusCancelled {
			t.Errorf("expected cancelled, got %s", result.Status)
		}
	})
}

func TestFilesystemDelivery(t *testing.T) {
	t.Run("writes the payload to the export directory", func(t *testing.T) {
		dir := t.TempDir()
		d := NewFilesystemDelivery(dir)
		payload := []byte("\"Date\",\"Type\"\n")

		result, err := d.Deliver(context.Background(), payload, "transactions.csv", "text/csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != adapter.DeliveryStatusDelivered {
			t.Errorf("expected delivered, got %s", result.Status)
		}
		if result.Method != MethodFilesystem {
			t.Errorf("expected method %s, got %s", MethodFilesystem, result.Method)
		}

		written, err := os.ReadFile(filepath.Join(dir, "transactions.csv"))
		if err != nil {
			t.Fatalf("failed to read written file: %v", err)
		}
		if !bytes.Equal(written, payload) {
			t.Errorf("written file differs from payload: %q", written)
		}
	})

	t.Run("creates missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "exports", "nested")
		d := NewFilesystemDelivery(dir)

		if _, err := d.Deliver(context.Background(), []byte("x"), "transactions.json", "application/json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "transactions.json")); err != nil {
			t.Errorf("expected file to exist: %v", err)
		}
	})

	t.Run("unwritable directory reports a delivery failure", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "occupied")
		if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		// The target directory path is an existing regular file.
		d := NewFilesystemDelivery(file)
		_, err := d.Deliver(context.Background(), []byte("x"), "transactions.csv", "text/csv")
		if !errors.Is(err, domainerror.ErrDeliveryFailed) {
			t.Errorf("expected ErrDeliveryFailed, got %v", err)
		}
	})

	t.Run("cancelled context skips the write", func(t *testing.T) {
		dir := t.TempDir()
		d := NewFilesystemDelivery(dir)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := d.Deliver(ctx, []byte("x"), "transactions.csv", "text/csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != adapter.DeliveryStatusCancelled {
			t.Errorf("expected cancelled, got %s", result.Status)
		}
		if _, err := os.Stat(filepath.Join(dir, "transactions.csv")); !os.IsNotExist(err) {
			t.Error("no file should be written after cancellation")
		}
	})
}
