package store

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/doantruongnsg/sobanhang/internal/auth"
	"github.com/doantruongnsg/sobanhang/internal/models"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestLoad_SeedsDefaultsOnEmptyDatabase(t *testing.T) {
	s := openTemp(t)

	data, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(data.Products) == 0 || len(data.Customers) == 0 || len(data.Accounts) == 0 {
		t.Error("fresh database must load the seeded catalog")
	}
	if data.FindProduct("SP001") == nil {
		t.Error("seed product SP001 missing")
	}
	if !data.Settings.VATEnabled || data.Settings.VATRate != 10 {
		t.Errorf("seed settings wrong: %+v", data.Settings)
	}
}

func TestLoad_HashesSeedPasswords(t *testing.T) {
	s := openTemp(t)

	data, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, acc := range data.Accounts {
		if !strings.HasPrefix(acc.Password, "$2") {
			t.Errorf("account %s password not hashed", acc.Username)
		}
	}
	admin := findAccount(data.Accounts, "admin")
	if admin == nil {
		t.Fatal("seed admin account missing")
	}
	if !auth.CheckPassword(admin.Password, "admin123") {
		t.Error("hashed password must still verify against the seed value")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTemp(t)

	data, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data.Orders = append([]models.Order{{
		ID:            "DH240315103000",
		Date:          "2024-03-15 10:30:00",
		CustomerID:    "KH001",
		CustomerName:  "Nguyen Van A",
		Total:         300000,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.StatusPaid,
		PaidAmount:    300000,
	}}, data.Orders...)
	data.Settings.Theme = "retro-dark"

	if err := s.Save(data); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got.Orders) != 1 || got.Orders[0].ID != "DH240315103000" {
		t.Errorf("order history lost in round trip: %+v", got.Orders)
	}
	if got.Settings.Theme != "retro-dark" {
		t.Errorf("theme lost in round trip: %+v", got.Settings)
	}
}

func TestSave_OverwritesPreviousDocument(t *testing.T) {
	s := openTemp(t)

	data, _ := s.Load()
	data.Settings.Theme = "First"
	if err := s.Save(data); err != nil {
		t.Fatalf("first save: %v", err)
	}
	data.Settings.Theme = "Second"
	if err := s.Save(data); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Settings.Theme != "Second" {
		t.Errorf("theme = %q, want the latest save", got.Settings.Theme)
	}
}

func TestReset_RestoresDefaultsOnNextLoad(t *testing.T) {
	s := openTemp(t)

	data, _ := s.Load()
	data.Settings.Theme = "Doomed"
	if err := s.Save(data); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Settings.Theme == "Doomed" {
		t.Error("reset must drop the stored document")
	}
	if len(got.Products) == 0 {
		t.Error("load after reset must seed the default catalog")
	}
}

func findAccount(accounts []models.UserAccount, username string) *models.UserAccount {
	for i := range accounts {
		if accounts[i].Username == username {
			return &accounts[i]
		}
	}
	return nil
}
