package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/freshcart/freshcart/internal/constants"
	"github.com/freshcart/freshcart/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func createRepoUser(t *testing.T, db *gorm.DB, email, displayName string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		DisplayName:  displayName,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestUserListKeywordAndStatus(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)

	alice := createRepoUser(t, db, "alice@example.com", "Alice")
	createRepoUser(t, db, "bob@example.com", "Bob")
	banned := createRepoUser(t, db, "carol@example.com", "Carol")
	if err := db.Model(banned).Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	users, total, err := repo.List(UserListFilter{Page: 1, PageSize: 20, Keyword: "alice"})
	if err != nil {
		t.Fatalf("list by keyword failed: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].ID != alice.ID {
		t.Fatalf("keyword alice want only alice, got total=%d users=%+v", total, users)
	}

	users, total, err = repo.List(UserListFilter{Page: 1, PageSize: 20, Status: constants.UserStatusDisabled})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 1 || len(users) != 1 || users[0].ID != banned.ID {
		t.Fatalf("disabled filter want only carol, got total=%d users=%+v", total, users)
	}

	_, total, err = repo.List(UserListFilter{Page: 1, PageSize: 2})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("total want 3 got %d", total)
	}
}

func TestUserBatchUpdateStatusRevokesTokens(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)

	first := createRepoUser(t, db, "a@example.com", "A")
	second := createRepoUser(t, db, "b@example.com", "B")
	untouched := createRepoUser(t, db, "c@example.com", "C")

	if err := repo.BatchUpdateStatus([]uint{first.ID, second.ID}, constants.UserStatusDisabled); err != nil {
		t.Fatalf("batch disable failed: %v", err)
	}

	for _, id := range []uint{first.ID, second.ID} {
		user, err := repo.GetByID(id)
		if err != nil {
			t.Fatalf("get user failed: %v", err)
		}
		if user.Status != constants.UserStatusDisabled {
			t.Fatalf("user %d status want disabled got %s", id, user.Status)
		}
		if user.TokenInvalidBefore == nil {
			t.Fatalf("disable should revoke existing tokens for user %d", id)
		}
		if user.TokenVersion != 1 {
			t.Fatalf("token version want 1 got %d", user.TokenVersion)
		}
	}

	user, err := repo.GetByID(untouched.ID)
	if err != nil {
		t.Fatalf("get untouched user failed: %v", err)
	}
	if user.Status != constants.UserStatusActive || user.TokenInvalidBefore != nil {
		t.Fatalf("untouched user must stay active, got %+v", user)
	}

	// 重新激活不触发 Token 失效
	if err := repo.BatchUpdateStatus([]uint{first.ID}, constants.UserStatusActive); err != nil {
		t.Fatalf("batch enable failed: %v", err)
	}
	user, err = repo.GetByID(first.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if user.Status != constants.UserStatusActive {
		t.Fatalf("status want active got %s", user.Status)
	}
	if user.TokenVersion != 1 {
		t.Fatalf("enable must not bump token version, got %d", user.TokenVersion)
	}
}

func TestUserListByIDs(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepository(db)

	first := createRepoUser(t, db, "a@example.com", "A")
	createRepoUser(t, db, "b@example.com", "B")

	users, err := repo.ListByIDs([]uint{first.ID})
	if err != nil {
		t.Fatalf("list by ids failed: %v", err)
	}
	if len(users) != 1 || users[0].ID != first.ID {
		t.Fatalf("want only first user, got %+v", users)
	}

	users, err = repo.ListByIDs(nil)
	if err != nil {
		t.Fatalf("empty ids failed: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("empty ids want no users, got %d", len(users))
	}
}
