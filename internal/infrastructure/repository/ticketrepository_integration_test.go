package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fixwise/internal/domain/ticket"
	vo "fixwise/internal/domain/ticket/valueobjects"
	"fixwise/internal/infrastructure/persistence/models"
	"fixwise/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.TicketModel{},
		&models.CommentModel{},
		&models.MilestoneModel{},
		&models.BidModel{},
		&models.OrganizationTierModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, title string, orgID uint) *ticket.Ticket {
	tk, err := ticket.NewTicket(title, "Leaking pipe under the sink", vo.PriorityHigh, 100, &orgID, nil, nil, nil)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("save new ticket successfully", func(t *testing.T) {
		tk := createTestTicket(t, "Broken boiler", 1)
		err := tk.SetTicketNumber("MT-20260830-0001")
		require.NoError(t, err)

		err = repo.Save(ctx, tk)
		assert.NoError(t, err)
		assert.NotZero(t, tk.ID())
	})

	t.Run("round trip preserves fields", func(t *testing.T) {
		tk := createTestTicket(t, "Flickering hallway lights", 2)
		err := tk.SetTicketNumber("MT-20260830-0002")
		require.NoError(t, err)

		err = repo.Save(ctx, tk)
		require.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		assert.NoError(t, err)
		assert.Equal(t, tk.TicketNumber(), found.TicketNumber())
		assert.Equal(t, tk.Title(), found.Title())
		assert.Equal(t, vo.StatusPending, found.Status())
		assert.Equal(t, 1, found.Version())
	})

	t.Run("duplicate ticket number should fail", func(t *testing.T) {
		tk1 := createTestTicket(t, "Ticket 1", 1)
		require.NoError(t, tk1.SetTicketNumber("MT-20260830-0099"))
		require.NoError(t, repo.Save(ctx, tk1))

		tk2 := createTestTicket(t, "Ticket 2", 1)
		require.NoError(t, tk2.SetTicketNumber("MT-20260830-0099"))
		err := repo.Save(ctx, tk2)
		assert.Error(t, err)
	})
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("update persists transition", func(t *testing.T) {
		tk := createTestTicket(t, "Clogged drain", 1)
		require.NoError(t, tk.SetTicketNumber("MT-20260830-0010"))
		require.NoError(t, repo.Save(ctx, tk))

		err := tk.AssignVendor(7)
		require.NoError(t, err)

		err = repo.Update(ctx, tk)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, tk.ID())
		assert.NoError(t, err)
		assert.Equal(t, vo.StatusAccepted, found.Status())
		require.NotNil(t, found.MaintenanceVendorID())
		assert.Equal(t, uint(7), *found.MaintenanceVendorID())
		assert.Equal(t, 2, found.Version())
	})

	t.Run("concurrent update conflicts on version", func(t *testing.T) {
		tk := createTestTicket(t, "Locking test", 1)
		require.NoError(t, tk.SetTicketNumber("MT-20260830-0011"))
		require.NoError(t, repo.Save(ctx, tk))

		tk1, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)
		tk2, err := repo.GetByID(ctx, tk.ID())
		require.NoError(t, err)

		require.NoError(t, tk1.AssignVendor(7))
		assert.NoError(t, repo.Update(ctx, tk1))

		require.NoError(t, tk2.SendToMarketplace())
		err = repo.Update(ctx, tk2)
		assert.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})

	t.Run("update non-existent ticket should fail", func(t *testing.T) {
		tk := createTestTicket(t, "Ghost ticket", 1)
		require.NoError(t, tk.SetTicketNumber("MT-20260830-0012"))
		require.NoError(t, tk.SetID(99999))
		require.NoError(t, tk.AssignVendor(7))

		err := repo.Update(ctx, tk)
		assert.Error(t, err)
	})
}

func TestTicketRepository_GetByNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Find by number", 1)
	require.NoError(t, tk.SetTicketNumber("MT-20260830-0042"))
	require.NoError(t, repo.Save(ctx, tk))

	found, err := repo.GetByNumber(ctx, "MT-20260830-0042")
	assert.NoError(t, err)
	assert.Equal(t, tk.ID(), found.ID())

	_, err = repo.GetByNumber(ctx, "MT-20260830-9999")
	assert.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestTicketRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	org1 := uint(1)
	org2 := uint(2)

	tk1 := createTestTicket(t, "Org 1 pending", org1)
	tk1.SetTicketNumber("MT-20260830-0101")
	require.NoError(t, repo.Save(ctx, tk1))

	tk2 := createTestTicket(t, "Org 1 accepted", org1)
	tk2.SetTicketNumber("MT-20260830-0102")
	require.NoError(t, tk2.AssignVendor(7))
	require.NoError(t, repo.Save(ctx, tk2))

	tk3 := createTestTicket(t, "Org 2 pending", org2)
	tk3.SetTicketNumber("MT-20260830-0103")
	require.NoError(t, repo.Save(ctx, tk3))

	t.Run("filter by organization", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{
			OrganizationID: &org1,
			Page:           1,
			PageSize:       10,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, tickets, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		status := vo.StatusAccepted
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{
			Status:   &status,
			Page:     1,
			PageSize: 10,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, tk2.ID(), tickets[0].ID())
	})

	t.Run("pagination", func(t *testing.T) {
		tickets, total, err := repo.List(ctx, ticket.TicketFilter{Page: 1, PageSize: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 2)

		tickets, total, err = repo.List(ctx, ticket.TicketFilter{Page: 2, PageSize: 2})
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, tickets, 1)
	})
}

func TestCommentRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	tickets := NewTicketRepository(db)
	comments := NewCommentRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, "Noisy radiator", 1)
	require.NoError(t, tk.SetTicketNumber("MT-20260830-0201"))
	require.NoError(t, tickets.Save(ctx, tk))

	c1, err := ticket.NewComment(tk.ID(), 100, "Happens every morning", nil, false)
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c1))
	assert.NotZero(t, c1.ID())

	c2, err := ticket.NewComment(tk.ID(), 4, "Technician dispatched", nil, true)
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c2))

	found, err := comments.GetByTicketID(ctx, tk.ID())
	assert.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, "Happens every morning", found[0].Content())
	assert.True(t, found[1].IsSystem())
}
