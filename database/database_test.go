package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidewatch/bluecarbon-backend/errs"
	"github.com/tidewatch/bluecarbon-backend/models"
)

func intPtr(i int) *int { return &i }

func TestProjectRepo_AddAppliesServerDefaults(t *testing.T) {
	repo := NewProjectRepo()

	created := repo.Add(models.InsertProject{
		Name:         "Sundarbans Revival",
		Description:  "Mangrove restoration",
		Location:     "West Bengal",
		Type:         models.EcosystemMangrove,
		Status:       models.ProjectStatusActive,
		AreaHectares: "2500.00",
	})

	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.CarbonCredits)
	assert.False(t, created.LastUpdate.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	// read-after-write: the stored record matches what Add returned
	fetched := repo.FindByID(created.ID)
	require.NotNil(t, fetched)
	assert.Equal(t, *created, *fetched)
}

func TestProjectRepo_FindAllInsertionOrder(t *testing.T) {
	repo := NewProjectRepo()

	first := repo.Add(models.InsertProject{Name: "A", Description: "d", Location: "l", Type: models.EcosystemMangrove, Status: models.ProjectStatusPlanning, AreaHectares: "1.0"})
	second := repo.Add(models.InsertProject{Name: "B", Description: "d", Location: "l", Type: models.EcosystemSeagrass, Status: models.ProjectStatusActive, AreaHectares: "2.0"})

	all := repo.FindAll()
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestProjectRepo_UpdateMergesPartialFields(t *testing.T) {
	repo := NewProjectRepo()

	created := repo.Add(models.InsertProject{
		Name:         "Rann of Kutch Shield",
		Description:  "Saltmarsh restoration",
		Location:     "Gujarat",
		Type:         models.EcosystemSaltmarsh,
		Status:       models.ProjectStatusActive,
		AreaHectares: "3200.00",
	})
	before := created.LastUpdate

	status := models.ProjectStatusCompleted
	updated := repo.Update(created.ID, models.ProjectUpdate{Status: &status})

	require.NotNil(t, updated)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
	// only targeted fields change
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Location, updated.Location)
	assert.Equal(t, created.AreaHectares, updated.AreaHectares)
	assert.Equal(t, created.CarbonCredits, updated.CarbonCredits)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.LastUpdate.Before(before))

	fetched := repo.FindByID(created.ID)
	require.NotNil(t, fetched)
	assert.Equal(t, models.ProjectStatusCompleted, fetched.Status)
}

func TestProjectRepo_UpdateUnknownID(t *testing.T) {
	repo := NewProjectRepo()
	status := models.ProjectStatusCompleted
	assert.Nil(t, repo.Update("no-such-id", models.ProjectUpdate{Status: &status}))
}

func TestTransactionRepo_FindAllNewestFirst(t *testing.T) {
	repo := NewTransactionRepo()
	now := time.Now()

	// inserted oldest-last on purpose; listing must re-order
	repo.put(models.Transaction{ID: "tx-mid", Hash: "0x2", Type: models.TxTypeCarbonCredit, FromAddress: "a", ToAddress: "b", BlockNumber: 2, Timestamp: now.Add(-5 * time.Minute)})
	repo.put(models.Transaction{ID: "tx-new", Hash: "0x3", Type: models.TxTypeRegistryUpdate, FromAddress: "a", ToAddress: "b", BlockNumber: 3, Timestamp: now})
	repo.put(models.Transaction{ID: "tx-old", Hash: "0x1", Type: models.TxTypeSmartContract, FromAddress: "a", ToAddress: "b", BlockNumber: 1, Timestamp: now.Add(-time.Hour)})

	all := repo.FindAll()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].Timestamp.Before(all[i].Timestamp))
	}
	assert.Equal(t, "tx-new", all[0].ID)
	assert.Equal(t, "tx-old", all[2].ID)
}

func TestTransactionRepo_DuplicateHashesAccepted(t *testing.T) {
	repo := NewTransactionRepo()

	insert := models.InsertTransaction{Hash: "0xdup", Type: models.TxTypeCarbonCredit, FromAddress: "a", ToAddress: "b", BlockNumber: intPtr(1)}
	first := repo.Add(insert)
	second := repo.Add(insert)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.FindAll(), 2)
}

func TestCarbonCreditRepo_AvailabilityDefault(t *testing.T) {
	repo := NewCarbonCreditRepo()

	defaulted := repo.Add(models.InsertCarbonCredit{ProjectID: "proj-1", Quantity: intPtr(500), PricePerTonne: "2850.00", SellerAddress: "0x1"})
	assert.True(t, defaulted.IsAvailable)

	off := false
	explicit := repo.Add(models.InsertCarbonCredit{ProjectID: "proj-1", Quantity: intPtr(300), PricePerTonne: "2820.00", IsAvailable: &off, SellerAddress: "0x2"})
	assert.False(t, explicit.IsAvailable)

	fetched := repo.FindByID(explicit.ID)
	require.NotNil(t, fetched)
	assert.Equal(t, *explicit, *fetched)
}

func TestMrvDataRepo_FilterByProject(t *testing.T) {
	repo := NewMrvDataRepo()

	repo.Add(models.InsertMrvData{ProjectID: "proj-1", DataType: models.MrvSourceDrone, Metrics: map[string]any{"canopyCover": 0.82}})
	repo.Add(models.InsertMrvData{ProjectID: "proj-2", DataType: models.MrvSourceSatellite, Metrics: map[string]any{"ndvi": 0.61}})
	repo.Add(models.InsertMrvData{ProjectID: "proj-1", DataType: models.MrvSourceMobile, Metrics: map[string]any{"salinity": 31}})

	assert.Len(t, repo.FindAll(""), 3)

	filtered := repo.FindAll("proj-1")
	require.Len(t, filtered, 2)
	for _, d := range filtered {
		assert.Equal(t, "proj-1", d.ProjectID)
	}
}

func TestMrvDataRepo_VerificationDefaultsToPending(t *testing.T) {
	repo := NewMrvDataRepo()

	data := repo.Add(models.InsertMrvData{ProjectID: "proj-1", DataType: models.MrvSourceDrone, Metrics: map[string]any{"canopyCover": 0.82}})
	assert.Equal(t, models.VerificationPending, data.VerificationStatus)

	verified := repo.Add(models.InsertMrvData{ProjectID: "proj-1", DataType: models.MrvSourceDrone, Metrics: map[string]any{}, VerificationStatus: "verified"})
	assert.Equal(t, "verified", verified.VerificationStatus)
}

func TestCommunityPostRepo_CountersZeroedAndNewestFirst(t *testing.T) {
	repo := NewCommunityPostRepo()
	now := time.Now()

	repo.put(models.CommunityPost{ID: "post-old", Author: "a", Content: "c", Likes: 24, Comments: 8, CreatedAt: now.Add(-2 * time.Hour)})

	created := repo.Add(models.InsertCommunityPost{Author: "Team", Content: "Planted 500 saplings"})
	assert.Equal(t, 0, created.Likes)
	assert.Equal(t, 0, created.Comments)

	all := repo.FindAll()
	require.Len(t, all, 2)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, "post-old", all[1].ID)
}

func TestCommunityMemberRepo_LeaderboardOrder(t *testing.T) {
	repo := NewCommunityMemberRepo()
	now := time.Now()

	repo.put(models.CommunityMember{ID: "m-low", Name: "Low", Points: 967, JoinedAt: now})
	repo.put(models.CommunityMember{ID: "m-high", Name: "High", Points: 1247, JoinedAt: now})
	repo.put(models.CommunityMember{ID: "m-mid", Name: "Mid", Points: 1189, JoinedAt: now})

	all := repo.FindAll()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Points, all[i].Points)
	}

	created := repo.Add(models.InsertCommunityMember{Name: "Fresh"})
	assert.Equal(t, 0, created.Points)
	assert.Equal(t, 0, created.ProjectsCount)
}

func TestUserRepo_HashedPasswordsAndUniqueness(t *testing.T) {
	repo := NewUserRepo()

	created, err := repo.Add(models.InsertUser{Username: "ranger", Password: "hunter2"})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", created.Password)

	assert.True(t, repo.CheckPassword("ranger", "hunter2"))
	assert.False(t, repo.CheckPassword("ranger", "wrong"))
	assert.False(t, repo.CheckPassword("nobody", "hunter2"))

	byName := repo.FindByUsername("ranger")
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	_, err = repo.Add(models.InsertUser{Username: "ranger", Password: "other"})
	require.Error(t, err)
	assert.True(t, errs.IsAlreadyExists(err))
}

func TestSeed_LoadsDemoDataset(t *testing.T) {
	db := New()
	Seed(db)

	assert.Len(t, db.ProjectRepo().FindAll(), 3)
	assert.Len(t, db.TransactionRepo().FindAll(), 2)
	assert.Len(t, db.CarbonCreditRepo().FindAll(), 2)
	assert.Len(t, db.CommunityPostRepo().FindAll(), 2)
	assert.Len(t, db.CommunityMemberRepo().FindAll(), 3)

	sundarbans := db.ProjectRepo().FindByID("proj-1")
	require.NotNil(t, sundarbans)
	assert.Equal(t, 15840, sundarbans.CarbonCredits)
}
