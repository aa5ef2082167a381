package database

import (
	"time"

	"github.com/tidewatch/bluecarbon-backend/models"
)

func strPtr(s string) *string { return &s }

// Seed loads the demo dataset used by the dashboard frontend: three
// restoration projects, a short transaction log, two marketplace
// listings, two feed posts and three leaderboard members. Intended for
// demo deployments; tests build on an empty store instead.
func Seed(db Database) {
	now := time.Now()

	projects := []models.Project{
		{
			ID:            "proj-1",
			Name:          "Sundarbans Revival",
			Description:   "Large-scale mangrove restoration in the Sundarbans delta, focusing on biodiversity conservation and carbon sequestration.",
			Location:      "West Bengal",
			Type:          models.EcosystemMangrove,
			Status:        models.ProjectStatusActive,
			AreaHectares:  "2500.00",
			CarbonCredits: 15840,
			ImageURL:      strPtr("https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			LastUpdate:    now,
			CreatedAt:     now,
		},
		{
			ID:            "proj-2",
			Name:          "Tamil Nadu Seagrass",
			Description:   "Seagrass meadow restoration along the Tamil Nadu coast to enhance marine biodiversity and carbon storage.",
			Location:      "Tamil Nadu",
			Type:          models.EcosystemSeagrass,
			Status:        models.ProjectStatusPlanning,
			AreaHectares:  "1800.00",
			CarbonCredits: 11200,
			ImageURL:      strPtr("https://images.unsplash.com/photo-1583212292454-1fe6229603b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			LastUpdate:    now,
			CreatedAt:     now,
		},
		{
			ID:            "proj-3",
			Name:          "Rann of Kutch Shield",
			Description:   "Saltmarsh restoration in Gujarat's coastal areas to protect against storm surge and enhance carbon sequestration.",
			Location:      "Gujarat",
			Type:          models.EcosystemSaltmarsh,
			Status:        models.ProjectStatusActive,
			AreaHectares:  "3200.00",
			CarbonCredits: 19600,
			ImageURL:      strPtr("https://images.unsplash.com/photo-1581833971358-2c8b550f87b3?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300"),
			LastUpdate:    now,
			CreatedAt:     now,
		},
	}

	pr := db.ProjectRepo()
	pr.mu.Lock()
	for _, p := range projects {
		pr.put(p)
	}
	pr.mu.Unlock()

	transactions := []models.Transaction{
		{
			ID:          "tx-1",
			Hash:        "0xa7b3...c8d9",
			Type:        models.TxTypeCarbonCredit,
			FromAddress: "0x123...456",
			ToAddress:   "0x789...abc",
			Value:       strPtr("250 CC"),
			BlockNumber: 12847,
			Timestamp:   now.Add(-2 * time.Minute),
		},
		{
			ID:          "tx-2",
			Hash:        "0xf2e1...a4b6",
			Type:        models.TxTypeRegistryUpdate,
			FromAddress: "0xdef...ghi",
			ToAddress:   "Contract",
			Value:       strPtr("-"),
			BlockNumber: 12846,
			Timestamp:   now.Add(-5 * time.Minute),
		},
	}

	tr := db.TransactionRepo()
	tr.mu.Lock()
	for _, tx := range transactions {
		tr.put(tx)
	}
	tr.mu.Unlock()

	credits := []models.CarbonCredit{
		{
			ID:            "credit-1",
			ProjectID:     "proj-1",
			Quantity:      500,
			PricePerTonne: "2850.00",
			IsAvailable:   true,
			SellerAddress: "0x123...456",
			CreatedAt:     now,
		},
		{
			ID:            "credit-2",
			ProjectID:     "proj-2",
			Quantity:      300,
			PricePerTonne: "2820.00",
			IsAvailable:   true,
			SellerAddress: "0x789...abc",
			CreatedAt:     now,
		},
	}

	cr := db.CarbonCreditRepo()
	cr.mu.Lock()
	for _, c := range credits {
		cr.put(c)
	}
	cr.mu.Unlock()

	posts := []models.CommunityPost{
		{
			ID:        "post-1",
			ProjectID: strPtr("proj-1"),
			Author:    "Sundarbans Restoration Team",
			Content:   "Great progress today! Our community volunteers planted 500 mangrove saplings in the Sundarbans delta. The local fishing community is actively participating in the restoration efforts.",
			ImageURL:  strPtr("https://images.unsplash.com/photo-1593113598332-cd288d649433?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400"),
			Likes:     24,
			Comments:  8,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:        "post-2",
			ProjectID: strPtr("proj-3"),
			Author:    "Gujarat Coastal Initiative",
			Content:   "Excited to announce that our saltmarsh restoration project has reached 80% completion. The local community has been instrumental in monitoring water quality and maintaining the restored areas.",
			Likes:     31,
			Comments:  12,
			CreatedAt: now.Add(-5 * time.Hour),
		},
	}

	cpr := db.CommunityPostRepo()
	cpr.mu.Lock()
	for _, p := range posts {
		cpr.put(p)
	}
	cpr.mu.Unlock()

	members := []models.CommunityMember{
		{
			ID:            "member-1",
			Name:          "Sundarbans Team",
			Points:        1247,
			ProjectsCount: 3,
			JoinedAt:      now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:            "member-2",
			Name:          "Gujarat Coastal",
			Points:        1189,
			ProjectsCount: 2,
			JoinedAt:      now.Add(-25 * 24 * time.Hour),
		},
		{
			ID:            "member-3",
			Name:          "Tamil Nadu Seagrass",
			Points:        967,
			ProjectsCount: 1,
			JoinedAt:      now.Add(-20 * 24 * time.Hour),
		},
	}

	cmr := db.CommunityMemberRepo()
	cmr.mu.Lock()
	for _, m := range members {
		cmr.put(m)
	}
	cmr.mu.Unlock()
}
