package database

// Database aggregates one in-memory repository per entity type. It is
// constructed once at process start and handed to the API layer; there
// is no durable persistence, all records live for the life of the
// process only.
type Database struct {
	projectRepo         *ProjectRepo
	transactionRepo     *TransactionRepo
	carbonCreditRepo    *CarbonCreditRepo
	mrvDataRepo         *MrvDataRepo
	communityPostRepo   *CommunityPostRepo
	communityMemberRepo *CommunityMemberRepo
	userRepo            *UserRepo
}

// New initializes a new Database struct with an empty repository per entity type
func New() Database {
	return Database{
		projectRepo:         NewProjectRepo(),
		transactionRepo:     NewTransactionRepo(),
		carbonCreditRepo:    NewCarbonCreditRepo(),
		mrvDataRepo:         NewMrvDataRepo(),
		communityPostRepo:   NewCommunityPostRepo(),
		communityMemberRepo: NewCommunityMemberRepo(),
		userRepo:            NewUserRepo(),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TransactionRepo() *TransactionRepo {
	return d.transactionRepo
}

func (d Database) CarbonCreditRepo() *CarbonCreditRepo {
	return d.carbonCreditRepo
}

func (d Database) MrvDataRepo() *MrvDataRepo {
	return d.mrvDataRepo
}

func (d Database) CommunityPostRepo() *CommunityPostRepo {
	return d.communityPostRepo
}

func (d Database) CommunityMemberRepo() *CommunityMemberRepo {
	return d.communityMemberRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
