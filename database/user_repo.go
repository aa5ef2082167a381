package database

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tidewatch/bluecarbon-backend/errs"
	"github.com/tidewatch/bluecarbon-backend/models"
)

// UserRepo holds user accounts keyed by id. Usernames are unique;
// passwords are stored as bcrypt hashes only.
type UserRepo struct {
	mu      sync.RWMutex
	records map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{records: make(map[string]models.User)}
}

// FindByID returns a user by its ID, or nil when the id is unknown
func (r *UserRepo) FindByID(id string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.records[id]
	if !ok {
		return nil
	}
	return &u
}

// FindByUsername returns the user with the given username, or nil
func (r *UserRepo) FindByUsername(username string) *models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.records {
		if u.Username == username {
			return &u
		}
	}
	return nil
}

// Add creates a new user, hashing the plaintext password before it is
// stored. Returns a conflict error when the username is taken.
func (r *UserRepo) Add(insert models.InsertUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(insert.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.records {
		if u.Username == insert.Username {
			return nil, errs.NewAlreadyExists("username")
		}
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: insert.Username,
		Password: string(hashed),
	}
	r.records[user.ID] = user
	return &user, nil
}

// CheckPassword compares a plaintext candidate against the stored hash
func (r *UserRepo) CheckPassword(username, password string) bool {
	u := r.FindByUsername(username)
	if u == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
