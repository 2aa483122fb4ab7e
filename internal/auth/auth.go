package auth

import (
	"context" // Context for storage operations
	"strings" // String folding and trimming
	"time"    // Admin session expiry

	"hardware_store/internal/domain"  // Domain models
	"hardware_store/internal/storage" // Key-value storage abstraction

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Storage keys
const (
	usersKey        = "sagar_hardware_users"         // Users collection
	sessionKey      = "sagar_hardware_session"       // Active user session
	adminSessionKey = "sagar_hardware_admin_session" // Active admin session
)

// adminSessionMaxAge is how long an admin session stays valid
const adminSessionMaxAge = 24 * time.Hour

// Store manages user credentials and the per-profile sessions
type Store struct {
	kv            storage.Store // Injected key-value storage
	adminUsername string        // Admin credential pair, independent of the user list
	adminPassword string
}

// NewStore creates an auth store over the given storage backend
func NewStore(kv storage.Store, adminUsername, adminPassword string) *Store {
	return &Store{kv: kv, adminUsername: adminUsername, adminPassword: adminPassword}
}

// StoredUsers returns all registered users; storage failures degrade to an
// empty list and are logged
func (s *Store) StoredUsers(ctx context.Context) []domain.User {
	var users []domain.User
	found, err := s.kv.Get(ctx, usersKey, &users)
	if err != nil {
		logrus.WithError(err).Error("Failed to read users from storage")
		return nil
	}
	if !found {
		return nil
	}
	return users
}

// storeUsers persists the users collection
func (s *Store) storeUsers(ctx context.Context, users []domain.User) {
	if err := s.kv.Set(ctx, usersKey, users); err != nil {
		logrus.WithError(err).Error("Failed to store users")
	}
}

// UserExists reports whether a username is already taken (case-insensitive)
func (s *Store) UserExists(ctx context.Context, username string) bool {
	for _, u := range s.StoredUsers(ctx) {
		if strings.EqualFold(u.Username, username) {
			return true
		}
	}
	return false
}

// Register appends a new user record after validating the fields
func (s *Store) Register(ctx context.Context, username, password string) domain.Result {
	if strings.TrimSpace(username) == "" {
		return domain.Fail("Username is required")
	}
	if strings.TrimSpace(password) == "" {
		return domain.Fail("Password is required")
	}
	if s.UserExists(ctx, username) {
		return domain.Fail("Username already exists")
	}
	// Hash the password before storing
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Failed to hash password")
		return domain.Fail("Failed to register user")
	}
	users := s.StoredUsers(ctx)
	users = append(users, domain.User{Username: strings.TrimSpace(username), Password: string(hash)})
	s.storeUsers(ctx, users)
	return domain.OK("User registered successfully")
}

// Authenticate checks a credential pair against the stored users
func (s *Store) Authenticate(ctx context.Context, username, password string) domain.Result {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return domain.Fail("Username and password are required")
	}
	for _, u := range s.StoredUsers(ctx) {
		if strings.EqualFold(u.Username, username) &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
			return domain.OK("Authentication successful")
		}
	}
	return domain.Fail("Invalid username or password")
}

// AuthenticateAdmin checks the single configured admin credential pair.
// It never consults the user collection.
func (s *Store) AuthenticateAdmin(username, password string) domain.Result {
	if username == s.adminUsername && password == s.adminPassword {
		return domain.OK("Admin authentication successful")
	}
	return domain.Fail("Invalid admin credentials")
}

// CurrentUser returns the active session user, or nil when nobody is logged in
func (s *Store) CurrentUser(ctx context.Context) *domain.SessionUser {
	var session domain.SessionUser
	found, err := s.kv.Get(ctx, sessionKey, &session)
	if err != nil {
		logrus.WithError(err).Error("Failed to read session from storage")
		return nil
	}
	if !found {
		return nil
	}
	return &session
}

// SetCurrentUser stores the active session user
func (s *Store) SetCurrentUser(ctx context.Context, user domain.SessionUser) {
	if err := s.kv.Set(ctx, sessionKey, user); err != nil {
		logrus.WithError(err).Error("Failed to store session")
	}
}

// ClearCurrentUser removes the active session
func (s *Store) ClearCurrentUser(ctx context.Context) {
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		logrus.WithError(err).Error("Failed to clear session")
	}
}

// IsLoggedIn reports whether a session user exists
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	return s.CurrentUser(ctx) != nil
}

// SetAdminSession stores a fresh admin session stamped with the current time
func (s *Store) SetAdminSession(ctx context.Context) {
	session := domain.AdminSession{IsAdmin: true, Timestamp: time.Now().UnixMilli()}
	if err := s.kv.Set(ctx, adminSessionKey, session); err != nil {
		logrus.WithError(err).Error("Failed to store admin session")
	}
}

// ClearAdminSession removes the admin session
func (s *Store) ClearAdminSession(ctx context.Context) {
	if err := s.kv.Delete(ctx, adminSessionKey); err != nil {
		logrus.WithError(err).Error("Failed to clear admin session")
	}
}

// IsAdmin reports whether a valid admin session exists. Expiry is checked
// lazily on read: a session older than 24 hours is cleared here.
func (s *Store) IsAdmin(ctx context.Context) bool {
	var session domain.AdminSession
	found, err := s.kv.Get(ctx, adminSessionKey, &session)
	if err != nil {
		logrus.WithError(err).Error("Failed to read admin session")
		return false
	}
	if !found {
		return false
	}
	age := time.Since(time.UnixMilli(session.Timestamp))
	if age > adminSessionMaxAge {
		s.ClearAdminSession(ctx)
		return false
	}
	return session.IsAdmin
}

// UpdatePassword replaces a user's password
func (s *Store) UpdatePassword(ctx context.Context, username, newPassword string) domain.Result {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(newPassword) == "" {
		return domain.Fail("Username and new password are required")
	}
	users := s.StoredUsers(ctx)
	idx := findUser(users, username)
	if idx == -1 {
		return domain.Fail("User not found")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Failed to hash password")
		return domain.Fail("Failed to update password")
	}
	users[idx].Password = string(hash)
	s.storeUsers(ctx, users)
	return domain.OK("Password updated successfully")
}

// UpdateUsername renames a user, enforcing uniqueness of the new name.
// When the renamed user owns the active session, the session follows.
func (s *Store) UpdateUsername(ctx context.Context, oldUsername, newUsername string) domain.Result {
	if strings.TrimSpace(oldUsername) == "" || strings.TrimSpace(newUsername) == "" {
		return domain.Fail("Both old and new usernames are required")
	}
	if strings.EqualFold(oldUsername, newUsername) {
		return domain.Fail("New username must be different")
	}
	if s.UserExists(ctx, newUsername) {
		return domain.Fail("New username already exists")
	}
	users := s.StoredUsers(ctx)
	idx := findUser(users, oldUsername)
	if idx == -1 {
		return domain.Fail("User not found")
	}
	users[idx].Username = strings.TrimSpace(newUsername)
	s.storeUsers(ctx, users)
	// Keep the session consistent with the rename
	if current := s.CurrentUser(ctx); current != nil && strings.EqualFold(current.Username, oldUsername) {
		s.SetCurrentUser(ctx, domain.SessionUser{Username: strings.TrimSpace(newUsername)})
	}
	return domain.OK("Username updated successfully")
}

// DeleteUser removes a user record. Deleting the logged-in user clears the
// active session.
func (s *Store) DeleteUser(ctx context.Context, username string) domain.Result {
	if strings.TrimSpace(username) == "" {
		return domain.Fail("Username is required")
	}
	users := s.StoredUsers(ctx)
	idx := findUser(users, username)
	if idx == -1 {
		return domain.Fail("User not found")
	}
	users = append(users[:idx], users[idx+1:]...)
	s.storeUsers(ctx, users)
	// Clear the session when the deleted user owns it
	if current := s.CurrentUser(ctx); current != nil && strings.EqualFold(current.Username, username) {
		s.ClearCurrentUser(ctx)
	}
	return domain.OK("User account deleted successfully")
}

// AllUsers returns all users without their passwords, for the admin console
func (s *Store) AllUsers(ctx context.Context) []domain.PublicUser {
	users := s.StoredUsers(ctx)
	public := make([]domain.PublicUser, len(users))
	for i, u := range users {
		public[i] = domain.PublicUser{Username: u.Username}
	}
	return public
}

// LogoutAll clears both the user and admin sessions
func (s *Store) LogoutAll(ctx context.Context) {
	s.ClearCurrentUser(ctx)
	s.ClearAdminSession(ctx)
}

// findUser returns the index of the user matching username case-insensitively
func findUser(users []domain.User, username string) int {
	for i, u := range users {
		if strings.EqualFold(u.Username, username) {
			return i
		}
	}
	return -1
}
