package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praveennqumar/blood-bridge/internal/auth"
	"github.com/praveennqumar/blood-bridge/internal/database/models"
	"github.com/praveennqumar/blood-bridge/internal/mail"
	"github.com/praveennqumar/blood-bridge/pkg/crypto"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.EmailOTP{},
		&models.Inventory{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// CleanupTestDB closes the test database connection
func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	if err != nil {
		t.Logf("warning: failed to get sql.DB: %v", err)
		return
	}
	sqlDB.Close()
}

// CreateTestUser creates a user with the given role. The profile field
// matching the role is populated, the others left empty.
func CreateTestUser(t *testing.T, db *gorm.DB, role models.Role) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("testpassword123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Base: models.Base{
			ID: uuid.New(),
		},
		Email:        "test-" + uuid.New().String()[:8] + "@example.com",
		PasswordHash: hash,
		Role:         role,
		Address:      "12 Test Street",
		Phone:        "+15550100",
	}

	switch role {
	case models.RoleOrganisation:
		user.OrganisationName = "Test Blood Org"
	case models.RoleHospital:
		user.HospitalName = "Test Hospital"
	default:
		user.Name = "Test User"
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateTestOTP persists an issued code with the given expiry, sealed
// the way the issuer seals it.
func CreateTestOTP(t *testing.T, db *gorm.DB, enc *crypto.Encryptor, email, code string, expiry time.Time) *models.EmailOTP {
	t.Helper()

	sealed, err := enc.EncryptString(code)
	if err != nil {
		t.Fatalf("failed to seal otp: %v", err)
	}

	otp := &models.EmailOTP{
		Base: models.Base{
			ID: uuid.New(),
		},
		Email:     email,
		Code:      sealed,
		OtpExpiry: expiry,
	}

	if err := db.Create(otp).Error; err != nil {
		t.Fatalf("failed to create test otp: %v", err)
	}

	return otp
}

// CreateTestInventory persists an inventory movement for the given
// organisation.
func CreateTestInventory(t *testing.T, db *gorm.DB, orgID uuid.UUID, subject *models.User, invType models.InventoryType, group string, quantity int) *models.Inventory {
	t.Helper()

	inv := &models.Inventory{
		Base: models.Base{
			ID: uuid.New(),
		},
		InventoryType:  invType,
		BloodGroup:     group,
		Quantity:       quantity,
		Email:          subject.Email,
		OrganisationID: orgID,
	}
	switch invType {
	case models.InventoryIn:
		inv.DonorID = &subject.ID
	case models.InventoryOut:
		inv.HospitalID = &subject.ID
	}

	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test inventory: %v", err)
	}

	return inv
}

// CreateTestJWTService creates a JWT service for testing
func CreateTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret-key-for-testing", 24*time.Hour)
}

// CreateTestEncryptor creates a throwaway age encryptor
func CreateTestEncryptor(t *testing.T) *crypto.Encryptor {
	t.Helper()

	enc, err := crypto.NewEncryptor("")
	if err != nil {
		t.Fatalf("failed to create encryptor: %v", err)
	}
	return enc
}

// GenerateTestToken generates a valid session token for the given user
func GenerateTestToken(t *testing.T, jwtService *auth.JWTService, user *models.User) string {
	t.Helper()

	token, err := jwtService.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return token
}

// MailRecorder is a mail.Sender that captures messages in memory. Set
// Fail to simulate a transport outage.
type MailRecorder struct {
	mu       sync.Mutex
	Fail     bool
	Messages []mail.Message
}

func (m *MailRecorder) Send(ctx context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return mail.ErrDeliveryFailed
	}
	m.Messages = append(m.Messages, msg)
	return nil
}

// Last returns the most recently captured message.
func (m *MailRecorder) Last(t *testing.T) mail.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Messages) == 0 {
		t.Fatal("no mail captured")
	}
	return m.Messages[len(m.Messages)-1]
}

// AuthenticatedRequest creates an HTTP request with authentication
func AuthenticatedRequest(t *testing.T, method, path string, body interface{}, token string) *http.Request {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// UnauthenticatedRequest creates an HTTP request without authentication
func UnauthenticatedRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	return AuthenticatedRequest(t, method, path, body, "")
}

// ParseJSONResponse parses the response body into the given struct
func ParseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rr.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to parse response body: %v. Body: %s", err, rr.Body.String())
	}
}

// TestSetup holds all the common test dependencies
type TestSetup struct {
	DB         *gorm.DB
	JWTService *auth.JWTService
	Encryptor  *crypto.Encryptor
	Mailer     *MailRecorder
	Org        *models.User
	Token      string
}

// NewTestContext creates a complete test setup: DB, an organisation
// account and a token for it.
func NewTestContext(t *testing.T) *TestSetup {
	t.Helper()

	db := SetupTestDB(t)
	jwtService := CreateTestJWTService()
	org := CreateTestUser(t, db, models.RoleOrganisation)
	token := GenerateTestToken(t, jwtService, org)

	return &TestSetup{
		DB:         db,
		JWTService: jwtService,
		Encryptor:  CreateTestEncryptor(t),
		Mailer:     &MailRecorder{},
		Org:        org,
		Token:      token,
	}
}

// Cleanup releases test resources
func (ts *TestSetup) Cleanup() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}
