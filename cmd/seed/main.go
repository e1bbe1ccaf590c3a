// Package main seeds demo data for local development: staff accounts, two
// applicants, and one in-flight application each with its documents,
// payment and welcome notification. Safe to re-run; existing emails are
// skipped.
package main

import (
	"context"
	"log"

	"credvia/internal/config"
	"credvia/internal/models"
	"credvia/internal/repositories"
	"credvia/internal/services/workflow"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	email     string
	firstName string
	lastName  string
	role      models.Role
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	ctx := context.Background()
	password := config.GetEnv("SEED_PASSWORD", "ChangeMe!123")
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	staff := []seedUser{
		{"superadmin@credvia.test", "Sana", "Rahman", models.RoleSuperAdmin},
		{"admin@credvia.test", "Adil", "Mansour", models.RoleAdmin},
		{"consultant@credvia.test", "Clara", "Osei", models.RoleConsultant},
	}
	applicants := []seedUser{
		{"nurse@credvia.test", "Noor", "Haddad", models.RoleApplicant},
		{"physician@credvia.test", "Piotr", "Novak", models.RoleApplicant},
	}

	users := make(map[string]*models.User)
	for _, su := range append(staff, applicants...) {
		users[su.email] = upsertUser(ctx, su, string(hashed))
	}

	consultant := users["consultant@credvia.test"]
	for _, a := range applicants {
		seedApplication(ctx, users[a.email], consultant)
	}

	log.Println("demo data seeded")
}

func upsertUser(ctx context.Context, su seedUser, hashedPassword string) *models.User {
	userRepo := repositories.NewUserRepository(repositories.DB, nil)

	if existing, err := userRepo.GetByEmail(ctx, su.email); err == nil {
		log.Printf("user %s already exists, skipping", su.email)
		return existing
	}

	u := &models.User{
		Email:        su.email,
		Password:     hashedPassword,
		FirstName:    su.firstName,
		LastName:     su.lastName,
		Role:         su.role,
		Status:       models.UserStatusActive,
		ConsentGiven: true,
		Preferences:  models.JSON{"language": "en", "marketingEmails": false},
	}
	if err := userRepo.Create(ctx, u); err != nil {
		log.Fatalf("failed to create user %s: %v", su.email, err)
	}
	return u
}

func seedApplication(ctx context.Context, owner, consultant *models.User) {
	appRepo := repositories.NewApplicationRepository(repositories.DB, nil)
	docRepo := repositories.NewDocumentRepository(repositories.DB)
	payRepo := repositories.NewPaymentRepository(repositories.DB)
	notifRepo := repositories.NewNotificationRepository(repositories.DB)

	if apps, _, err := appRepo.ListByUser(ctx, owner.ID, 0, 1); err == nil && len(apps) > 0 {
		log.Printf("user %s already has applications, skipping", owner.Email)
		return
	}

	consultantID := consultant.ID
	steps := workflow.InstantiateSteps(models.ApplicationTypeDataflow, &consultantID)
	app := &models.Application{
		ReferenceNumber:  "CV-SEED-" + owner.Email,
		UserID:           owner.ID,
		Type:             models.ApplicationTypeDataflow,
		Status:           models.ApplicationStatusDraft,
		Priority:         models.PriorityHigh,
		TargetCountry:    "Saudi Arabia",
		TargetProfession: "Registered Nurse",
		PersonalInfo: models.JSON{
			"fullName":    owner.FirstName + " " + owner.LastName,
			"nationality": "Jordanian",
			"dateOfBirth": "1992-04-11",
		},
		AdditionalData: models.JSON{"source": "seed"},
	}
	app.WorkflowState = workflow.StateSnapshot(steps)
	if err := appRepo.Create(ctx, app, steps); err != nil {
		log.Fatalf("failed to create application for %s: %v", owner.Email, err)
	}

	doc := &models.Document{
		UserID:             owner.ID,
		ApplicationID:      &app.ID,
		Type:               models.DocumentTypePassport,
		FileName:           "passport.pdf",
		FileSize:           1 << 20,
		MimeType:           "application/pdf",
		StorageKey:         "seed-passport-" + owner.Email,
		VerificationStatus: models.VerificationPending,
	}
	if err := docRepo.Create(ctx, doc); err != nil {
		log.Fatalf("failed to create document for %s: %v", owner.Email, err)
	}

	payment := &models.Payment{
		UserID:        owner.ID,
		ApplicationID: app.ID,
		Amount:        27500,
		Currency:      "USD",
		Status:        models.PaymentStatusCompleted,
		GatewayID:     "seed-" + app.ReferenceNumber,
		GatewayData:   models.JSON{"method": "card", "last4": "4242"},
	}
	if err := payRepo.Create(ctx, payment); err != nil {
		log.Fatalf("failed to create payment for %s: %v", owner.Email, err)
	}

	notif := &models.Notification{
		UserID:  owner.ID,
		Channel: models.ChannelEmail,
		Subject: "Welcome to Credvia",
		Body:    "Your application " + app.ReferenceNumber + " has been created.",
		Status:  models.NotificationPending,
	}
	if err := notifRepo.Create(ctx, notif); err != nil {
		log.Fatalf("failed to create notification for %s: %v", owner.Email, err)
	}

	log.Printf("seeded application %s for %s", app.ReferenceNumber, owner.Email)
}
