package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"salesdesk-backend/internal/auth"
	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/database"
	"salesdesk-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Development tokens stay valid for a working week
const devTokenTTL = 7 * 24 * time.Hour

// Simple structures that directly match DB schema
type OrganizationData struct {
	Slug    string `yaml:"slug"`
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
	Owner   string `yaml:"owner"`
}

type MemberData struct {
	Organization string `yaml:"organization"`
	Email        string `yaml:"email"`
	DisplayName  string `yaml:"display_name"`
	Role         string `yaml:"role"`
	Leader       string `yaml:"leader,omitempty"`
}

type ContactData struct {
	Organization string   `yaml:"organization"`
	Owner        string   `yaml:"owner"`
	FullName     string   `yaml:"full_name"`
	Email        string   `yaml:"email"`
	Phone        string   `yaml:"phone,omitempty"`
	Company      string   `yaml:"company,omitempty"`
	Stage        string   `yaml:"stage"`
	Tags         []string `yaml:"tags,omitempty"`
	Source       string   `yaml:"source,omitempty"`
}

type SequenceData struct {
	Organization string     `yaml:"organization"`
	Name         string     `yaml:"name"`
	Description  string     `yaml:"description,omitempty"`
	CreatedBy    string     `yaml:"created_by"`
	Steps        []StepData `yaml:"steps"`
}

type StepData struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	Type         string `yaml:"type"`
	OffsetDays   int    `yaml:"offset_days"`
	OffsetHours  int    `yaml:"offset_hours"`
	AssigneeMode string `yaml:"assignee_mode,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type ContactsFile struct {
	Contacts []ContactData `yaml:"contacts"`
}

type SequencesFile struct {
	Sequences []SequenceData `yaml:"sequences"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users, err := loadDataFromYAMLFiles(db, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	if err := printDevTokens(cfg, users); err != nil {
		log.Fatalf("Failed to issue development tokens: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// userIDFor derives a stable platform user id from an email so re-running
// the loader reuses the same identities.
func userIDFor(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email)))
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) (map[string]uuid.UUID, error) {
	var orgFiles []OrganizationsFile
	if err := loadYAMLFiles(dataDir, "organizations", &orgFiles); err != nil {
		return nil, fmt.Errorf("failed to load organizations: %w", err)
	}
	var memberFiles []MembersFile
	if err := loadYAMLFiles(dataDir, "members", &memberFiles); err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	var contactFiles []ContactsFile
	if err := loadYAMLFiles(dataDir, "contacts", &contactFiles); err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	var sequenceFiles []SequencesFile
	if err := loadYAMLFiles(dataDir, "sequences", &sequenceFiles); err != nil {
		return nil, fmt.Errorf("failed to load sequences: %w", err)
	}

	users := make(map[string]uuid.UUID)

	orgMap := make(map[string]*models.Organization)
	orgCreated, orgTotal := 0, 0
	for _, file := range orgFiles {
		for _, orgData := range file.Organizations {
			org, created, err := createOrganization(db, orgData)
			if err != nil {
				return nil, fmt.Errorf("failed to create organization %s: %w", orgData.Slug, err)
			}
			orgMap[orgData.Slug] = org
			users[orgData.Owner] = org.CreatedBy
			orgTotal++
			if created {
				orgCreated++
			}
		}
	}
	log.Printf("Organizations: %d created, %d total", orgCreated, orgTotal)

	// Leaders first so reps can point at them
	memberKey := func(org, email string) string { return org + "/" + strings.ToLower(email) }
	memberMap := make(map[string]*models.Membership)
	var members []MemberData
	for _, file := range memberFiles {
		members = append(members, file.Members...)
	}
	memberCreated := 0
	for pass := 0; pass < 2; pass++ {
		for _, memberData := range members {
			isRep := memberData.Leader != ""
			if (pass == 0) == isRep {
				continue
			}
			org, ok := orgMap[memberData.Organization]
			if !ok {
				return nil, fmt.Errorf("member %s references unknown organization %s", memberData.Email, memberData.Organization)
			}
			var parentID *uuid.UUID
			if isRep {
				leader, ok := memberMap[memberKey(memberData.Organization, memberData.Leader)]
				if !ok {
					return nil, fmt.Errorf("member %s references unknown leader %s", memberData.Email, memberData.Leader)
				}
				parentID = &leader.ID
			}
			membership, created, err := createMembership(db, org, memberData, parentID)
			if err != nil {
				return nil, fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
			}
			memberMap[memberKey(memberData.Organization, memberData.Email)] = membership
			users[memberData.Email] = membership.UserID
			if created {
				memberCreated++
			}
		}
	}
	log.Printf("Members: %d created, %d total", memberCreated, len(members))

	contactCreated, contactTotal := 0, 0
	for _, file := range contactFiles {
		for _, contactData := range file.Contacts {
			org, ok := orgMap[contactData.Organization]
			if !ok {
				return nil, fmt.Errorf("contact %s references unknown organization %s", contactData.FullName, contactData.Organization)
			}
			owner, ok := memberMap[memberKey(contactData.Organization, contactData.Owner)]
			if !ok {
				return nil, fmt.Errorf("contact %s references unknown owner %s", contactData.FullName, contactData.Owner)
			}
			created, err := createContact(db, org, owner, contactData)
			if err != nil {
				return nil, fmt.Errorf("failed to create contact %s: %w", contactData.FullName, err)
			}
			contactTotal++
			if created {
				contactCreated++
			}
		}
	}
	log.Printf("Contacts: %d created, %d total", contactCreated, contactTotal)

	sequenceCreated, sequenceTotal := 0, 0
	for _, file := range sequenceFiles {
		for _, sequenceData := range file.Sequences {
			org, ok := orgMap[sequenceData.Organization]
			if !ok {
				return nil, fmt.Errorf("sequence %s references unknown organization %s", sequenceData.Name, sequenceData.Organization)
			}
			created, err := createSequence(db, org, userIDFor(sequenceData.CreatedBy), sequenceData)
			if err != nil {
				return nil, fmt.Errorf("failed to create sequence %s: %w", sequenceData.Name, err)
			}
			sequenceTotal++
			if created {
				sequenceCreated++
			}
		}
	}
	log.Printf("Sequences: %d created, %d total", sequenceCreated, sequenceTotal)

	return users, nil
}

// loadYAMLFiles unmarshals every *.yaml file under dataDir whose path
// contains kind into a new element of out.
func loadYAMLFiles[T any](dataDir, kind string, out *[]T) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(path, kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file T
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		*out = append(*out, file)
		return nil
	})
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	err := db.Where("slug = ?", orgData.Slug).First(&org).Error
	if err == nil {
		return &org, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	org = models.Organization{
		Slug:      orgData.Slug,
		Name:      orgData.Name,
		Country:   orgData.Country,
		CreatedBy: userIDFor(orgData.Owner),
	}
	if err := db.Create(&org).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create organization: %w", err)
	}
	return &org, true, nil
}

func createMembership(db *gorm.DB, org *models.Organization, memberData MemberData, parentID *uuid.UUID) (*models.Membership, bool, error) {
	userID := userIDFor(memberData.Email)

	var membership models.Membership
	err := db.Where("organization_id = ? AND user_id = ?", org.ID, userID).First(&membership).Error
	if err == nil {
		return &membership, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query membership: %w", err)
	}

	role := models.MembershipRole(memberData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", memberData.Role)
	}

	membership = models.Membership{
		OrganizationID: org.ID,
		UserID:         userID,
		Role:           role,
		Status:         models.MembershipStatusActive,
		ParentLeaderID: parentID,
		DisplayName:    memberData.DisplayName,
		Email:          strings.ToLower(memberData.Email),
	}
	if err := db.Create(&membership).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create membership: %w", err)
	}
	return &membership, true, nil
}

func createContact(db *gorm.DB, org *models.Organization, owner *models.Membership, contactData ContactData) (bool, error) {
	var existing models.Contact
	err := db.Where("organization_id = ? AND lower(email) = lower(?)", org.ID, contactData.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query contact: %w", err)
	}

	stage := models.ContactStage(contactData.Stage)
	if stage == "" {
		stage = models.ContactStageLead
	}
	if !stage.IsValid() {
		return false, fmt.Errorf("invalid stage %q", contactData.Stage)
	}

	tags := contactData.Tags
	if tags == nil {
		tags = []string{}
	}

	contact := models.Contact{
		OrganizationID:    org.ID,
		OwnerMembershipID: owner.ID,
		FullName:          contactData.FullName,
		Email:             strings.ToLower(contactData.Email),
		Phone:             contactData.Phone,
		Company:           contactData.Company,
		Stage:             stage,
		Tags:              pq.StringArray(tags),
		Source:            contactData.Source,
	}
	if err := db.Create(&contact).Error; err != nil {
		return false, fmt.Errorf("failed to create contact: %w", err)
	}
	return true, nil
}

// createSequence stores a template as a sequence with a published version 1
func createSequence(db *gorm.DB, org *models.Organization, createdBy uuid.UUID, sequenceData SequenceData) (bool, error) {
	var existing models.Sequence
	err := db.Where("organization_id = ? AND name = ?", org.ID, sequenceData.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query sequence: %w", err)
	}
	if len(sequenceData.Steps) == 0 {
		return false, fmt.Errorf("sequence has no steps")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		sequence := models.Sequence{
			OrganizationID: org.ID,
			Name:           sequenceData.Name,
			Description:    sequenceData.Description,
			Status:         models.SequenceStatusActive,
			CreatedBy:      createdBy,
		}
		if err := tx.Create(&sequence).Error; err != nil {
			return err
		}

		version := models.SequenceVersion{
			SequenceID:  sequence.ID,
			Version:     1,
			Status:      models.VersionStatusPublished,
			OnPublish:   models.OnPublishTerminate,
			PublishedAt: &now,
			PublishedBy: &createdBy,
		}
		if err := tx.Create(&version).Error; err != nil {
			return err
		}

		steps := make([]models.SequenceStep, 0, len(sequenceData.Steps))
		for i, stepData := range sequenceData.Steps {
			stepType := models.StepType(stepData.Type)
			if !stepType.IsValid() {
				return fmt.Errorf("step %d: invalid type %q", i+1, stepData.Type)
			}
			mode := models.AssigneeMode(stepData.AssigneeMode)
			if mode == "" {
				mode = models.AssigneeModeOwner
			}
			if !mode.IsValid() || mode == models.AssigneeModeSpecific {
				return fmt.Errorf("step %d: unsupported assignee mode %q", i+1, stepData.AssigneeMode)
			}
			steps = append(steps, models.SequenceStep{
				VersionID:    version.ID,
				Position:     i + 1,
				Title:        stepData.Title,
				Description:  stepData.Description,
				Type:         stepType,
				OffsetDays:   stepData.OffsetDays,
				OffsetHours:  stepData.OffsetHours,
				AssigneeMode: mode,
			})
		}
		if err := tx.Create(&steps).Error; err != nil {
			return err
		}

		return tx.Model(&sequence).Update("active_version_id", version.ID).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func printDevTokens(cfg *config.Config, users map[string]uuid.UUID) error {
	if cfg.IsProduction() {
		return nil
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return err
	}

	log.Println("Development bearer tokens:")
	for email, userID := range users {
		token, err := authService.GenerateJWT(userID, email, devTokenTTL)
		if err != nil {
			return fmt.Errorf("token for %s: %w", email, err)
		}
		fmt.Printf("%s\t%s\n", email, token)
	}
	return nil
}
