package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"salesdesk-backend/internal/database/models"
	apperrors "salesdesk-backend/internal/errors"
	"salesdesk-backend/internal/logger"
	"salesdesk-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/hbollon/go-edlib"
	"github.com/lib/pq"
)

// fuzzyNameThreshold is the Jaro-Winkler similarity from which two contact
// names are reported as a possible duplicate
const fuzzyNameThreshold = 0.92

const defaultImportSource = "import"

// ImportContactRow is one row of a contact import
type ImportContactRow struct {
	FullName string              `json:"full_name" validate:"required,min=1,max=200"`
	Email    string              `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone    string              `json:"phone,omitempty" validate:"omitempty,max=40"`
	Company  string              `json:"company,omitempty" validate:"omitempty,max=200"`
	Stage    models.ContactStage `json:"stage,omitempty" validate:"omitempty,oneof=lead contacted qualified proposal won lost"`
	Tags     []string            `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Score    int                 `json:"score" validate:"min=0,max=100"`
	Source   string              `json:"source,omitempty" validate:"omitempty,max=100"`
}

// ImportContactsRequest represents a contact import
type ImportContactsRequest struct {
	DryRun bool               `json:"dry_run"`
	Rows   []ImportContactRow `json:"rows" validate:"required,min=1,max=1000"`
}

// ImportRowIssue is a problem that prevents a row from being imported
type ImportRowIssue struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ImportWarning flags a row that looks like an existing contact
type ImportWarning struct {
	Row        int        `json:"row"`
	Message    string     `json:"message"`
	MatchID    *uuid.UUID `json:"match_id,omitempty"`
	MatchRow   *int       `json:"match_row,omitempty"`
	MatchName  string     `json:"match_name"`
	Similarity float32    `json:"similarity"`
}

// ImportContactsResponse is the import report
type ImportContactsResponse struct {
	DryRun     bool             `json:"dry_run"`
	Total      int              `json:"total"`
	Valid      int              `json:"valid"`
	Errors     []ImportRowIssue `json:"errors"`
	Duplicates []ImportRowIssue `json:"duplicates"`
	Warnings   []ImportWarning  `json:"warnings"`
	Created    int              `json:"created"`
}

type importCandidate struct {
	row   int
	input *ImportContactRow
	email string
}

// Import validates a batch of contact rows and, unless DryRun is set, creates
// every valid row that does not duplicate an existing e-mail
func (s *ContactService) Import(ctx context.Context, actor *Actor, req *ImportContactsRequest) (*ImportContactsResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	report := &ImportContactsResponse{
		DryRun:     req.DryRun,
		Total:      len(req.Rows),
		Errors:     []ImportRowIssue{},
		Duplicates: []ImportRowIssue{},
		Warnings:   []ImportWarning{},
	}

	candidates := s.validateRows(req.Rows, report)
	candidates, err := s.dropDuplicateEmails(ctx, actor.OrganizationID(), candidates, report)
	if err != nil {
		return nil, err
	}
	report.Valid = len(candidates)

	if err := s.flagSimilarNames(ctx, actor.OrganizationID(), candidates, report); err != nil {
		return nil, err
	}

	if req.DryRun || len(candidates) == 0 {
		return report, nil
	}

	contacts := make([]models.Contact, len(candidates))
	for i, c := range candidates {
		stage := c.input.Stage
		if stage == "" {
			stage = models.ContactStageLead
		}
		source := c.input.Source
		if source == "" {
			source = defaultImportSource
		}
		contacts[i] = models.Contact{
			OrganizationID:    actor.OrganizationID(),
			OwnerMembershipID: actor.MembershipID(),
			FullName:          strings.TrimSpace(c.input.FullName),
			Email:             strings.TrimSpace(c.input.Email),
			Phone:             strings.TrimSpace(c.input.Phone),
			Company:           strings.TrimSpace(c.input.Company),
			Stage:             stage,
			Tags:              pq.StringArray(NormalizeTags(c.input.Tags)),
			Score:             c.input.Score,
			Source:            source,
		}
	}

	if err := s.contacts.CreateBatch(ctx, contacts); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrContactExists
		}
		return nil, fmt.Errorf("failed to import contacts: %w", err)
	}
	report.Created = len(contacts)

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"created":    report.Created,
		"duplicates": len(report.Duplicates),
		"errors":     len(report.Errors),
	}).Info("Contacts imported")
	return report, nil
}

// validateRows records field errors per row and returns the rows that passed
func (s *ContactService) validateRows(rows []ImportContactRow, report *ImportContactsResponse) []importCandidate {
	candidates := make([]importCandidate, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		err := validateStruct(s.validator, row)
		if err == nil {
			candidates = append(candidates, importCandidate{
				row:   i,
				input: row,
				email: strings.ToLower(strings.TrimSpace(row.Email)),
			})
			continue
		}

		var verrs *apperrors.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs.Fields))
			for f := range verrs.Fields {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			for _, f := range fields {
				report.Errors = append(report.Errors, ImportRowIssue{Row: i, Field: f, Message: verrs.Fields[f]})
			}
			continue
		}
		report.Errors = append(report.Errors, ImportRowIssue{Row: i, Message: err.Error()})
	}
	return candidates
}

// dropDuplicateEmails removes rows whose e-mail already exists in the
// organization or appeared earlier in the batch
func (s *ContactService) dropDuplicateEmails(ctx context.Context, orgID uuid.UUID, candidates []importCandidate, report *ImportContactsResponse) ([]importCandidate, error) {
	emails := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.email != "" {
			emails = append(emails, c.email)
		}
	}
	existing, err := s.contacts.ExistingEmails(ctx, orgID, emails)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing emails: %w", err)
	}
	taken := make(map[string]bool, len(existing))
	for _, e := range existing {
		taken[e] = true
	}

	firstRow := make(map[string]int, len(candidates))
	kept := candidates[:0]
	for _, c := range candidates {
		if c.email == "" {
			kept = append(kept, c)
			continue
		}
		if taken[c.email] {
			report.Duplicates = append(report.Duplicates, ImportRowIssue{
				Row: c.row, Field: "email", Message: "a contact with this email already exists",
			})
			continue
		}
		if prev, seen := firstRow[c.email]; seen {
			report.Duplicates = append(report.Duplicates, ImportRowIssue{
				Row: c.row, Field: "email", Message: fmt.Sprintf("duplicates the email of row %d", prev),
			})
			continue
		}
		firstRow[c.email] = c.row
		kept = append(kept, c)
	}
	return kept, nil
}

// flagSimilarNames adds a warning for every row whose name is close to an
// existing contact or an earlier row. Warnings never block the import.
func (s *ContactService) flagSimilarNames(ctx context.Context, orgID uuid.UUID, candidates []importCandidate, report *ImportContactsResponse) error {
	if len(candidates) == 0 {
		return nil
	}
	existing, err := s.contacts.ListNames(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to list contact names: %w", err)
	}

	for i, c := range candidates {
		name := strings.ToLower(strings.TrimSpace(c.input.FullName))

		for j := range existing {
			score := nameSimilarity(name, existing[j].FullName)
			if score >= fuzzyNameThreshold {
				id := existing[j].ID
				report.Warnings = append(report.Warnings, ImportWarning{
					Row:        c.row,
					Message:    "similar to an existing contact",
					MatchID:    &id,
					MatchName:  existing[j].FullName,
					Similarity: score,
				})
				break
			}
		}

		for _, prev := range candidates[:i] {
			score := nameSimilarity(name, prev.input.FullName)
			if score >= fuzzyNameThreshold {
				row := prev.row
				report.Warnings = append(report.Warnings, ImportWarning{
					Row:        c.row,
					Message:    "similar to another row of the import",
					MatchRow:   &row,
					MatchName:  prev.input.FullName,
					Similarity: score,
				})
				break
			}
		}
	}
	return nil
}

func nameSimilarity(lowered, other string) float32 {
	score, err := edlib.StringsSimilarity(lowered, strings.ToLower(strings.TrimSpace(other)), edlib.JaroWinkler)
	if err != nil {
		return 0
	}
	return score
}
